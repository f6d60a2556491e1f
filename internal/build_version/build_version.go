package build_version

// Set at link time: go build -ldflags "-X github.com/omarnabikhan/caret/internal/build_version.version=v0.1.0"
var version = "dev"

func GetVersion() string {
	return version
}
