package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/omarnabikhan/caret"
	"github.com/omarnabikhan/caret/internal/build_version"
	"github.com/omarnabikhan/caret/internal/config"
	"github.com/omarnabikhan/caret/internal/cursor"
	"github.com/omarnabikhan/caret/internal/editor"
	"github.com/omarnabikhan/caret/internal/logging"
	"github.com/omarnabikhan/caret/internal/terminal"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "caret: %v\n", err)
		return 1
	}

	logger, closeLog, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "caret: %v\n", err)
		return 1
	}
	defer closeLog()
	logger.Info("starting", "version", build_version.GetVersion(), "backend", cfg.Backend)

	// The size has to be known before raw mode; if this fails there is nothing to undo.
	cols, rows, err := terminal.QuerySize(int(os.Stdout.Fd()))
	if err != nil {
		logger.Error("size query failed", "err", err)
		fmt.Fprintf(os.Stderr, "caret: %v\n", err)
		return 1
	}

	surface, err := terminal.Open(terminal.Options{Backend: cfg.Backend, TTY: cfg.TTY})
	if err != nil {
		logger.Error("open failed", "err", err)
		fmt.Fprintf(os.Stderr, "caret: %v\n", err)
		return 1
	}
	defer surface.Restore()

	// Also restore on process exit. Restore writes its trailer straight to the device and leaves the
	// output buffer alone, so it can run while the editor goroutine is mid-write.
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
		sig := <-signalChan
		logger.Info("caught signal", "signal", sig.String())
		surface.Restore()
		closeLog()
		os.Exit(0)
	}()

	ed := editor.NewEditor(surface, cursor.Coordinate{X: cols, Y: rows}, logger)
	if err := ed.Run(); err != nil {
		// Put the terminal back before printing, or the message lands in raw mode.
		surface.Restore()
		logger.Error("session failed", "err", err)

		var ioErr *caret.IOError
		if errors.As(err, &ioErr) {
			fmt.Fprintf(os.Stderr, "caret: lost the terminal: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "caret: %v\n", err)
		}
		return 1
	}
	return 0
}
