// Package terminal implements caret.Surface on top of real terminals.
//
// Backends:
//   - ansi: raw mode through github.com/pkg/term, direct escape sequences, own key decoder
//   - tcell: github.com/gdamore/tcell/v2 screen
//   - curses: github.com/gbin/goncurses, only with the "curses" build tag
//
// Recorder is an in-memory Surface for tests.
package terminal
