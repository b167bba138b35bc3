// Package terminal provides direct ANSI terminal control for the game.
//
// Features:
//   - True color (24-bit) and 256-color palette support
//   - Command-style output (MoveTo, Put, Flush) with cursor and SGR elision
//   - Raw stdin input parsing with escape sequence handling
//   - Clean terminal restoration on exit/panic
//   - Alternate tcell-backed implementation of the same interface
//
// The default implementation bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
