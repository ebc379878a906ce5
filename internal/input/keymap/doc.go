// Package keymap translates key events into editor commands.
//
// Each mode has its own table of bindings written in Vim key notation.
// Keys with no binding are ignored, except in insert mode where printable
// characters insert themselves.
package keymap
