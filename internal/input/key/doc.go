// Package key defines keyboard events and the Vim-style notation used to
// write them in key bindings: "j", "G", "<Esc>", "<CR>", "<C-c>", "<Up>".
package key
