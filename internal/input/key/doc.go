// Package key provides key event types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "A", "1", "Enter", "Backspace"
//   - With modifiers: "Ctrl+S", "Ctrl+Q"
//   - Vim-style: "<C-s>", "<CR>", "<BS>", "<Left>", "<Space>"
//
// # Scripts
//
// ParseScript reads a whole key script: literal characters type themselves
// and <...> tokens name special keys. Raw line breaks in a script are
// ignored so long scripts can be wrapped; use <CR> for Enter.
//
//	events, err := key.ParseScript("ab<Left>X<CR><Up><BS>")
package key
