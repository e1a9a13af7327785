// Package ui implements the interactive icon preview with Bubble Tea.
//
// The preview shows the resolved rules in order, a text input for a window
// name, and which rule (if any) would pick that window's icon. The same
// first-match logic as the rest of workstyle is used, so the preview is a
// quick way to check that a more specific rule sits above a broader one.
//
// Keys:
//
//   - esc, ctrl+c: quit
//   - ctrl+t: cycle theme, saved to prefs.toml when a prefs path is set
//   - tab: accept the suggested rule key
package ui
