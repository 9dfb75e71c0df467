// Package ui contains the Bubble Tea program that presents the emoji palette.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses or terminal resizes).
//   - Resizes feed the hosting width into the palette. The palette drops its
//     cached pages when the width changes, and the model clamps its page and
//     cursor against the new layout.
//   - Navigation helpers (navigation.go) move the cursor across the current
//     page, cross into neighbouring pages at the edges and switch categories.
//     Search helpers (search.go) keep the name filter isolated from paging.
//
// State ownership:
//   - The current category and page live in the palette session, which
//     persists them on every change. The model only owns the cursor, the
//     search query and the picked symbol.
package ui
