// Package renderer draws an editing session to a terminal screen.
//
// The renderer is responsible for:
//   - Laying out line text into cells with tab expansion and Unicode widths
//   - Scrolling so the cursor stays visible
//   - Placing the terminal cursor on the cell of the logical cursor
//   - Drawing the status line
//
// Screens are tcell screens, so tests draw to a tcell.SimulationScreen
// and inspect the resulting cells.
//
// Usage:
//
//	screen, _ := tcell.NewScreen()
//	_ = screen.Init()
//	v := renderer.NewView(screen, renderer.DefaultOptions())
//	v.Draw(session, renderer.Status{Name: "main.go"})
package renderer
