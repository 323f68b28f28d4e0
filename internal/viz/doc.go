// Package viz shows qlture in a terminal using Bubble Tea.
//
// Frames are drawn with upper-half-block glyphs, so every terminal cell
// carries two vertically stacked pixels: the foreground paints the top
// one and the background the bottom one. Lip Gloss picks the best color
// profile the terminal supports.
//
// # Key Bindings
//
//	P      - Pause/Resume (configurable)
//	Q      - Quit (configurable)
//	Ctrl+C - Quit
//	Click  - Next pattern
package viz
