// Package viz renders trajectory comparisons in the terminal.
//
//   - [Canvas]: Braille-based pixel canvas, 2x4 sub-pixels per cell
//   - [Viewport]: world to pixel mapping shared with the exporters
//   - [Compose]: per-layer styling of stacked canvases
//   - [Model]: Bubble Tea playback of both flights
//   - [Plot]: asciigraph height chart
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from launch
//	←/→   - Step one sample
//	T     - Cycle colour themes
//	Q     - Quit
package viz
