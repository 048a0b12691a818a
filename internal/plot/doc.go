// Package plot models a single 2D plot: its visible ranges, the screen
// rectangle it occupies, its data series and its annotations.
//
// A Plot's Frame derives scales from the current visible ranges and the
// current screen rectangle every time they are requested, so tools always
// see the geometry of the latest render.
package plot
