// Package rangetool implements the range selection gesture.
//
// A range tool binds a rectangular overlay to up to two ranges, one per
// axis. The overlay is never edited directly: Tool.UpdateOverlayFromRanges
// re-derives its four boundaries from the ranges, and View subscribes that
// resync to every range change. Gestures only ever write to the ranges.
//
// Gesture behavior:
//
//   - hover near a left/right edge requests an ew-resize cursor, near a
//     bottom/top edge ns-resize, inside the overlay grab, else default
//   - a pan that starts on an edge resizes that range endpoint
//   - a pan that starts inside the overlay moves the whole range
//   - a drag that would leave the frame's bounding range is rejected, so
//     the edge stops rather than snapping to the frame boundary
//
// An axis with no bound range ignores all gestures.
package rangetool
