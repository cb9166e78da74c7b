// Package region selects the best region of a large image to decode for a
// requested output box.
//
// Plan is a pure function of the original dimensions, the required output
// dimensions and a Gravity. It returns a power-of-two sample size together
// with a crop rectangle in original-image coordinates, so that decoding the
// crop at that sample size yields exactly the required box (after clamping
// oversized boxes to the source aspect ratio).
//
// # Coordinate System
//
// Rectangles follow image.Rectangle conventions: Min is inclusive, Max is
// exclusive, (0,0) is the top-left pixel of the original image.
package region
