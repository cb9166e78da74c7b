// Package decoder decodes rectangular regions of large encoded images.
//
// Open binds a Decoder to one image Source (a path, a byte range, a stream or
// an open file). The Decoder learns the image bounds from the header alone and
// can then decode any sub-rectangle at a power-of-two reduction, or pick the
// best region for a target box with DecodeBestRegion.
//
// # Backends
//
// Pixel work is delegated to a Backend chosen when the image is opened:
//
//   - retained: decodes once on first use and keeps the pixels; each region is
//     cropped first and only the crop is downsampled.
//   - naive: keeps only the encoded data and fully decodes, downsamples and
//     then crops on every call.
//
// Both produce images of identical size for identical requests. Config picks
// between them (ForceFallback, MaxRetainedPixels); WithBackend injects any
// other BackendFactory.
//
// # Lifecycle
//
// A Decoder is active from Open until Recycle. After Recycle every operation
// other than IsRecycled and Recycle returns ErrRecycled; no stale pixels are
// ever returned. Recycle may be called any number of times.
//
// # Thread Safety
//
// Decoders are not safe for concurrent use. Distinct decoders share no state.
package decoder
