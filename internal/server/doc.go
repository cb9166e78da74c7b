// Package server implements the MCP (Model Context Protocol) server for region
// decoding.
//
// This package provides a JSON-RPC 2.0 server that exposes the region decoder
// and best-region planner through the MCP protocol, so that MCP clients can
// fetch just the part of a large image they need at the resolution they need.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_bounds: Width, height, format and backend, read from the header
//   - image_plan_best_region: Crop rectangle and sample size for a target box
//   - image_decode_region: Decode a rectangle, optionally downsampled
//   - image_decode_best_region: Plan and decode in one call
//   - image_recycle: Release the decoder held for an image
//
// Decoded regions are returned as base64-encoded PNG together with their
// average color.
//
// # Decoder Caching
//
// The server keeps one open decoder per image path in a DecoderCache, so
// repeated calls against the same file reuse its header and, with the retained
// backend, its decoded pixels. Entries live until image_recycle or until the
// input stream ends.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	cfg, err := server.ConfigFromEnv(os.Getenv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := server.New(cfg).Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
