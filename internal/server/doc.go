// Package server implements the MCP (Model Context Protocol) server for object extraction.
//
// This package provides a JSON-RPC 2.0 server that exposes alpha-mask object
// extraction through the MCP protocol, so an MCP client can cut sprite sheets,
// icon sets and other transparent images into separate files.
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
// Basic Image Information:
//   - image_load: Load an image, make it the active image, report metadata
//   - image_dimensions: Get width and height
//   - alpha_histogram: Alpha value distribution, to pick a threshold
//
// Object Extraction:
//   - objects_extract: Detect and cut out objects of the active image
//   - objects_preview: Contact sheet of the result, or one object
//   - objects_annotate: Active image with numbered bounding boxes
//   - objects_export: Write the result as {name}_objekt_{i}.png, then clear it
//
// # Session
//
// The server keeps one active image and its latest extraction result in an
// extract.Session. Loading an image discards the result; every extraction
// replaces it; exporting clears it.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure), -32602 (invalid parameters) or
//     standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(config.Load(nil), nil)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
