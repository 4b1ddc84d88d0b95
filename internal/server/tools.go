package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether it has an alpha channel. Sets this as the active image for subsequent operations and discards any previous extraction result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "alpha_histogram",
			Description: "Count alpha values (0-255) of an image and report the share of transparent, partial and opaque pixels. Use it to choose an extraction threshold.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file. Defaults to the active image",
					},
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Report the share of pixels with alpha above this value. Default 100",
						"default":     100,
					},
				},
			},
		},

		// Object Extraction
		{
			Name:        "objects_extract",
			Description: "Find the separate objects of an image with transparency and cut them out in reading order (rows of 100px, then left to right). Replaces any previous result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file. Loads it as the active image; defaults to the current active image",
					},
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Alpha threshold (10-255). Pixels whose blurred alpha is above it belong to objects. Default 100",
						"default":     100,
						"minimum":     10,
						"maximum":     255,
					},
					"min_dimension": map[string]interface{}{
						"type":        "integer",
						"description": "Objects narrower or shorter than this many pixels are dropped. Default 10",
						"default":     10,
						"minimum":     0,
					},
				},
			},
		},
		{
			Name:        "objects_preview",
			Description: "Render the extracted objects as a contact sheet of thumbnails, or a single object at full size, as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"index": map[string]interface{}{
						"type":        "integer",
						"description": "1-based object index. When set, returns that object instead of the contact sheet",
					},
					"tile_size": map[string]interface{}{
						"type":        "integer",
						"description": "Thumbnail cell size in pixels. Default 128",
						"default":     128,
					},
					"columns": map[string]interface{}{
						"type":        "integer",
						"description": "Thumbnails per row. Default 4",
						"default":     4,
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Sheet background as #RRGGBB or #RRGGBBAA. Default transparent",
					},
				},
			},
		},
		{
			Name:        "objects_annotate",
			Description: "Draw the bounding box and index of every extracted object on a copy of the active image. Returns base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"box_color": map[string]interface{}{
						"type":        "string",
						"description": "Box color as #RRGGBB or #RRGGBBAA. Default #00BCD4FF",
						"default":     "#00BCD4FF",
					},
				},
			},
		},
		{
			Name:        "objects_export",
			Description: "Write every extracted object as {name}_objekt_{index}.png to a directory or an S3 bucket, then clear the result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory to write to. Defaults to OBJEXTRACT_OUTPUT_DIR",
					},
					"bucket": map[string]interface{}{
						"type":        "string",
						"description": "S3 bucket to upload to instead of a directory. Defaults to OBJEXTRACT_S3_BUCKET",
					},
					"prefix": map[string]interface{}{
						"type":        "string",
						"description": "Key prefix inside the bucket",
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
