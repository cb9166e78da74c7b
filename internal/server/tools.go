package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var gravityProperty = map[string]interface{}{
	"type": "string",
	"description": "Where the region is anchored when the image has more room than needed: " +
		"center, left, right, top, bottom or a combination such as top-left or bottom|right. Default center",
	"default": "center",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_bounds",
			Description: "Read the width, height and format of an image without decoding its pixels, and report which decoder backend serves it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_plan_best_region",
			Description: "Compute the crop rectangle and power-of-two sample size that best fill a width x height box, without decoding. The box is shrunk to fit the image, keeping its aspect ratio, if it is larger.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Required output width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Required output height in pixels",
					},
					"gravity": gravityProperty,
				},
				"required": []string{"path", "width", "height"},
			},
		},
		{
			Name:        "image_decode_region",
			Description: "Decode a rectangular region of an image, optionally downsampled, and return it as base64-encoded PNG with its average color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"sample_size": map[string]interface{}{
						"type":        "integer",
						"description": "Optional downsample factor, rounded down to a power of two. Default 1",
						"default":     1,
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "image_decode_best_region",
			Description: "Decode the largest region of an image that, downsampled by a power of two, fills a width x height box. Returns the region as base64-encoded PNG together with the plan used.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Required output width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Required output height in pixels",
					},
					"gravity": gravityProperty,
				},
				"required": []string{"path", "width", "height"},
			},
		},
		{
			Name:        "image_recycle",
			Description: "Release the decoder held for an image. The next call for the same path opens it again.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
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
