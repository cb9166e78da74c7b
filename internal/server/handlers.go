package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/region-decoder/internal/decoder"
	"github.com/ironsheep/region-decoder/internal/imaging"
	"github.com/ironsheep/region-decoder/internal/region"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_bounds", "image_decode_region").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler unmarshals its arguments, applies defaults for optional
// parameters and runs against the cached decoder for the image path.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_bounds":
		return s.handleImageBounds(args)
	case "image_plan_best_region":
		return s.handlePlanBestRegion(args)
	case "image_decode_region":
		return s.handleDecodeRegion(args)
	case "image_decode_best_region":
		return s.handleDecodeBestRegion(args)
	case "image_recycle":
		return s.handleRecycle(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// CropRect is a rectangle in original-image coordinates, right and bottom
// edges exclusive.
type CropRect struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func cropRect(r image.Rectangle) CropRect {
	return CropRect{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y}
}

// BoundsResult describes an opened image.
type BoundsResult struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Format  string `json:"format"`
	Backend string `json:"backend"`
}

// PlanResult is a best-region plan as reported to clients.
type PlanResult struct {
	SampleSize   int      `json:"sample_size"`
	Crop         CropRect `json:"crop"`
	OutputWidth  int      `json:"output_width"`
	OutputHeight int      `json:"output_height"`
}

func planResult(p region.RegionPlan) PlanResult {
	out := p.OutputSize()
	return PlanResult{
		SampleSize:   p.SampleSize,
		Crop:         cropRect(p.Crop),
		OutputWidth:  out.X,
		OutputHeight: out.Y,
	}
}

// DecodeRegionResult is a decoded region plus the request that produced it.
type DecodeRegionResult struct {
	Region     CropRect `json:"region"`
	SampleSize int      `json:"sample_size"`
	*imaging.RegionResult
}

// DecodeBestRegionResult is a decoded best region plus its plan.
type DecodeBestRegionResult struct {
	Plan PlanResult `json:"plan"`
	*imaging.RegionResult
}

// RecycleResult reports a recycle request. Recycled is always true once the
// path has no live decoder; Cached tells whether one had been open.
type RecycleResult struct {
	Recycled bool `json:"recycled"`
	Cached   bool `json:"cached"`
}

type pathArgs struct {
	Path string `json:"path"`
}

type bestRegionArgs struct {
	Path    string `json:"path"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Gravity string `json:"gravity"`
}

func (a bestRegionArgs) gravity() (region.Gravity, error) {
	if a.Gravity == "" {
		return region.Center, nil
	}
	return region.ParseGravity(a.Gravity)
}

type decodeRegionArgs struct {
	Path       string `json:"path"`
	X1         int    `json:"x1"`
	Y1         int    `json:"y1"`
	X2         int    `json:"x2"`
	Y2         int    `json:"y2"`
	SampleSize int    `json:"sample_size"`
}

func (s *Server) handleImageBounds(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var res BoundsResult
	err := s.cache.With(a.Path, func(d *decoder.Decoder) error {
		b, err := d.Bounds()
		if err != nil {
			return err
		}
		format, err := d.Format()
		if err != nil {
			return err
		}
		res = BoundsResult{Width: b.Width, Height: b.Height, Format: format, Backend: d.Backend()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Server) handlePlanBestRegion(args json.RawMessage) (interface{}, error) {
	var a bestRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := a.gravity()
	if err != nil {
		return nil, err
	}

	var res PlanResult
	err = s.cache.With(a.Path, func(d *decoder.Decoder) error {
		p, err := d.PlanBestRegion(a.Width, a.Height, g)
		if err != nil {
			return err
		}
		res = planResult(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Server) handleDecodeRegion(args json.RawMessage) (interface{}, error) {
	var a decodeRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	// not image.Rect, which would silently swap inverted corners
	rect := image.Rectangle{Min: image.Pt(a.X1, a.Y1), Max: image.Pt(a.X2, a.Y2)}
	opts := &decoder.Options{SampleSize: a.SampleSize}

	var img image.Image
	err := s.cache.With(a.Path, func(d *decoder.Decoder) error {
		var err error
		img, err = d.DecodeRegion(rect, opts)
		return err
	})
	if err != nil {
		return nil, err
	}

	enc, err := imaging.EncodeRegion(img)
	if err != nil {
		return nil, err
	}
	return &DecodeRegionResult{
		Region:       cropRect(rect),
		SampleSize:   decoder.NormalizeSampleSize(a.SampleSize),
		RegionResult: enc,
	}, nil
}

func (s *Server) handleDecodeBestRegion(args json.RawMessage) (interface{}, error) {
	var a bestRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	g, err := a.gravity()
	if err != nil {
		return nil, err
	}

	var (
		plan region.RegionPlan
		img  image.Image
	)
	err = s.cache.With(a.Path, func(d *decoder.Decoder) error {
		var err error
		plan, err = d.PlanBestRegion(a.Width, a.Height, g)
		if err != nil {
			return err
		}
		img, err = d.DecodeRegion(plan.Crop, &decoder.Options{SampleSize: plan.SampleSize})
		return err
	})
	if err != nil {
		return nil, err
	}

	enc, err := imaging.EncodeRegion(img)
	if err != nil {
		return nil, err
	}
	return &DecodeBestRegionResult{Plan: planResult(plan), RegionResult: enc}, nil
}

func (s *Server) handleRecycle(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return &RecycleResult{Recycled: true, Cached: s.cache.Evict(a.Path)}, nil
}
