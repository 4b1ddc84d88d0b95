package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/object-extract-mcp/internal/export"
	"github.com/ironsheep/object-extract-mcp/internal/extract"
	"github.com/ironsheep/object-extract-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "objects_extract").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// errNoResult is returned by tools that need an extraction result.
var errNoResult = errors.New("no extraction result: run objects_extract first")

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000,
// except invalid extraction parameters which use -32602.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if errors.Is(err, extract.ErrInvalidParams) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
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
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies configured defaults for optional parameters
//  3. Works on the session's active image, loading a new one if a path is given
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "alpha_histogram":
		return s.handleAlphaHistogram(args)

	// Object Extraction
	case "objects_extract":
		return s.handleObjectsExtract(args)
	case "objects_preview":
		return s.handleObjectsPreview(args)
	case "objects_annotate":
		return s.handleObjectsAnnotate(args)
	case "objects_export":
		return s.handleObjectsExport(args)

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

// loadActive decodes path and makes it the session's active image.
func (s *Server) loadActive(path string) (*imaging.Source, error) {
	src, err := extract.Open(s.cache, path)
	if err != nil {
		return nil, err
	}
	if err := s.session.Load(src.Image, export.BaseName(path)); err != nil {
		return nil, err
	}
	return src, nil
}

// activeImage returns the image named by path, or the session's active
// image when path is empty.
func (s *Server) activeImage(path string) (image.Image, string, error) {
	if path != "" {
		src, err := s.loadActive(path)
		if err != nil {
			return nil, "", err
		}
		return src.Image, export.BaseName(path), nil
	}
	img, base := s.session.Image()
	if img == nil {
		return nil, "", extract.ErrNoImageLoaded
	}
	return img, base, nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

type imageLoadResult struct {
	*imaging.ImageInfo
	BaseName string `json:"base_name"`
	State    string `json:"state"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	// Reload from disk in case the file changed since it was cached.
	s.cache.Evict(a.Path)
	if _, err := s.loadActive(a.Path); err != nil {
		return nil, err
	}
	info, err := imaging.LoadImageInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	return &imageLoadResult{
		ImageInfo: info,
		BaseName:  export.BaseName(a.Path),
		State:     s.session.State().String(),
	}, nil
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type alphaHistogramArgs struct {
	Path      string `json:"path"`
	Threshold int    `json:"threshold"`
}

type alphaHistogramResult struct {
	*imaging.AlphaHistogramResult
	Threshold             int     `json:"threshold"`
	AboveThresholdPercent float64 `json:"above_threshold_percent"`
}

func (s *Server) handleAlphaHistogram(args json.RawMessage) (interface{}, error) {
	var a alphaHistogramArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Threshold == 0 {
		a.Threshold = s.cfg.Threshold
	}

	var img image.Image
	if a.Path != "" {
		src, err := extract.Open(s.cache, a.Path)
		if err != nil {
			return nil, err
		}
		img = src.Image
	} else if img, _ = s.session.Image(); img == nil {
		return nil, extract.ErrNoImageLoaded
	}

	hist := imaging.AlphaHistogram(img)
	return &alphaHistogramResult{
		AlphaHistogramResult:  hist,
		Threshold:             a.Threshold,
		AboveThresholdPercent: hist.AbovePercent(a.Threshold),
	}, nil
}

// === Object Extraction Handlers ===

type objectsExtractArgs struct {
	Path         string `json:"path"`
	Threshold    int    `json:"threshold"`
	MinDimension *int   `json:"min_dimension"`
}

type objectInfo struct {
	Index    int                  `json:"index"`
	FileName string               `json:"file_name"`
	X        int                  `json:"x"`
	Y        int                  `json:"y"`
	Width    int                  `json:"width"`
	Height   int                  `json:"height"`
	Color    imaging.ColorSummary `json:"color"`
}

type objectsExtractResult struct {
	BaseName     string       `json:"base_name"`
	Threshold    int          `json:"threshold"`
	MinDimension int          `json:"min_dimension"`
	Detected     int          `json:"detected"`
	Extracted    int          `json:"extracted"`
	Discarded    int          `json:"discarded"`
	Objects      []objectInfo `json:"objects"`
}

func (s *Server) handleObjectsExtract(args json.RawMessage) (interface{}, error) {
	var a objectsExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	p := extract.Params{Threshold: s.cfg.Threshold, MinDimension: s.cfg.MinDimension}
	if a.Threshold != 0 {
		p.Threshold = a.Threshold
	}
	if a.MinDimension != nil {
		p.MinDimension = *a.MinDimension
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if _, _, err := s.activeImage(a.Path); err != nil {
		return nil, err
	}

	result, err := s.session.Run(p)
	if err != nil {
		return nil, err
	}
	_, base := s.session.Image()

	out := &objectsExtractResult{
		BaseName:     base,
		Threshold:    p.Threshold,
		MinDimension: p.MinDimension,
		Detected:     result.Detected,
		Extracted:    result.Count(),
		Discarded:    result.Discarded,
		Objects:      make([]objectInfo, 0, result.Count()),
	}
	for _, obj := range result.Objects {
		out.Objects = append(out.Objects, objectInfo{
			Index:    obj.Index,
			FileName: export.FileName(base, obj.Index),
			X:        obj.Bounds.Min.X,
			Y:        obj.Bounds.Min.Y,
			Width:    obj.Width(),
			Height:   obj.Height(),
			Color:    imaging.ObjectColor(obj.Image),
		})
	}
	return out, nil
}

type objectsPreviewArgs struct {
	Index      int    `json:"index"`
	TileSize   int    `json:"tile_size"`
	Columns    int    `json:"columns"`
	Background string `json:"background"`
}

func (s *Server) handleObjectsPreview(args json.RawMessage) (interface{}, error) {
	var a objectsPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	result := s.session.Result()
	if result.IsEmpty() {
		return nil, errNoResult
	}

	if a.Index != 0 {
		obj := result.At(a.Index - 1)
		if obj == nil {
			return nil, fmt.Errorf("object index %d out of range 1-%d", a.Index, result.Count())
		}
		return imaging.EncodePNG(obj.Image)
	}

	var bg color.Color = color.Transparent
	if a.Background != "" {
		c, err := imaging.ParseHexColor(a.Background)
		if err != nil {
			return nil, fmt.Errorf("invalid background color %q: %w", a.Background, err)
		}
		bg = c
	}

	images := make([]image.Image, result.Count())
	for i, obj := range result.Objects {
		images[i] = obj.Image
	}
	return imaging.EncodePNG(imaging.ContactSheet(images, a.TileSize, a.Columns, bg))
}

type objectsAnnotateArgs struct {
	BoxColor string `json:"box_color"`
}

func (s *Server) handleObjectsAnnotate(args json.RawMessage) (interface{}, error) {
	var a objectsAnnotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, _ := s.session.Image()
	if img == nil {
		return nil, extract.ErrNoImageLoaded
	}
	result := s.session.Result()
	if result == nil {
		return nil, errNoResult
	}

	boxes := make([]image.Rectangle, result.Count())
	for i, obj := range result.Objects {
		boxes[i] = obj.Bounds
	}
	return imaging.EncodePNG(imaging.Annotate(img, boxes, a.BoxColor))
}

type objectsExportArgs struct {
	OutputDir string `json:"output_dir"`
	Bucket    string `json:"bucket"`
	Prefix    string `json:"prefix"`
}

type objectsExportResult struct {
	Exported  int      `json:"exported"`
	Locations []string `json:"locations"`
	State     string   `json:"state"`
}

func (s *Server) handleObjectsExport(args json.RawMessage) (interface{}, error) {
	var a objectsExportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	result := s.session.Result()
	if result.IsEmpty() {
		return nil, export.ErrNothingToExport
	}
	_, base := s.session.Image()

	sink, err := s.exportSink(a)
	if err != nil {
		return nil, err
	}

	locations, err := export.Export(context.Background(), sink, base, result.Objects)
	if err != nil {
		return nil, err
	}
	s.session.Clear()
	s.logger.Printf("Exported %d objects of %s", len(locations), base)

	return &objectsExportResult{
		Exported:  len(locations),
		Locations: locations,
		State:     s.session.State().String(),
	}, nil
}

// exportSink picks S3 when a bucket is given or configured, else a directory.
func (s *Server) exportSink(a objectsExportArgs) (export.Sink, error) {
	bucket := a.Bucket
	if bucket == "" && a.OutputDir == "" {
		bucket = s.cfg.S3Bucket
	}
	if bucket != "" {
		prefix := a.Prefix
		if prefix == "" {
			prefix = s.cfg.S3Prefix
		}
		return s.newS3Sink(s.cfg.S3Region, bucket, prefix)
	}

	dir := a.OutputDir
	if dir == "" {
		dir = s.cfg.OutputDir
	}
	return export.DirSink{Dir: dir}, nil
}
