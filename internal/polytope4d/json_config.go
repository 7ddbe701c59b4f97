package polytope4d

import (
	"encoding/json"
	"fmt"
	"os"
)

// SliceCfg selects a hyperplane: either a preset cut or an explicit normal
// (normalised on load), at offset along it.
type SliceCfg struct {
	Cut    string   `json:"cut,omitempty"`
	Normal *Vector4 `json:"normal,omitempty"`
	Offset Real     `json:"offset"`
	// Sweep, when set, moves the offset across the polytope's slice range
	// over the animation instead of holding it fixed.
	Sweep bool `json:"sweep,omitempty"`
}

type Config struct {
	Polytope     string    `json:"polytope"`
	Projection   string    `json:"projection,omitempty"`
	ViewDistance Real      `json:"viewDistance,omitempty"`
	RotDeg       Rot4Deg   `json:"rotDeg"`
	SpinDeg      Rot4Deg   `json:"spinDeg"` // added to RotDeg over the whole animation
	Frames       int       `json:"frames,omitempty"`
	Width        int       `json:"width,omitempty"`
	Height       int       `json:"height,omitempty"`
	Scale        Real      `json:"scale,omitempty"`
	LineWidth    Real      `json:"lineWidth,omitempty"`
	GIFOut       string    `json:"gifOut"`
	GIFDelay     int       `json:"gifDelay,omitempty"`
	Gamma        Real      `json:"gamma,omitempty"`
	Slice        *SliceCfg `json:"slice,omitempty"`
	Cells        bool      `json:"cells,omitempty"`
	Explode      Real      `json:"explode,omitempty"`
	// Net folds the tesseract's Dalí cross net over the animation instead
	// of drawing the wireframe. Tesseract only.
	Net bool `json:"net,omitempty"`
}

// Build resolves the slice hyperplane for p.
func (s SliceCfg) Build(p *Polytope) (normal Vector4, err error) {
	if s.Normal != nil {
		n := *s.Normal
		if n.Len() == 0 {
			return Vector4{}, fmt.Errorf("slice normal must be nonzero")
		}
		return Normalize4(n), nil
	}
	cut, err := ParseCutType(s.Cut)
	if err != nil {
		return Vector4{}, err
	}
	return SliceNormal(p, cut)
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// Defaults / validation
	if cfg.Polytope == "" {
		return nil, fmt.Errorf("config has no polytope")
	}
	if _, err := ParseKind(cfg.Polytope); err != nil {
		return nil, err
	}
	if _, err := ParseProjectionMode(cfg.Projection); err != nil {
		return nil, err
	}
	if cfg.ViewDistance <= 0 {
		cfg.ViewDistance = ViewDistance
	}
	if cfg.Frames <= 0 {
		cfg.Frames = Frames
	}
	if cfg.Width <= 0 {
		cfg.Width = FrameWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = FrameHeight
	}
	if cfg.Scale <= 0 {
		cfg.Scale = ViewScale
	}
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = LineWidth
	}
	if cfg.GIFOut == "" {
		cfg.GIFOut = GIFOut
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = GIFDelay
	}
	if cfg.Gamma <= 0 {
		cfg.Gamma = Gamma
	}
	if cfg.Net && cfg.Polytope != Tesseract.String() {
		return nil, fmt.Errorf("net view needs the tesseract, got %s", cfg.Polytope)
	}
	if cfg.Cells && cfg.Explode == 0 {
		cfg.Explode = ExplodeCells
	}
	DebugLog("Loaded config from %s: %s %s d=%.3f frames=%d size=(%d, %d) gamma=%f",
		path, cfg.Polytope, cfg.Projection, cfg.ViewDistance, cfg.Frames, cfg.Width, cfg.Height, cfg.Gamma)
	return &cfg, nil
}
