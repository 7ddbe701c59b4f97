package polytope4d

import (
	"fmt"
	"image"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// animation is everything a frame needs besides its index.
type animation struct {
	poly    *Polytope
	mode    ProjectionMode
	dist    Real
	base    Rot4
	spin    Rot4
	frames  int
	view    View
	normal  Vector4
	slice   *SliceCfg
	lo, hi  Real
	cells   bool
	explode Real
	net     bool
}

func (a *animation) rotation(k int) Rot4 {
	return a.base.Add(a.spin.Scale(Real(k) / Real(a.frames)))
}

func (a *animation) offset(k int) Real {
	if !a.slice.Sweep {
		return a.slice.Offset
	}
	if a.frames == 1 {
		return (a.lo + a.hi) / 2
	}
	return a.lo + (a.hi-a.lo)*Real(k)/Real(a.frames-1)
}

// fold runs the net from flat (first frame) to folded (last frame).
func (a *animation) fold(k int) Real {
	if a.frames == 1 {
		return 1
	}
	return Real(k) / Real(a.frames-1)
}

func (a *animation) content(k int) *FrameContent {
	if a.net {
		net := TesseractNet(a.fold(k), a.dist, a.mode)
		tilt := mgl64.Rotate3DX(NetTilt)
		for i := range net {
			for j, q := range net[i].Positions {
				net[i].Positions[j] = tilt.Mul3x1(q)
			}
		}
		return &FrameContent{Net: net}
	}
	r := a.rotation(k)
	c := &FrameContent{Edges: a.poly.ProjectedEdges(r, a.dist, a.mode)}
	if a.slice != nil {
		if s, ok := ComputeSlice(a.poly, a.normal, a.offset(k)); ok {
			c.Section = ProjectAll(s.Rotated(r), a.dist, a.mode)
			if len(c.Section) <= HullMaxPoints {
				c.SectionTris = Hull(c.Section)
			}
		}
	}
	if a.cells {
		ms, err := a.poly.ExplodedCells(r, a.dist, a.mode, a.explode)
		if err == nil {
			c.Cells = ms
		}
	}
	return c
}

// renderFrames draws every frame on a runtime.NumCPU() worker pool. Each
// frame is owned by the worker that renders it.
func renderFrames(a *animation) []*image.RGBA {
	out := make([]*image.RGBA, a.frames)
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > a.frames {
		workers = a.frames
	}

	var counter int64
	nextPrint := int64(1)
	if a.frames >= 100 {
		nextPrint = int64(a.frames / 100) // ~1%
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		wid := w
		go func() {
			defer wg.Done()
			for k := wid; k < a.frames; k += workers {
				out[k] = RenderFrame(a.view, a.content(k))
				done := atomic.AddInt64(&counter, 1)
				if done%nextPrint == 0 {
					fmt.Printf("[PROGRESS] %.2f%%\n", Real(done)*100/Real(a.frames))
				}
			}
		}()
	}
	wg.Wait()
	return out
}

func printMetadata(p *Polytope) {
	m := p.Kind.Metadata()
	dual := m.Dual.Metadata()
	fmt.Printf("%s %s\n", m.Name, m.Schlafli)
	fmt.Printf("  V=%d E=%d F=%d C=%d (cells: %s, 3D analogue: %s)\n", m.V, m.E, m.F, m.C, m.CellType, m.Analogy)
	if m.Dual == p.Kind {
		fmt.Printf("  self-dual\n")
	} else {
		fmt.Printf("  dual: %s %s\n", dual.Name, dual.Schlafli)
	}
	if !p.HasCells {
		fmt.Printf("  cell data not derived\n")
	}
}

func printSlice(s *SliceResult) {
	pm, ok := AnalyzeSlice(s)
	if !ok {
		fmt.Printf("Slice: no intersection\n")
		return
	}
	if pm.Degenerate {
		fmt.Printf("Slice: %d points, degenerate outline (%d boundary vertices)\n", len(s.Points), pm.VertexCount)
		return
	}
	lo, hi := pm.SideRange()
	fmt.Printf("Slice: %d points, outline %s, area=%.6f perimeter=%.6f sides=[%.6f, %.6f]\n",
		len(s.Points), pm.ShapeName, pm.Area, pm.Perimeter, lo, hi)
	if pts := s.Section3D(); len(pts) <= HullMaxPoints {
		fmt.Printf("  section solid: %d hull triangles\n", len(Hull(pts)))
	}
}

func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	kind, err := ParseKind(cfg.Polytope)
	if err != nil {
		return err
	}
	mode, err := ParseProjectionMode(cfg.Projection)
	if err != nil {
		return err
	}

	cache := NewCache()
	p := cache.Get(kind)
	printMetadata(p)

	a := &animation{
		poly:    p,
		mode:    mode,
		dist:    cfg.ViewDistance,
		base:    cfg.RotDeg.Radians(),
		spin:    cfg.SpinDeg.Radians(),
		frames:  cfg.Frames,
		view:    View{Width: cfg.Width, Height: cfg.Height, Scale: cfg.Scale, LineWidth: cfg.LineWidth},
		cells:   cfg.Cells && p.HasCells,
		explode: cfg.Explode,
		net:     cfg.Net,
	}
	if cfg.Cells && !p.HasCells {
		fmt.Printf("[WARN] %s has no cell data, cells disabled\n", kind)
	}
	safe := MinSafeViewDistance(RotateAll(p.Vertices, a.base))
	if !a.spin.IsZero() {
		safe = Circumradius(p.Vertices)
	}
	if cfg.ViewDistance <= safe {
		fmt.Printf("[WARN] view distance %.3f does not exceed the w extent %.3f, projection may blow up\n", cfg.ViewDistance, safe)
	}

	if cfg.Slice != nil {
		n, err := cfg.Slice.Build(p)
		if err != nil {
			return err
		}
		a.normal, a.slice = n, cfg.Slice
		a.lo, a.hi = SliceRange(p, n)
		fmt.Printf("Slice normal %.4f range [%.4f, %.4f]\n", n, a.lo, a.hi)
		s, _ := ComputeSlice(p, n, a.offset(a.frames/2))
		printSlice(s)
	}

	start := time.Now()
	frames := renderFrames(a)
	DebugLog("Frames: %d, time: %s", len(frames), time.Since(start))

	if Debug {
		cache.printStats()
	}

	if PNG {
		prefix := strings.Replace(cfg.GIFOut, ".gif", "", 1)
		prefix = strings.Replace(prefix, "gifs/", "pngs/", 1)
		if err := SavePNGSequence16(frames, prefix, cfg.Gamma); err != nil {
			return fmt.Errorf("save png sequence: %w", err)
		}
		DebugLog("Saved PNG sequence with prefix: %s", prefix)
		return nil
	}
	if err := SaveAnimatedGIF(frames, cfg.GIFOut, cfg.GIFDelay, cfg.Gamma); err != nil {
		return fmt.Errorf("save gif: %w", err)
	}
	DebugLog("Saved animated GIF: %s", cfg.GIFOut)
	return nil
}
