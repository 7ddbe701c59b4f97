package polytope4d

// Tolerances. Coordinates are unit scale (circumradius 1 or the tesseract's
// half-unit cube), so absolute thresholds are meaningful; edge detection is
// relative to the smallest observed vertex distance.
const (
	// DedupPrecision is the number of decimal digits kept when quantising
	// generated vertex coordinates for deduplication.
	DedupPrecision = 9
	// SlicePrecision is the number of decimal digits kept when quantising
	// slice intersection points (and their 2D projections) for deduplication.
	SlicePrecision = 6
	// MinPairDistance separates coincident points from distinct ones.
	MinPairDistance = 1e-6
	// EdgeRelTolerance is the half-width of the band around the minimal pair
	// distance accepted as an edge. Every regular 4-polytope at unit radius
	// has its second-shortest distance at least 1.6x the edge length, so 5%
	// cannot merge two distance classes.
	EdgeRelTolerance = 0.05
	// EdgeSampleRows is how many vertices are compared against all others to
	// find the edge length. One row is enough for a vertex-transitive set.
	EdgeSampleRows = 4
	// HammingCoordEps decides whether two tesseract coordinates differ.
	HammingCoordEps = 0.01
	// CellCoordEps decides whether a vertex lies on an axis-fixed cell.
	CellCoordEps = 0.01
	// SliceVertexEps is the distance under which a vertex is considered to lie
	// on the slicing hyperplane.
	SliceVertexEps = 1e-4
	// RegularityTolerance is the allowed relative deviation of each side from
	// the mean side for a section polygon to be called regular.
	RegularityTolerance = 0.05
	// BoundaryTurnEps is the relative turn (cross product over squared
	// radius) below which a boundary vertex counts as collinear.
	BoundaryTurnEps = 1e-9
	// HullDegenerateEps is the minimal |ab x ac| for a hull candidate face,
	// relative to the squared extent of the point set.
	HullDegenerateEps = 1e-4
	// HullCoplanarEps is the distance, relative to the extent of the point
	// set, under which a point is treated as lying on a candidate face plane.
	HullCoplanarEps = 1e-3
	// HullMaxPoints bounds the point count callers feed to Hull.
	HullMaxPoints = 20
	// FacetEps is the containment slack for Contains.
	FacetEps = 1e-9
)

// Depth weighting of projected edges: w in [-1.2, 1.2] maps to [0, 1].
const (
	DepthWeightOffset = 1.2
	DepthWeightSpan   = 2.4
)

// CLI defaults.
const (
	FrameWidth   = 512
	FrameHeight  = 512
	Frames       = 90
	ViewDistance = 3.0
	ViewScale    = 0.3 // fraction of the frame width per unit of projected length
	LineWidth    = 1.5
	GIFOut       = "polytope.gif"
	GIFDelay     = 5 // 100ths of a second per frame
	Gamma        = 1.0
	ExplodeCells = 0.35
	NetTilt      = -1.2 // radians about x; stands the net's long z arm upright
)
