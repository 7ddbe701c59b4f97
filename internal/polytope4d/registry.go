package polytope4d

import (
	"errors"
	"fmt"
)

// Kind    Vertices  Edges  Faces (2D)       Cells (3D)
// 5-cell         5     10    10 triangles      5 tetrahedra
// tesseract     16     32    24 squares        8 cubes
// 16-cell        8     24    32 triangles     16 tetrahedra
// 24-cell       24     96    96 triangles     24 octahedra
// 120-cell     600   1200   720 pentagons    120 dodecahedra
// 600-cell     120    720  1200 triangles    600 tetrahedra

// Kind is one of the six regular convex 4-polytopes.
type Kind uint8

const (
	Cell5 Kind = iota
	Tesseract
	Cell16
	Cell24
	Cell120
	Cell600
	numKinds
)

// CellType names the 3D facet shape of a polytope.
type CellType string

const (
	CellTetrahedron  CellType = "tetrahedron"
	CellCube         CellType = "cube"
	CellOctahedron   CellType = "octahedron"
	CellDodecahedron CellType = "dodecahedron"
)

var ErrUnknownKind = errors.New("unknown polytope kind")

// Metadata is the static registry entry of a polytope kind. It doubles as the
// oracle the builders are validated against.
type Metadata struct {
	Key      string
	Name     string
	Schlafli string
	V, E     int
	F, C     int
	CellType CellType
	Analogy  string // the 3D regular polyhedron playing the same role
	Dual     Kind
}

// Euler returns V - E + F - C, which is 0 for every convex 4-polytope.
func (m Metadata) Euler() int { return m.V - m.E + m.F - m.C }

// SelfDual reports whether the kind is its own dual.
func (m Metadata) SelfDual(k Kind) bool { return m.Dual == k }

// depFunc resolves a kind a builder is derived from.
type depFunc func(Kind) *Polytope

type kindEntry struct {
	meta  Metadata
	build func(dep depFunc) *Polytope
}

var kindTable = [...]kindEntry{
	Cell5: {Metadata{
		Key: "5cell", Name: "5-cell (Pentachoron)", Schlafli: "{3,3,3}",
		V: 5, E: 10, F: 10, C: 5, CellType: CellTetrahedron, Analogy: "tetrahedron", Dual: Cell5,
	}, buildCell5},
	Tesseract: {Metadata{
		Key: "tesseract", Name: "Tesseract (Hypercube)", Schlafli: "{4,3,3}",
		V: 16, E: 32, F: 24, C: 8, CellType: CellCube, Analogy: "cube", Dual: Cell16,
	}, buildTesseract},
	Cell16: {Metadata{
		Key: "16cell", Name: "16-cell (Hexadecachoron)", Schlafli: "{3,3,4}",
		V: 8, E: 24, F: 32, C: 16, CellType: CellTetrahedron, Analogy: "octahedron", Dual: Tesseract,
	}, buildCell16},
	Cell24: {Metadata{
		Key: "24cell", Name: "24-cell (Icositetrachoron)", Schlafli: "{3,4,3}",
		V: 24, E: 96, F: 96, C: 24, CellType: CellOctahedron, Analogy: "none (no 3D analogue)", Dual: Cell24,
	}, buildCell24},
	Cell120: {Metadata{
		Key: "120cell", Name: "120-cell (Hecatonicosachoron)", Schlafli: "{5,3,3}",
		V: 600, E: 1200, F: 720, C: 120, CellType: CellDodecahedron, Analogy: "dodecahedron", Dual: Cell600,
	}, buildCell120},
	Cell600: {Metadata{
		Key: "600cell", Name: "600-cell (Hexacosichoron)", Schlafli: "{3,3,5}",
		V: 120, E: 720, F: 1200, C: 600, CellType: CellTetrahedron, Analogy: "icosahedron", Dual: Cell120,
	}, buildCell600},
}

// Kinds returns all kinds in registry order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) Valid() bool { return k < numKinds }

// Metadata returns the registry entry. It panics on an invalid kind.
func (k Kind) Metadata() Metadata {
	if !k.Valid() {
		panic(fmt.Sprintf("invalid polytope kind %d", k))
	}
	return kindTable[k].meta
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindTable[k].meta.Key
}

// ParseKind maps a type key ("5cell", "tesseract", "16cell", "24cell",
// "120cell", "600cell") to its Kind.
func ParseKind(key string) (Kind, error) {
	for k := Kind(0); k < numKinds; k++ {
		if kindTable[k].meta.Key == key {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, key)
}

// MetadataFor looks up the registry entry of a type key.
func MetadataFor(key string) (Metadata, error) {
	k, err := ParseKind(key)
	if err != nil {
		return Metadata{}, err
	}
	return k.Metadata(), nil
}

// build runs the construction strategy of the kind. dep resolves kinds the
// strategy is derived from.
func (k Kind) build(dep depFunc) *Polytope {
	if !k.Valid() {
		panic(fmt.Sprintf("no builder for polytope kind %d", k))
	}
	return kindTable[k].build(dep)
}
