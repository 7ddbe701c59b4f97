package polytope4d

var (
	Debug = false // set to true for verbose debug output
	PNG   = false // set to true to save a 16-bit PNG sequence instead of a GIF
	// Compile time check that every Kind has a registry entry and a builder.
	_ [numKinds]kindEntry = kindTable
)
