package testcases

// All contains all test cases, grouped by pattern kind.
// The category name is used as a prefix in generated file names.
var All = map[string][]TestCase{
	"rood":    roodCases,
	"raster":  rasterCases,
	"hexagon": hexagonCases,
}
