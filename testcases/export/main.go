// Command export writes the test cases, together with the points produced
// for them, to JSON.  Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/mesearch"
	"seehuhn.de/go/mesearch/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string   `json:"name"`
	Pattern  string   `json:"pattern"`
	Window   [4]int   `json:"window"` // top, right, bottom, left
	Center   *[2]int  `json:"center,omitempty"`
	Stride   int      `json:"stride,omitempty"`
	Exponent *int     `json:"exponent,omitempty"`
	Points   [][2]int `json:"points"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	w := tc.Window
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Window: [4]int{w.Top, w.Right, w.Bottom, w.Left},
	}

	switch s := tc.Shape.(type) {
	case testcases.Rood:
		jtc.Pattern = "rood"
	case testcases.Raster:
		jtc.Pattern = "raster"
		jtc.Stride = s.Stride
	case testcases.Hexagon:
		jtc.Pattern = "hexagon"
		jtc.Exponent = &s.Exponent
	}
	if c, ok := tc.Center(); ok {
		jtc.Center = &[2]int{c.X, c.Y}
	}

	p := tc.Pattern()
	p.Produce()
	jtc.Points = pointsToJSON(p.Points())
	return jtc
}

func pointsToJSON(points []mesearch.Point) [][2]int {
	res := make([][2]int, len(points))
	for i, p := range points {
		res[i] = [2]int{p.X, p.Y}
	}
	return res
}
