package testcases

import "seehuhn.de/go/mesearch"

var rasterCases = []TestCase{
	{
		Name:   "square",
		Window: mesearch.Window{Top: 0, Right: 2, Bottom: 2, Left: 0},
		Shape:  Raster{Stride: 1},
		Want: pts(
			0, 0, 1, 0, 2, 0,
			0, 1, 1, 1, 2, 1,
			0, 2, 1, 2, 2, 2,
		),
	},
	{
		Name:   "wide",
		Window: mesearch.Window{Top: 0, Right: 5, Bottom: 2, Left: 0},
		Shape:  Raster{Stride: 2},
		Want: pts(
			0, 0, 2, 0, 4, 0,
			0, 2, 2, 2, 4, 2,
		),
	},
	{
		Name:   "tall",
		Window: mesearch.Window{Top: -4, Right: 1, Bottom: 4, Left: -1},
		Shape:  Raster{Stride: 4},
		Want:   pts(-1, -4, -1, 0, -1, 4),
	},
	{
		Name:   "single_pixel",
		Window: mesearch.Window{Top: 5, Right: 5, Bottom: 5, Left: 5},
		Shape:  Raster{Stride: 3},
		Want:   pts(5, 5),
	},
	{
		Name:   "empty",
		Window: mesearch.Window{Top: 1, Right: 4, Bottom: 0, Left: 0},
		Shape:  Raster{Stride: 1},
		Want:   pts(),
	},
}
