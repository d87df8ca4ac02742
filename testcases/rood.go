package testcases

import "seehuhn.de/go/mesearch"

var roodCases = []TestCase{
	{
		Name:   "center",
		Window: box(10),
		Shape:  Rood{Center: pt(0, 0)},
		Want:   pts(0, -1, -1, 0, 1, 0, 0, 1),
	},
	{
		Name:   "top_left_corner",
		Window: mesearch.Window{Top: 0, Right: 7, Bottom: 7, Left: 0},
		Shape:  Rood{Center: pt(0, 0)},
		Want:   pts(1, 0, 0, 1),
	},
	{
		Name:   "bottom_right_corner",
		Window: mesearch.Window{Top: 0, Right: 7, Bottom: 7, Left: 0},
		Shape:  Rood{Center: pt(7, 7)},
		Want:   pts(7, 6, 6, 7),
	},
	{
		Name:   "single_pixel",
		Window: mesearch.Window{Top: 3, Right: 3, Bottom: 3, Left: 3},
		Shape:  Rood{Center: pt(3, 3)},
		Want:   pts(),
	},
	{
		Name:   "outside_right",
		Window: box(10),
		Shape:  Rood{Center: pt(11, 0)},
		Want:   pts(10, 0),
	},
}
