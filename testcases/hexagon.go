package testcases

var hexagonCases = []TestCase{
	{
		Name:   "exponent_0",
		Window: box(10),
		Shape:  Hexagon{Center: pt(0, 0), Exponent: 0},
		Want:   pts(0, 0),
	},
	{
		Name:   "exponent_0_outside",
		Window: box(10),
		Shape:  Hexagon{Center: pt(11, 0), Exponent: 0},
		Want:   pts(),
	},
	{
		Name:   "exponent_0_edge",
		Window: box(10),
		Shape:  Hexagon{Center: pt(10, -10), Exponent: 0},
		Want:   pts(10, -10),
	},
	{
		Name:   "exponent_1",
		Window: box(10),
		Shape:  Hexagon{Center: pt(0, 0), Exponent: 1},
		Want:   pts(0, -1, -1, 0, 1, 0, 0, 1),
	},
	{
		Name:   "exponent_2",
		Window: box(10),
		Shape:  Hexagon{Center: pt(0, 0), Exponent: 2},
		Want:   pts(0, -2, -2, -1, 2, -1, -2, 1, 2, 1, 0, 2),
	},
	{
		Name:   "exponent_3",
		Window: box(10),
		Shape:  Hexagon{Center: pt(0, 0), Exponent: 3},
		Want:   pts(-2, -4, 2, -4, -4, 0, 4, 0, -2, 4, 2, 4),
	},
	{
		Name:   "exponent_3_corner",
		Window: box(10),
		Shape:  Hexagon{Center: pt(9, 9), Exponent: 3},
		Want:   pts(7, 5, 5, 9),
	},
	{
		Name:   "exponent_4",
		Window: box(10),
		Shape:  Hexagon{Center: pt(0, 0), Exponent: 4},
		Want:   pts(0, -8, -8, -4, 8, -4, -8, 4, 8, 4, 0, 8),
	},
	{
		// the top corner is replaced by the point halfway to the center
		Name:   "exponent_4_top_edge",
		Window: box(10),
		Shape:  Hexagon{Center: pt(0, -4), Exponent: 4},
		Want:   pts(0, -8, -8, -8, 8, -8, -8, 0, 8, 0, 0, 4),
	},
	{
		// no replacement at the bottom edge
		Name:   "exponent_4_bottom_edge",
		Window: box(10),
		Shape:  Hexagon{Center: pt(0, 4), Exponent: 4},
		Want:   pts(0, -4, -8, 0, 8, 0, -8, 8, 8, 8),
	},
	{
		Name:   "exponent_4_top_edge_no_room",
		Window: box(10),
		Shape:  Hexagon{Center: pt(0, -9), Exponent: 4},
		Want:   pts(-8, -5, 8, -5, 0, -1),
	},
	{
		Name:   "exponent_5_too_large",
		Window: box(10),
		Shape:  Hexagon{Center: pt(0, 0), Exponent: 5},
		Want:   pts(),
	},
}
