// Package mesearch generates the candidate points visited by a block
// motion-estimation search.
//
// A search pattern is configured with a search window and, depending on the
// shape, a center and a scale parameter. Calling Produce generates the
// ordered list of candidate points for the current configuration; points
// outside the window are dropped, never clamped. The list can then be walked
// either with the cursor methods
//
//	p.Produce()
//	for ; !p.Done(); p.Next() {
//		cost := evaluate(p.X(), p.Y())
//		...
//	}
//
// or with the range-over-func iterator returned by All.
//
// All coordinates are absolute pixel positions. The x axis points to the
// right and the y axis points down, so the top edge of a window has the
// smallest y coordinate.
//
// Pattern values are not safe for concurrent use. Independent pattern values
// may be used from different goroutines without synchronisation.
package mesearch

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import "errors"

var (
	// ErrCursorRange is the panic value (wrapped) when the current point of
	// a pattern is read while the cursor is outside the produced sequence.
	ErrCursorRange = errors.New("search pattern cursor out of range")

	// ErrInvalidStride is the panic value (wrapped) when a raster pattern is
	// produced with a stride smaller than one.
	ErrInvalidStride = errors.New("raster stride must be positive")

	// ErrInvalidExponent is the panic value (wrapped) when a hexagon pattern
	// is produced with a step exponent outside [0, MaxExponent].
	ErrInvalidExponent = errors.New("hexagon exponent out of range")
)
