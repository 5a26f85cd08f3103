// Package voronoi: sentinel error set. All caller-facing validation
// failures return these sentinels; tests check them via errors.Is.

package voronoi

import "errors"

var (
	// ErrBadDimensions indicates a non-positive bounding rectangle
	// width or height.
	ErrBadDimensions = errors.New("voronoi: bounding rectangle dimensions must be positive")

	// ErrSiteOutOfBounds indicates a site on or outside the bounding
	// rectangle; sites must lie strictly inside it.
	ErrSiteOutOfBounds = errors.New("voronoi: site outside the bounding rectangle")

	// ErrDuplicateSite indicates two sites at the same point.
	ErrDuplicateSite = errors.New("voronoi: duplicate site")

	// ErrDuplicateSiteY indicates two sites sharing a y coordinate;
	// the beachline descent assumes distinct site heights.
	ErrDuplicateSiteY = errors.New("voronoi: two sites share a y coordinate")
)
