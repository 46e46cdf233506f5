package engine

import (
	"math"
	"sort"

	"github.com/piwi3910/ClosetCut/internal/model"
)

// FindValidRegions partitions a wall face into the maximal obstacle-free
// rectangles usable for section placement.
//
// The wall is swept left to right: every zone edge starts a new vertical
// slice. Within a slice the vertical complement of the overlapping zones
// yields zero or more sub-intervals; one touching the floor is a lower
// region, one touching the ceiling is an upper region, and interior ones
// are gaps. Slices narrower than minWidth and sub-intervals shorter than
// minHeight are discarded. Regions are returned ordered by left edge, then
// bottom edge; the layout engine relies on that order as its tie-break.
func FindValidRegions(wallLength, wallHeight float64, zones []model.ObstacleZone, minWidth, minHeight float64) []model.ValidRegion {
	xs := sliceBoundaries(wallLength, zones)

	var regions []model.ValidRegion
	for i := 0; i+1 < len(xs); i++ {
		x0, x1 := xs[i], xs[i+1]
		if x1-x0 < minWidth-model.Epsilon {
			continue
		}

		var blocked [][2]float64
		for _, z := range zones {
			if z.Left < x1-model.Epsilon && z.Right > x0+model.Epsilon {
				lo := math.Max(0, z.Bottom)
				hi := math.Min(wallHeight, z.Top)
				if hi > lo {
					blocked = append(blocked, [2]float64{lo, hi})
				}
			}
		}

		if len(blocked) == 0 {
			if wallHeight >= minHeight-model.Epsilon {
				regions = append(regions, model.ValidRegion{
					Bounds: model.Bounds{Left: x0, Right: x1, Bottom: 0, Top: wallHeight},
					Type:   model.RegionFull,
				})
			}
			continue
		}

		for _, iv := range complement(blocked, wallHeight) {
			if iv[1]-iv[0] < minHeight-model.Epsilon {
				continue
			}
			regions = append(regions, model.ValidRegion{
				Bounds: model.Bounds{Left: x0, Right: x1, Bottom: iv[0], Top: iv[1]},
				Type:   classify(iv, wallHeight),
			})
		}
	}
	return regions
}

// sliceBoundaries collects the distinct x coordinates formed by the wall
// edges and every zone edge, sorted and clamped to the wall.
func sliceBoundaries(wallLength float64, zones []model.ObstacleZone) []float64 {
	raw := []float64{0, wallLength}
	for _, z := range zones {
		raw = append(raw, z.Left, z.Right)
	}
	sort.Float64s(raw)

	var xs []float64
	for _, x := range raw {
		x = math.Max(0, math.Min(wallLength, x))
		if len(xs) == 0 || x-xs[len(xs)-1] > model.Epsilon {
			xs = append(xs, x)
		}
	}
	return xs
}

// complement returns the sub-intervals of [0, height] not covered by the
// union of the blocked intervals, in ascending order.
func complement(blocked [][2]float64, height float64) [][2]float64 {
	sort.Slice(blocked, func(i, j int) bool { return blocked[i][0] < blocked[j][0] })

	var free [][2]float64
	cursor := 0.0
	for _, iv := range blocked {
		if iv[0] > cursor+model.Epsilon {
			free = append(free, [2]float64{cursor, iv[0]})
		}
		if iv[1] > cursor {
			cursor = iv[1]
		}
	}
	if height > cursor+model.Epsilon {
		free = append(free, [2]float64{cursor, height})
	}
	return free
}

// classify tags a free vertical interval by which wall edge it touches.
func classify(iv [2]float64, height float64) model.RegionType {
	touchesFloor := iv[0] <= model.Epsilon
	touchesCeiling := iv[1] >= height-model.Epsilon
	switch {
	case touchesFloor && touchesCeiling:
		return model.RegionFull
	case touchesFloor:
		return model.RegionLower
	case touchesCeiling:
		return model.RegionUpper
	default:
		return model.RegionGap
	}
}
