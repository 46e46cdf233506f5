package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/ClosetCut/internal/model"
)

// Engine places section requests into the valid regions of each wall.
type Engine struct {
	Settings model.LayoutSettings
}

// New returns an engine with the given settings, normalized to their hard
// floors.
func New(settings model.LayoutSettings) *Engine {
	settings.Normalize()
	return &Engine{Settings: settings}
}

// regionState tracks how much of a valid region is still unclaimed.
// The cursor is the left edge of the unused remainder.
type regionState struct {
	region model.ValidRegion
	cursor float64
	used   int // sections already placed in this region
}

func (rs *regionState) remaining() float64 { return rs.region.Right - rs.cursor }

// LayoutRoom runs LayoutWall for every wall. sections holds one request
// list per wall, parallel to the room's walls; a short or nil list means
// no sections for the remaining walls. The first fatal error aborts.
func (e *Engine) LayoutRoom(room *model.Room, sections [][]model.SectionRequest) ([]model.LayoutResult, error) {
	results := make([]model.LayoutResult, len(room.Walls))
	for i, wall := range room.Walls {
		var reqs []model.SectionRequest
		if i < len(sections) {
			reqs = sections[i]
		}
		res, err := e.LayoutWall(wall, i, room.Obstacles, reqs)
		if err != nil {
			return nil, err
		}
		results[i] = res
	}
	return results, nil
}

// LayoutWall fits the requests into the wall's valid regions, in request
// order. Requests that cannot be placed as asked are split across regions
// when possible, otherwise skipped with a warning; the call only fails on
// geometry or width-constraint errors.
//
// Order matters: a fill request claims the entire remaining width of its
// region, so fixed-width requests that should share a region with a fill
// must come before it in the list.
func (e *Engine) LayoutWall(wall model.WallSegment, wallIndex int, obstacles []model.Obstacle, requests []model.SectionRequest) (model.LayoutResult, error) {
	var result model.LayoutResult

	zones, err := ZonesForWall(wall, wallIndex, obstacles)
	if err != nil {
		return result, err
	}
	if len(requests) == 0 {
		return result, nil
	}
	if err := e.validateRequests(requests); err != nil {
		return result, err
	}

	regions := FindValidRegions(wall.Length, wall.Height, zones,
		e.Settings.MinSectionWidth, e.Settings.MinSectionHeight)
	states := make([]*regionState, len(regions))
	for i, r := range regions {
		states[i] = &regionState{region: r, cursor: r.Left}
	}

	hasFill := false
	lastRight := 0.0
	var covered []xspan

	i := 0
	for i < len(requests) {
		req := requests[i]

		if req.Fill {
			hasFill = true
			// Fill requests that are adjacent and want the same height share
			// one region and are resolved together.
			j := i + 1
			for j < len(requests) && requests[j].Fill && requests[j].HeightMode == req.HeightMode {
				j++
			}
			group := requests[i:j]

			needed := e.Settings.DividerThickness * float64(len(group)-1)
			for _, g := range group {
				needed += g.EffectiveMinWidth()
			}
			st := e.findRegion(states, req.HeightMode, needed)
			if st == nil {
				for _, g := range group {
					e.skip(&result, g, e.intendedBounds(lastRight, wall, 0), zones)
				}
				i = j
				continue
			}

			widths, slack, err := ResolveWidths(group, st.remaining(),
				e.Settings.DividerThickness, e.Settings.SlackPolicy)
			if err != nil {
				return model.LayoutResult{}, err
			}
			for k, g := range group {
				placed := e.place(st, g, widths[k], &covered)
				result.Sections = append(result.Sections, placed)
				lastRight = placed.Bounds.Right
			}
			if slack > widthTolerance {
				result.Warnings = append(result.Warnings, model.LayoutWarning{
					Message: fmt.Sprintf("%.2f\" left unclaimed at the right of a %s region", slack, st.region.Type),
				})
			}
			i = j
			continue
		}

		// Fixed width: first region with room, else split, else skip.
		if st := e.findRegion(states, req.HeightMode, req.Width); st != nil {
			placed := e.place(st, req, req.Width, &covered)
			result.Sections = append(result.Sections, placed)
			lastRight = placed.Bounds.Right
			i++
			continue
		}
		if right, ok := e.trySplit(states, req, &result, &covered); ok {
			lastRight = right
			i++
			continue
		}
		e.skip(&result, req, e.intendedBounds(lastRight, wall, req.Width), zones)
		i++
	}

	if err := e.checkSlack(wall, &result, hasFill, covered, zones); err != nil {
		return model.LayoutResult{}, err
	}
	return result, nil
}

// xspan is a covered x-interval along the wall, used for slack accounting.
type xspan struct{ lo, hi float64 }

// validateRequests rejects fixed widths that violate their own min/max
// constraints before any placement is attempted.
func (e *Engine) validateRequests(requests []model.SectionRequest) error {
	for i, req := range requests {
		if req.Fill {
			continue
		}
		if req.Width < req.EffectiveMinWidth()-widthTolerance {
			return &FitError{Section: i, Msg: fmt.Sprintf(
				"width %.2f\" below minimum %.2f\"", req.Width, req.EffectiveMinWidth())}
		}
		if req.MaxWidth > 0 && req.Width > req.MaxWidth+widthTolerance {
			return &FitError{Section: i, Msg: fmt.Sprintf(
				"width %.2f\" above maximum %.2f\"", req.Width, req.MaxWidth)}
		}
	}
	return nil
}

// candidateTypes returns the region types a height mode may occupy, in
// preference order.
func candidateTypes(mode model.HeightMode) []model.RegionType {
	switch mode {
	case model.HeightAuto:
		return []model.RegionType{model.RegionFull, model.RegionLower, model.RegionUpper}
	case model.HeightLower:
		return []model.RegionType{model.RegionLower}
	case model.HeightUpper:
		return []model.RegionType{model.RegionUpper}
	default:
		return []model.RegionType{model.RegionFull}
	}
}

// findRegion returns the first region (region order, preference order) that
// matches the height mode and still has the needed width.
func (e *Engine) findRegion(states []*regionState, mode model.HeightMode, needed float64) *regionState {
	for _, ct := range candidateTypes(mode) {
		for _, st := range states {
			if st.region.Type == ct && st.remaining() >= needed-widthTolerance {
				return st
			}
		}
	}
	return nil
}

// place claims width inches at the region cursor and advances it past a
// divider for the next section. A section placed after another in the same
// region also owns the divider to its left, for slack accounting.
func (e *Engine) place(st *regionState, req model.SectionRequest, width float64, covered *[]xspan) model.PlacedSection {
	req.Fill = false
	req.Width = width
	b := model.Bounds{
		Left:   st.cursor,
		Right:  st.cursor + width,
		Bottom: st.region.Bottom,
		Top:    st.region.Top,
	}
	lo := b.Left
	if st.used > 0 {
		lo -= e.Settings.DividerThickness
	}
	*covered = append(*covered, xspan{lo, b.Right})
	st.cursor = b.Right + e.Settings.DividerThickness
	st.used++
	return model.PlacedSection{Request: req, Bounds: b, Region: st.region.Type}
}

// trySplit places a fixed-width request as two or more narrower sections in
// separate regions. The combined sub-widths equal the requested width minus
// one divider per extra piece, and every piece honors the minimum width.
// Returns the right edge of the last piece on success.
func (e *Engine) trySplit(states []*regionState, req model.SectionRequest, result *model.LayoutResult, covered *[]xspan) (float64, bool) {
	minW := req.EffectiveMinWidth()

	var pick []*regionState
	var caps []float64
	total := 0.0
	for _, st := range states {
		if !heightMatches(req.HeightMode, st.region.Type) {
			continue
		}
		rem := st.remaining()
		if rem < minW-widthTolerance {
			continue
		}
		pick = append(pick, st)
		caps = append(caps, rem)
		total += rem

		n := len(pick)
		if n < 2 {
			continue
		}
		target := req.Width - e.Settings.DividerThickness*float64(n-1)
		if total < target-widthTolerance || target < minW*float64(n)-widthTolerance {
			continue
		}

		widths := distribute(caps, target, minW)
		lastRight := 0.0
		for k, st2 := range pick {
			placed := e.place(st2, req, widths[k], covered)
			result.Sections = append(result.Sections, placed)
			lastRight = placed.Bounds.Right
		}
		name := req.Label
		if name == "" {
			name = req.ID
		}
		result.Warnings = append(result.Warnings, model.LayoutWarning{
			Message: fmt.Sprintf("section %q split into %d pieces around an obstacle", name, n),
			Suggestion: fmt.Sprintf(
				"use a single region at least %.2f\" wide to keep the section in one piece", req.Width),
		})
		return lastRight, true
	}
	return 0, false
}

// heightMatches reports whether a request height mode can use a region type.
func heightMatches(mode model.HeightMode, rt model.RegionType) bool {
	for _, ct := range candidateTypes(mode) {
		if ct == rt {
			return true
		}
	}
	return false
}

// distribute splits target across the capacities, each piece at least minW,
// earlier pieces as wide as their region allows. Assumes sum(caps) >= target
// and target >= minW*len(caps).
func distribute(caps []float64, target, minW float64) []float64 {
	n := len(caps)
	widths := make([]float64, n)
	left := target
	for k := 0; k < n; k++ {
		reserve := minW * float64(n-1-k)
		w := math.Min(caps[k], left-reserve)
		widths[k] = w
		left -= w
	}
	return widths
}

// skip records a request that could not be placed. The intended bounds are
// used to name the blocking obstacle, if any.
func (e *Engine) skip(result *model.LayoutResult, req model.SectionRequest, intended model.Bounds, zones []model.ObstacleZone) {
	reason := "insufficient usable space"
	if hit, ok := worstCollision(CheckCollision(intended, zones)); ok {
		reason = fmt.Sprintf("blocked by %s zone", hit.Zone.Type)
	}
	name := req.Label
	if name == "" {
		name = req.ID
	}
	result.Skipped = append(result.Skipped, model.SkippedArea{Bounds: intended, Reason: reason})
	result.Warnings = append(result.Warnings, model.LayoutWarning{
		Message:    fmt.Sprintf("section %q could not be placed: %s", name, reason),
		Suggestion: "narrow the section, change its height mode, or work around the obstacle manually",
	})
}

// intendedBounds is where a request would have gone: immediately right of
// the last placement, as wide as asked (or the rest of the wall for fill
// requests), full wall height. A fully consumed wall yields a zero-width
// remainder at the right edge, so skipped areas stay disjoint from placed
// sections.
func (e *Engine) intendedBounds(lastRight float64, wall model.WallSegment, width float64) model.Bounds {
	left := math.Min(lastRight, wall.Length)
	right := wall.Length
	if width > 0 {
		right = math.Min(left+width, wall.Length)
	}
	return model.Bounds{Left: left, Right: right, Bottom: 0, Top: wall.Height}
}

// checkSlack accounts for every inch of the wall. Placed sections, their
// dividers, skipped areas, and obstacle zones are merged into covered
// x-intervals; any remainder is unclaimed span, which is fatal when no fill
// section exists and the slack policy is "error". Zones count as covered
// because blocked span is unusable, not unclaimed.
func (e *Engine) checkSlack(wall model.WallSegment, result *model.LayoutResult, hasFill bool, covered []xspan, zones []model.ObstacleZone) error {
	spans := covered
	for _, s := range result.Skipped {
		spans = append(spans, xspan{s.Bounds.Left, s.Bounds.Right})
	}
	for _, z := range zones {
		spans = append(spans, xspan{math.Max(0, z.Left), math.Min(wall.Length, z.Right)})
	}
	if len(spans) == 0 {
		return nil
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })
	claimed := 0.0
	cursor := 0.0
	for _, sp := range spans {
		lo := math.Max(sp.lo, cursor)
		if sp.hi > lo {
			claimed += sp.hi - lo
			cursor = sp.hi
		}
	}

	leftover := wall.Length - claimed
	if leftover <= widthTolerance {
		return nil
	}
	if !hasFill && e.Settings.SlackPolicy == model.SlackError {
		return &FitError{Section: -1, Msg: fmt.Sprintf(
			"%.2f\" of wall unclaimed with no fill section", leftover)}
	}
	result.Warnings = append(result.Warnings, model.LayoutWarning{
		Message:    fmt.Sprintf("%.2f\" of wall remains unclaimed", leftover),
		Suggestion: "add a fill section or widen an existing one",
	})
	return nil
}
