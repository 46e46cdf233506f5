package engine

import (
	"fmt"

	"github.com/piwi3910/ClosetCut/internal/model"
)

// Collision pairs an obstacle zone with the area it shares with the
// queried bounds.
type Collision struct {
	Zone model.ObstacleZone
	Area float64
}

// CheckCollision returns every zone that overlaps bounds, with the overlap
// area. An empty result means the bounds are clear.
func CheckCollision(bounds model.Bounds, zones []model.ObstacleZone) []Collision {
	var hits []Collision
	for _, z := range zones {
		if bounds.Overlaps(z.Bounds) {
			hits = append(hits, Collision{Zone: z, Area: bounds.OverlapArea(z.Bounds)})
		}
	}
	return hits
}

// worstCollision returns the collision with the largest overlap area, or
// false when there are none. Used to name the blocking obstacle in skip
// reasons.
func worstCollision(hits []Collision) (Collision, bool) {
	if len(hits) == 0 {
		return Collision{}, false
	}
	worst := hits[0]
	for _, h := range hits[1:] {
		if h.Area > worst.Area {
			worst = h
		}
	}
	return worst, true
}

// FormatCollisions produces human-readable descriptions of collision hits
// for user-facing reports.
func FormatCollisions(hits []Collision) []string {
	var out []string
	for _, h := range hits {
		out = append(out, fmt.Sprintf(
			"overlaps %s zone %d at [%.1f,%.1f]x[%.1f,%.1f] by %.1f sq in",
			h.Zone.Type, h.Zone.ObstacleIndex,
			h.Zone.Left, h.Zone.Right, h.Zone.Bottom, h.Zone.Top, h.Area))
	}
	return out
}
