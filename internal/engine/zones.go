// Package engine computes obstacle-aware section layouts: it resolves each
// obstacle's keep-out zone, partitions a wall face into usable regions,
// distributes fill widths, and places section requests with a
// resize/split/skip fallback policy.
package engine

import (
	"fmt"

	"github.com/piwi3910/ClosetCut/internal/model"
)

// ZonesForWall resolves the keep-out zone for every obstacle on the given
// wall. An obstacle whose zone (rectangle plus clearance) extends past the
// wall face is a fatal geometry error, reported with the obstacle's index.
func ZonesForWall(wall model.WallSegment, wallIndex int, obstacles []model.Obstacle) ([]model.ObstacleZone, error) {
	var zones []model.ObstacleZone
	for i, obs := range obstacles {
		if obs.WallIndex != wallIndex {
			continue
		}
		b := obs.Zone()
		if b.Left < -model.Epsilon || b.Right > wall.Length+model.Epsilon ||
			b.Bottom < -model.Epsilon || b.Top > wall.Height+model.Epsilon {
			return nil, &model.GeometryError{
				Wall: wallIndex,
				Msg: fmt.Sprintf(
					"obstacle %d (%s): zone [%.2f,%.2f]x[%.2f,%.2f] with clearance exceeds wall %gx%g",
					i, obs.Type, b.Left, b.Right, b.Bottom, b.Top, wall.Length, wall.Height),
			}
		}
		zones = append(zones, model.ObstacleZone{
			Bounds:        b,
			ObstacleIndex: i,
			Type:          obs.Type,
		})
	}
	return zones, nil
}
