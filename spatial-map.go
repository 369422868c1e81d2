// Package spatial-map.go implements the tile index the compositor uses to
// find the widgets that may intersect a viewport region without walking
// the whole tree. The map is rebuilt after layout and invalidated by any
// layout change or scroll.

package schirmwerk

// Default tile dimensions. Tiles are wide and flat because terminal
// content is: queries are usually per line.
const (
	defaultTileWidth  = 100
	defaultTileHeight = 20
)

// SpatialMap buckets placements by the screen tiles their regions
// intersect.
type SpatialMap struct {
	tileWidth  int
	tileHeight int
	tiles      map[Offset][]*placement
}

// NewSpatialMap creates a spatial map with the given tile size; zero
// values select the defaults.
func NewSpatialMap(tileWidth, tileHeight int) *SpatialMap {
	if tileWidth <= 0 {
		tileWidth = defaultTileWidth
	}
	if tileHeight <= 0 {
		tileHeight = defaultTileHeight
	}
	return &SpatialMap{
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		tiles:      map[Offset][]*placement{},
	}
}

// Insert adds a placement to every tile its visible region intersects.
// Placements must be inserted in paint order.
func (m *SpatialMap) Insert(p *placement) {
	visible := p.region.Intersection(p.clip)
	if visible.IsEmpty() {
		return
	}
	m.forTiles(visible, func(tile Offset) {
		m.tiles[tile] = append(m.tiles[tile], p)
	})
}

// PlacementsIn returns the placements possibly intersecting the region,
// in paint order and deduplicated. Callers cull further with exact region
// intersection.
func (m *SpatialMap) PlacementsIn(region Region) []*placement {
	var result []*placement
	seen := map[*placement]struct{}{}
	m.forTiles(region, func(tile Offset) {
		for _, p := range m.tiles[tile] {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			result = append(result, p)
		}
	})
	// Restore paint order across tiles.
	sortPlacements(result)
	return result
}

func (m *SpatialMap) forTiles(region Region, fn func(Offset)) {
	if region.IsEmpty() {
		return
	}
	x1 := floorDiv(region.X, m.tileWidth)
	y1 := floorDiv(region.Y, m.tileHeight)
	x2 := floorDiv(region.Right()-1, m.tileWidth)
	y2 := floorDiv(region.Bottom()-1, m.tileHeight)
	for ty := y1; ty <= y2; ty++ {
		for tx := x1; tx <= x2; tx++ {
			fn(Offset{X: tx, Y: ty})
		}
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func sortPlacements(placements []*placement) {
	// Insertion sort: the lists are short and mostly ordered.
	for i := 1; i < len(placements); i++ {
		for j := i; j > 0 && placements[j].less(placements[j-1]); j-- {
			placements[j], placements[j-1] = placements[j-1], placements[j]
		}
	}
}
