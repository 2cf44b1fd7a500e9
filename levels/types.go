package levels

// SolidRect is an axis-aligned collision rectangle in pixels. SlopeType is
// empty for a flat solid or one of the slope tags for ramps.
type SolidRect struct {
	X, Y, W, H float64
	SlopeType  string
}

// SpawnPoint is a player start location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Level holds the collision geometry and spawn points of one map.
type Level struct {
	Width  int
	Height int

	Solids      []SolidRect
	SpawnPoints []SpawnPoint
}
