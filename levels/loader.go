package levels

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
	"github.com/solarlune/resolv"

	"github.com/automoto/strider/tags"
)

// spaceCellSize is the resolv spatial hash cell size in pixels.
const spaceCellSize = 16

// Load parses a TMX file and returns the level's collision geometry and
// spawn points. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
//
// Collision rectangles come from the "Collision" object group; objects
// with a "slope" property become ramps. Spawn points come from the
// "PlayerSpawn" object group.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Collision":
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, SolidRect{
					X:         o.X,
					Y:         o.Y,
					W:         o.Width,
					H:         o.Height,
					SlopeType: o.Properties.GetString("slope"),
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if len(level.Solids) == 0 {
		return nil, fmt.Errorf("level %s has no Collision object group", tmxPath)
	}

	// Sort spawns left-to-right for consistent assignment.
	sort.Slice(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].X < level.SpawnPoints[j].X
	})

	return level, nil
}

// BuildSpace creates the resolv collision space for a level and populates
// it with the level's solids and ramps.
func BuildSpace(level *Level) *resolv.Space {
	space := resolv.NewSpace(level.Width, level.Height, spaceCellSize, spaceCellSize)

	for _, solid := range level.Solids {
		var object *resolv.Object
		switch solid.SlopeType {
		case tags.Slope45UpRight:
			object = resolv.NewObject(solid.X, solid.Y, solid.W, solid.H, tags.ResolvRamp, tags.Slope45UpRight)
		case tags.Slope45UpLeft:
			object = resolv.NewObject(solid.X, solid.Y, solid.W, solid.H, tags.ResolvRamp, tags.Slope45UpLeft)
		default:
			object = resolv.NewObject(solid.X, solid.Y, solid.W, solid.H, tags.ResolvSolid)
		}
		object.SetShape(resolv.NewRectangle(0, 0, solid.W, solid.H))
		space.Add(object)
	}

	return space
}
