package levels

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/strider/tags"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="23" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="10">
 <objectgroup id="1" name="Collision">
  <object id="1" x="0" y="352" width="640" height="16"/>
  <object id="2" x="200" y="336" width="48" height="16">
   <properties>
    <property name="slope" value="45_up_right"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="5" x="300" y="336"/>
  <object id="6" x="64" y="336">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}
}

func TestLoad(t *testing.T) {
	level, err := Load(testFS(), "levels/test.tmx")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if level.Width != 40*16 || level.Height != 23*16 {
		t.Errorf("level size = %dx%d, want 640x368", level.Width, level.Height)
	}
	if len(level.Solids) != 2 {
		t.Fatalf("got %d solids, want 2", len(level.Solids))
	}
	if level.Solids[0].SlopeType != "" {
		t.Errorf("first solid should be flat, got slope %q", level.Solids[0].SlopeType)
	}
	if level.Solids[1].SlopeType != tags.Slope45UpRight {
		t.Errorf("second solid slope = %q, want %q", level.Solids[1].SlopeType, tags.Slope45UpRight)
	}

	// Spawns are sorted left-to-right regardless of document order.
	if len(level.SpawnPoints) != 2 {
		t.Fatalf("got %d spawn points, want 2", len(level.SpawnPoints))
	}
	if level.SpawnPoints[0].X != 64 || level.SpawnPoints[1].X != 300 {
		t.Errorf("spawn order = %v, %v; want 64 then 300", level.SpawnPoints[0].X, level.SpawnPoints[1].X)
	}
}

func TestLoad_MissingCollisionGroup(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/empty.tmx": &fstest.MapFile{Data: []byte(
			`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0"></map>
`)},
	}
	if _, err := Load(fsys, "levels/empty.tmx"); err == nil {
		t.Error("expected error for level without collision geometry")
	}
}

func TestBuildSpace(t *testing.T) {
	level, err := Load(testFS(), "levels/test.tmx")
	if err != nil {
		t.Fatal(err)
	}

	space := BuildSpace(level)
	objects := space.Objects()
	if len(objects) != 2 {
		t.Fatalf("space has %d objects, want 2", len(objects))
	}

	solids, ramps := 0, 0
	for _, object := range objects {
		if object.HasTags(tags.ResolvSolid) {
			solids++
		}
		if object.HasTags(tags.ResolvRamp) {
			ramps++
		}
	}
	if solids != 1 || ramps != 1 {
		t.Errorf("space contains %d solids and %d ramps, want 1 and 1", solids, ramps)
	}
}
