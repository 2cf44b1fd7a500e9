package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/strider/components"
)

// LocateNamed resolves a logical name to the entity carrying it and the
// requested component. Returns ok=false when no such entity exists.
//
// Lookups are re-run every frame by callers: entities can be despawned
// externally, so holding on to an entry across frames is not safe.
func LocateNamed(world donburi.World, name string, component donburi.IComponentType) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Name.Each(world, func(entry *donburi.Entry) {
		if found != nil {
			return
		}
		if components.Name.Get(entry).Value != name {
			return
		}
		if !entry.HasComponent(component) {
			return
		}
		found = entry
	})
	if found == nil {
		return nil, false
	}
	return found, true
}
