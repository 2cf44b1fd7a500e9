package components

import "github.com/yohamta/donburi"

// NameData gives an entity a stable name other entities can reference,
// e.g. a camera tracking its target.
type NameData struct {
	Value string
}

var Name = donburi.NewComponentType[NameData]()
