package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/strider/levels"
)

type LevelData struct {
	CurrentLevel *levels.Level
}

var Level = donburi.NewComponentType[LevelData]()
