package config

import "github.com/yohamta/donburi/ecs"

// ECS layers. Everything lives on the default layer; renderers are
// registered against it.
const (
	Default ecs.LayerID = iota
)
