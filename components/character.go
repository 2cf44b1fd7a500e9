package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/automoto/strider/config"
)

// CharacterState identifies the movement state of a character.
type CharacterState int

const (
	// StateGround means the character is grounded and can walk and jump.
	StateGround CharacterState = iota
	// StateAir means the character is in the air after falling or jumping.
	StateAir
)

// CharacterData drives a humanoid around the scene by queuing forces and
// impulses on its ActorPhysicsData.
type CharacterData struct {
	// State the character is currently in.
	State CharacterState

	// Remaining number of jumps before having to touch ground again.
	RemainingJumpCount int

	// How high the character can jump in world units.
	JumpHeight float64

	// How fast the character can run in world units per second.
	RunningSpeed float64

	// How long the character takes to achieve its maximum speed.
	SecondsToFullSpeed float64

	// How much control the player has over the character in the air.
	AirControlFactor float64

	// Number of jumps the character can do after touching ground.
	MaximumJumpCount int
}

var Character = donburi.NewComponentType[CharacterData]()

// NewCharacterData returns character state with the configured movement
// tuning, starting grounded with a full jump allowance.
func NewCharacterData(cfg config.CharacterConfig) CharacterData {
	return CharacterData{
		State:              StateGround,
		RemainingJumpCount: cfg.MaximumJumpCount,
		JumpHeight:         cfg.JumpHeight,
		RunningSpeed:       cfg.RunningSpeed,
		SecondsToFullSpeed: cfg.SecondsToFullSpeed,
		AirControlFactor:   cfg.AirControlFactor,
		MaximumJumpCount:   cfg.MaximumJumpCount,
	}
}

// Jump makes the character jump if it's able to. Returns true if the
// character jumped, false if it was unable to jump.
//
// The jump queues an upward impulse sized so the resulting launch velocity
// reaches JumpHeight against the actor's gravity: v = sqrt(2 * g * h).
func (c *CharacterData) Jump(physics *ActorPhysicsData) bool {
	if c.RemainingJumpCount <= 0 {
		return false
	}

	gravityStrength := physics.GravityVector.Len() * physics.GravityScale
	if gravityStrength <= 0 {
		return false
	}

	up := physics.GravityVector.Normalize().Mul(-1)
	launchSpeed := math.Sqrt(2.0 * gravityStrength * c.JumpHeight)

	// Cancel any downward velocity so a late jump off a ledge still
	// reaches full height.
	falling := physics.Velocity.Dot(up)
	if falling < 0 {
		physics.QueueImpulse(up.Mul(-falling * physics.Mass))
	}
	physics.QueueImpulse(up.Mul(launchSpeed * physics.Mass))

	c.RemainingJumpCount--
	c.State = StateAir
	return true
}

// Land transitions the character back to the ground state and restores
// its jump allowance.
func (c *CharacterData) Land() {
	c.State = StateGround
	c.RemainingJumpCount = c.MaximumJumpCount
}

// WalkOff transitions a grounded character into the air without a jump,
// as when walking off a cliff. Entering the fall counts as one jump.
func (c *CharacterData) WalkOff() {
	if c.State == StateAir {
		return
	}
	c.State = StateAir
	if c.RemainingJumpCount > 0 {
		c.RemainingJumpCount--
	}
}

// ControlFactor returns how much control the player has over the character
// in its current state.
func (c *CharacterData) ControlFactor() float64 {
	if c.State == StateAir {
		return c.AirControlFactor
	}
	return 1.0
}

// TargetVelocity converts normalized 2-axis controls into the absolute
// horizontal velocity the character will aim to achieve.
func (c *CharacterData) TargetVelocity(controls mgl64.Vec2) mgl64.Vec2 {
	return controls.Mul(c.RunningSpeed)
}

// Acceleration returns how fast the character is allowed to approach its
// target velocity in its current state.
func (c *CharacterData) Acceleration() float64 {
	return c.RunningSpeed / c.SecondsToFullSpeed * c.ControlFactor()
}
