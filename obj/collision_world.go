package obj

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/platformer/motion"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeFloor
	collisionTypeCeiling
	collisionTypeLeftWall
	collisionTypeRightWall
)

var surfaceCollisionTypes = map[cp.CollisionType]motion.Surface{
	collisionTypeFloor:     motion.SurfaceFloor,
	collisionTypeCeiling:   motion.SurfaceCeiling,
	collisionTypeLeftWall:  motion.SurfaceLeftWall,
	collisionTypeRightWall: motion.SurfaceRightWall,
}

// PlayerBodySpec describes the player's collision box relative to its body
// position, before world scale is applied.
type PlayerBodySpec struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
	Scale   float64
}

func (s PlayerBodySpec) scale() float64 {
	if s.Scale <= 0 {
		return 1
	}
	return s.Scale
}

// CollisionWorld owns the chipmunk space: the player's sensor box plus one
// tagged static shape per authored surface rect. It is the controller's
// Mover and raises surface contact begin/end events back into it.
//
// World coordinates are Y-up; Level.Draw flips for the screen.
type CollisionWorld struct {
	space *cp.Space

	playerBody  *cp.Body
	playerShape *cp.Shape
	bodySpec    PlayerBodySpec

	ctrl *motion.Controller
}

func NewCollisionWorld(level *Level, body PlayerBodySpec) *CollisionWorld {
	space := cp.NewSpace()
	space.Iterations = 1
	// the controller integrates all motion itself
	space.SetGravity(cp.Vector{})

	cw := &CollisionWorld{space: space, bodySpec: body}
	cw.buildStaticShapes(level)
	cw.buildPlayer(level.Spawn.X, level.Spawn.Y)
	return cw
}

func (cw *CollisionWorld) buildStaticShapes(level *Level) {
	for _, s := range level.Surfaces {
		tag, err := s.Surface()
		if err != nil {
			// LoadLevel already validated tags
			panic("collision world: " + err.Error())
		}
		bb := cp.BB{L: s.X, B: s.Y, R: s.X + s.W, T: s.Y + s.H}
		shape := cp.NewBox2(cw.space.StaticBody, bb, 0)
		shape.SetCollisionType(collisionTypeForSurface(tag))
		cw.space.AddShape(shape)
	}
}

func collisionTypeForSurface(s motion.Surface) cp.CollisionType {
	for ct, tag := range surfaceCollisionTypes {
		if tag == s {
			return ct
		}
	}
	return collisionTypeFloor
}

func (cw *CollisionWorld) buildPlayer(x, y float64) {
	body := cp.NewBody(1, cp.INFINITY)
	body.SetPosition(cp.Vector{X: x, Y: y})

	s := cw.bodySpec.scale()
	halfW := cw.bodySpec.Width * s / 2.0
	halfH := cw.bodySpec.Height * s / 2.0
	offX := cw.bodySpec.OffsetX * s
	offY := cw.bodySpec.OffsetY * s
	bb := cp.BB{L: offX - halfW, B: offY - halfH, R: offX + halfW, T: offY + halfH}

	shape := cp.NewBox2(body, bb, 0)
	// sensor: the controller resolves all motion, chipmunk only reports overlap
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypePlayer)

	cw.space.AddBody(body)
	cw.space.AddShape(shape)
	cw.playerBody = body
	cw.playerShape = shape
}

// Bind installs the contact handlers that feed the controller. It must run
// before the first FixedTick.
func (cw *CollisionWorld) Bind(ctrl *motion.Controller) {
	cw.ctrl = ctrl
	for ct, tag := range surfaceCollisionTypes {
		handler := cw.space.NewCollisionHandler(collisionTypePlayer, ct)
		handler.UserData = tag
		handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
			cw.ctrl.ContactBegin(userData.(motion.Surface), cw.otherCollider(arb))
			return true
		}
		handler.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) {
			cw.ctrl.ContactEnd(userData.(motion.Surface), cw.otherCollider(arb))
		}
	}
}

func (cw *CollisionWorld) otherCollider(arb *cp.Arbiter) motion.Collider {
	a, b := arb.Shapes()
	if a == cw.playerShape {
		return shapeCollider{shape: b}
	}
	return shapeCollider{shape: a}
}

// FixedTick runs one fixed simulation step: the controller moves the player,
// then the space steps so contact begin/end events resolve against the new
// position before the next tick.
func (cw *CollisionWorld) FixedTick() {
	if cw.ctrl == nil {
		return
	}
	cw.ctrl.Step()
	cw.space.Step(1.0)
}

// TranslateBy implements motion.Mover.
func (cw *CollisionWorld) TranslateBy(d motion.Vec) {
	pos := cw.playerBody.Position()
	cw.playerBody.SetPosition(cp.Vector{X: pos.X + d.X, Y: pos.Y + d.Y})
}

// PlayerCollider returns the player's contact geometry for the controller.
func (cw *CollisionWorld) PlayerCollider() motion.Collider {
	return playerCollider{cw: cw}
}

// PlayerPosition returns the player body position in world coordinates.
func (cw *CollisionWorld) PlayerPosition() (float64, float64) {
	pos := cw.playerBody.Position()
	return pos.X, pos.Y
}

// SetPlayerPosition teleports the player body, for respawns.
func (cw *CollisionWorld) SetPlayerPosition(x, y float64) {
	cw.playerBody.SetPosition(cp.Vector{X: x, Y: y})
	cw.space.ReindexShapesForBody(cw.playerBody)
}

// playerCollider exposes the player box through the motion geometry
// interface: vertical center with offset and scale applied, and half height.
type playerCollider struct {
	cw *CollisionWorld
}

func (p playerCollider) HalfHeight() float64 {
	return p.cw.bodySpec.Height * p.cw.bodySpec.scale() / 2.0
}

func (p playerCollider) WorldY() float64 {
	return p.cw.playerBody.Position().Y + p.cw.bodySpec.OffsetY*p.cw.bodySpec.scale()
}

// shapeCollider reads contact geometry for a static surface shape from its
// cached bounding box.
type shapeCollider struct {
	shape *cp.Shape
}

func (s shapeCollider) HalfHeight() float64 {
	bb := s.shape.BB()
	return (bb.T - bb.B) / 2.0
}

func (s shapeCollider) WorldY() float64 {
	bb := s.shape.BB()
	return (bb.T + bb.B) / 2.0
}
