// Package camera implements a fly camera driven by keyboard, mouse and
// scroll input, producing view and projection matrices.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a keyboard-driven direction relative to where the camera looks.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

// Default camera values
const (
	DefaultYaw         float32 = -90.0
	DefaultPitch       float32 = 0.0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45.0

	MinZoom  float32 = 1.0
	MaxZoom  float32 = 45.0
	maxPitch float32 = 89.0

	NearPlane float32 = 0.1
	FarPlane  float32 = 100.0
)

type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3
	// Euler angles in degrees
	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	// Zoom is the vertical field of view in degrees.
	Zoom float32
}

// New returns a camera at position looking down -Z with +Y up.
func New(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the world-to-view transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// Projection returns a perspective projection using Zoom as the field of view.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, NearPlane, FarPlane)
}

// ProcessKeyboard moves the camera for dt seconds in direction.
func (c *Camera) ProcessKeyboard(direction Movement, dt float32) {
	velocity := c.MovementSpeed * dt
	switch direction {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by cursor offsets. Positive
// yoffset looks up.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	c.Yaw += xoffset * c.MouseSensitivity
	c.Pitch += yoffset * c.MouseSensitivity

	// Past the poles the view flips.
	if constrainPitch {
		if c.Pitch > maxPitch {
			c.Pitch = maxPitch
		}
		if c.Pitch < -maxPitch {
			c.Pitch = -maxPitch
		}
	}
	c.updateVectors()
}

// ProcessMouseScroll zooms in for positive yoffset.
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.Zoom -= yoffset
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
