package app

import (
	"github.com/chewxy/math32"

	"github.com/JosefAlbers/bonzai/geom"
)

const (
	minDist  = 4
	maxDist  = 120
	maxPitch = math32.Pi/2 - 0.08
	fovY     = 50 // degrees
	nearClip = 0.1
)

// Camera orbits a fixed target. Yaw and Pitch are radians, Dist is the
// eye's distance from the target.
type Camera struct {
	Target geom.Vec3
	Yaw    float32
	Pitch  float32
	Dist   float32
}

func NewCamera(target geom.Vec3, dist float32) Camera {
	c := Camera{Target: target, Yaw: 0.7, Pitch: 0.32, Dist: dist}
	c.Zoom(0)
	return c
}

// Orbit adjusts yaw and pitch. Pitch stays short of the poles so the
// view basis never degenerates.
func (c *Camera) Orbit(dyaw, dpitch float32) {
	c.Yaw += dyaw
	c.Pitch += dpitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// Zoom moves the eye along the view ray within fixed bounds.
func (c *Camera) Zoom(d float32) {
	c.Dist += d
	if c.Dist < minDist {
		c.Dist = minDist
	}
	if c.Dist > maxDist {
		c.Dist = maxDist
	}
}

// Eye returns the camera position in world space.
func (c Camera) Eye() geom.Vec3 {
	cp := math32.Cos(c.Pitch)
	return c.Target.Add(geom.Vec3{
		X: c.Dist * cp * math32.Sin(c.Yaw),
		Y: c.Dist * math32.Sin(c.Pitch),
		Z: c.Dist * cp * math32.Cos(c.Yaw),
	})
}

// view caches the projection basis for one frame.
type view struct {
	eye   geom.Vec3
	fwd   geom.Vec3
	right geom.Vec3
	up    geom.Vec3
	cx    float32
	cy    float32
	focal float32
}

func (c Camera) view(w, h int) view {
	eye := c.Eye()
	fwd := c.Target.Sub(eye).Normalize()
	right := fwd.Cross(geom.Vec3{Y: 1}).Normalize()
	up := right.Cross(fwd)
	return view{
		eye:   eye,
		fwd:   fwd,
		right: right,
		up:    up,
		cx:    float32(w) / 2,
		cy:    float32(h) / 2,
		focal: float32(h) / (2 * math32.Tan(geom.DegToRad(fovY)/2)),
	}
}

// project maps a world point to screen pixels plus its view depth.
// ok is false at or behind the near plane.
func (v view) project(p geom.Vec3) (x, y, depth float32, ok bool) {
	d := p.Sub(v.eye)
	z := d.Dot(v.fwd)
	if z < nearClip {
		return 0, 0, 0, false
	}
	s := v.focal / z
	return v.cx + s*d.Dot(v.right), v.cy - s*d.Dot(v.up), z, true
}

// Project maps a world point through the camera at the given screen size.
func (c Camera) Project(p geom.Vec3, w, h int) (x, y, depth float32, ok bool) {
	return c.view(w, h).project(p)
}
