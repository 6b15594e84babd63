package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosefAlbers/bonzai/geom"
)

func TestOrbitClampsPitch(t *testing.T) {
	c := NewCamera(geom.Vec3{}, 20)

	c.Orbit(0, 10)
	assert.Equal(t, float32(maxPitch), c.Pitch)

	c.Orbit(0, -20)
	assert.Equal(t, float32(-maxPitch), c.Pitch)

	c.Orbit(3, 0)
	c.Orbit(3, 0)
	assert.InDelta(t, 6.7, c.Yaw, 1e-5, "yaw is unbounded")
}

func TestZoomClampsDist(t *testing.T) {
	c := NewCamera(geom.Vec3{}, 20)

	c.Zoom(-1000)
	assert.Equal(t, float32(minDist), c.Dist)

	c.Zoom(1e6)
	assert.Equal(t, float32(maxDist), c.Dist)
}

func TestProjectTargetHitsScreenCenter(t *testing.T) {
	c := NewCamera(geom.Vec3{Y: 5}, 20)

	x, y, depth, ok := c.Project(c.Target, 800, 600)
	require.True(t, ok)
	assert.InDelta(t, 400, x, 1e-3)
	assert.InDelta(t, 300, y, 1e-3)
	assert.InDelta(t, 20, depth, 1e-4, "target depth equals orbit distance")
}

func TestProjectAxesMatchScreenDirections(t *testing.T) {
	// Yaw and pitch zero puts the eye on +Z looking down -Z: world +X is
	// screen-right, world +Y is screen-up.
	c := Camera{Dist: 10}

	x, y, _, ok := c.Project(geom.Vec3{X: 1}, 800, 600)
	require.True(t, ok)
	assert.Greater(t, x, float32(400))
	assert.InDelta(t, 300, y, 1e-3)

	x, y, _, ok = c.Project(geom.Vec3{Y: 1}, 800, 600)
	require.True(t, ok)
	assert.InDelta(t, 400, x, 1e-3)
	assert.Less(t, y, float32(300))
}

func TestProjectRejectsBehindEye(t *testing.T) {
	c := Camera{Dist: 10}

	_, _, _, ok := c.Project(geom.Vec3{Z: 11}, 800, 600)
	assert.False(t, ok)

	_, _, _, ok = c.Project(geom.Vec3{Z: 10}, 800, 600)
	assert.False(t, ok, "point on the eye plane has no projection")
}

func TestProjectNearerPointsSpreadWider(t *testing.T) {
	c := Camera{Dist: 10}

	nearX, _, nearDepth, ok := c.Project(geom.Vec3{X: 1, Z: 5}, 800, 600)
	require.True(t, ok)
	farX, _, farDepth, ok := c.Project(geom.Vec3{X: 1, Z: 0}, 800, 600)
	require.True(t, ok)

	assert.Less(t, nearDepth, farDepth)
	assert.Greater(t, nearX-400, farX-400, "same offset projects wider up close")
}
