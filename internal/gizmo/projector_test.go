package gizmo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sungizmo/internal/engine/camera"
	"github.com/Faultbox/sungizmo/internal/engine/debug"
	"github.com/Faultbox/sungizmo/pkg/math"
)

func TestComputeAnchorCenter(t *testing.T) {
	anchor, ok := ComputeAnchor(frontCamera(), math.Vec2{X: 0.5, Y: 0.5}, 1)
	require.True(t, ok)
	assertVec3(t, math.Vec3{Z: -1}, anchor)
}

func TestComputeAnchorDistanceIsInverseSize(t *testing.T) {
	cam := camera.New(math.Vec3{X: 3, Y: 4, Z: 5}, math.Vec3{})
	cam.SetViewport(1280, 720)

	for _, size := range []float32{0.05, 0.1, 0.5, 1, 4} {
		anchor, ok := ComputeAnchor(cam, math.Vec2{X: 0.7, Y: 0.7}, size)
		require.True(t, ok)
		assert.InDelta(t, 1/size, anchor.Sub(cam.Position).Length(), float64(1e-3/size), "size=%v", size)
	}
}

func TestComputeAnchorOffCenterDirection(t *testing.T) {
	// (0.7, 0.7) is right of and below the screen center
	anchor, ok := ComputeAnchor(frontCamera(), math.Vec2{X: 0.7, Y: 0.7}, 0.1)
	require.True(t, ok)
	assert.Greater(t, anchor.X, float32(0))
	assert.Less(t, anchor.Y, float32(0))
	assert.Less(t, anchor.Z, float32(0))
}

func TestComputeAnchorWithoutViewport(t *testing.T) {
	cam := camera.New(math.Vec3{}, math.Vec3{Z: -1})

	_, ok := ComputeAnchor(cam, math.Vec2{X: 0.5, Y: 0.5}, 0.1)
	assert.False(t, ok)

	_, ok = ComputeAnchor(frontCamera(), math.Vec2{X: 0.5, Y: 0.5}, 0)
	assert.False(t, ok)

	_, ok = ComputeAnchor(nil, math.Vec2{X: 0.5, Y: 0.5}, 0.1)
	assert.False(t, ok)
}

func TestIdleTimer(t *testing.T) {
	timer := NewIdleTimer(2.5)
	assert.False(t, timer.Visible())
	assert.False(t, timer.Tick(1), "hidden before first activation")
	assert.Equal(t, float32(hiddenSentinel), timer.Remaining())

	timer.Reset()
	drawn := 0
	for i := 0; i < 10; i++ {
		if timer.Tick(1) {
			drawn++
		}
	}
	assert.Equal(t, 3, drawn)
	assert.False(t, timer.Visible())

	timer.Reset()
	assert.True(t, timer.Visible())
	assert.Equal(t, float32(2.5), timer.Remaining())
}

func TestIdleTimerResetExtends(t *testing.T) {
	timer := NewIdleTimer(1)
	timer.Reset()
	assert.True(t, timer.Tick(0.9))
	timer.Reset()
	assert.True(t, timer.Tick(0.9))
	assert.True(t, timer.Tick(0.09))
	assert.InDelta(t, 0.01, timer.Remaining(), eps)
}

func TestProjectorTimerSnapshot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PersistTime = 0.5
	p := NewProjector(cfg, nil)
	assert.False(t, p.Timer().Visible())
	assert.Equal(t, float32(hiddenSentinel), p.Timer().Remaining())

	w, _, _ := twoLightWorld()
	p.Frame(w, true, 0.125, debug.NewDrawList())
	snap := p.Timer()
	assert.True(t, snap.Visible())
	assert.InDelta(t, 0.375, snap.Remaining(), eps)

	// The snapshot is a copy and does not follow later frames.
	p.Frame(w, false, 0.125, debug.NewDrawList())
	assert.InDelta(t, 0.375, snap.Remaining(), eps)
	assert.InDelta(t, 0.25, p.Timer().Remaining(), eps)
}

func TestProjectorHiddenUntilDirty(t *testing.T) {
	w, _, _ := twoLightWorld()
	p := NewProjector(DefaultConfig(), nil)
	list := debug.NewDrawList()

	_, drawn := p.Frame(w, false, 0.016, list)
	assert.False(t, drawn)
	assert.Zero(t, list.Len())

	_, drawn = p.Frame(w, true, 0.016, list)
	assert.True(t, drawn)
	assert.NotZero(t, list.Len())
}

func TestProjectorPersistsAfterGesture(t *testing.T) {
	w, _, _ := twoLightWorld()
	cfg := DefaultConfig()
	cfg.PersistTime = 1
	p := NewProjector(cfg, nil)
	list := debug.NewDrawList()

	_, drawn := p.Frame(w, true, 0.25, list)
	require.True(t, drawn)

	frames := 0
	for i := 0; i < 20; i++ {
		list.Reset()
		if _, drawn := p.Frame(w, false, 0.25, list); drawn {
			frames++
		}
	}
	// 0.75 left after the activation frame: drawn at 0.75, 0.5, 0.25 and 0
	assert.Equal(t, 4, frames)
	assert.Zero(t, list.Len())
}

func TestProjectorNeedsCamera(t *testing.T) {
	w, _, _ := twoLightWorld()
	w.UnbindCamera()
	p := NewProjector(DefaultConfig(), nil)
	list := debug.NewDrawList()

	_, drawn := p.Frame(w, true, 0.016, list)
	assert.False(t, drawn)
	assert.Zero(t, list.Len())
	assert.True(t, p.Timer().Visible(), "timer still runs without a camera")

	cam := camera.New(math.Vec3{}, math.Vec3{Z: -1})
	w.BindCamera(cam)
	_, drawn = p.Frame(w, false, 0.016, list)
	assert.False(t, drawn, "camera without a viewport")
	assert.Zero(t, list.Len())

	cam.SetViewport(640, 480)
	_, drawn = p.Frame(w, false, 0.016, list)
	assert.True(t, drawn)
}

func TestProjectorAnchorFollowsConfig(t *testing.T) {
	w, _, _ := twoLightWorld()
	cfg := DefaultConfig()
	cfg.Anchor = math.Vec2{X: 0.5, Y: 0.5}
	cfg.Size = 0.5
	p := NewProjector(cfg, nil)

	anchor, drawn := p.Frame(w, true, 0.016, debug.NewDrawList())
	require.True(t, drawn)
	assertVec3(t, math.Vec3{Z: -2}, anchor)
}
