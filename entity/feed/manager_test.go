package feed_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traffictimer/intersection-sim/clock"
	"github.com/traffictimer/intersection-sim/entity"
	"github.com/traffictimer/intersection-sim/entity/feed"
	"github.com/traffictimer/intersection-sim/entity/junction"
	"github.com/traffictimer/intersection-sim/entity/junction/trafficlight"
	"github.com/traffictimer/intersection-sim/utils/config"
	"github.com/traffictimer/intersection-sim/utils/input"
)

type testContext struct {
	clock    *clock.Clock
	rc       *config.RuntimeConfig
	junction *junction.Junction
}

func (c *testContext) Clock() *clock.Clock                  { return c.clock }
func (c *testContext) RuntimeConfig() *config.RuntimeConfig { return c.rc }
func (c *testContext) Junction() entity.IJunction           { return c.junction }

func (c *testContext) step() {
	c.clock.Advance()
	c.junction.Tick()
}

func newTestContext(t *testing.T) *testContext {
	rc, err := config.NewRuntimeConfig(config.Config{})
	require.NoError(t, err)
	j, err := junction.New(input.DefaultLayout(), rc)
	require.NoError(t, err)
	return &testContext{clock: clock.New(rc.C.Step), rc: rc, junction: j}
}

func TestNothingWithoutSelection(t *testing.T) {
	ctx := newTestContext(t)
	m := feed.NewManager(ctx, 1)
	for range 20 {
		ctx.step()
		m.Update()
	}
	assert.Empty(t, m.Notifications())
	assert.Equal(t, int32(0), m.Speed())
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestSelectUnknownLight(t *testing.T) {
	ctx := newTestContext(t)
	m := feed.NewManager(ctx, 1)
	_, err := m.Select(42)
	assert.True(t, errors.Is(err, junction.ErrLightNotFound))
}

func TestNotificationsAndSpeed(t *testing.T) {
	ctx := newTestContext(t)
	m := feed.NewManager(ctx, 1)
	l, err := m.Select(2)
	require.NoError(t, err)
	assert.Equal(t, trafficlight.Green, l.Phase)

	for i := 1; i <= 8; i++ {
		ctx.step()
		m.Update()
		if i == 2 {
			assert.Equal(t, int32(0), m.Speed())
		}
		if i == 3 {
			assert.GreaterOrEqual(t, m.Speed(), int32(25))
			assert.Less(t, m.Speed(), int32(35))
		}
	}
	n := m.Notifications()
	require.Len(t, n, 1)
	// 8步后方向1仍为绿灯（剩余22秒），下一个方向为2（信号灯3）
	assert.Equal(t, int32(3), n[0].LightID)
	assert.Equal(t, int32(2), n[0].Direction)
	assert.Equal(t, "MFU front gate (to Chiang Rai) turns green in 22 seconds", n[0].Message)
	assert.Equal(t, "00:00:08", n[0].Time)
	assert.NotEmpty(t, n[0].ID)

	for range 8 * 4 {
		ctx.step()
		m.Update()
	}
	n = m.Notifications()
	require.Len(t, n, 3)
	assert.Equal(t, "00:00:40", n[0].Time)
	assert.NotEqual(t, n[0].ID, n[1].ID)

	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, int32(2), selected.ID)
	assert.Equal(t, trafficlight.Red, selected.Phase)

	m.Deselect()
	assert.Equal(t, int32(0), m.Speed())
	_, ok = m.Selected()
	assert.False(t, ok)
}

func TestSelectMidRun(t *testing.T) {
	ctx := newTestContext(t)
	m := feed.NewManager(ctx, 1)
	for range 5 {
		ctx.step()
		m.Update()
	}
	_, err := m.Select(4)
	require.NoError(t, err)

	for range 7 {
		ctx.step()
		m.Update()
	}
	assert.Empty(t, m.Notifications())

	ctx.step()
	m.Update()
	n := m.Notifications()
	require.Len(t, n, 1)
	assert.Equal(t, "00:00:13", n[0].Time)
	assert.Equal(t, "MFU front gate (to Chiang Rai) turns green in 17 seconds", n[0].Message)
}
