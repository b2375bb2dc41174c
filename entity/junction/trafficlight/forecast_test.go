package trafficlight_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traffictimer/intersection-sim/entity/junction/trafficlight"
)

var checkpoints = []int32{300, 600, 900, 1200, 1500, 1800}

func TestForecastFromStart(t *testing.T) {
	s := newTestScheduler(t, lo.ToPtr[int32](1))
	got := s.Snapshot().Forecast()
	require.Len(t, got, 6)
	assert.Equal(t, []trafficlight.Prediction{
		{OffsetMinutes: 5, Direction: 2},
		{OffsetMinutes: 10, Direction: 2},
		{OffsetMinutes: 15, Direction: 1},
		{OffsetMinutes: 20, Direction: 1},
		{OffsetMinutes: 25, Direction: 3},
		{OffsetMinutes: 30, Direction: 2},
	}, got)
}

func TestForecastDeterministic(t *testing.T) {
	s := newTestScheduler(t, lo.ToPtr[int32](1))
	ticks(s, 47)
	snap := s.Snapshot()
	assert.Equal(t, snap.Forecast(), snap.Forecast())
	assert.Equal(t, snap.Forecast(), s.Snapshot().Forecast())
}

type simState struct {
	direction int32
	phase     trafficlight.Phase
}

func simulate(t *testing.T, period, horizon int) (*trafficlight.Scheduler, []simState, []*trafficlight.Snapshot) {
	s := newTestScheduler(t, lo.ToPtr[int32](1))
	history := make([]simState, 0, period+horizon+1)
	snaps := make([]*trafficlight.Snapshot, 0, period)
	for step := 0; step <= period+horizon; step++ {
		snap := s.Snapshot()
		l, _ := snap.ActiveLight()
		history = append(history, simState{direction: l.Direction, phase: l.Phase})
		if step < period {
			snaps = append(snaps, snap)
		}
		s.Tick()
	}
	return s, history, snaps
}

func inputOf(snap *trafficlight.Snapshot, checkpoints []int32) trafficlight.ForecastInput {
	l, _ := snap.ActiveLight()
	return trafficlight.ForecastInput{
		Current:          l.Direction,
		Phase:            l.Phase,
		SecondsRemaining: l.SecondsRemaining,
		Rotation:         snap.Rotation,
		Timing:           snap.Timing,
		Checkpoints:      checkpoints,
	}
}

// 一整轮之内（整轮数为0）：预测方向等于目标时刻的放行方向，
// 或目标时刻处于黄灯时等于下一个方向
func TestForecastWithinOneRotationMatchesSimulation(t *testing.T) {
	cycle := int(defaultTiming.Cycle())
	period := 3 * cycle
	horizon := 5 * cycle
	s, history, snaps := simulate(t, period, horizon)
	registry := s.Registry()

	for start, snap := range snaps {
		in := inputOf(snap, nil)
		greenLeft := in.SecondsRemaining
		if in.Phase != trafficlight.Green {
			greenLeft = 0
		}
		limit := greenLeft + defaultTiming.Yellow + 3*defaultTiming.Cycle()
		in.Checkpoints = lo.RangeFrom[int32](1, int(limit)-1)
		for i, p := range trafficlight.Forecast(in) {
			at := history[start+int(in.Checkpoints[i])]
			if at.phase == trafficlight.Yellow {
				assert.Contains(t, []int32{at.direction, registry.Next(at.direction)}, p.Direction,
					"start %d target %d", start, in.Checkpoints[i])
			} else {
				assert.Equal(t, at.direction, p.Direction, "start %d target %d", start, in.Checkpoints[i])
			}
		}
	}
}

// 多整轮之后只保证±1个方向
func TestForecastMatchesSimulationWithinOneDirection(t *testing.T) {
	period := 3 * int(defaultTiming.Cycle())
	horizon := int(checkpoints[len(checkpoints)-1])
	s, history, snaps := simulate(t, period, horizon)
	registry := s.Registry()
	rotation := registry.Rotation()
	prev := func(id int32) int32 {
		i := registry.IndexOf(id)
		return rotation[(i+len(rotation)-1)%len(rotation)]
	}

	for start, snap := range snaps {
		for i, p := range snap.Forecast() {
			at := history[start+int(checkpoints[i])]
			assert.Contains(t, []int32{prev(at.direction), at.direction, registry.Next(at.direction)}, p.Direction,
				"start %d checkpoint %d", start, checkpoints[i])
		}
	}
}

func TestForecastYellowCountsAsNoGreenLeft(t *testing.T) {
	in := trafficlight.ForecastInput{
		Current:          1,
		Phase:            trafficlight.Yellow,
		SecondsRemaining: 5,
		Rotation:         []int32{1, 2, 3},
		Timing:           defaultTiming,
		Checkpoints:      []int32{40, 75},
	}
	got := trafficlight.Forecast(in)
	// 下一个方向在5秒后开始：40秒时方向2（35秒）刚结束，75秒时方向3刚结束
	assert.Equal(t, []trafficlight.Prediction{{OffsetMinutes: 0, Direction: 3}, {OffsetMinutes: 1, Direction: 1}}, got)

	in.Phase = trafficlight.Green
	in.SecondsRemaining = 30
	got = trafficlight.Forecast(in)
	assert.Equal(t, []trafficlight.Prediction{{OffsetMinutes: 0, Direction: 2}, {OffsetMinutes: 1, Direction: 3}}, got)
}

func TestForecastWithinCurrentWindow(t *testing.T) {
	directions := func(got []trafficlight.Prediction) []int32 {
		return lo.Map(got, func(p trafficlight.Prediction, _ int) int32 { return p.Direction })
	}

	// 剩余20秒绿灯+5秒黄灯：10秒、24秒时仍是当前方向，25秒时下一个方向开始绿灯
	got := trafficlight.Forecast(trafficlight.ForecastInput{
		Current:          3,
		Phase:            trafficlight.Green,
		SecondsRemaining: 20,
		Rotation:         []int32{1, 2, 3},
		Timing:           defaultTiming,
		Checkpoints:      []int32{10, 24, 25},
	})
	assert.Equal(t, []int32{3, 3, 1}, directions(got))

	// 绿灯时长长于预测间隔
	got = trafficlight.Forecast(trafficlight.ForecastInput{
		Current:          1,
		Phase:            trafficlight.Green,
		SecondsRemaining: 600,
		Rotation:         []int32{1, 2, 3},
		Timing:           trafficlight.Timing{Green: 600, Yellow: 5},
		Checkpoints:      []int32{300, 600, 605},
	})
	assert.Equal(t, []trafficlight.Prediction{
		{OffsetMinutes: 5, Direction: 1},
		{OffsetMinutes: 10, Direction: 1},
		{OffsetMinutes: 10, Direction: 2},
	}, got)
}

func TestForecastUnknownDirection(t *testing.T) {
	assert.Empty(t, trafficlight.Forecast(trafficlight.ForecastInput{
		Current:     0,
		Phase:       trafficlight.Green,
		Rotation:    []int32{1, 2, 3},
		Timing:      defaultTiming,
		Checkpoints: checkpoints,
	}))
	assert.Empty(t, trafficlight.Forecast(trafficlight.ForecastInput{Current: 1, Timing: defaultTiming, Checkpoints: checkpoints}))
}
