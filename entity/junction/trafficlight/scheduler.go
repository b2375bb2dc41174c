package trafficlight

import (
	"sync"
	"sync/atomic"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/traffictimer/intersection-sim/entity/direction"
	"github.com/traffictimer/intersection-sim/utils/config"
)

// runtime 调度器运行时数据
// 功能：保存所有信号灯、当前放行灯下标与共享红灯倒计时
type runtime struct {
	lights      []SignalLight
	byDirection map[int32]int // 方向ID->信号灯下标
	active      int           // 当前绿灯或黄灯的信号灯下标，-1表示尚未开始
	countdown   int32         // 共享红灯倒计时
}

// Scheduler 固定轮转信号调度器
// 功能：每步推进信号灯状态（绿->黄->红），并按轮转顺序将下一个方向切换为绿灯
// 说明：Tick在一次调用内完成全部状态修改后再发布snapshot，读者只会看到完整提交的状态
type Scheduler struct {
	registry    *direction.Registry
	timing      Timing
	checkpoints []int32

	mtx      sync.Mutex
	runtime  runtime                  // 运行时数据，只在Tick中修改
	snapshot atomic.Pointer[Snapshot] // 最近一次提交的snapshot
	version  uint64
}

// NewScheduler 创建调度器
// 功能：校验信号灯表与配时，创建全部信号灯并设置初始绿灯
// 参数：registry-方向注册表，lights-信号灯（灯色与剩余时间会被忽略），timing-配时，
// initial-初始绿灯方向（为nil时所有灯为红灯，第一步启动轮转），checkpoints-预测时间点（秒）
// 返回：调度器；配置非法时返回ConfigurationError
func NewScheduler(
	registry *direction.Registry,
	lights []SignalLight,
	timing Timing,
	initial *int32,
	checkpoints []int32,
) (*Scheduler, error) {
	if timing.Green <= 0 || timing.Yellow <= 0 {
		return nil, config.NewConfigurationError("signal timing", "durations must be positive, got green=%d yellow=%d", timing.Green, timing.Yellow)
	}
	if dup := lo.FindDuplicates(lo.Map(lights, func(l SignalLight, _ int) int32 { return l.ID })); len(dup) > 0 {
		return nil, config.NewConfigurationError("signal lights", "duplicated light ids %v", dup)
	}
	if dup := lo.FindDuplicates(lo.Map(lights, func(l SignalLight, _ int) int32 { return l.Direction })); len(dup) > 0 {
		return nil, config.NewConfigurationError("signal lights", "directions %v have more than one light", dup)
	}
	for _, l := range lights {
		if _, ok := registry.Get(l.Direction); !ok {
			return nil, config.NewConfigurationError("signal lights", "light %d references unknown direction %d", l.ID, l.Direction)
		}
	}

	s := &Scheduler{
		registry:    registry,
		timing:      timing,
		checkpoints: append([]int32(nil), checkpoints...),
		runtime: runtime{
			lights: lo.Map(lights, func(l SignalLight, _ int) SignalLight {
				l.Phase = Red
				l.SecondsRemaining = 0
				return l
			}),
			active: -1,
		},
	}
	s.runtime.byDirection = make(map[int32]int, len(lights))
	for i, l := range s.runtime.lights {
		s.runtime.byDirection[l.Direction] = i
	}
	for _, id := range registry.Rotation() {
		if _, ok := s.runtime.byDirection[id]; !ok {
			return nil, config.NewConfigurationError("signal lights", "no light for direction %d in rotation", id)
		}
	}

	if initial != nil {
		if !registry.InRotation(*initial) {
			return nil, config.NewConfigurationError("signal lights", "initial direction %d is not in rotation", *initial)
		}
		s.runtime.promote(*initial, timing.Green)
		s.runtime.resetCountdown(timing.Green)
	}
	s.runtime.syncRed()
	s.publish()
	return s, nil
}

// promote 将方向的信号灯切换为绿灯并成为当前放行灯
func (rt *runtime) promote(directionID int32, green int32) int {
	i := rt.byDirection[directionID]
	rt.lights[i].Phase = Green
	rt.lights[i].SecondsRemaining = green
	rt.active = i
	return i
}

// Tick 推进一秒
// 功能：按以下规则推进信号灯状态
// 算法说明：
// 1. 存在绿灯：剩余时间减1，到0时转为黄灯，共享倒计时重置为黄灯+绿灯时长
// 2. 否则存在黄灯：剩余时间减1，到0时转为红灯，轮转中的下一个方向转为绿灯，共享倒计时重置为绿灯时长
// 3. 否则（尚未开始）：轮转中的第一个方向转为绿灯，共享倒计时重置为绿灯时长
// 4. 本步没有相位切换且没有黄灯时，共享倒计时减1（最小为0）
// 最后把共享倒计时写入所有红灯（包括本步刚转为红灯的灯），检查不变量并发布snapshot
func (s *Scheduler) Tick() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.update()
	s.checkInvariants()
	s.publish()
}

func (s *Scheduler) update() {
	rt := &s.runtime
	plain := false

	if rt.active >= 0 && rt.lights[rt.active].Phase == Green {
		l := &rt.lights[rt.active]
		l.SecondsRemaining--
		if l.SecondsRemaining <= 0 {
			l.Phase = Yellow
			l.SecondsRemaining = s.timing.Yellow
			rt.resetCountdown(s.timing.Yellow + s.timing.Green)
			log.WithFields(logFields(l)).Debug("green -> yellow")
		} else {
			plain = true
		}
	} else if rt.active >= 0 && rt.lights[rt.active].Phase == Yellow {
		l := &rt.lights[rt.active]
		l.SecondsRemaining--
		if l.SecondsRemaining <= 0 {
			l.Phase = Red
			log.WithFields(logFields(l)).Debug("yellow -> red")
			next := rt.promote(s.registry.Next(l.Direction), s.timing.Green)
			rt.resetCountdown(s.timing.Green)
			log.WithFields(logFields(&rt.lights[next])).Debug("red -> green")
		}
	} else {
		first := rt.promote(s.registry.First(), s.timing.Green)
		rt.resetCountdown(s.timing.Green)
		log.WithFields(logFields(&rt.lights[first])).Debug("rotation started")
	}

	if plain {
		rt.decrementCountdown()
	}
	rt.syncRed()
}

// checkInvariants 检查不变量，违反时panic
// 说明：恰好一个信号灯为绿灯或黄灯且与当前放行灯一致；所有红灯的剩余时间等于共享倒计时；剩余时间非负
func (s *Scheduler) checkInvariants() {
	rt := &s.runtime
	active := lo.Filter(rt.lights, func(l SignalLight, _ int) bool { return l.Phase.Active() })
	if len(active) != 1 {
		log.Panicf("invariant violation: %d lights are green or yellow: %v", len(active), active)
	}
	if rt.active < 0 || rt.lights[rt.active].ID != active[0].ID {
		log.Panicf("invariant violation: active pointer %d does not match light %v", rt.active, active[0])
	}
	if rt.countdown < 0 {
		log.Panicf("invariant violation: negative red countdown %d", rt.countdown)
	}
	for _, l := range rt.lights {
		if l.SecondsRemaining < 0 {
			log.Panicf("invariant violation: negative remaining time %v", l)
		}
		if l.Phase == Red && l.SecondsRemaining != rt.countdown {
			log.Panicf("invariant violation: red light %v out of sync with countdown %d", l, rt.countdown)
		}
	}
}

// publish 发布snapshot，需在持有锁或构造期间调用
func (s *Scheduler) publish() {
	s.version++
	rt := &s.runtime
	snap := &Snapshot{
		Version:      s.version,
		Lights:       append([]SignalLight(nil), rt.lights...),
		RedCountdown: rt.countdown,
		Rotation:     s.registry.Rotation(),
		Timing:       s.timing,
		Checkpoints:  s.checkpoints,
		active:       rt.active,
	}
	s.snapshot.Store(snap)
}

// Snapshot 获取最近一次提交的snapshot
// 功能：返回不可变的状态副本，可被任意数量的读者并发读取
func (s *Scheduler) Snapshot() *Snapshot {
	return s.snapshot.Load()
}

// Registry 方向注册表
func (s *Scheduler) Registry() *direction.Registry {
	return s.registry
}

func logFields(l *SignalLight) logrus.Fields {
	return logrus.Fields{
		"light":     l.ID,
		"direction": l.Direction,
		"phase":     l.Phase,
		"remaining": l.SecondsRemaining,
	}
}
