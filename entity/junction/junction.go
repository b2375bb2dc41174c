package junction

import (
	"errors"
	"fmt"

	"github.com/traffictimer/intersection-sim/entity/direction"
	"github.com/traffictimer/intersection-sim/entity/junction/trafficlight"
	"github.com/traffictimer/intersection-sim/utils/config"
	"github.com/traffictimer/intersection-sim/utils/input"
)

var (
	ErrLightNotFound = errors.New("traffic light not found")
)

// Junction 路口
// 功能：持有方向注册表与信号调度器，向展示层提供推进、读取、预测与信号灯查询接口
type Junction struct {
	id        int32
	name      string
	registry  *direction.Registry
	scheduler ISignalScheduler
}

// New 创建并初始化路口
// 功能：根据布局构建方向注册表与调度器
// 参数：layout-路口布局，rc-运行时配置（配时与预测时间点）
// 返回：路口实例；布局非法时返回ConfigurationError
func New(layout input.Layout, rc *config.RuntimeConfig) (*Junction, error) {
	registry, err := direction.NewRegistry(layout.Directions, layout.Rotation)
	if err != nil {
		return nil, fmt.Errorf("junction %d: %w", layout.ID, err)
	}
	scheduler, err := trafficlight.NewScheduler(
		registry,
		layout.Lights,
		trafficlight.Timing{Green: rc.GreenDuration, Yellow: rc.YellowDuration},
		layout.InitialDirection,
		rc.Checkpoints,
	)
	if err != nil {
		return nil, fmt.Errorf("junction %d: %w", layout.ID, err)
	}
	j := &Junction{
		id:        layout.ID,
		name:      layout.Name,
		registry:  registry,
		scheduler: scheduler,
	}
	log.Infof("junction %d (%s): %d lights, rotation %v, green %ds, yellow %ds",
		j.id, j.name, len(layout.Lights), layout.Rotation, rc.GreenDuration, rc.YellowDuration)
	return j, nil
}

// ID 获取路口ID
// 返回：路口ID，如果路口为nil则返回-1
func (j *Junction) ID() int32 {
	if j == nil {
		return -1
	}
	return j.id
}

// Name 路口名称
func (j *Junction) Name() string {
	return j.name
}

// Registry 方向注册表
func (j *Junction) Registry() *direction.Registry {
	return j.registry
}

// Tick 推进一秒
func (j *Junction) Tick() {
	j.scheduler.Tick()
}

// Snapshot 最近一次提交的状态快照
func (j *Junction) Snapshot() *trafficlight.Snapshot {
	return j.scheduler.Snapshot()
}

// Lights 所有信号灯的只读副本
func (j *Junction) Lights() []trafficlight.SignalLight {
	return append([]trafficlight.SignalLight(nil), j.Snapshot().Lights...)
}

// ActiveDirection 当前绿灯或黄灯的方向
// 返回：方向与是否已开始轮转
func (j *Junction) ActiveDirection() (direction.Direction, bool) {
	snap := j.Snapshot()
	if !snap.Started() {
		return direction.Direction{}, false
	}
	return j.registry.MustGet(snap.ActiveDirection()), true
}

// NextDirection 轮转中下一个获得绿灯的方向
func (j *Junction) NextDirection() direction.Direction {
	return j.registry.MustGet(j.Snapshot().NextDirection())
}

// RedCountdown 所有红灯共享的倒计时（秒）
func (j *Junction) RedCountdown() int32 {
	return j.Snapshot().RedCountdown
}

// Forecast 各预测时间点的绿灯方向
func (j *Junction) Forecast() []trafficlight.Prediction {
	return j.Snapshot().Forecast()
}

// SelectLight 查询信号灯详情
// 功能：纯查询，不修改状态
// 参数：id-信号灯ID
// 返回：信号灯快照；不存在时返回ErrLightNotFound
func (j *Junction) SelectLight(id int32) (trafficlight.SignalLight, error) {
	l, ok := j.Snapshot().Light(id)
	if !ok {
		return l, fmt.Errorf("%w: id %d in junction %d", ErrLightNotFound, id, j.id)
	}
	return l, nil
}
