package trafficlight

import "github.com/samber/lo"

// Snapshot 调度器状态快照
// 功能：某一步提交后的完整只读状态，供展示层、预测与通知读取
// 说明：由调度器整体替换发布，读者不应修改其中的切片
type Snapshot struct {
	Version      uint64        // 发布序号，每步加1
	Lights       []SignalLight // 所有信号灯
	RedCountdown int32         // 共享红灯倒计时
	Rotation     []int32       // 轮转顺序
	Timing       Timing        // 配时
	Checkpoints  []int32       // 预测时间点（秒）

	active int
}

// Started 是否已有放行方向
func (s *Snapshot) Started() bool {
	return s.active >= 0
}

// ActiveLight 当前绿灯或黄灯的信号灯
func (s *Snapshot) ActiveLight() (SignalLight, bool) {
	if s.active < 0 {
		return SignalLight{}, false
	}
	return s.Lights[s.active], true
}

// ActiveDirection 当前放行方向，尚未开始时返回-1
func (s *Snapshot) ActiveDirection() int32 {
	if l, ok := s.ActiveLight(); ok {
		return l.Direction
	}
	return -1
}

// NextDirection 轮转中下一个获得绿灯的方向
// 说明：尚未开始时返回轮转中的第一个方向
func (s *Snapshot) NextDirection() int32 {
	i := lo.IndexOf(s.Rotation, s.ActiveDirection())
	return s.Rotation[(i+1)%len(s.Rotation)]
}

// Light 根据ID查找信号灯
func (s *Snapshot) Light(id int32) (SignalLight, bool) {
	return lo.Find(s.Lights, func(l SignalLight) bool { return l.ID == id })
}

// LightOf 查找方向对应的信号灯
func (s *Snapshot) LightOf(directionID int32) (SignalLight, bool) {
	return lo.Find(s.Lights, func(l SignalLight) bool { return l.Direction == directionID })
}

// Forecast 根据快照计算各预测时间点的绿灯方向
func (s *Snapshot) Forecast() []Prediction {
	l, ok := s.ActiveLight()
	if !ok {
		return []Prediction{}
	}
	return Forecast(ForecastInput{
		Current:          l.Direction,
		Phase:            l.Phase,
		SecondsRemaining: l.SecondsRemaining,
		Rotation:         s.Rotation,
		Timing:           s.Timing,
		Checkpoints:      s.Checkpoints,
	})
}
