package trafficlight

import "fmt"

// Phase 单个信号灯的灯色
type Phase string

const (
	Red    Phase = "red"
	Yellow Phase = "yellow"
	Green  Phase = "green"
)

func (p Phase) String() string {
	return string(p)
}

// Active 绿灯或黄灯（占用路口）
func (p Phase) Active() bool {
	return p == Green || p == Yellow
}

// SignalLight 物理信号灯
// 功能：记录一个方向的信号灯当前灯色与剩余秒数
// 说明：启动时一次性创建，只由Scheduler在每步中修改，仿真期间不会销毁
type SignalLight struct {
	ID               int32  `yaml:"id"`
	Direction        int32  `yaml:"direction"`
	Name             string `yaml:"name"`
	Phase            Phase  `yaml:"-"`
	SecondsRemaining int32  `yaml:"-"`
}

func (l SignalLight) String() string {
	return fmt.Sprintf("SignalLight{id=%d, direction=%d, phase=%s, remaining=%d}", l.ID, l.Direction, l.Phase, l.SecondsRemaining)
}

// Timing 信号配时
type Timing struct {
	Green  int32 // 绿灯时长（秒）
	Yellow int32 // 黄灯时长（秒）
}

// Cycle 单个方向一次绿灯+黄灯的时长
func (t Timing) Cycle() int32 {
	return t.Green + t.Yellow
}
