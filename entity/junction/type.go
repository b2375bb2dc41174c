package junction

import (
	"github.com/traffictimer/intersection-sim/entity/junction/trafficlight"
)

// 依赖倒置，表达junction对信号调度实现的接口需求

// 给展示层提供的信控读取接口
type ISignalGetter interface {
	Snapshot() *trafficlight.Snapshot // 最近一次提交的状态
}

// 信号调度接口
type ISignalScheduler interface {
	ISignalGetter
	Tick() // 推进一秒
}
