package entity

import (
	"github.com/traffictimer/intersection-sim/entity/direction"
	"github.com/traffictimer/intersection-sim/entity/junction/trafficlight"
)

// entity/junction/junction.go的依赖倒置
type IJunction interface {
	ID() int32
	Name() string
	Registry() *direction.Registry

	Tick()                                                  // 推进一秒
	Snapshot() *trafficlight.Snapshot                       // 最近一次提交的状态
	SelectLight(id int32) (trafficlight.SignalLight, error) // 查询信号灯，不存在时返回error
}
