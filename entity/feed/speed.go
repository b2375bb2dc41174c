package feed

import "github.com/traffictimer/intersection-sim/utils/randengine"

const (
	speedInterval = 3  // 车速刷新间隔步数
	speedMin      = 25 // 模拟车速下限（含）
	speedMax      = 35 // 模拟车速上限（不含）
)

// speedometer 模拟车速
// 功能：每隔固定步数随机生成当前车速（km/h），仅供展示层参考
type speedometer struct {
	generator *randengine.Engine
	speed     int32
}

func (s *speedometer) update() {
	s.speed = s.generator.RangeSafe(speedMin, speedMax)
}
