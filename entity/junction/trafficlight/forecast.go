package trafficlight

import "github.com/samber/lo"

// Prediction 预测结果：从现在起OffsetMinutes分钟后获得绿灯的方向
type Prediction struct {
	OffsetMinutes int32
	Direction     int32
}

// ForecastInput 预测输入
type ForecastInput struct {
	Current          int32   // 当前放行方向
	Phase            Phase   // 当前放行方向的灯色（绿灯或黄灯）
	SecondsRemaining int32   // 当前灯色剩余时间
	Rotation         []int32 // 轮转顺序
	Timing           Timing  // 配时
	Checkpoints      []int32 // 预测时间点（秒）
}

// Forecast 绿灯方向预测
// 功能：不修改调度器状态，按固定时长轮转直接计算各时间点的绿灯方向
// 参数：in-预测输入
// 返回：与Checkpoints一一对应的预测结果；Current不在轮转中时返回空
// 算法说明：
// 1. 当前方向剩余绿灯时间（黄灯时视为0）加黄灯时长，即下一个方向开始绿灯的时间R
// 2. 目标时间T减去R得到t；t<0时T仍在当前方向的剩余窗口内，预测为当前方向；t=0时为下一个方向
// 3. 整轮时间 = 方向数 × 单方向周期，整轮数completeCycles = t / 整轮时间，余数为remaining
// 4. 起始下标 = 下一个方向的下标 + completeCycles（对方向数取模）
// 5. 每消耗一个完整周期前进一个方向
// 6. 余下时间仍覆盖完整绿灯时长时，再前进一个方向
// 说明：整轮数直接叠加到下标上，方向数不整除整轮数时与逐步仿真不一致，
// 展示层应把预测视为参考值，允许±1个方向的误差
func Forecast(in ForecastInput) []Prediction {
	n := int32(len(in.Rotation))
	cur := int32(lo.IndexOf(in.Rotation, in.Current))
	if n == 0 || cur < 0 {
		return []Prediction{}
	}

	greenLeft := in.SecondsRemaining
	if in.Phase != Green {
		greenLeft = 0
	}
	remainingInCurrentCycle := greenLeft + in.Timing.Yellow
	cycle := in.Timing.Cycle()
	totalCycleTime := n * cycle
	next := (cur + 1) % n

	return lo.Map(in.Checkpoints, func(target int32, _ int) Prediction {
		p := Prediction{OffsetMinutes: target / 60}
		timeToTarget := target - remainingInCurrentCycle
		if timeToTarget < 0 {
			p.Direction = in.Rotation[cur]
			return p
		}
		completeCycles := timeToTarget / totalCycleTime
		remaining := timeToTarget % totalCycleTime
		index := (next + completeCycles) % n
		for remaining >= cycle {
			remaining -= cycle
			index = (index + 1) % n
		}
		if remaining >= in.Timing.Green {
			index = (index + 1) % n
		}
		p.Direction = in.Rotation[index]
		return p
	})
}
