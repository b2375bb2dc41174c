package trafficlight

// 红灯倒计时同步：所有红灯共享同一个倒计时值，由调度器在每步中写入

// resetCountdown 相位切换时重置共享倒计时
func (rt *runtime) resetCountdown(v int32) {
	rt.countdown = v
}

// decrementCountdown 普通步（无相位切换）倒计时减1，最小为0
func (rt *runtime) decrementCountdown() {
	rt.countdown = max(0, rt.countdown-1)
}

// syncRed 将共享倒计时写入所有红灯
func (rt *runtime) syncRed() {
	for i := range rt.lights {
		if rt.lights[i].Phase == Red {
			rt.lights[i].SecondsRemaining = rt.countdown
		}
	}
}
