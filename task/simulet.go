package task

import (
	"context"
	"flag"
	"time"
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 100, "心跳日志间隔步数")
)

// prepare 准备阶段，每步执行一次
// 算法说明：
// 1. 更新时钟：增加步数并计算当前时间
// 2. 心跳日志：定期输出系统状态信息
func (ctx *Context) prepare() {
	ctx.clock.Advance()

	if *heartBeatInterval > 0 && ctx.clock.InternalStep%int32(*heartBeatInterval) == 0 {
		snap := ctx.junction.Snapshot()
		log.Infof(
			"STEP: %d(%s) active direction %d, red countdown %d",
			ctx.clock.InternalStep, ctx.clock,
			snap.ActiveDirection(), snap.RedCountdown,
		)
	}
}

// update 更新阶段，每步执行一次
// 说明：路口先完成整步推进，展示层数据源再读取本步提交的状态
func (ctx *Context) update() {
	ctx.junction.Tick()
	ctx.feed.Update()
}

// Step 同步推进一步并通知回调
func (ctx *Context) Step() {
	ctx.prepare()
	ctx.update()
	snap := ctx.junction.Snapshot()
	for _, observer := range ctx.observers {
		observer(ctx.clock.InternalStep, snap)
	}
}

// Run 运行
// 功能：按配置的墙钟间隔驱动仿真，直到到达结束步、调用Close或ctx被取消
func (ctx *Context) Run(c context.Context) {
	interval := ctx.runtimeConfig.StepDuration()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Infof("job %s started at %s, interval %v", ctx.job, ctx.clock, interval)
	for !ctx.clock.Done() && !ctx.closed.Load() {
		select {
		case <-c.Done():
			log.Infof("job %s cancelled at step %d", ctx.job, ctx.clock.InternalStep)
			return
		case <-ticker.C:
			ctx.Step()
		}
	}
	log.Infof("engine complete")
}
