package task

import (
	"sync/atomic"

	"github.com/traffictimer/intersection-sim/clock"
	"github.com/traffictimer/intersection-sim/entity"
	"github.com/traffictimer/intersection-sim/entity/feed"
	"github.com/traffictimer/intersection-sim/entity/junction"
	"github.com/traffictimer/intersection-sim/entity/junction/trafficlight"
	"github.com/traffictimer/intersection-sim/utils/config"
	"github.com/traffictimer/intersection-sim/utils/input"
)

// StepObserver 每步完成后的回调，接收本步提交的snapshot
type StepObserver func(step int32, snap *trafficlight.Snapshot)

// Context 仿真任务上下文
// 功能：包含一次仿真任务的所有变量和状态
// 说明：管理仿真系统的所有组件，包括时钟、路口、展示层数据源与配置
type Context struct {
	// 任务名
	job string
	// 关闭指令
	closed atomic.Bool

	// 时钟
	clock *clock.Clock

	// 路口
	junction *junction.Junction
	// 展示层数据源
	feed *feed.Manager

	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig

	// 用于初始化的输入
	initRes *input.Input

	observers []StepObserver
}

// NewContext 创建新的仿真任务上下文
// 功能：初始化仿真系统的所有组件和配置
// 参数：job-任务名称，c-配置对象
// 返回：初始化完成的Context实例；配置或布局非法时返回错误（启动致命）
// 算法说明：
// 1. 补全运行时配置
// 2. 初始化时钟
// 3. 加载路口布局
// 4. 创建路口与展示层数据源
func NewContext(job string, c config.Config) (*Context, error) {
	rc, err := config.NewRuntimeConfig(c)
	if err != nil {
		return nil, err
	}
	ctx := &Context{
		job:           job,
		runtimeConfig: rc,
		clock:         clock.New(rc.C.Step),
	}

	ctx.initRes, err = input.Init(c)
	if err != nil {
		return nil, err
	}
	ctx.junction, err = junction.New(ctx.initRes.Layout, rc)
	if err != nil {
		return nil, err
	}
	ctx.feed = feed.NewManager(ctx, uint64(ctx.initRes.Layout.ID))
	return ctx, nil
}

func (ctx *Context) GetInput() *input.Input {
	return ctx.initRes
}

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) Junction() entity.IJunction {
	return ctx.junction
}

func (ctx *Context) Feed() *feed.Manager {
	return ctx.feed
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

// OnStep 注册每步完成后的回调，需在Run之前调用
func (ctx *Context) OnStep(observer StepObserver) {
	ctx.observers = append(ctx.observers, observer)
}

// Close 停止仿真，Run在当前步完成后返回
func (ctx *Context) Close() {
	ctx.closed.Store(true)
}
