package feed

import (
	"sync"

	"github.com/traffictimer/intersection-sim/entity"
	"github.com/traffictimer/intersection-sim/entity/junction/trafficlight"
	"github.com/traffictimer/intersection-sim/utils/randengine"
)

// Manager 展示层数据源管理器
// 功能：维护展示层当前选中的信号灯，并在选中期间产生即将变绿通知与模拟车速
// 说明：Update只在仿真步中调用；Select、Deselect与读接口可在仿真运行期间从其他goroutine调用，
// 它们只读取路口已发布的snapshot，不读取时钟
type Manager struct {
	ctx entity.ITaskContext

	mtx         sync.RWMutex
	selected    *trafficlight.SignalLight // 当前选中的信号灯（选中时的快照）
	selectedAt  uint64                    // 选中时的snapshot版本，每步加1
	notifier    notifier
	speedometer speedometer
}

// NewManager 创建展示层数据源管理器
// 参数：ctx-任务上下文，seed-模拟车速的随机种子
func NewManager(ctx entity.ITaskContext, seed uint64) *Manager {
	return &Manager{
		ctx:         ctx,
		speedometer: speedometer{generator: randengine.New(seed)},
	}
}

// Select 选中信号灯（进入详情视图）
// 返回：选中时的信号灯快照；信号灯不存在时返回error
func (m *Manager) Select(id int32) (trafficlight.SignalLight, error) {
	if _, err := m.ctx.Junction().SelectLight(id); err != nil {
		return trafficlight.SignalLight{}, err
	}
	snap := m.ctx.Junction().Snapshot()
	l, _ := snap.Light(id)
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.selected = &l
	m.selectedAt = snap.Version
	log.Infof("light %d (%s) selected", l.ID, l.Name)
	return l, nil
}

// Deselect 取消选中（返回地图视图），清空模拟车速
func (m *Manager) Deselect() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.selected = nil
	m.speedometer.speed = 0
}

// Selected 当前选中的信号灯的最新状态
func (m *Manager) Selected() (trafficlight.SignalLight, bool) {
	m.mtx.RLock()
	selected := m.selected
	m.mtx.RUnlock()
	if selected == nil {
		return trafficlight.SignalLight{}, false
	}
	return m.ctx.Junction().Snapshot().Light(selected.ID)
}

// Notifications 最新的通知（最新的在前）
func (m *Manager) Notifications() []Notification {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return append([]Notification(nil), m.notifier.items...)
}

// Speed 当前模拟车速（km/h），未选中信号灯时为0
func (m *Manager) Speed() int32 {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.speedometer.speed
}

// Update 更新阶段，在路口推进之后调用
// 功能：选中期间每speedInterval步刷新车速，每notifyInterval步产生一条通知
func (m *Manager) Update() {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	if m.selected == nil {
		return
	}
	version := m.ctx.Junction().Snapshot().Version
	if version <= m.selectedAt {
		return
	}
	elapsed := version - m.selectedAt
	if elapsed%speedInterval == 0 {
		m.speedometer.update()
	}
	if elapsed%notifyInterval == 0 {
		m.notifier.update(m)
	}
}
