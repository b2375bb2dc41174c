package feed

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	notifyInterval = 8 // 通知间隔步数
	notifyKeep     = 3 // 保留的通知条数
)

// Notification 即将变绿的通知
type Notification struct {
	ID        string // 唯一标识
	Time      string // 产生时的仿真时间（HH:MM:SS）
	LightID   int32  // 即将变绿的信号灯
	Direction int32  // 即将变绿的方向
	Message   string
}

// notifier 通知生成器
// 功能：查找轮转中下一个方向的信号灯，生成"还有N秒变绿"的通知，只保留最新的几条
type notifier struct {
	items []Notification // 最新的在前
}

func (n *notifier) push(item Notification) {
	n.items = append([]Notification{item}, n.items...)
	if len(n.items) > notifyKeep {
		n.items = n.items[:notifyKeep]
	}
}

// update 产生一条通知
// 返回：是否产生了通知（下一个方向没有信号灯时不产生）
func (n *notifier) update(m *Manager) bool {
	snap := m.ctx.Junction().Snapshot()
	next := snap.NextDirection()
	light, ok := snap.LightOf(next)
	if !ok {
		return false
	}
	n.push(Notification{
		ID:        uuid.NewString(),
		Time:      m.ctx.Clock().String(),
		LightID:   light.ID,
		Direction: next,
		Message:   fmt.Sprintf("%s turns green in %d seconds", light.Name, snap.RedCountdown),
	})
	log.Debugf("notify: %s", n.items[0].Message)
	return true
}
