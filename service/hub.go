package service

import (
	"fmt"
	"sync"
)

// Hub 进程内的变更通知中心
// 每次数据写入后按主题发出信号，watch 接口收到信号后重新查询完整结果集推送，
// 订阅方拿到的永远是全量快照而非增量。
// 信号通道带 1 个缓冲：连续写入会合并成一次通知，订阅方不会被写入速度拖垮。
type Hub struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[string]map[uint64]chan struct{}
}

// NewHub 创建通知中心
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[uint64]chan struct{})}
}

// DefaultHub 全局通知中心实例
var DefaultHub = NewHub()

// Subscribe 订阅主题，返回信号通道和取消函数
// 取消是同步且无条件的：返回后不会再有新的信号投递
func (h *Hub) Subscribe(topic string) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan struct{}, 1)

	if h.subs[topic] == nil {
		h.subs[topic] = make(map[uint64]chan struct{})
	}
	h.subs[topic][id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if m, ok := h.subs[topic]; ok {
			delete(m, id)
			if len(m) == 0 {
				delete(h.subs, topic)
			}
		}
	}
	return ch, cancel
}

// Notify 向主题的所有订阅者发出信号，从不阻塞
func (h *Hub) Notify(topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[topic] {
		select {
		case ch <- struct{}{}:
		default:
			// 已有未消费的信号，合并
		}
	}
}

// MenuTopic 厨师菜单列表的变更主题
func MenuTopic(chefID uint) string {
	return fmt.Sprintf("menus:%d", chefID)
}

// PublishedTopic 公开菜单的变更主题
func PublishedTopic(code string) string {
	return "published:" + code
}

// OrderTopic 按菜单码的订单变更主题
func OrderTopic(code string) string {
	return "orders:" + code
}
