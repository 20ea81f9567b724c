package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHubSubscribeNotify(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe("menus:1")
	defer cancel()

	// 通知送达
	h.Notify("menus:1")
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("未收到变更信号")
	}

	// 无关主题不送达
	h.Notify("menus:2")
	select {
	case <-ch:
		t.Fatal("收到了无关主题的信号")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubNotifyCoalesces(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe("orders:ABC123")
	defer cancel()

	// 连续多次通知合并为一个待消费信号，Notify 从不阻塞
	for i := 0; i < 10; i++ {
		h.Notify("orders:ABC123")
	}

	<-ch
	select {
	case <-ch:
		t.Fatal("信号未合并")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubCancel(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe("menus:1")

	// 取消后不再投递
	cancel()
	h.Notify("menus:1")
	select {
	case <-ch:
		t.Fatal("取消订阅后仍收到信号")
	case <-time.After(50 * time.Millisecond):
	}

	// 重复取消无副作用
	cancel()
}

func TestHubMultipleSubscribers(t *testing.T) {
	h := NewHub()
	ch1, cancel1 := h.Subscribe("orders:XYZ789")
	ch2, cancel2 := h.Subscribe("orders:XYZ789")
	defer cancel1()
	defer cancel2()

	h.Notify("orders:XYZ789")

	for _, ch := range []<-chan struct{}{ch1, ch2} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("存在未收到信号的订阅者")
		}
	}
}

func TestTopics(t *testing.T) {
	assert.Equal(t, "menus:42", MenuTopic(42))
	assert.Equal(t, "published:ABC123", PublishedTopic("ABC123"))
	assert.Equal(t, "orders:ABC123", OrderTopic("ABC123"))
}
