package api

import (
	"encoding/json"
	"log"

	"foodathome/service"

	"github.com/gin-gonic/gin"
)

// sseFrame watch 接口的推送帧
// 每一帧都是当前完整结果集的快照，消费方整体替换本地状态，不做增量合并
type sseFrame struct {
	Type string      `json:"type"` // snapshot
	Data interface{} `json:"data"`
}

func writeSSEJSON(c *gin.Context, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_, _ = c.Writer.WriteString("data: " + string(b) + "\n\n")
	c.Writer.Flush()
}

// streamSnapshots 通用的 SSE 快照推送循环
// 连接建立时先推一帧当前快照，之后每收到一次主题变更信号就重查全量并再推一帧。
// 客户端断开（EventSource.close / 页面跳转）时同步取消订阅，不再有任何投递。
// 查询失败仅记录日志，客户端保留上一帧的状态。
func streamSnapshots(c *gin.Context, topic string, query func() (interface{}, error)) {
	// SSE响应头
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	push := func() {
		data, err := query()
		if err != nil {
			log.Printf("watch 查询失败 (topic=%s): %v", topic, err)
			return
		}
		writeSSEJSON(c, sseFrame{Type: "snapshot", Data: data})
	}

	// 先订阅再推初始快照：初始查询期间发生的变更会留在信号通道里，
	// 循环第一轮就能补推，不会丢
	ch, cancel := service.DefaultHub.Subscribe(topic)
	defer cancel()

	push()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			push()
		}
	}
}
