package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// OrderItem 订单行项目（嵌入订单的 JSON 列）
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"` // 下单时的单价快照
}

// OrderItems JSON 列类型
type OrderItems []OrderItem

// Value 实现 driver.Valuer，序列化为 JSON 存储
func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	b, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner，空值解析为空列表
func (o *OrderItems) Scan(value interface{}) error {
	return scanJSONList(value, o)
}

// Order 订单模型
// MenuCode 关联公开菜单的菜单码（而非私有菜单 ID），提交后不再修改，
// 仅在归属菜单被删除时级联删除。
type Order struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	MenuCode  string     `json:"menu_code" gorm:"size:6;not null;index"`
	Orderer   string     `json:"orderer" gorm:"size:50;not null"` // 下单人昵称
	Items     OrderItems `json:"items" gorm:"type:json"`
	Total     float64    `json:"total" gorm:"type:decimal(10,2)"`
	CreatedAt time.Time  `json:"created_at"`
}

// TableName 设置表名
func (Order) TableName() string {
	return "orders"
}

// ComputeOrderTotal 计算订单总价：Σ 数量 × 单价
// 不做四舍五入，两位小数的展示交给前端
func ComputeOrderTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}
