package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// MenuCategory 菜单分类（嵌入菜单的 JSON 列，保持录入顺序）
type MenuCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MenuItem 菜品（嵌入菜单的 JSON 列）
type MenuItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"category_id"`
}

// MenuCategories JSON 列类型
type MenuCategories []MenuCategory

// Value 实现 driver.Valuer，序列化为 JSON 存储
func (m MenuCategories) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner，空值解析为空列表
func (m *MenuCategories) Scan(value interface{}) error {
	return scanJSONList(value, m)
}

// MenuItems JSON 列类型
type MenuItems []MenuItem

// Value 实现 driver.Valuer，序列化为 JSON 存储
func (m MenuItems) Value() (driver.Value, error) {
	if m == nil {
		return "[]", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner，空值解析为空列表
func (m *MenuItems) Scan(value interface{}) error {
	return scanJSONList(value, m)
}

// scanJSONList 统一的 JSON 列反序列化，NULL/空串按空列表处理
func scanJSONList(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("无法解析 JSON 列: %T", value)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}

// Menu 私有菜单模型，仅归属厨师可见、可修改
// Code 在创建时生成，之后不可变，是公开投影和订单的外键
type Menu struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	ChefID     uint           `json:"chef_id" gorm:"index;not null"`
	Name       string         `json:"name" gorm:"size:100;not null"`
	Code       string         `json:"code" gorm:"size:6;not null;index"` // 6位大写字母数字菜单码
	Categories MenuCategories `json:"categories" gorm:"type:json"`
	Items      MenuItems      `json:"items" gorm:"type:json"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Menu) TableName() string {
	return "menus"
}
