package models

import "time"

// Preference 厨师端 UI 偏好（草稿菜单名、上次选中的菜单等）
// 纯便利数据，非权威状态，丢失无影响
type Preference struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ChefID    uint      `json:"chef_id" gorm:"not null;uniqueIndex:idx_pref_chef_key"`
	Key       string    `json:"key" gorm:"size:50;not null;uniqueIndex:idx_pref_chef_key"`
	Value     string    `json:"value" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 设置表名
func (Preference) TableName() string {
	return "preferences"
}
