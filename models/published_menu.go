package models

import "time"

// PublishedMenu 菜单的公开投影，家人凭菜单码访问
// 以 Code 作为主键：一个菜单码对应至多一份公开菜单。
// 每次私有菜单创建/修改时由发布流程整体覆盖写入，删除菜单时一并删除。
type PublishedMenu struct {
	Code       string         `json:"code" gorm:"primaryKey;size:6"`
	Name       string         `json:"name" gorm:"size:100;not null"`
	ChefID     uint           `json:"chef_id" gorm:"index;not null"`
	MenuID     uint           `json:"menu_id" gorm:"index;not null"` // 回指私有菜单
	Categories MenuCategories `json:"categories" gorm:"type:json"`
	Items      MenuItems      `json:"items" gorm:"type:json"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// TableName 设置表名
func (PublishedMenu) TableName() string {
	return "published_menus"
}
