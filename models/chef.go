package models

import (
	"time"

	"gorm.io/gorm"
)

// Chef 厨师账号模型
// 默认是匿名会话：首次访问时按 device_id 创建，之后凭同一 device_id 换取 token。
// 也可选择注册用户名密码，方便跨设备登录。
type Chef struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	DeviceID  string         `json:"device_id" gorm:"uniqueIndex;size:36;not null"` // 匿名设备标识（UUID）
	Username  *string        `json:"username,omitempty" gorm:"uniqueIndex;size:50"` // NULL 表示纯匿名账号
	Password  string         `json:"-" gorm:"size:255"`
	Email     string         `json:"email" gorm:"size:100"` // 可选，用于新订单邮件提醒
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Chef) TableName() string {
	return "chefs"
}

// IsAnonymous 是否纯匿名账号（未注册用户名）
func (c *Chef) IsAnonymous() bool {
	return c.Username == nil || *c.Username == ""
}
