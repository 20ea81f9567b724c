package database

import (
	"fmt"
	"log"

	"foodathome/config"
	"foodathome/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
func Init(cfg *config.Config) error {
	// 构建 MySQL DSN 连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)  // 最大空闲连接数
	sqlDB.SetMaxOpenConns(100) // 最大打开连接数

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.Chef{},
		&models.Menu{},
		&models.PublishedMenu{},
		&models.Order{},
		&models.Preference{},
	); err != nil {
		return err
	}

	// 兼容历史数据：早期版本的菜单没有公开投影，启动时补发布一次
	var unpublished []models.Menu
	if err := DB.
		Where("code != '' AND code NOT IN (?)",
			DB.Model(&models.PublishedMenu{}).Select("code")).
		Find(&unpublished).Error; err == nil {
		for _, m := range unpublished {
			pm := models.PublishedMenu{
				Code:       m.Code,
				Name:       m.Name,
				ChefID:     m.ChefID,
				MenuID:     m.ID,
				Categories: m.Categories,
				Items:      m.Items,
			}
			if err := DB.Create(&pm).Error; err != nil {
				log.Printf("警告: 补发布菜单 %s 失败: %v", m.Code, err)
			}
		}
		if len(unpublished) > 0 {
			log.Printf("已补发布 %d 个历史菜单", len(unpublished))
		}
	}

	log.Println("数据库初始化成功")
	return nil
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
