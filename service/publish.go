package service

import (
	"log"
	"time"

	"foodathome/database"
	"foodathome/models"

	"gorm.io/gorm/clause"
)

// Publish 发布流程：把私有菜单投影为公开菜单
// 纯投影：拷贝名称、菜单码、分类、菜品，附带归属厨师和私有菜单回指，刷新更新时间。
// 以菜单码为主键整体覆盖写入，重复发布同一快照除时间戳外结果一致。
// 关键字段缺失时记录日志并跳过，防御半成品输入。
func Publish(menu *models.Menu) error {
	if menu == nil || menu.Code == "" || menu.ChefID == 0 || menu.ID == 0 {
		log.Printf("发布流程: 菜单关键字段缺失，跳过发布 (menu=%+v)", menu)
		return nil
	}

	categories := menu.Categories
	if categories == nil {
		categories = models.MenuCategories{}
	}
	items := menu.Items
	if items == nil {
		items = models.MenuItems{}
	}

	published := models.PublishedMenu{
		Code:       menu.Code,
		Name:       menu.Name,
		ChefID:     menu.ChefID,
		MenuID:     menu.ID,
		Categories: categories,
		Items:      items,
		UpdatedAt:  time.Now(),
	}

	if err := database.DB.
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&published).Error; err != nil {
		log.Printf("发布菜单 %s 失败: %v", menu.Code, err)
		return err
	}

	DefaultHub.Notify(PublishedTopic(menu.Code))
	return nil
}

// DeleteMenuCascade 删除私有菜单并级联清理公开投影和订单
// 三步顺序执行、互不回滚：私有菜单删除失败则中止并返回错误；
// 后续的公开投影和订单清理失败仅记录日志（残留数据不影响继续使用）。
func DeleteMenuCascade(menu *models.Menu) error {
	if err := database.DB.Delete(&models.Menu{}, menu.ID).Error; err != nil {
		log.Printf("删除菜单 %d 失败: %v", menu.ID, err)
		return err
	}

	if err := database.DB.
		Where("code = ?", menu.Code).
		Delete(&models.PublishedMenu{}).Error; err != nil {
		log.Printf("删除公开菜单 %s 失败: %v", menu.Code, err)
	}

	if err := database.DB.
		Where("menu_code = ?", menu.Code).
		Delete(&models.Order{}).Error; err != nil {
		log.Printf("级联删除菜单 %s 的订单失败: %v", menu.Code, err)
	}

	DefaultHub.Notify(MenuTopic(menu.ChefID))
	DefaultHub.Notify(PublishedTopic(menu.Code))
	DefaultHub.Notify(OrderTopic(menu.Code))
	return nil
}
