package service

import (
	"database/sql/driver"
	"testing"

	"foodathome/database"
	"foodathome/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func TestPublish(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 覆盖写入公开菜单（INSERT ... ON DUPLICATE KEY UPDATE）
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `published_menus`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	menu := &models.Menu{
		ID:     7,
		ChefID: 1,
		Name:   "周末晚餐",
		Code:   "ABC123",
		Categories: models.MenuCategories{
			{ID: "c1", Name: "Drinks"},
		},
		Items: models.MenuItems{
			{ID: "i1", Name: "Coke", Price: 2.5, CategoryID: "c1"},
		},
	}

	// 发布完成后通知公开菜单订阅者
	ch, cancel := DefaultHub.Subscribe(PublishedTopic("ABC123"))
	defer cancel()

	require.NoError(t, Publish(menu))
	require.NoError(t, mock.ExpectationsWereMet())

	select {
	case <-ch:
	default:
		t.Fatal("发布后未收到变更信号")
	}
}

func TestPublish_Idempotent(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	menu := &models.Menu{
		ID:     7,
		ChefID: 1,
		Name:   "周末晚餐",
		Code:   "ABC123",
		Categories: models.MenuCategories{
			{ID: "c1", Name: "Drinks"},
		},
		Items: models.MenuItems{
			{ID: "i1", Name: "Coke", Price: 2.5, CategoryID: "c1"},
		},
	}

	// 同一份菜单重复发布：两次覆盖写入除时间戳外逐列相同
	projectionArgs := []driver.Value{
		"ABC123", "周末晚餐", 1, 7,
		`[{"id":"c1","name":"Drinks"}]`,
		`[{"id":"i1","name":"Coke","price":2.5,"category_id":"c1"}]`,
		sqlmock.AnyArg(), // updated_at
	}
	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `published_menus`").
			WithArgs(projectionArgs...).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
	}

	require.NoError(t, Publish(menu))
	require.NoError(t, Publish(menu))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPublish_MissingFields(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	// 关键字段缺失时跳过发布，不触发任何写入
	assert.NoError(t, Publish(nil))
	assert.NoError(t, Publish(&models.Menu{ID: 1, ChefID: 1}))            // 无菜单码
	assert.NoError(t, Publish(&models.Menu{ID: 1, Code: "ABC123"}))       // 无归属厨师
	assert.NoError(t, Publish(&models.Menu{ChefID: 1, Code: "ABC123"}))   // 无菜单 ID
}

func TestDeleteMenuCascade(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 1. 私有菜单软删除
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `menus` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// 2. 公开投影删除
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `published_menus`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// 3. 订单级联删除
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `orders`").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	menu := &models.Menu{ID: 7, ChefID: 1, Name: "周末晚餐", Code: "ABC123"}

	menuCh, cancelMenu := DefaultHub.Subscribe(MenuTopic(1))
	defer cancelMenu()
	orderCh, cancelOrder := DefaultHub.Subscribe(OrderTopic("ABC123"))
	defer cancelOrder()

	require.NoError(t, DeleteMenuCascade(menu))
	require.NoError(t, mock.ExpectationsWereMet())

	select {
	case <-menuCh:
	default:
		t.Fatal("删除后未收到菜单变更信号")
	}
	select {
	case <-orderCh:
	default:
		t.Fatal("删除后未收到订单变更信号")
	}
}

func TestDeleteMenuCascade_PartialFailure(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 私有菜单删除成功
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `menus` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// 公开投影删除失败：仅记录日志，流程继续
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `published_menus`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	// 订单级联仍然执行
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `orders`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	menu := &models.Menu{ID: 8, ChefID: 2, Name: "午餐", Code: "XYZ789"}
	assert.NoError(t, DeleteMenuCascade(menu))
	require.NoError(t, mock.ExpectationsWereMet())
}
