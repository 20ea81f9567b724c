package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"foodathome/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "chef_id", "name", "code", "categories", "items", "created_at", "updated_at", "deleted_at"})
}

func TestMenuHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	// 菜单码查重：无撞码
	mock.ExpectQuery("SELECT count.* FROM `published_menus`").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	// 写入私有菜单
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `menus`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// 立即发布公开投影
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `published_menus`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setChefIDMiddleware(1))
	router.POST("/menus", NewMenuHandler(cfg).Create)

	body := `{"name":"周末晚餐"}`
	req := httptest.NewRequest("POST", "/menus", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp["message"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "周末晚餐", data["name"])
	assert.Regexp(t, "^[A-Z0-9]{6}$", data["code"])

	// 新菜单自带一个默认分类
	categories := data["categories"].([]interface{})
	require.Len(t, categories, 1)
	assert.Equal(t, "Drinks", categories[0].(map[string]interface{})["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuHandler_Create_BlankName(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	router := gin.New()
	router.Use(setChefIDMiddleware(1))
	router.POST("/menus", NewMenuHandler(cfg).Create)

	// 仅空白字符的菜单名拒绝创建
	body := `{"name":"   "}`
	req := httptest.NewRequest("POST", "/menus", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "菜单名不能为空", resp["message"])
}

func TestMenuHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `menus`").
		WithArgs(uint(1)).
		WillReturnRows(menuRows().
			AddRow(2, 1, "午餐", "XYZ789", `[]`, `[]`, time.Now(), time.Now(), nil).
			AddRow(1, 1, "周末晚餐", "ABC123", `[{"id":"c1","name":"Drinks"}]`, `[]`, time.Now(), time.Now(), nil))

	router := gin.New()
	router.Use(setChefIDMiddleware(1))
	router.GET("/menus", NewMenuHandler(cfg).List)

	req := httptest.NewRequest("GET", "/menus", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	menus := resp["data"].([]interface{})
	require.Len(t, menus, 2)
	assert.Equal(t, "XYZ789", menus[0].(map[string]interface{})["code"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuHandler_Get_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	// 其他厨师的菜单按不存在处理
	mock.ExpectQuery("SELECT .* FROM `menus`").
		WithArgs(uint64(99), uint(1)).
		WillReturnRows(menuRows())

	router := gin.New()
	router.Use(setChefIDMiddleware(1))
	router.GET("/menus/:id", NewMenuHandler(cfg).Get)

	req := httptest.NewRequest("GET", "/menus/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuHandler_Update(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	// 归属校验
	mock.ExpectQuery("SELECT .* FROM `menus`").
		WithArgs(uint64(7), uint(1)).
		WillReturnRows(menuRows().
			AddRow(7, 1, "周末晚餐", "ABC123", `[{"id":"c1","name":"Drinks"}]`, `[]`, time.Now(), time.Now(), nil))

	// 更新菜品
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `menus`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// 重新读取落库后的菜单
	mock.ExpectQuery("SELECT .* FROM `menus`").
		WithArgs(uint(7)).
		WillReturnRows(menuRows().
			AddRow(7, 1, "周末晚餐", "ABC123", `[{"id":"c1","name":"Drinks"}]`,
				`[{"id":"i1","name":"Coke","price":2.5,"category_id":"c1"}]`, time.Now(), time.Now(), nil))

	// 编辑后重新发布公开投影
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `published_menus`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setChefIDMiddleware(1))
	router.PUT("/menus/:id", NewMenuHandler(cfg).Update)

	body := `{"items":[{"id":"i1","name":"Coke","price":2.5,"category_id":"c1"}]}`
	req := httptest.NewRequest("PUT", "/menus/7", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "更新成功", resp["message"])
	data := resp["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Coke", items[0].(map[string]interface{})["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := testConfig()
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `menus`").
		WithArgs(uint64(7), uint(1)).
		WillReturnRows(menuRows().
			AddRow(7, 1, "周末晚餐", "ABC123", `[]`, `[]`, time.Now(), time.Now(), nil))

	// 级联：私有菜单软删除 -> 公开投影删除 -> 订单删除
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `menus` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `published_menus`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `orders`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setChefIDMiddleware(1))
	router.DELETE("/menus/:id", NewMenuHandler(cfg).Delete)

	req := httptest.NewRequest("DELETE", "/menus/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "删除成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}
