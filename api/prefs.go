package api

import (
	"strings"

	"foodathome/database"
	"foodathome/middleware"
	"foodathome/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// PrefsHandler 偏好设置处理器
// 存放厨师端的 UI 便利数据（草稿菜单名、上次选中的菜单等），非权威状态
type PrefsHandler struct{}

// NewPrefsHandler 创建偏好设置处理器
func NewPrefsHandler() *PrefsHandler {
	return &PrefsHandler{}
}

// SetPrefRequest 写入偏好请求
type SetPrefRequest struct {
	Value string `json:"value" example:"draft-menu-name"`
}

// PrefResponse 偏好响应
type PrefResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Get 读取偏好
// @Summary 读取偏好
// @Description 读取指定键的偏好值；不存在时返回空值而非报错
// @Tags 偏好
// @Produce json
// @Security BearerAuth
// @Param key path string true "偏好键"
// @Success 200 {object} Response{data=PrefResponse} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/prefs/{key} [get]
func (h *PrefsHandler) Get(c *gin.Context) {
	chefID := middleware.GetCurrentChefID(c)
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		BadRequest(c, "偏好键不能为空")
		return
	}

	var pref models.Preference
	if err := database.DB.
		Where("chef_id = ? AND `key` = ?", chefID, key).
		First(&pref).Error; err != nil {
		// 缺失视为默认空值
		Success(c, PrefResponse{Key: key, Value: ""})
		return
	}

	Success(c, PrefResponse{Key: pref.Key, Value: pref.Value})
}

// Set 写入偏好
// @Summary 写入偏好
// @Description 写入（覆盖）指定键的偏好值
// @Tags 偏好
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "偏好键"
// @Param request body SetPrefRequest true "偏好值"
// @Success 200 {object} Response{data=PrefResponse} "写入成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/prefs/{key} [put]
func (h *PrefsHandler) Set(c *gin.Context) {
	chefID := middleware.GetCurrentChefID(c)
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		BadRequest(c, "偏好键不能为空")
		return
	}

	var req SetPrefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	pref := models.Preference{ChefID: chefID, Key: key, Value: req.Value}
	if err := database.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "chef_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&pref).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "写入失败"))
		return
	}

	Success(c, PrefResponse{Key: key, Value: req.Value})
}

// Delete 删除偏好
// @Summary 删除偏好
// @Tags 偏好
// @Produce json
// @Security BearerAuth
// @Param key path string true "偏好键"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/prefs/{key} [delete]
func (h *PrefsHandler) Delete(c *gin.Context) {
	chefID := middleware.GetCurrentChefID(c)
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		BadRequest(c, "偏好键不能为空")
		return
	}

	if err := database.DB.
		Where("chef_id = ? AND `key` = ?", chefID, key).
		Delete(&models.Preference{}).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
