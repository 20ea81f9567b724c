package api

import (
	"log"
	"strconv"
	"strings"

	"foodathome/config"
	"foodathome/database"
	"foodathome/middleware"
	"foodathome/models"
	"foodathome/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MenuHandler 菜单处理器
type MenuHandler struct {
	cfg *config.Config
}

// NewMenuHandler 创建菜单处理器
func NewMenuHandler(cfg *config.Config) *MenuHandler {
	return &MenuHandler{cfg: cfg}
}

// CreateMenuRequest 创建菜单请求
type CreateMenuRequest struct {
	Name string `json:"name" binding:"required" example:"周末晚餐"`
}

// UpdateMenuRequest 更新菜单请求
// 三个字段均可选，仅更新传入的字段；菜单码创建后不可修改
type UpdateMenuRequest struct {
	Name       *string                `json:"name"`
	Categories *models.MenuCategories `json:"categories"`
	Items      *models.MenuItems      `json:"items"`
}

// Create 创建菜单
// @Summary 创建菜单
// @Description 创建一个新菜单：生成 6 位菜单码（与现有公开菜单撞码时自动重新生成），附带一个默认分类，同时发布公开投影供家人访问
// @Tags 菜单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMenuRequest true "菜单信息"
// @Success 200 {object} Response{data=models.Menu} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/menus [post]
func (h *MenuHandler) Create(c *gin.Context) {
	chefID := middleware.GetCurrentChefID(c)

	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	// 菜单名不能为空白
	name := strings.TrimSpace(req.Name)
	if name == "" {
		BadRequest(c, "菜单名不能为空")
		return
	}

	code, err := service.UniqueMenuCode(h.cfg.App.CodeAttempts)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "生成菜单码失败"))
		return
	}

	menu := models.Menu{
		ChefID: chefID,
		Name:   name,
		Code:   code,
		Categories: models.MenuCategories{
			{ID: uuid.NewString(), Name: h.cfg.App.DefaultCategory},
		},
		Items: models.MenuItems{},
	}

	if err := database.DB.Create(&menu).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建菜单失败"))
		return
	}

	// 发布公开投影；失败不影响创建结果，下次更新时会重新发布
	if err := service.Publish(&menu); err != nil {
		log.Printf("创建菜单 %s 后发布失败: %v", menu.Code, err)
	}

	service.DefaultHub.Notify(service.MenuTopic(chefID))
	SuccessWithMessage(c, "创建成功", menu)
}

// List 获取菜单列表
// @Summary 获取菜单列表
// @Description 获取当前厨师的全部菜单
// @Tags 菜单
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Menu} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/menus [get]
func (h *MenuHandler) List(c *gin.Context) {
	chefID := middleware.GetCurrentChefID(c)

	var menus []models.Menu
	if err := database.DB.Where("chef_id = ?", chefID).
		Order("created_at DESC").Find(&menus).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, menus)
}

// Watch 订阅菜单列表变更（SSE）
// @Summary 订阅菜单列表变更
// @Description SSE 长连接：连接后立即推送当前全部菜单，之后每次变更推送完整的最新列表（全量快照，非增量）。页面跳转时客户端关闭连接即取消订阅。
// @Tags 菜单
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "SSE流：data: {\"type\":\"snapshot\",\"data\":[...]}"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/menus/watch [get]
func (h *MenuHandler) Watch(c *gin.Context) {
	chefID := middleware.GetCurrentChefID(c)

	streamSnapshots(c, service.MenuTopic(chefID), func() (interface{}, error) {
		var menus []models.Menu
		err := database.DB.Where("chef_id = ?", chefID).
			Order("created_at DESC").Find(&menus).Error
		return menus, err
	})
}

// Get 获取单个菜单
// @Summary 获取单个菜单
// @Tags 菜单
// @Produce json
// @Security BearerAuth
// @Param id path int true "菜单ID"
// @Success 200 {object} Response{data=models.Menu} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "菜单不存在"
// @Router /api/v1/menus/{id} [get]
func (h *MenuHandler) Get(c *gin.Context) {
	chefID := middleware.GetCurrentChefID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var menu models.Menu
	if err := database.DB.Where("id = ? AND chef_id = ?", id, chefID).First(&menu).Error; err != nil {
		NotFound(c, "菜单不存在")
		return
	}

	Success(c, menu)
}

// Update 更新菜单
// @Summary 更新菜单
// @Description 部分更新菜单的名称/分类/菜品，更新后重新发布公开投影，家人端随之刷新
// @Tags 菜单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "菜单ID"
// @Param request body UpdateMenuRequest true "更新字段"
// @Success 200 {object} Response{data=models.Menu} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "菜单不存在"
// @Router /api/v1/menus/{id} [put]
func (h *MenuHandler) Update(c *gin.Context) {
	chefID := middleware.GetCurrentChefID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var menu models.Menu
	if err := database.DB.Where("id = ? AND chef_id = ?", id, chefID).First(&menu).Error; err != nil {
		NotFound(c, "菜单不存在")
		return
	}

	var req UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	// 更新字段（菜单码不可变，不接受更新）
	updates := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			BadRequest(c, "菜单名不能为空")
			return
		}
		updates["name"] = name
	}
	if req.Categories != nil {
		updates["categories"] = *req.Categories
	}
	if req.Items != nil {
		updates["items"] = *req.Items
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&menu).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	}

	// 重新读取完整菜单后再发布，保证投影基于落库后的最新状态
	if err := database.DB.First(&menu, menu.ID).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "读取菜单失败"))
		return
	}
	if err := service.Publish(&menu); err != nil {
		log.Printf("更新菜单 %s 后发布失败: %v", menu.Code, err)
	}

	service.DefaultHub.Notify(service.MenuTopic(chefID))
	SuccessWithMessage(c, "更新成功", menu)
}

// Delete 删除菜单
// @Summary 删除菜单
// @Description 删除菜单及其公开投影，并级联删除该菜单码下的全部订单
// @Tags 菜单
// @Produce json
// @Security BearerAuth
// @Param id path int true "菜单ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "菜单不存在"
// @Router /api/v1/menus/{id} [delete]
func (h *MenuHandler) Delete(c *gin.Context) {
	chefID := middleware.GetCurrentChefID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var menu models.Menu
	if err := database.DB.Where("id = ? AND chef_id = ?", id, chefID).First(&menu).Error; err != nil {
		NotFound(c, "菜单不存在")
		return
	}

	if err := service.DeleteMenuCascade(&menu); err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
