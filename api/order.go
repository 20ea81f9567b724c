package api

import (
	"log"
	"strings"

	"foodathome/config"
	"foodathome/database"
	"foodathome/models"
	"foodathome/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler 订单处理器（家人端公开接口）
type OrderHandler struct {
	cfg          *config.Config
	emailService *service.EmailService
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		cfg:          cfg,
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// SubmitOrderRequest 提交订单请求
type SubmitOrderRequest struct {
	Orderer string             `json:"orderer" binding:"required" example:"小明"`
	Items   []models.OrderItem `json:"items" binding:"required,min=1,dive"`
}

// normalizeCode 统一菜单码输入：去空格、转大写
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// GetPublishedMenu 按菜单码获取公开菜单
// @Summary 获取公开菜单
// @Description 家人凭 6 位菜单码查看菜单，无需登录
// @Tags 点餐
// @Produce json
// @Param code path string true "菜单码" example(ABC123)
// @Success 200 {object} Response{data=models.PublishedMenu} "获取成功"
// @Failure 400 {object} Response "菜单码格式错误"
// @Failure 404 {object} Response "菜单不存在"
// @Router /api/v1/public/menus/{code} [get]
func (h *OrderHandler) GetPublishedMenu(c *gin.Context) {
	code := normalizeCode(c.Param("code"))
	if !service.IsValidMenuCode(code) {
		BadRequest(c, "菜单码格式错误，应为 6 位大写字母或数字")
		return
	}

	var menu models.PublishedMenu
	if err := database.DB.Where("code = ?", code).First(&menu).Error; err != nil {
		NotFound(c, "菜单不存在，请确认菜单码")
		return
	}

	Success(c, menu)
}

// WatchPublishedMenu 订阅公开菜单变更（SSE）
// @Summary 订阅公开菜单变更
// @Description SSE 长连接：厨师每次编辑菜单后推送最新的完整公开菜单
// @Tags 点餐
// @Produce text/event-stream
// @Param code path string true "菜单码" example(ABC123)
// @Success 200 {string} string "SSE流"
// @Failure 400 {object} Response "菜单码格式错误"
// @Router /api/v1/public/menus/{code}/watch [get]
func (h *OrderHandler) WatchPublishedMenu(c *gin.Context) {
	code := normalizeCode(c.Param("code"))
	if !service.IsValidMenuCode(code) {
		BadRequest(c, "菜单码格式错误，应为 6 位大写字母或数字")
		return
	}

	streamSnapshots(c, service.PublishedTopic(code), func() (interface{}, error) {
		var menu models.PublishedMenu
		if err := database.DB.Where("code = ?", code).First(&menu).Error; err != nil {
			// 菜单已删除时推送空对象，家人端据此提示"菜单不存在"
			return nil, nil
		}
		return menu, nil
	})
}

// Submit 提交订单
// @Summary 提交订单
// @Description 家人按菜单码提交订单。不校验菜单码是否对应已发布菜单：过期或输错的码仍会生成订单。总价按行项目（数量 × 单价）在服务端计算后存储。
// @Tags 点餐
// @Accept json
// @Produce json
// @Param code path string true "菜单码" example(ABC123)
// @Param request body SubmitOrderRequest true "订单信息"
// @Success 200 {object} Response{data=models.Order} "下单成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/public/menus/{code}/orders [post]
func (h *OrderHandler) Submit(c *gin.Context) {
	code := normalizeCode(c.Param("code"))
	if !service.IsValidMenuCode(code) {
		BadRequest(c, "菜单码格式错误，应为 6 位大写字母或数字")
		return
	}

	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	orderer := strings.TrimSpace(req.Orderer)
	if orderer == "" {
		BadRequest(c, "请填写下单人昵称")
		return
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item.Name) == "" || item.Quantity <= 0 {
			BadRequest(c, "订单行项目不完整")
			return
		}
	}

	order := models.Order{
		MenuCode: code,
		Orderer:  orderer,
		Items:    models.OrderItems(req.Items),
		Total:    models.ComputeOrderTotal(req.Items),
	}

	if err := database.DB.Create(&order).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "下单失败"))
		return
	}

	service.DefaultHub.Notify(service.OrderTopic(code))

	// 邮件提醒厨师，异步发送，失败仅记录
	if h.cfg.Email.Enabled {
		go h.notifyChef(code, order)
	}

	SuccessWithMessage(c, "下单成功", order)
}

// notifyChef 给菜单归属厨师发送新订单提醒
func (h *OrderHandler) notifyChef(code string, order models.Order) {
	var menu models.PublishedMenu
	if err := database.DB.Where("code = ?", code).First(&menu).Error; err != nil {
		// 孤儿订单没有归属菜单，无人可提醒
		return
	}
	var chef models.Chef
	if err := database.DB.First(&chef, menu.ChefID).Error; err != nil || chef.Email == "" {
		return
	}
	if err := h.emailService.SendOrderNotification(chef.Email, menu.Name, &order); err != nil {
		log.Printf("新订单邮件提醒失败 (code=%s): %v", code, err)
	}
}

// List 获取订单列表
// @Summary 获取订单列表
// @Description 按菜单码获取全部订单（按下单时间倒序）
// @Tags 点餐
// @Produce json
// @Param code path string true "菜单码" example(ABC123)
// @Success 200 {object} Response{data=[]models.Order} "获取成功"
// @Failure 400 {object} Response "菜单码格式错误"
// @Router /api/v1/public/menus/{code}/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	code := normalizeCode(c.Param("code"))
	if !service.IsValidMenuCode(code) {
		BadRequest(c, "菜单码格式错误，应为 6 位大写字母或数字")
		return
	}

	var orders []models.Order
	if err := database.DB.Where("menu_code = ?", code).
		Order("created_at DESC").Find(&orders).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, orders)
}

// Watch 订阅订单变更（SSE）
// @Summary 订阅订单变更
// @Description SSE 长连接：每有新订单（或级联删除）推送该菜单码下的完整订单列表（全量快照，非增量）
// @Tags 点餐
// @Produce text/event-stream
// @Param code path string true "菜单码" example(ABC123)
// @Success 200 {string} string "SSE流：data: {\"type\":\"snapshot\",\"data\":[...]}"
// @Failure 400 {object} Response "菜单码格式错误"
// @Router /api/v1/public/menus/{code}/orders/watch [get]
func (h *OrderHandler) Watch(c *gin.Context) {
	code := normalizeCode(c.Param("code"))
	if !service.IsValidMenuCode(code) {
		BadRequest(c, "菜单码格式错误，应为 6 位大写字母或数字")
		return
	}

	streamSnapshots(c, service.OrderTopic(code), func() (interface{}, error) {
		var orders []models.Order
		err := database.DB.Where("menu_code = ?", code).
			Order("created_at DESC").Find(&orders).Error
		return orders, err
	})
}
