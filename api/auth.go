package api

import (
	"strings"

	"foodathome/config"
	"foodathome/database"
	"foodathome/middleware"
	"foodathome/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// AnonymousRequest 匿名登录请求
type AnonymousRequest struct {
	DeviceID string `json:"device_id" example:"8f14e45f-ceea-4e77-8c4d-8a1f6f2f0001"` // 可选，为空则分配新设备标识
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"papa_chef"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"password123"`
	Email    string `json:"email" binding:"omitempty,email" example:"chef@example.com"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"papa_chef"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token    string      `json:"token"`
	ChefInfo models.Chef `json:"chef_info"`
}

// UpdateProfileRequest 更新资料请求
type UpdateProfileRequest struct {
	Email string `json:"email" binding:"omitempty,email" example:"chef@example.com"`
}

// ProfileResponse 厨师资料响应
type ProfileResponse struct {
	models.Chef
	IsAnonymous bool `json:"is_anonymous"` // 纯匿名账号提示前端引导注册
}

// Anonymous 匿名登录
// @Summary 匿名登录
// @Description 按设备标识登录：已知设备直接换取 token，未知/缺失设备标识则创建新的匿名厨师账号。同一设备始终得到同一账号。
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body AnonymousRequest false "设备标识（可选）"
// @Success 200 {object} Response{data=LoginResponse} "登录成功"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/v1/auth/anonymous [post]
func (h *AuthHandler) Anonymous(c *gin.Context) {
	var req AnonymousRequest
	_ = c.ShouldBindJSON(&req) // body 可为空

	deviceID := strings.TrimSpace(req.DeviceID)
	if _, err := uuid.Parse(deviceID); err != nil {
		// 非法或缺失的设备标识一律重新分配
		deviceID = uuid.NewString()
	}

	// 查找或创建匿名账号
	var chef models.Chef
	if err := database.DB.Where("device_id = ?", deviceID).First(&chef).Error; err != nil {
		chef = models.Chef{DeviceID: deviceID}
		if err := database.DB.Create(&chef).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "创建匿名账号失败"))
			return
		}
	}

	token, err := middleware.GenerateToken(chef.ID, chef.DeviceID, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	Success(c, LoginResponse{Token: token, ChefInfo: chef})
}

// Register 注册命名账号
// @Summary 用户注册
// @Description 注册用户名密码账号，方便跨设备登录。注册后仍可继续用原设备标识匿名登录。
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 200 {object} Response{data=models.Chef} "注册成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	// 检查用户名是否已存在
	var existing models.Chef
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		BadRequest(c, "用户名已存在")
		return
	}

	// 加密密码
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "密码加密失败")
		return
	}

	username := req.Username
	chef := models.Chef{
		DeviceID: uuid.NewString(),
		Username: &username,
		Password: string(hashedPassword),
		Email:    req.Email,
	}

	if err := database.DB.Create(&chef).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建账号失败"))
		return
	}

	SuccessWithMessage(c, "注册成功", chef)
}

// Login 用户登录
// @Summary 用户登录
// @Description 用户名密码登录，获取 JWT token
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} Response{data=LoginResponse} "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "用户名或密码错误"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	var chef models.Chef
	if err := database.DB.Where("username = ?", req.Username).First(&chef).Error; err != nil {
		Unauthorized(c, "用户名或密码错误")
		return
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(chef.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "用户名或密码错误")
		return
	}

	token, err := middleware.GenerateToken(chef.ID, chef.DeviceID, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	Success(c, LoginResponse{Token: token, ChefInfo: chef})
}

// GetProfile 获取当前厨师信息
// @Summary 获取当前厨师信息
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=ProfileResponse} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	chefID := middleware.GetCurrentChefID(c)

	var chef models.Chef
	if err := database.DB.First(&chef, chefID).Error; err != nil {
		NotFound(c, "账号不存在")
		return
	}

	Success(c, ProfileResponse{Chef: chef, IsAnonymous: chef.IsAnonymous()})
}

// UpdateProfile 更新资料
// @Summary 更新资料
// @Description 更新邮箱（用于接收新订单提醒邮件）
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "资料"
// @Success 200 {object} Response{data=models.Chef} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	chefID := middleware.GetCurrentChefID(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	var chef models.Chef
	if err := database.DB.First(&chef, chefID).Error; err != nil {
		NotFound(c, "账号不存在")
		return
	}

	if err := database.DB.Model(&chef).Update("email", req.Email).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	database.DB.First(&chef, chef.ID)
	SuccessWithMessage(c, "更新成功", chef)
}
