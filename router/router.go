package router

import (
	"io/fs"
	"net/http"
	"time"

	"foodathome/api"
	"foodathome/config"
	_ "foodathome/docs"
	"foodathome/middleware"
	"foodathome/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 嵌入的静态文件 - 单页应用外壳（页面状态由 location hash 驱动）
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "加载页面失败")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组
	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/anonymous", authHandler.Anonymous)
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", middleware.LoginRateLimit(10, time.Minute), authHandler.Login)
		}

		// 家人点餐公开接口（凭菜单码访问，无需登录）
		orderHandler := api.NewOrderHandler(cfg)
		public := v1.Group("/public/menus/:code")
		{
			public.GET("", orderHandler.GetPublishedMenu)
			public.GET("/watch", orderHandler.WatchPublishedMenu)
			public.GET("/orders", orderHandler.List)
			public.GET("/orders/watch", orderHandler.Watch)
			public.POST("/orders", middleware.OrderRateLimit(30, time.Minute), orderHandler.Submit)
		}

		// 需要 JWT 认证的厨师端路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			// 账号相关
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/profile", authHandler.UpdateProfile)

			// 菜单管理
			menuHandler := api.NewMenuHandler(cfg)
			menus := authorized.Group("/menus")
			{
				menus.POST("", menuHandler.Create)
				menus.GET("", menuHandler.List)
				menus.GET("/watch", menuHandler.Watch)
				menus.GET("/:id", menuHandler.Get)
				menus.PUT("/:id", menuHandler.Update)
				menus.DELETE("/:id", menuHandler.Delete)

				// 订单导出
				exportHandler := api.NewExportHandler()
				menus.GET("/:id/orders/export/csv", exportHandler.ExportCSV)
				menus.GET("/:id/orders/export/excel", exportHandler.ExportExcel)
			}

			// UI 偏好
			prefsHandler := api.NewPrefsHandler()
			prefs := authorized.Group("/prefs")
			{
				prefs.GET("/:key", prefsHandler.Get)
				prefs.PUT("/:key", prefsHandler.Set)
				prefs.DELETE("/:key", prefsHandler.Delete)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
