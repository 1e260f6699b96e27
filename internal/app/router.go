package app

import (
	"github.com/bimsrama/Relasi4warna-main/docs"
	"github.com/bimsrama/Relasi4warna-main/internal/config"
	"github.com/bimsrama/Relasi4warna-main/internal/middleware"
	"github.com/bimsrama/Relasi4warna-main/internal/model"
	"github.com/bimsrama/Relasi4warna-main/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerUserRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		auth := public.Group("/auth")
		{
			auth.POST("/register", c.auth.Register)
			auth.POST("/login", c.auth.Login)
			auth.POST("/forgot-password", c.auth.ForgotPassword)
			auth.POST("/reset-password", c.auth.ResetPassword)
		}

		// Archetype profiles and the question catalog are browsable without
		// an account so the landing page can render them.
		public.GET("/archetypes", c.quiz.GetArchetypes)
		public.GET("/archetypes/:name", c.quiz.GetArchetype)
		public.GET("/quiz/series", c.quiz.GetSeries)
		public.GET("/quiz/questions/:series", c.quiz.GetQuestions)

		compat := public.Group("/compatibility")
		{
			compat.GET("/matrix", c.compatibility.GetMatrix)
			compat.GET("/for/:name", c.compatibility.GetRanking)
			compat.GET("/share/card/:archetype1/:archetype2", c.compatibility.GetShareCard)
			compat.GET("/:archetype1/:archetype2", c.compatibility.GetPair)
		}

		public.GET("/share/card/:id", c.share.GetCard)
		public.GET("/share/data/:id", c.share.GetData)

		public.GET("/payments/products", c.payment.GetProducts)
		public.POST("/payments/webhook", c.payment.Webhook)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/profile", c.auth.UpdateProfile)

	quiz := rg.Group("/quiz")
	{
		quiz.POST("/start", c.quiz.StartAttempt)
		quiz.POST("/submit", c.quiz.SubmitAttempt)
		quiz.GET("/result/:id", c.quiz.GetResult)
		quiz.GET("/history", c.quiz.GetHistory)
	}

	payments := rg.Group("/payments")
	{
		payments.POST("/create", c.payment.CreatePayment)
		payments.POST("/simulate/:orderId", c.payment.SimulatePayment)
		payments.GET("/history", c.payment.GetHistory)
	}

	rg.POST("/reports/generate/:id", c.report.GenerateReport)
	rg.POST("/share/publish/:id", c.share.PublishCard)

	couples := rg.Group("/couples")
	{
		couples.POST("/create", c.couples.Create)
		couples.POST("/join/:code", c.couples.Join)
		couples.GET("/my-packs", c.couples.MyPacks)
		couples.POST("/:id/link-result", c.couples.LinkResult)
		couples.GET("/:id/comparison", c.couples.Comparison)
		couples.GET("/:id", c.couples.Get)
	}

	team := rg.Group("/team")
	{
		team.POST("/create", c.team.Create)
		team.POST("/join/:code", c.team.Join)
		team.GET("/my-packs", c.team.MyPacks)
		team.POST("/:id/invite", c.team.Invite)
		team.POST("/:id/link-result", c.team.LinkResult)
		team.POST("/:id/leave", c.team.Leave)
		team.GET("/:id/analysis", c.team.Analysis)
		team.GET("/:id", c.team.Get)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/stats", c.admin.GetStats)
		admin.GET("/users", c.admin.GetUsers)
		admin.GET("/results", c.admin.GetResults)

		admin.GET("/questions/:series", c.admin.GetQuestions)
		admin.POST("/questions", c.admin.CreateQuestion)
		admin.PUT("/questions/:id", c.admin.UpdateQuestion)
		admin.DELETE("/questions/:id", c.admin.DeleteQuestion)
	}
}
