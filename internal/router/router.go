package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/guhdnews/lacqr-sub000/internal/auth"
	"github.com/guhdnews/lacqr-sub000/internal/lens"
	"github.com/guhdnews/lacqr-sub000/internal/menu"
	"github.com/guhdnews/lacqr-sub000/internal/middleware"
	"github.com/guhdnews/lacqr-sub000/internal/tech"
)

// Handlers carries everything the route table needs.
type Handlers struct {
	Auth *auth.Handler
	Menu *menu.Handler
	Tech *tech.Handler
	Lens *lens.Handler
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	onboarding := r.Group("/auth/onboarding")
	onboarding.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleTech, auth.RoleAdmin),
	)
	{
		onboarding.GET("", h.Auth.GetOnboarding)
		onboarding.PUT("", h.Auth.PutOnboarding)
	}

	// ───────────────────────── TECH ROUTES ─────────────────────────
	techs := r.Group("/techs")
	techs.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleTech, auth.RoleAdmin),
	)
	{
		techs.GET("/me", h.Tech.GetMe)
		techs.PUT("/me", h.Tech.PutMe)
	}

	// ───────────────────────── MENU ROUTES ─────────────────────────
	menus := r.Group("/menu")
	menus.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleTech, auth.RoleAdmin),
	)
	{
		menus.GET("", h.Menu.Get)
		menus.PUT("", h.Menu.Put)
	}

	// ───────────────────────── QUOTE ROUTES ─────────────────────────
	quotes := r.Group("/quotes")
	quotes.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleTech, auth.RoleAdmin),
	)
	{
		quotes.POST("/analyze", h.Lens.Analyze)
		quotes.POST("/estimate", h.Lens.Estimate)
		quotes.GET("", h.Lens.List)
		quotes.GET("/:id", h.Lens.Get)
		quotes.GET("/:id/status", h.Lens.Status)
		quotes.PATCH("/:id", h.Lens.Reprice)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.GET("/techs/pending", h.Tech.PendingTechs)
		admin.POST("/techs/:id/approve", h.Tech.ApproveTech)
	}

	return r
}
