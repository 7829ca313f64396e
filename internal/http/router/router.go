package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mondedelice/bakery-backend/internal/config"
	"github.com/mondedelice/bakery-backend/internal/http/handlers"
	"github.com/mondedelice/bakery-backend/internal/http/middleware"
	"github.com/mondedelice/bakery-backend/internal/service"
)

// SetupRouter assemble toutes les routes de l'API. Les lectures du catalogue
// et le moteur de likes sont publics; toutes les mutations de contenu et le
// téléversement passent par le jeton admin.
func SetupRouter(
	cfg *config.Config,
	productHandler *handlers.ProductHandler,
	blogHandler *handlers.BlogHandler,
	likeHandler *handlers.LikeHandler,
	imageHandler *handlers.ImageHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
	wsHandler *handlers.WSHandler,
	tokenManager *service.TokenManager,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)
	r.StaticFS("/media", http.Dir(cfg.MediaStoragePath))

	api := r.Group("/api")

	// Routes publiques.
	api.GET("/products", productHandler.ListProducts)
	api.GET("/products/:id", productHandler.GetProduct)
	api.GET("/blogs", blogHandler.ListBlogs)
	api.GET("/blogs/:id", blogHandler.GetBlog)
	api.GET("/blogs/:id/like-status", likeHandler.LikeStatus)
	api.POST("/blogs/:id/like", likeHandler.AddLike)
	api.DELETE("/blogs/:id/like", likeHandler.RemoveLike)
	api.POST("/images/save", imageHandler.Save)
	api.GET("/ws", wsHandler.Handle)

	// Validation du mot de passe admin, freinée contre la force brute.
	validateRateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)
	api.POST("/admin/validate", validateRateLimit, adminHandler.ValidatePassword)

	// Routes protégées par le jeton admin.
	protected := api.Group("")
	protected.Use(middleware.AdminMiddleware(tokenManager))
	{
		protected.POST("/products", productHandler.CreateProduct)
		protected.PUT("/products/:id", productHandler.UpdateProduct)
		protected.DELETE("/products/:id", productHandler.DeleteProduct)

		protected.POST("/blogs", blogHandler.CreateBlog)
		protected.PUT("/blogs/:id", blogHandler.UpdateBlog)
		protected.DELETE("/blogs/:id", blogHandler.DeleteBlog)

		protected.GET("/admin/stats", adminHandler.Stats)
		protected.POST("/images/upload", imageHandler.Upload)
	}

	return r
}
