package api

import (
	"net/http"

	"vidstream-backend/internal/user/delivery"
	userUsecase "vidstream-backend/internal/user/usecase"
	"vidstream-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, userUc userUsecase.UserUsecase, cfg *config.Config) {
	userHandler := delivery.NewUserHandler(userUc, cfg)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		users := api.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/refresh-token", userHandler.RefreshToken)

			// Secured routes
			users.POST("/logout", delivery.AuthMiddleware(userUc), userHandler.Logout)
			users.POST("/change-password", delivery.AuthMiddleware(userUc), userHandler.ChangePassword)
			users.GET("/me", delivery.AuthMiddleware(userUc), userHandler.Me)
			users.PATCH("/avatar", delivery.AuthMiddleware(userUc), userHandler.UpdateAvatar)
			users.PATCH("/cover-image", delivery.AuthMiddleware(userUc), userHandler.UpdateCoverImage)
		}
	}
}
