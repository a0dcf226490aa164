package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pinshop/pinshop-api/controllers"
	"github.com/pinshop/pinshop-api/middlewares"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", middlewares.RequireAuth(), controllers.Logout)
		auth.POST("/register/seller", controllers.RegisterSeller)
		auth.POST("/register/client", controllers.RegisterClient)
	}
}
