package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pinshop/pinshop-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.GET("/totaux", controllers.GetTotaux)
}
