package routes

import (
	"VCS_Node_Automation/internal/automation-service/api/handler"
	"VCS_Node_Automation/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func SetUpHostRoutes(r *gin.Engine, handler handler.HostHandler, m middleware.AuthMiddleware) {
	hostRoutes := r.Group("/hosts")
	hostRoutes.POST("", m.CheckUserPermission(ScopeNodesCreate), handler.CreateHost())
	hostRoutes.GET("", m.CheckUserPermission(ScopeNodesRead), handler.GetHosts())
	hostRoutes.POST("/import", m.CheckUserPermission(ScopeNodesCreate), handler.ImportHosts())
	hostRoutes.PATCH("/:id", m.CheckUserPermission(ScopeNodesUpdate), handler.UpdateHost())
	hostRoutes.DELETE("/:id", m.CheckUserPermission(ScopeNodesDelete), handler.DeleteHost())
}
