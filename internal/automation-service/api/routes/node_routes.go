package routes

import (
	"VCS_Node_Automation/internal/automation-service/api/handler"
	"VCS_Node_Automation/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func SetUpNodeRoutes(r *gin.Engine, handler handler.NodeHandler, m middleware.AuthMiddleware) {
	nodeRoutes := r.Group("/nodes")
	nodeRoutes.POST("", m.CheckUserPermission(ScopeNodesCreate), handler.CreateNode())
	nodeRoutes.GET("", m.CheckUserPermission(ScopeNodesRead), handler.GetNodes())
	nodeRoutes.POST("/import", m.CheckUserPermission(ScopeNodesCreate), handler.ImportNodes())
	nodeRoutes.GET("/:id", m.CheckUserPermission(ScopeNodesRead), handler.GetNode())
	nodeRoutes.PATCH("/:id", m.CheckUserPermission(ScopeNodesUpdate), handler.UpdateNode())
	nodeRoutes.DELETE("/:id", m.CheckUserPermission(ScopeNodesDelete), handler.DeleteNode())
	nodeRoutes.POST("/:id/mute", m.CheckUserPermission(ScopeNodesUpdate), handler.MuteMonitor())
	nodeRoutes.POST("/:id/unmute", m.CheckUserPermission(ScopeNodesUpdate), handler.UnmuteMonitor())
}
