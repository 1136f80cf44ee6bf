package routes

import (
	"VCS_Node_Automation/internal/automation-service/api/handler"
	"VCS_Node_Automation/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func SetUpRotationRoutes(r *gin.Engine, handler handler.RotationHandler, m middleware.AuthMiddleware) {
	nodeRoutes := r.Group("/nodes/:id")
	nodeRoutes.POST("/rotation", m.CheckUserPermission(ScopeRotationUpdate), handler.AddToRotation())
	nodeRoutes.DELETE("/rotation", m.CheckUserPermission(ScopeRotationUpdate), handler.RemoveFromRotation())
	nodeRoutes.GET("/rotation/events", m.CheckUserPermission(ScopeNodesRead), handler.GetRotationEvents())
	nodeRoutes.GET("/haproxy/status", m.CheckUserPermission(ScopeNodesRead), handler.GetHaProxyStatus())
	nodeRoutes.GET("/haproxy/count", m.CheckUserPermission(ScopeNodesRead), handler.GetServerCount())
	nodeRoutes.GET("/haproxy/message", m.CheckUserPermission(ScopeNodesRead), handler.GetHaProxyMessage())

	r.POST("/haproxy/validate", m.CheckUserPermission(ScopeNodesRead), handler.CheckValidHaProxy())
	r.POST("/rotation/reports", m.CheckUserPermission(ScopeNodesRead), handler.ReportRotationStatus())
}
