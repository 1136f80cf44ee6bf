package routes

import (
	"VCS_Node_Automation/internal/automation-service/api/handler"
	"VCS_Node_Automation/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func SetUpTopologyRoutes(r *gin.Engine, handler handler.TopologyHandler, m middleware.AuthMiddleware) {
	locationRoutes := r.Group("/locations")
	locationRoutes.POST("", m.CheckUserPermission(ScopeNodesCreate), handler.CreateLocation())
	locationRoutes.GET("", m.CheckUserPermission(ScopeNodesRead), handler.GetLocations())
	locationRoutes.DELETE("/:id", m.CheckUserPermission(ScopeNodesDelete), handler.DeleteLocation())

	chainRoutes := r.Group("/chains")
	chainRoutes.POST("", m.CheckUserPermission(ScopeNodesCreate), handler.CreateChain())
	chainRoutes.GET("", m.CheckUserPermission(ScopeNodesRead), handler.GetChains())
	chainRoutes.PATCH("/:id", m.CheckUserPermission(ScopeNodesUpdate), handler.UpdateChain())
}
