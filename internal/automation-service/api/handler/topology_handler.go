package handler

import (
	"VCS_Node_Automation/internal/automation-service/api/dto/request"
	"VCS_Node_Automation/internal/automation-service/api/dto/response"
	"VCS_Node_Automation/internal/automation-service/model"
	"VCS_Node_Automation/internal/automation-service/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TopologyHandler interface {
	CreateLocation() gin.HandlerFunc
	GetLocations() gin.HandlerFunc
	DeleteLocation() gin.HandlerFunc
	CreateChain() gin.HandlerFunc
	GetChains() gin.HandlerFunc
	UpdateChain() gin.HandlerFunc
}

type topologyHandler struct {
	topologyService service.TopologyService
	logger          Logger
}

func (t *topologyHandler) CreateLocation() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreateLocationRequest
		if !bindJSON(c, &req) {
			return
		}
		res, err := t.topologyService.CreateLocation(c, req.Name)
		if err != nil {
			respondError(c, t.logger, fmt.Errorf("TopologyHandler.CreateLocation: %w", err), "failed to create location")
			return
		}
		c.JSON(http.StatusCreated, toLocationResponse(res))
	}
}

func (t *topologyHandler) GetLocations() gin.HandlerFunc {
	return func(c *gin.Context) {
		locations, err := t.topologyService.GetLocations(c)
		if err != nil {
			respondError(c, t.logger, fmt.Errorf("TopologyHandler.GetLocations: %w", err), "failed to get locations")
			return
		}
		res := make([]response.LocationResponse, 0, len(locations))
		for _, location := range locations {
			res = append(res, toLocationResponse(location))
		}
		c.JSON(http.StatusOK, res)
	}
}

func (t *topologyHandler) DeleteLocation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := t.topologyService.DeleteLocation(c, id); err != nil {
			respondError(c, t.logger, fmt.Errorf("TopologyHandler.DeleteLocation: %w", err), fmt.Sprintf("failed to delete location %s", id))
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Location deleted",
		})
	}
}

func (t *topologyHandler) CreateChain() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreateChainRequest
		if !bindJSON(c, &req) {
			return
		}
		res, err := t.topologyService.CreateChain(c, model.ChainInput{
			Name:      req.Name,
			Type:      req.Type,
			ChainID:   req.ChainID,
			Allowance: req.Allowance,
		})
		if err != nil {
			respondError(c, t.logger, fmt.Errorf("TopologyHandler.CreateChain: %w", err), "failed to create chain")
			return
		}
		c.JSON(http.StatusCreated, toChainResponse(res))
	}
}

func (t *topologyHandler) GetChains() gin.HandlerFunc {
	return func(c *gin.Context) {
		chains, err := t.topologyService.GetChains(c)
		if err != nil {
			respondError(c, t.logger, fmt.Errorf("TopologyHandler.GetChains: %w", err), "failed to get chains")
			return
		}
		res := make([]response.ChainResponse, 0, len(chains))
		for _, chain := range chains {
			res = append(res, toChainResponse(chain))
		}
		c.JSON(http.StatusOK, res)
	}
}

func (t *topologyHandler) UpdateChain() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateChainRequest
		if !bindJSON(c, &req) {
			return
		}
		id := c.Param("id")
		res, err := t.topologyService.UpdateChain(c, model.ChainUpdate{
			ID:        id,
			Name:      req.Name,
			Type:      req.Type,
			ChainID:   req.ChainID,
			Allowance: req.Allowance,
		})
		if err != nil {
			respondError(c, t.logger, fmt.Errorf("TopologyHandler.UpdateChain: %w", err), fmt.Sprintf("failed to update chain %s", id))
			return
		}
		c.JSON(http.StatusOK, toChainResponse(res))
	}
}

func NewTopologyHandler(topologyService service.TopologyService, logger Logger) TopologyHandler {
	return &topologyHandler{
		topologyService: topologyService,
		logger:          logger,
	}
}
