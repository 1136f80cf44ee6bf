package handler

import (
	"VCS_Node_Automation/internal/automation-service/api/dto/request"
	"VCS_Node_Automation/internal/automation-service/api/dto/response"
	"VCS_Node_Automation/internal/automation-service/service"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultRotationEventsLimit = 20
	maxRotationEventsLimit     = 1000
)

type RotationHandler interface {
	AddToRotation() gin.HandlerFunc
	RemoveFromRotation() gin.HandlerFunc
	GetHaProxyStatus() gin.HandlerFunc
	GetServerCount() gin.HandlerFunc
	GetHaProxyMessage() gin.HandlerFunc
	CheckValidHaProxy() gin.HandlerFunc
	GetRotationEvents() gin.HandlerFunc
	ReportRotationStatus() gin.HandlerFunc
}

type rotationHandler struct {
	automationService service.AutomationService
	logger            Logger
}

func (r *rotationHandler) AddToRotation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		alertSent, err := r.automationService.AddToRotation(c, id)
		if err != nil {
			respondError(c, r.logger, fmt.Errorf("RotationHandler.AddToRotation: %w", err), fmt.Sprintf("failed to add node %s to rotation", id))
			return
		}
		c.JSON(http.StatusOK, response.RotationResponse{
			Message:   "Node added to rotation",
			AlertSent: alertSent,
		})
	}
}

func (r *rotationHandler) RemoveFromRotation() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		alertSent, err := r.automationService.RemoveFromRotation(c, id)
		if err != nil {
			respondError(c, r.logger, fmt.Errorf("RotationHandler.RemoveFromRotation: %w", err), fmt.Sprintf("failed to remove node %s from rotation", id))
			return
		}
		c.JSON(http.StatusOK, response.RotationResponse{
			Message:   "Node removed from rotation",
			AlertSent: alertSent,
		})
	}
}

func (r *rotationHandler) GetHaProxyStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		status, err := r.automationService.GetHaProxyStatus(c, id)
		if err != nil {
			respondError(c, r.logger, fmt.Errorf("RotationHandler.GetHaProxyStatus: %w", err), fmt.Sprintf("failed to get haproxy status of node %s", id))
			return
		}
		c.JSON(http.StatusOK, response.HaProxyStatusResponse{
			Status: int(status),
		})
	}
}

func (r *rotationHandler) GetServerCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		count, err := r.automationService.GetServerCount(c, id)
		if err != nil {
			respondError(c, r.logger, fmt.Errorf("RotationHandler.GetServerCount: %w", err), fmt.Sprintf("failed to get server count of node %s", id))
			return
		}
		c.JSON(http.StatusOK, response.ServerCountResponse{
			Count: count,
		})
	}
}

func (r *rotationHandler) GetHaProxyMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		message, err := r.automationService.GetHaProxyMessage(c, id)
		if err != nil {
			respondError(c, r.logger, fmt.Errorf("RotationHandler.GetHaProxyMessage: %w", err), fmt.Sprintf("failed to get haproxy message of node %s", id))
			return
		}
		c.JSON(http.StatusOK, response.StatusMessageResponse{
			StatusMessage: message,
		})
	}
}

func (r *rotationHandler) CheckValidHaProxy() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CheckHaProxyRequest
		if !bindJSON(c, &req) {
			return
		}
		valid, err := r.automationService.CheckValidHaProxy(c, req.Backend, req.Server, req.LoadBalancerIDs)
		if err != nil {
			respondError(c, r.logger, fmt.Errorf("RotationHandler.CheckValidHaProxy: %w", err), "failed to check haproxy backend")
			return
		}
		c.JSON(http.StatusOK, response.ValidHaProxyResponse{
			Valid: valid,
		})
	}
}

func (r *rotationHandler) GetRotationEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultRotationEventsLimit)))
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Limit must be an integer",
			})
			return
		}
		if limit <= 0 {
			limit = defaultRotationEventsLimit
		}
		limit = min(limit, maxRotationEventsLimit)
		events, err := r.automationService.GetRotationEvents(c, id, limit)
		if err != nil {
			respondError(c, r.logger, fmt.Errorf("RotationHandler.GetRotationEvents: %w", err), fmt.Sprintf("failed to get rotation events of node %s", id))
			return
		}
		eventsRes := make([]response.RotationEventResponse, 0, len(events))
		for _, e := range events {
			eventsRes = append(eventsRes, response.RotationEventResponse{
				ID:        e.ID,
				NodeName:  e.NodeName,
				Backend:   e.Backend,
				Server:    e.Server,
				Action:    e.Action,
				Manual:    e.Manual,
				Success:   e.Success,
				Message:   e.Message,
				Timestamp: e.Timestamp,
			})
		}
		c.JSON(http.StatusOK, eventsRes)
	}
}

func (r *rotationHandler) ReportRotationStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ReportRequest
		if !bindJSON(c, &req) {
			return
		}
		if err := r.automationService.ReportRotationStatus(c, req.Email); err != nil {
			respondError(c, r.logger, fmt.Errorf("RotationHandler.ReportRotationStatus: %w", err), "failed to report rotation status")
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Report sent successfully",
		})
	}
}

func NewRotationHandler(automationService service.AutomationService, logger Logger) RotationHandler {
	return &rotationHandler{
		automationService: automationService,
		logger:            logger,
	}
}
