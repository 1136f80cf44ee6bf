package handler

import (
	"VCS_Node_Automation/internal/automation-service/api/dto/request"
	"VCS_Node_Automation/internal/automation-service/api/dto/response"
	"VCS_Node_Automation/internal/automation-service/model"
	"VCS_Node_Automation/internal/automation-service/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type NodeHandler interface {
	CreateNode() gin.HandlerFunc
	ImportNodes() gin.HandlerFunc
	GetNodes() gin.HandlerFunc
	GetNode() gin.HandlerFunc
	UpdateNode() gin.HandlerFunc
	DeleteNode() gin.HandlerFunc
	MuteMonitor() gin.HandlerFunc
	UnmuteMonitor() gin.HandlerFunc
}

type nodeHandler struct {
	automationService service.AutomationService
	logger            Logger
	validator         *validator.Validate
}

func (n *nodeHandler) CreateNode() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreateNodeRequest
		if !bindJSON(c, &req) {
			return
		}
		restart, ok := restartQuery(c)
		if !ok {
			return
		}
		res, err := n.automationService.CreateNode(c, model.NodeInput{
			HTTPS:           req.HTTPS,
			ChainID:         req.ChainID,
			HostID:          req.HostID,
			Name:            req.Name,
			Port:            *req.Port,
			LoadBalancerIDs: req.LoadBalancerIDs,
			Automation:      req.Automation,
			HaProxy:         req.HaProxy,
			Backend:         req.Backend,
			Frontend:        req.Frontend,
			Server:          req.Server,
			BasicAuth:       req.BasicAuth,
		}, restart)
		if err != nil {
			respondError(c, n.logger, fmt.Errorf("NodeHandler.CreateNode: %w", err), "failed to create node")
			return
		}
		c.JSON(http.StatusCreated, toNodeResponse(res))
	}
}

func (n *nodeHandler) ImportNodes() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		table, err := readImportFile(file, c.Query("sheet_name"), nodeImportColumns)
		if err != nil {
			importErrorResponse(c, n.logger, fmt.Errorf("NodeHandler.ImportNodes: %w", err), "failed to read node import file")
			return
		}
		rows, err := parseNodeRows(table, n.validator)
		if err != nil {
			importErrorResponse(c, n.logger, fmt.Errorf("NodeHandler.ImportNodes: %w", err), "failed to read node import file")
			return
		}

		inputs := make([]model.NodeCSVInput, len(rows))
		for i, row := range rows {
			inputs[i] = model.NodeCSVInput{
				HTTPS:         row.HTTPS,
				Chain:         row.Chain,
				Host:          row.Host,
				Name:          row.Name,
				Port:          row.Port,
				Automation:    row.Automation,
				HaProxy:       row.HaProxy,
				Backend:       row.Backend,
				Frontend:      row.Frontend,
				Server:        row.Server,
				LoadBalancers: row.LoadBalancers,
			}
		}
		nodes, err := n.automationService.CreateNodesCSV(c, inputs)
		res := response.ImportResponse{ImportedCount: len(nodes)}
		for _, node := range nodes {
			res.Imported = append(res.Imported, node.Name)
		}
		if err != nil {
			err = fmt.Errorf("NodeHandler.ImportNodes: %w", err)
			status, message := errorStatus(err)
			if status == http.StatusInternalServerError {
				n.logger.LoggingError(c, err, "failed to import nodes", zap.ErrorLevel)
			}
			res.Message = fmt.Sprintf("Import stopped at row %d: %s", len(nodes)+2, message)
			c.JSON(status, res)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func (n *nodeHandler) GetNodes() gin.HandlerFunc {
	return func(c *gin.Context) {
		nodes, err := n.automationService.GetNodes(c)
		if err != nil {
			respondError(c, n.logger, fmt.Errorf("NodeHandler.GetNodes: %w", err), "failed to get nodes")
			return
		}
		nodesRes := make([]response.NodeResponse, 0, len(nodes))
		for _, node := range nodes {
			nodesRes = append(nodesRes, toNodeResponse(node))
		}
		c.JSON(http.StatusOK, nodesRes)
	}
}

func (n *nodeHandler) GetNode() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		node, err := n.automationService.GetNode(c, id)
		if err != nil {
			respondError(c, n.logger, fmt.Errorf("NodeHandler.GetNode: %w", err), fmt.Sprintf("failed to get node %s", id))
			return
		}
		c.JSON(http.StatusOK, toNodeResponse(node))
	}
}

func (n *nodeHandler) UpdateNode() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateNodeRequest
		if !bindJSON(c, &req) {
			return
		}
		restart, ok := restartQuery(c)
		if !ok {
			return
		}
		id := c.Param("id")
		res, err := n.automationService.UpdateNode(c, model.NodeUpdate{
			ID:              id,
			ChainID:         req.ChainID,
			HostID:          req.HostID,
			Name:            req.Name,
			URL:             req.URL,
			LoadBalancerIDs: req.LoadBalancerIDs,
			Port:            req.Port,
			Automation:      req.Automation,
			HaProxy:         req.HaProxy,
			Backend:         req.Backend,
			Frontend:        req.Frontend,
			Server:          req.Server,
			BasicAuth:       req.BasicAuth,
		}, restart)
		if err != nil {
			respondError(c, n.logger, fmt.Errorf("NodeHandler.UpdateNode: %w", err), fmt.Sprintf("failed to update node %s", id))
			return
		}
		c.JSON(http.StatusOK, toNodeResponse(res))
	}
}

func (n *nodeHandler) DeleteNode() gin.HandlerFunc {
	return func(c *gin.Context) {
		restart, ok := restartQuery(c)
		if !ok {
			return
		}
		id := c.Param("id")
		res, err := n.automationService.DeleteNode(c, id, restart)
		if err != nil {
			respondError(c, n.logger, fmt.Errorf("NodeHandler.DeleteNode: %w", err), fmt.Sprintf("failed to delete node %s", id))
			return
		}
		c.JSON(http.StatusOK, toNodeResponse(res))
	}
}

func (n *nodeHandler) MuteMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res, err := n.automationService.MuteMonitor(c, id)
		if err != nil {
			respondError(c, n.logger, fmt.Errorf("NodeHandler.MuteMonitor: %w", err), fmt.Sprintf("failed to mute node %s", id))
			return
		}
		c.JSON(http.StatusOK, toNodeResponse(res))
	}
}

func (n *nodeHandler) UnmuteMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res, err := n.automationService.UnmuteMonitor(c, id)
		if err != nil {
			respondError(c, n.logger, fmt.Errorf("NodeHandler.UnmuteMonitor: %w", err), fmt.Sprintf("failed to unmute node %s", id))
			return
		}
		c.JSON(http.StatusOK, toNodeResponse(res))
	}
}

func NewNodeHandler(automationService service.AutomationService, logger Logger) NodeHandler {
	return &nodeHandler{
		automationService: automationService,
		logger:            logger,
		validator:         validator.New(),
	}
}
