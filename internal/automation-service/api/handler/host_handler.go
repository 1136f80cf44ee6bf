package handler

import (
	"VCS_Node_Automation/internal/automation-service/api/dto/request"
	"VCS_Node_Automation/internal/automation-service/api/dto/response"
	"VCS_Node_Automation/internal/automation-service/model"
	"VCS_Node_Automation/internal/automation-service/service"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type HostHandler interface {
	CreateHost() gin.HandlerFunc
	ImportHosts() gin.HandlerFunc
	GetHosts() gin.HandlerFunc
	UpdateHost() gin.HandlerFunc
	DeleteHost() gin.HandlerFunc
}

type hostHandler struct {
	automationService service.AutomationService
	logger            Logger
	validator         *validator.Validate
}

func (h *hostHandler) CreateHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreateHostRequest
		if !bindJSON(c, &req) {
			return
		}
		restart, ok := restartQuery(c)
		if !ok {
			return
		}
		res, err := h.automationService.CreateHost(c, model.HostInput{
			Name:         req.Name,
			LocationID:   req.LocationID,
			LoadBalancer: req.LoadBalancer,
			IP:           req.IP,
			FQDN:         req.FQDN,
		}, restart)
		if err != nil {
			respondError(c, h.logger, fmt.Errorf("HostHandler.CreateHost: %w", err), "failed to create host")
			return
		}
		c.JSON(http.StatusCreated, toHostResponse(res))
	}
}

// importErrorResponse writes the response for a file that could not be read or has an invalid row.
func importErrorResponse(c *gin.Context, l Logger, err error, errDescription string) {
	var rowErr *rowError
	var validatorError validator.ValidationErrors
	switch {
	case errors.As(err, &validatorError) && errors.As(err, &rowErr):
		c.JSON(http.StatusBadRequest, response.Response{
			Message: fmt.Sprintf("Row %d: %s", rowErr.Row, formatValidationError(validatorError[0])),
		})
	case errors.As(err, &rowErr):
		c.JSON(http.StatusBadRequest, response.Response{
			Message: fmt.Sprintf("Row %d: %v", rowErr.Row, rowErr.Err),
		})
	case errors.Is(err, errUnsupportedFile):
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "File must be a csv or xlsx file",
		})
	case errors.Is(err, errEmptyFile):
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "File is empty",
		})
	case errors.Is(err, errSheetNotFound):
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Sheet not found",
		})
	case errors.Is(err, errMissingRequiredColumn):
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Missing required column",
		})
	default:
		l.LoggingError(c, err, errDescription, zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{
			Message: "Internal server error",
		})
	}
}

func (h *hostHandler) ImportHosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		table, err := readImportFile(file, c.Query("sheet_name"), hostImportColumns)
		if err != nil {
			importErrorResponse(c, h.logger, fmt.Errorf("HostHandler.ImportHosts: %w", err), "failed to read host import file")
			return
		}
		rows, err := parseHostRows(table, h.validator)
		if err != nil {
			importErrorResponse(c, h.logger, fmt.Errorf("HostHandler.ImportHosts: %w", err), "failed to read host import file")
			return
		}

		inputs := make([]model.HostCSVInput, len(rows))
		for i, row := range rows {
			inputs[i] = model.HostCSVInput{
				Name:         row.Name,
				Location:     row.Location,
				LoadBalancer: row.LoadBalancer,
				IP:           row.IP,
				FQDN:         row.FQDN,
			}
		}
		hosts, err := h.automationService.CreateHostsCSV(c, inputs)
		res := response.ImportResponse{ImportedCount: len(hosts)}
		for _, host := range hosts {
			res.Imported = append(res.Imported, host.Name)
		}
		if err != nil {
			err = fmt.Errorf("HostHandler.ImportHosts: %w", err)
			status, message := errorStatus(err)
			if status == http.StatusInternalServerError {
				h.logger.LoggingError(c, err, "failed to import hosts", zap.ErrorLevel)
			}
			res.Message = fmt.Sprintf("Import stopped at row %d: %s", len(hosts)+2, message)
			c.JSON(status, res)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *hostHandler) GetHosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		var loadBalancer *bool
		if v := c.Query("load_balancer"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Load balancer must be a boolean",
				})
				return
			}
			loadBalancer = &b
		}
		hosts, err := h.automationService.GetHosts(c, loadBalancer)
		if err != nil {
			respondError(c, h.logger, fmt.Errorf("HostHandler.GetHosts: %w", err), "failed to get hosts")
			return
		}
		hostsRes := make([]response.HostResponse, 0, len(hosts))
		for _, host := range hosts {
			hostsRes = append(hostsRes, toHostResponse(host))
		}
		c.JSON(http.StatusOK, hostsRes)
	}
}

func (h *hostHandler) UpdateHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateHostRequest
		if !bindJSON(c, &req) {
			return
		}
		restart, ok := restartQuery(c)
		if !ok {
			return
		}
		id := c.Param("id")
		res, err := h.automationService.UpdateHost(c, model.HostUpdate{
			ID:           id,
			Name:         req.Name,
			LocationID:   req.LocationID,
			LoadBalancer: req.LoadBalancer,
			IP:           req.IP,
			FQDN:         req.FQDN,
		}, restart)
		if err != nil {
			respondError(c, h.logger, fmt.Errorf("HostHandler.UpdateHost: %w", err), fmt.Sprintf("failed to update host %s", id))
			return
		}
		c.JSON(http.StatusOK, toHostResponse(res))
	}
}

func (h *hostHandler) DeleteHost() gin.HandlerFunc {
	return func(c *gin.Context) {
		restart, ok := restartQuery(c)
		if !ok {
			return
		}
		id := c.Param("id")
		res, err := h.automationService.DeleteHost(c, id, restart)
		if err != nil {
			respondError(c, h.logger, fmt.Errorf("HostHandler.DeleteHost: %w", err), fmt.Sprintf("failed to delete host %s", id))
			return
		}
		c.JSON(http.StatusOK, toHostResponse(res))
	}
}

func NewHostHandler(automationService service.AutomationService, logger Logger) HostHandler {
	return &hostHandler{
		automationService: automationService,
		logger:            logger,
		validator:         validator.New(),
	}
}
