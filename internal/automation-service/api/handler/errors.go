package handler

import (
	"VCS_Node_Automation/internal/automation-service/api/dto/response"
	apperrors "VCS_Node_Automation/internal/automation-service/errors"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// errorStatus maps a service error to the HTTP status and message returned to the caller.
// Unknown errors map to 500.
func errorStatus(err error) (int, string) {
	var callErr *apperrors.ExternalCallError
	switch {
	case errors.Is(err, apperrors.ErrHTTPSRequiresFQDN):
		return http.StatusBadRequest, "Node cannot use https with a host that does not have a FQDN"
	case errors.Is(err, apperrors.ErrHostAddressEmpty):
		return http.StatusBadRequest, "Host requires an ip or a fqdn"
	case errors.Is(err, apperrors.ErrNoLoadBalancers):
		return http.StatusBadRequest, "Node has no load balancers assigned"
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, apperrors.ErrSafetyViolation):
		return http.StatusConflict, "Removing the server is unsafe, manual intervention required"
	case errors.Is(err, apperrors.ErrAlreadyOffline):
		return http.StatusConflict, "Server already offline"
	case errors.Is(err, apperrors.ErrLocationNotFound):
		return http.StatusNotFound, "Location not found"
	case errors.Is(err, apperrors.ErrChainNotFound):
		return http.StatusNotFound, "Chain not found"
	case errors.Is(err, apperrors.ErrHostNotFound):
		return http.StatusNotFound, "Host not found"
	case errors.Is(err, apperrors.ErrNodeNotFound):
		return http.StatusNotFound, "Node not found"
	case errors.Is(err, apperrors.ErrLocationNameAlreadyExists):
		return http.StatusConflict, "Location name already exists"
	case errors.Is(err, apperrors.ErrChainNameAlreadyExists):
		return http.StatusConflict, "Chain name already exists"
	case errors.Is(err, apperrors.ErrHostNameAlreadyExists):
		return http.StatusConflict, "Host name already exists"
	case errors.Is(err, apperrors.ErrNodeNameAlreadyExists):
		return http.StatusConflict, "Node name already exists"
	case errors.As(err, &callErr):
		return http.StatusBadGateway, "Load balancer call failed. Destination: " + callErr.Destination
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondError writes the mapped error response. Server side failures are logged at error
// level and load balancer failures at warn level.
func respondError(c *gin.Context, l Logger, err error, errDescription string) {
	status, message := errorStatus(err)
	switch status {
	case http.StatusInternalServerError:
		l.LoggingError(c, err, errDescription, zap.ErrorLevel)
	case http.StatusBadGateway:
		l.LoggingError(c, err, errDescription, zap.WarnLevel)
	}
	c.JSON(status, response.Response{
		Message: message,
	})
}
