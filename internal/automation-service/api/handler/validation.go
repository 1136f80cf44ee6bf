package handler

import (
	"VCS_Node_Automation/internal/automation-service/api/dto/response"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "required_if":
		return fmt.Sprintf("The %s field is required when %s", err.Field(), err.Param())
	case "required_without":
		return fmt.Sprintf("The %s field is required when %s is empty", err.Field(), err.Param())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "ip":
		return fmt.Sprintf("The %s field is not a valid ip", err.Field())
	case "fqdn":
		return fmt.Sprintf("The %s field is not a valid fqdn", err.Field())
	case "url":
		return fmt.Sprintf("The %s field is not a valid url", err.Field())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s", err.Field(), err.Param())
	case "min":
		return fmt.Sprintf("The %s field must have at least %s element(s)", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

// bindJSON decodes the request body into req and writes a 400 response when it is invalid.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var validatorError validator.ValidationErrors
		if errors.As(err, &validatorError) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: formatValidationError(validatorError[0]),
			})
		} else {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
		}
		return false
	}
	return true
}

// restartQuery reads the restart query flag, which defaults to true.
func restartQuery(c *gin.Context) (bool, bool) {
	restart, err := strconv.ParseBool(c.DefaultQuery("restart", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Restart must be a boolean",
		})
		return false, false
	}
	return restart, true
}
