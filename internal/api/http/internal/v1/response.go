package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/lovematch/backend/internal/service"
	"github.com/lovematch/backend/pkg/logger"
)

// Every endpoint answers with this envelope, optionally extended with a
// domain payload.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
} // @name Response

func okResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, response{Success: true, Message: message})
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, response{Success: false, Message: message})
}

// serviceErrorResponse converts service sentinel errors into the JSON
// envelope. Unknown errors are logged and collapsed into a 500; nothing
// propagates as an unhandled fault.
func serviceErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAccountAlreadyExists):
		errorResponse(c, http.StatusBadRequest, "User already exists")
	case errors.Is(err, service.ErrAccountNotFound):
		errorResponse(c, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrInvalidOtp):
		errorResponse(c, http.StatusBadRequest, "Invalid OTP")
	case errors.Is(err, service.ErrOtpExpired):
		errorResponse(c, http.StatusBadRequest, "OTP expired")
	case errors.Is(err, service.ErrAlreadyVerified):
		errorResponse(c, http.StatusBadRequest, "Account already verified")
	case errors.Is(err, service.ErrInvalidCredentials):
		errorResponse(c, http.StatusBadRequest, "Password is incorrect!")
	case errors.Is(err, service.ErrResetNotVerified):
		errorResponse(c, http.StatusBadRequest, "Reset OTP has not been verified")
	case errors.Is(err, service.ErrWrongPin):
		errorResponse(c, http.StatusNotFound, "Your PIN is wrong")
	case errors.Is(err, service.ErrCalculationNotFound):
		errorResponse(c, http.StatusNotFound, "Calculation not found or you don't have permission to delete it")
	default:
		logger.Error("internal error", zap.Error(err), zap.String("path", c.FullPath()))
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

type ValidationErrorStruct struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"validationErrors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"fieldKey"`
	ErrorMessage string `json:"errorMessage"`
} // @name ValidationError

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		errorResponse(c, http.StatusBadRequest, "Details are required")
		return
	}

	out := make([]ValidationError, len(verr))
	for i, ferr := range verr {
		out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorStruct{
		Success: false,
		Message: "Validation error",
		Errors:  out,
	})
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum length is %v", value)
	case "max":
		return fmt.Sprintf("Maximum length is %v", value)
	case "gte":
		return fmt.Sprintf("Must be at least %v", value)
	case "lte":
		return fmt.Sprintf("Must be at most %v", value)
	case "pin":
		return "PIN must be exactly 5 digits"
	case "otp":
		return "OTP must be exactly 6 digits"
	}
	return tag
}
