package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/openclinic/hms/internal/domain"
	"github.com/openclinic/hms/internal/service"
)

// MessageResponse is the error body shape the front end consumes.
type MessageResponse struct {
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}

func respondServiceError(c *gin.Context, err error) {
	var validErr *service.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Message: "Validation failed",
			Errors:  validErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPatientNotFound),
		errors.Is(err, domain.ErrAppointmentNotFound),
		errors.Is(err, domain.ErrRecordNotFound),
		errors.Is(err, domain.ErrPrescriptionNotFound),
		errors.Is(err, domain.ErrDepartmentNotFound),
		errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrActivityLogNotFound):
		respondMessage(c, http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrPatientAlreadyExists):
		respondMessage(c, http.StatusConflict, err.Error())

	case errors.Is(err, domain.ErrInvalidGender),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidAppointmentStatus),
		errors.Is(err, domain.ErrInvalidPrescriptionStatus),
		errors.Is(err, domain.ErrMedicationsRequired),
		errors.Is(err, domain.ErrInvalidTaskPriority),
		errors.Is(err, domain.ErrInvalidTaskStatus):
		respondMessage(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrInvalidCredentials):
		respondMessage(c, http.StatusUnauthorized, "invalid credentials")

	default:
		respondMessage(c, http.StatusInternalServerError, "internal server error")
	}
}

// bindJSON decodes and validates the request body, answering 400 with
// field-level errors on failure.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			fields := make([]string, 0, len(vErrs))
			for _, fe := range vErrs {
				fields = append(fields, fe.Field()+" failed on "+fe.Tag())
			}
			c.JSON(http.StatusBadRequest, ValidationErrorResponse{
				Message: "Validation failed",
				Errors:  fields,
			})
			return false
		}
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Message: "Validation failed",
			Errors:  []string{err.Error()},
		})
		return false
	}
	return true
}

func parseID(c *gin.Context, param string) (int64, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondMessage(c, http.StatusBadRequest, "invalid "+param+": must be a positive integer")
		return 0, false
	}
	return id, true
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return defaultVal
}

// callerID returns the authenticated user's id placed in the context by the
// auth middleware.
func callerID(c *gin.Context) int64 {
	if claims, ok := c.Get("claims"); ok {
		if cl, ok := claims.(*domain.Claims); ok {
			return cl.UserID
		}
	}
	return 0
}
