package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursemanager/internal/app/models/dto"
	"github.com/yigit/coursemanager/internal/app/rules"
	"github.com/yigit/coursemanager/internal/app/services"
	"github.com/yigit/coursemanager/internal/pkg/apperrors"
	"github.com/yigit/coursemanager/internal/pkg/logger"
)

// HandleAPIError maps infrastructure errors to an error response
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists")))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeConflict, "Conflicting change")))
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrInvalidWorkbook):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// StatusForResult picks the HTTP status of a service outcome. successStatus
// is used when the operation succeeded.
func StatusForResult(result services.Result, successStatus int) int {
	if result.Success {
		return successStatus
	}
	switch result.Code {
	case rules.InvalidReference, rules.EnrollmentNotFound:
		return http.StatusNotFound
	case rules.DepartmentNameNotUnique, rules.StudentCodeNotUnique, rules.StudentEmailNotUnique,
		rules.CourseCodeNotUnique, rules.DuplicateEnrollment:
		return http.StatusConflict
	case rules.TransactionFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}

// WriteResult renders a service Result with its mapped status.
func WriteResult(c *gin.Context, result services.Result, successStatus int) {
	c.JSON(StatusForResult(result, successStatus), result)
}

// AbortWithValidation responds 400 with a VAL_001 detail.
func AbortWithValidation(c *gin.Context, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
