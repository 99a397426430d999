package epi

import (
	"net/http"
	"strconv"

	epierrors "go-epi/internal/epi/errors"
	"go-epi/internal/shared/apperror"
	"go-epi/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("epi.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("epi.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("epi request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http register epi validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByCA(c *gin.Context) {
	ca := c.Query("ca")
	if ca == "" {
		h.writeServiceError(c, epierrors.ErrMissingCA)
		return
	}

	resp, err := h.service.GetByCA(c.Request.Context(), ca)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetExpiring(c *gin.Context) {
	dias, err := strconv.Atoi(c.DefaultQuery("dias", strconv.Itoa(DefaultExpiryWindowDays)))
	if err != nil {
		h.writeServiceError(c, epierrors.ErrInvalidDays)
		return
	}

	resp, err := h.service.ExpiringWithin(c.Request.Context(), dias)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByDateRange(c *gin.Context) {
	dataMin := c.Query("dataMin")
	dataMax := c.Query("dataMax")
	if dataMin == "" || dataMax == "" {
		h.writeServiceError(c, epierrors.ErrInvalidDateRange)
		return
	}

	resp, err := h.service.ExpiringBetween(c.Request.Context(), dataMin, dataMax)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
