package funcionario

import (
	"net/http"

	funcionarioerrors "go-epi/internal/funcionario/errors"
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
	l := zap.L().Named("funcionario.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("funcionario.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("funcionario request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateFuncionarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http register funcionario validation failed", zap.Error(err))
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

func (h *Handler) SearchByCPF(c *gin.Context) {
	cpf := c.Query("cpf")
	if cpf == "" {
		h.writeServiceError(c, funcionarioerrors.ErrMissingCPF)
		return
	}

	resp, err := h.service.SearchByCPF(c.Request.Context(), cpf)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
