package empresa

import (
	"net/http"

	empresaerrors "go-epi/internal/empresa/errors"
	"go-epi/internal/shared/apperror"
	"go-epi/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Empresa      EmpresaResponse `json:"empresa"`
}

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("empresa.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("empresa.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("empresa request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterEmpresaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http register empresa validation failed", zap.Error(err))
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

func (h *Handler) GetByEmail(c *gin.Context) {
	email := c.Param("email")

	resp, err := h.service.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Authenticate(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Invalid payload reads the same as bad credentials on purpose.
		h.writeServiceError(c, empresaerrors.ErrInvalidCredentials)
		return
	}

	access, refresh, empresa, err := h.service.Authenticate(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// Cookie for browser clients, body tokens for everyone else.
	c.SetCookie("access_token", access, int(accessTokenTTL.Seconds()), "/", "", false, true)

	response.Success(c, http.StatusOK, AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Empresa:      *empresa,
	}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	empresaID := c.GetString("empresa_id")
	if empresaID == "" {
		h.writeServiceError(c, empresaerrors.ErrInvalidToken)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), empresaID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, empresaerrors.ErrInvalidRefreshToken)
		return
	}

	access, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.SetCookie("access_token", access, int(accessTokenTTL.Seconds()), "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{"access_token": access}, nil)
}
