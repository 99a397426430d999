package empresa_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-epi/internal/empresa"
	empresaerrors "go-epi/internal/empresa/errors"
	"go-epi/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	os.Exit(m.Run())
}

type fakeEmpresaService struct {
	RegisterFn     func(ctx context.Context, req empresa.RegisterEmpresaRequest) (*empresa.EmpresaResponse, error)
	GetAllFn       func(ctx context.Context) ([]empresa.EmpresaResponse, error)
	GetByEmailFn   func(ctx context.Context, email string) (*empresa.EmpresaResponse, error)
	GetByIDFn      func(ctx context.Context, id string) (*empresa.EmpresaResponse, error)
	AuthenticateFn func(ctx context.Context, req empresa.LoginRequest) (string, string, *empresa.EmpresaResponse, error)
	RefreshFn      func(ctx context.Context, refreshToken string) (string, error)
}

func (f *fakeEmpresaService) Register(ctx context.Context, req empresa.RegisterEmpresaRequest) (*empresa.EmpresaResponse, error) {
	return f.RegisterFn(ctx, req)
}
func (f *fakeEmpresaService) GetAll(ctx context.Context) ([]empresa.EmpresaResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmpresaService) GetByEmail(ctx context.Context, email string) (*empresa.EmpresaResponse, error) {
	return f.GetByEmailFn(ctx, email)
}
func (f *fakeEmpresaService) GetByID(ctx context.Context, id string) (*empresa.EmpresaResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmpresaService) Authenticate(ctx context.Context, req empresa.LoginRequest) (string, string, *empresa.EmpresaResponse, error) {
	return f.AuthenticateFn(ctx, req)
}
func (f *fakeEmpresaService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return f.RefreshFn(ctx, refreshToken)
}

func TestEmpresaHandler_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmpresaService{
			RegisterFn: func(ctx context.Context, req empresa.RegisterEmpresaRequest) (*empresa.EmpresaResponse, error) {
				assert.Equal(t, "Construtora Alfa", req.Empresa)
				return &empresa.EmpresaResponse{
					ID:      uuid.New().String(),
					Empresa: req.Empresa,
					CNPJ:    "12345678000195",
					Email:   req.Email,
				}, nil
			},
		}
		h := empresa.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"empresa":"Construtora Alfa","cnpj":"12.345.678/0001-95","endereco":"Rua das Obras, 100","email":"contato@alfa.com.br","senha":"segura1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/empresas", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Register(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Construtora Alfa")
		assert.NotContains(t, w.Body.String(), "segura1")
	})

	t.Run("short senha fails binding -> 400", func(t *testing.T) {
		svc := &fakeEmpresaService{}
		h := empresa.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"empresa":"Construtora Alfa","cnpj":"12.345.678/0001-95","endereco":"Rua das Obras, 100","email":"contato@alfa.com.br","senha":"abc123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/empresas", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Register(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email -> 409", func(t *testing.T) {
		svc := &fakeEmpresaService{
			RegisterFn: func(ctx context.Context, req empresa.RegisterEmpresaRequest) (*empresa.EmpresaResponse, error) {
				return nil, empresaerrors.ErrEmailAlreadyExists
			},
		}
		h := empresa.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"empresa":"Construtora Alfa","cnpj":"12.345.678/0001-95","endereco":"Rua das Obras, 100","email":"contato@alfa.com.br","senha":"segura1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/empresas", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Register(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmpresaHandler_Authenticate(t *testing.T) {
	t.Run("success sets cookie and returns tokens", func(t *testing.T) {
		svc := &fakeEmpresaService{
			AuthenticateFn: func(ctx context.Context, req empresa.LoginRequest) (string, string, *empresa.EmpresaResponse, error) {
				return "access-token", "refresh-token", &empresa.EmpresaResponse{
					ID:    uuid.New().String(),
					Email: req.Email,
				}, nil
			},
		}
		h := empresa.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"contato@alfa.com.br","senha":"segura1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/empresas/autenticacao", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Authenticate(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "access-token")
		assert.Contains(t, w.Header().Get("Set-Cookie"), "access_token=")
	})

	t.Run("bad credentials -> 401", func(t *testing.T) {
		svc := &fakeEmpresaService{
			AuthenticateFn: func(ctx context.Context, req empresa.LoginRequest) (string, string, *empresa.EmpresaResponse, error) {
				return "", "", nil, empresaerrors.ErrInvalidCredentials
			},
		}
		h := empresa.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"contato@alfa.com.br","senha":"errada123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/empresas/autenticacao", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Authenticate(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed payload reads the same as bad credentials", func(t *testing.T) {
		svc := &fakeEmpresaService{}
		h := empresa.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/empresas/autenticacao", strings.NewReader(`{"email":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Authenticate(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestEmpresaHandler_Me(t *testing.T) {
	t.Run("returns the authenticated empresa", func(t *testing.T) {
		empresaID := uuid.New().String()
		svc := &fakeEmpresaService{
			GetByIDFn: func(ctx context.Context, id string) (*empresa.EmpresaResponse, error) {
				assert.Equal(t, empresaID, id)
				return &empresa.EmpresaResponse{ID: id, Empresa: "Construtora Alfa"}, nil
			},
		}
		h := empresa.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/empresas/me", nil)
		c.Set("empresa_id", empresaID)

		h.Me(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Construtora Alfa")
	})

	t.Run("missing claims -> 401", func(t *testing.T) {
		svc := &fakeEmpresaService{}
		h := empresa.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/empresas/me", nil)

		h.Me(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestEmpresaHandler_GetByEmail(t *testing.T) {
	svc := &fakeEmpresaService{
		GetByEmailFn: func(ctx context.Context, email string) (*empresa.EmpresaResponse, error) {
			return nil, empresaerrors.ErrEmpresaNotFound
		},
	}
	h := empresa.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/empresas/email/x@y.com", nil)
	c.Params = gin.Params{{Key: "email", Value: "x@y.com"}}

	h.GetByEmail(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
