package epi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-epi/internal/epi"
	epierrors "go-epi/internal/epi/errors"
	"go-epi/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	os.Exit(m.Run())
}

type fakeEPIService struct {
	RegisterFn        func(ctx context.Context, req epi.CreateEPIRequest) (epi.EPIResponse, error)
	GetAllFn          func(ctx context.Context) ([]epi.EPIResponse, error)
	GetByCAFn         func(ctx context.Context, ca string) (epi.EPIResponse, error)
	ExpiringWithinFn  func(ctx context.Context, days int) ([]epi.EPIResponse, error)
	ExpiringBetweenFn func(ctx context.Context, dataMin, dataMax string) ([]epi.EPIResponse, error)
}

func (f *fakeEPIService) Register(ctx context.Context, req epi.CreateEPIRequest) (epi.EPIResponse, error) {
	return f.RegisterFn(ctx, req)
}
func (f *fakeEPIService) GetAll(ctx context.Context) ([]epi.EPIResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEPIService) GetByCA(ctx context.Context, ca string) (epi.EPIResponse, error) {
	return f.GetByCAFn(ctx, ca)
}
func (f *fakeEPIService) ExpiringWithin(ctx context.Context, days int) ([]epi.EPIResponse, error) {
	return f.ExpiringWithinFn(ctx, days)
}
func (f *fakeEPIService) ExpiringBetween(ctx context.Context, dataMin, dataMax string) ([]epi.EPIResponse, error) {
	return f.ExpiringBetweenFn(ctx, dataMin, dataMax)
}

func TestEPIHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEPIService{
			RegisterFn: func(ctx context.Context, req epi.CreateEPIRequest) (epi.EPIResponse, error) {
				assert.Equal(t, "12345", req.CA)
				return epi.EPIResponse{ID: "id-1", CA: req.CA, Tipo: req.Tipo}, nil
			},
		}
		h := epi.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"epi":"Capacete de Segurança","tipo":"Capacete","CA":"12345","validade":"2027-01-01","modouso":"Uso contínuo","fabricante":"3M","data_entrada":"2026-01-10"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/epis", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":true`)
		assert.Contains(t, w.Body.String(), "12345")
	})

	t.Run("validation error - missing fields", func(t *testing.T) {
		svc := &fakeEPIService{}
		h := epi.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"epi":"Capacete"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/epis", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":false`)
	})

	t.Run("duplicate CA -> 409", func(t *testing.T) {
		svc := &fakeEPIService{
			RegisterFn: func(ctx context.Context, req epi.CreateEPIRequest) (epi.EPIResponse, error) {
				return epi.EPIResponse{}, epierrors.ErrCAAlreadyExists
			},
		}
		h := epi.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"epi":"Capacete de Segurança","tipo":"Capacete","CA":"12345","validade":"2027-01-01","modouso":"Uso contínuo","fabricante":"3M","data_entrada":"2026-01-10"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/epis", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEPIHandler_GetByCA(t *testing.T) {
	t.Run("missing ca param -> 400", func(t *testing.T) {
		svc := &fakeEPIService{}
		h := epi.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/epis/buscar/ca", nil)

		h.GetByCA(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown ca -> 404", func(t *testing.T) {
		svc := &fakeEPIService{
			GetByCAFn: func(ctx context.Context, ca string) (epi.EPIResponse, error) {
				return epi.EPIResponse{}, epierrors.ErrEPINotFound
			},
		}
		h := epi.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/epis/buscar/ca?ca=99999", nil)

		h.GetByCA(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEPIHandler_GetExpiring(t *testing.T) {
	t.Run("defaults to 90 days", func(t *testing.T) {
		var gotDays int
		svc := &fakeEPIService{
			ExpiringWithinFn: func(ctx context.Context, days int) ([]epi.EPIResponse, error) {
				gotDays = days
				return []epi.EPIResponse{}, nil
			},
		}
		h := epi.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/epis/buscar/vencimento", nil)

		h.GetExpiring(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 90, gotDays)
	})

	t.Run("non numeric dias -> 400", func(t *testing.T) {
		svc := &fakeEPIService{}
		h := epi.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/epis/buscar/vencimento?dias=abc", nil)

		h.GetExpiring(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEPIHandler_GetByDateRange(t *testing.T) {
	t.Run("missing bounds -> 400", func(t *testing.T) {
		svc := &fakeEPIService{}
		h := epi.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/epis/buscar?dataMin=2027-01-01", nil)

		h.GetByDateRange(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeEPIService{
			ExpiringBetweenFn: func(ctx context.Context, dataMin, dataMax string) ([]epi.EPIResponse, error) {
				assert.Equal(t, "2027-01-01", dataMin)
				assert.Equal(t, "2027-06-30", dataMax)
				return []epi.EPIResponse{{CA: "12345"}}, nil
			},
		}
		h := epi.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/epis/buscar?dataMin=2027-01-01&dataMax=2027-06-30", nil)

		h.GetByDateRange(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "12345")
	})
}
