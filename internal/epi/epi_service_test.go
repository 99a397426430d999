package epi_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"go-epi/internal/epi"
	epierrors "go-epi/internal/epi/errors"
	"go-epi/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// fakeEPIRepo is an in-memory Repository so service tests exercise real
// catalog behavior (uniqueness, window filtering) without a database.
type fakeEPIRepo struct {
	mu         sync.Mutex
	items      []epi.EPI
	createErr  error
	findAllErr error
}

func (f *fakeEPIRepo) WithTx(tx *sql.Tx) epi.Repository { return f }

func (f *fakeEPIRepo) Create(ctx context.Context, e *epi.EPI) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, it := range f.items {
		if it.CA == e.CA {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_epi_ca"}
		}
	}
	f.items = append(f.items, *e)
	return nil
}

func (f *fakeEPIRepo) FindAll(ctx context.Context) ([]epi.EPI, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	out := make([]epi.EPI, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeEPIRepo) FindByCA(ctx context.Context, ca string) (*epi.EPI, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.CA == ca {
			found := it
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEPIRepo) FindExpiringBetween(ctx context.Context, min, max time.Time) ([]epi.EPI, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []epi.EPI
	for _, it := range f.items {
		if !it.Validade.Before(min) && !it.Validade.After(max) {
			out = append(out, it)
		}
	}
	return out, nil
}

func validRequest(ca string) epi.CreateEPIRequest {
	return epi.CreateEPIRequest{
		Epi:         "Capacete de Segurança",
		Tipo:        "Capacete",
		CA:          ca,
		Validade:    time.Now().AddDate(1, 0, 0).Format("2006-01-02"),
		ModoUso:     "Ajustar a carneira e usar durante todo o turno",
		Fabricante:  "3M",
		DataEntrada: "2026-01-10",
	}
}

func TestEPIService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success - register then lookup by CA", func(t *testing.T) {
		repo := &fakeEPIRepo{}
		svc := epi.NewService(repo, nil)

		resp, err := svc.Register(ctx, validRequest("12345"))

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "12345", resp.CA)

		found, err := svc.GetByCA(ctx, "12345")
		assert.NoError(t, err)
		assert.Equal(t, resp.ID, found.ID)
		assert.Equal(t, "Capacete", found.Tipo)
	})

	t.Run("missing field leaves catalog unchanged", func(t *testing.T) {
		repo := &fakeEPIRepo{}
		svc := epi.NewService(repo, nil)

		req := validRequest("12345")
		req.Tipo = "   "

		_, err := svc.Register(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, apperror.ToHTTP(err).Status)
		assert.Empty(t, repo.items)
	})

	t.Run("oversized field rejected", func(t *testing.T) {
		repo := &fakeEPIRepo{}
		svc := epi.NewService(repo, nil)

		req := validRequest("12345")
		req.Fabricante = strings.Repeat("x", 101)

		_, err := svc.Register(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, apperror.ToHTTP(err).Status)
		assert.Empty(t, repo.items)
	})

	t.Run("unparseable validade rejected", func(t *testing.T) {
		repo := &fakeEPIRepo{}
		svc := epi.NewService(repo, nil)

		req := validRequest("12345")
		req.Validade = "31/12/2027"

		_, err := svc.Register(ctx, req)

		assert.ErrorIs(t, err, epierrors.ErrInvalidValidade)
		assert.Empty(t, repo.items)
	})

	t.Run("duplicate CA -> conflict", func(t *testing.T) {
		repo := &fakeEPIRepo{}
		svc := epi.NewService(repo, nil)

		_, err := svc.Register(ctx, validRequest("12345"))
		assert.NoError(t, err)

		_, err = svc.Register(ctx, validRequest("12345"))
		assert.ErrorIs(t, err, epierrors.ErrCAAlreadyExists)
		assert.Len(t, repo.items, 1)
	})
}

func TestEPIService_GetByCA(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown CA -> not found", func(t *testing.T) {
		svc := epi.NewService(&fakeEPIRepo{}, nil)

		_, err := svc.GetByCA(ctx, "99999")

		assert.ErrorIs(t, err, epierrors.ErrEPINotFound)
	})
}

func TestEPIService_ExpiringWithin(t *testing.T) {
	ctx := context.Background()

	t.Run("negative days rejected", func(t *testing.T) {
		svc := epi.NewService(&fakeEPIRepo{}, nil)

		_, err := svc.ExpiringWithin(ctx, -1)

		assert.ErrorIs(t, err, epierrors.ErrInvalidDays)
	})

	t.Run("window excludes expired and far-future entries", func(t *testing.T) {
		repo := &fakeEPIRepo{}
		svc := epi.NewService(repo, nil)

		reqs := map[string]string{
			"100": time.Now().AddDate(0, 0, -10).Format("2006-01-02"), // already expired
			"200": time.Now().AddDate(0, 0, 30).Format("2006-01-02"),  // inside window
			"300": time.Now().AddDate(0, 0, 200).Format("2006-01-02"), // beyond window
		}
		for ca, validade := range reqs {
			req := validRequest(ca)
			req.Validade = validade
			_, err := svc.Register(ctx, req)
			assert.NoError(t, err)
		}

		resp, err := svc.ExpiringWithin(ctx, 90)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "200", resp[0].CA)
	})
}

func TestEPIService_ExpiringBetween(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid bounds rejected", func(t *testing.T) {
		svc := epi.NewService(&fakeEPIRepo{}, nil)

		_, err := svc.ExpiringBetween(ctx, "not-a-date", "2027-01-01")

		assert.ErrorIs(t, err, epierrors.ErrInvalidDateRange)
	})

	t.Run("inclusive range", func(t *testing.T) {
		repo := &fakeEPIRepo{}
		svc := epi.NewService(repo, nil)

		req := validRequest("555")
		req.Validade = "2027-06-15"
		_, err := svc.Register(ctx, req)
		assert.NoError(t, err)

		resp, err := svc.ExpiringBetween(ctx, "2027-06-15", "2027-06-15")

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})
}

func TestEPIService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips repository", func(t *testing.T) {
		cached := []epi.EPIResponse{{ID: "abc", CA: "12345", Tipo: "Capacete"}}
		jsonResp, _ := json.Marshal(cached)

		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(epi.CatalogCacheKey).SetVal(string(jsonResp))

		// Repo errors if touched; the cache must satisfy the read.
		repo := &fakeEPIRepo{findAllErr: errors.New("db should not be hit")}
		svc := epi.NewService(repo, rdb)

		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "12345", resp[0].CA)
	})

	t.Run("cache miss falls back to repository", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectDel(epi.CatalogCacheKey).SetVal(0)
		redisMock.ExpectGet(epi.CatalogCacheKey).RedisNil()
		redisMock.Regexp().ExpectSet(epi.CatalogCacheKey, `.*`, 1*time.Hour).SetVal("OK")

		repo := &fakeEPIRepo{}
		svc := epi.NewService(repo, rdb)

		_, err := svc.Register(ctx, validRequest("777"))
		assert.NoError(t, err)

		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "777", resp[0].CA)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		repo := &fakeEPIRepo{findAllErr: errors.New("db down")}
		svc := epi.NewService(repo, nil)

		_, err := svc.GetAll(ctx)

		assert.Error(t, err)
	})
}
