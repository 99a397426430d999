package epi

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	epierrors "go-epi/internal/epi/errors"
	"go-epi/internal/shared/apperror"
	"go-epi/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const CatalogCacheKey = "epis:catalogo"

const DefaultExpiryWindowDays = 90

const dateLayout = "2006-01-02"

type Service interface {
	Register(ctx context.Context, req CreateEPIRequest) (EPIResponse, error)
	GetAll(ctx context.Context) ([]EPIResponse, error)
	GetByCA(ctx context.Context, ca string) (EPIResponse, error)
	ExpiringWithin(ctx context.Context, days int) ([]EPIResponse, error)
	ExpiringBetween(ctx context.Context, dataMin, dataMax string) ([]EPIResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("epi.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("epi.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// NewFromRequest validates the request the way the catalog requires
// (every field present, short text fields at most 100 characters, both
// dates parseable) and builds the entity. The ledger reuses it when a
// substitution registers the replacement EPI.
func NewFromRequest(req CreateEPIRequest) (*EPI, error) {
	type bounded struct {
		name  string
		value string
	}
	for _, f := range []bounded{
		{"epi", req.Epi},
		{"tipo", req.Tipo},
		{"CA", req.CA},
		{"modouso", req.ModoUso},
		{"fabricante", req.Fabricante},
		{"validade", req.Validade},
		{"data_entrada", req.DataEntrada},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, apperror.RequiredField(f.name)
		}
	}
	for _, f := range []bounded{
		{"epi", req.Epi},
		{"tipo", req.Tipo},
		{"CA", req.CA},
		{"fabricante", req.Fabricante},
	} {
		if len(f.value) > 100 {
			return nil, apperror.OversizedField(f.name, 100)
		}
	}

	validade, err := time.Parse(dateLayout, req.Validade)
	if err != nil {
		return nil, epierrors.ErrInvalidValidade
	}
	dataEntrada, err := time.Parse(dateLayout, req.DataEntrada)
	if err != nil {
		return nil, epierrors.ErrInvalidDataEntrada
	}

	return &EPI{
		ID:          uuid.New(),
		Epi:         req.Epi,
		Tipo:        req.Tipo,
		CA:          req.CA,
		Validade:    validade,
		ModoUso:     req.ModoUso,
		Fabricante:  req.Fabricante,
		DataEntrada: dataEntrada,
	}, nil
}

func (s *service) Register(ctx context.Context, req CreateEPIRequest) (EPIResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register epi requested",
		zap.String("request_id", rid),
		zap.String("ca", req.CA),
		zap.String("tipo", req.Tipo),
	)

	e, err := NewFromRequest(req)
	if err != nil {
		s.logger.Warn("register epi invalid payload", zap.String("request_id", rid), zap.Error(err))
		return EPIResponse{}, err
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.logger.Error("register epi persist failed", zap.String("request_id", rid), zap.Error(err))
		return EPIResponse{}, MapRepositoryError(err)
	}

	s.invalidateCatalogCache(ctx)

	s.logger.Info("register epi success",
		zap.String("request_id", rid),
		zap.String("epi_id", e.ID.String()),
		zap.String("ca", e.CA),
	)

	return ToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EPIResponse, error) {
	// Catalog listing is read-heavy and master data; serve it from Redis
	// and collapse concurrent misses with singleflight.
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, CatalogCacheKey).Result(); err == nil {
			var resp []EPIResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(CatalogCacheKey, func() (interface{}, error) {
		epis, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, MapRepositoryError(err)
		}

		resp := toListResponse(epis)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, CatalogCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EPIResponse), nil
}

func (s *service) GetByCA(ctx context.Context, ca string) (EPIResponse, error) {
	s.logger.Debug("get epi by ca requested", zap.String("ca", ca))
	e, err := s.repo.FindByCA(ctx, ca)
	if err != nil {
		return EPIResponse{}, MapRepositoryError(err)
	}

	return ToResponse(*e), nil
}

func (s *service) ExpiringWithin(ctx context.Context, days int) ([]EPIResponse, error) {
	if days < 0 {
		return nil, epierrors.ErrInvalidDays
	}

	// Already expired entries are excluded: now <= validade <= now + days.
	now := time.Now()
	limit := now.AddDate(0, 0, days)

	epis, err := s.repo.FindExpiringBetween(ctx, now, limit)
	if err != nil {
		s.logger.Error("expiring within query failed", zap.Int("days", days), zap.Error(err))
		return nil, MapRepositoryError(err)
	}

	return toListResponse(epis), nil
}

func (s *service) ExpiringBetween(ctx context.Context, dataMin, dataMax string) ([]EPIResponse, error) {
	min, err := time.Parse(dateLayout, dataMin)
	if err != nil {
		return nil, epierrors.ErrInvalidDateRange
	}
	max, err := time.Parse(dateLayout, dataMax)
	if err != nil {
		return nil, epierrors.ErrInvalidDateRange
	}

	epis, err := s.repo.FindExpiringBetween(ctx, min, max)
	if err != nil {
		s.logger.Error("expiring between query failed",
			zap.String("data_min", dataMin),
			zap.String("data_max", dataMax),
			zap.Error(err),
		)
		return nil, MapRepositoryError(err)
	}

	return toListResponse(epis), nil
}

func (s *service) invalidateCatalogCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, CatalogCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate catalog cache",
			zap.Error(err),
			zap.String("key", CatalogCacheKey),
		)
	}
}

// ToResponse is exported for the ledger, which embeds catalog data in
// its history records.
func ToResponse(e EPI) EPIResponse {
	return EPIResponse{
		ID:          e.ID.String(),
		Epi:         e.Epi,
		Tipo:        e.Tipo,
		CA:          e.CA,
		Validade:    e.Validade.Format(dateLayout),
		ModoUso:     e.ModoUso,
		Fabricante:  e.Fabricante,
		DataEntrada: e.DataEntrada.Format(dateLayout),
	}
}

func toListResponse(epis []EPI) []EPIResponse {
	res := make([]EPIResponse, len(epis))
	for i, e := range epis {
		res[i] = ToResponse(e)
	}
	return res
}
