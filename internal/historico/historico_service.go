package historico

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go-epi/internal/epi"
	"go-epi/internal/events"
	"go-epi/internal/messaging/kafka"
	"go-epi/internal/shared/contextutil"
	"go-epi/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const entregaCounterType = "entrega_numero"

type Service interface {
	Assign(ctx context.Context, req AssignRequest) (RegistroResponse, error)
	Substitute(ctx context.Context, req SubstituteRequest) (SubstituteResponse, error)
	ActiveByCPF(ctx context.Context, cpf string) ([]RegistroResponse, error)
	HistoryByCPF(ctx context.Context, cpf string) ([]RegistroResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	epiRepo epi.Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	epiRepo epi.Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("historico.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("historico.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		epiRepo: epiRepo,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		logger:  l,
	}
}

func (s *service) Assign(ctx context.Context, req AssignRequest) (RegistroResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("assign epi requested",
		zap.String("request_id", rid),
		zap.String("cpf", req.CPFFuncionario),
		zap.String("ca", req.CAEPI),
	)

	// The catalog entry must exist before anything is written.
	e, err := s.epiRepo.FindByCA(ctx, req.CAEPI)
	if err != nil {
		s.logger.Warn("assign epi catalog lookup failed",
			zap.String("request_id", rid),
			zap.String("ca", req.CAEPI),
			zap.Error(err),
		)
		return RegistroResponse{}, epi.MapRepositoryError(err)
	}

	numero, err := s.nextNumero(ctx)
	if err != nil {
		s.logger.Error("assign epi generate numero failed", zap.String("request_id", rid), zap.Error(err))
		return RegistroResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("assign epi begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return RegistroResponse{}, err
	}
	defer tx.Rollback()

	reg := &Registro{
		ID:             uuid.New(),
		Numero:         numero,
		FuncionarioCPF: req.CPFFuncionario,
		EPIID:          e.ID,
		DataEntrega:    time.Now(),
		DataDevolucao:  nil,
		Motivo:         MotivoAtribuicaoInicial,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, reg); err != nil {
		s.logger.Error("assign epi persist failed", zap.String("request_id", rid), zap.Error(err))
		return RegistroResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueEvent(ctx, tx, events.EntregaRegistrada, rid, reg, e); err != nil {
		return RegistroResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("assign epi commit failed", zap.String("request_id", rid), zap.Error(err))
		return RegistroResponse{}, err
	}

	s.logger.Info("assign epi success",
		zap.String("request_id", rid),
		zap.String("registro_id", reg.ID.String()),
		zap.String("numero", reg.Numero),
		zap.String("ca", e.CA),
	)

	return toResponse(*reg, *e), nil
}

func (s *service) Substitute(ctx context.Context, req SubstituteRequest) (SubstituteResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("substitute epi requested",
		zap.String("request_id", rid),
		zap.String("cpf", req.Funcionario),
		zap.String("new_ca", req.NovoEpiData.CA),
		zap.String("motivo", req.MotivoSubstituicao),
	)

	// The replacement passes the same validation as any catalog register.
	newEPI, err := epi.NewFromRequest(req.NovoEpiData)
	if err != nil {
		s.logger.Warn("substitute epi invalid payload", zap.String("request_id", rid), zap.Error(err))
		return SubstituteResponse{}, err
	}

	numero, err := s.nextNumero(ctx)
	if err != nil {
		s.logger.Error("substitute epi generate numero failed", zap.String("request_id", rid), zap.Error(err))
		return SubstituteResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("substitute epi begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SubstituteResponse{}, err
	}
	defer tx.Rollback()

	epiQtx := s.epiRepo.WithTx(tx)
	if err := epiQtx.Create(ctx, newEPI); err != nil {
		s.logger.Error("substitute epi catalog persist failed", zap.String("request_id", rid), zap.Error(err))
		return SubstituteResponse{}, epi.MapRepositoryError(err)
	}

	now := time.Now()

	qtx := s.repo.WithTx(tx)

	// Replacement retires what it replaces: close the employee's open
	// records for equipment of the same tipo.
	closed, err := qtx.CloseActiveByTipo(ctx, req.Funcionario, newEPI.Tipo, now)
	if err != nil {
		s.logger.Error("substitute epi close previous failed", zap.String("request_id", rid), zap.Error(err))
		return SubstituteResponse{}, err
	}

	reg := &Registro{
		ID:             uuid.New(),
		Numero:         numero,
		FuncionarioCPF: req.Funcionario,
		EPIID:          newEPI.ID,
		DataEntrega:    now,
		DataDevolucao:  nil,
		Motivo:         req.MotivoSubstituicao,
	}

	if err := qtx.Create(ctx, reg); err != nil {
		s.logger.Error("substitute epi persist failed", zap.String("request_id", rid), zap.Error(err))
		return SubstituteResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueEvent(ctx, tx, events.EntregaSubstituida, rid, reg, newEPI); err != nil {
		return SubstituteResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("substitute epi commit failed", zap.String("request_id", rid), zap.Error(err))
		return SubstituteResponse{}, err
	}

	s.invalidateCatalogCache(ctx)

	s.logger.Info("substitute epi success",
		zap.String("request_id", rid),
		zap.String("registro_id", reg.ID.String()),
		zap.String("new_ca", newEPI.CA),
		zap.Int64("closed_records", closed),
	)

	return SubstituteResponse{
		EpiCriado: epi.ToResponse(*newEPI),
		Historico: toResponse(*reg, *newEPI),
	}, nil
}

func (s *service) ActiveByCPF(ctx context.Context, cpf string) ([]RegistroResponse, error) {
	regs, err := s.repo.FindActiveByCPF(ctx, cpf)
	if err != nil {
		s.logger.Error("active by cpf failed", zap.String("cpf", cpf), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return toListResponse(regs), nil
}

func (s *service) HistoryByCPF(ctx context.Context, cpf string) ([]RegistroResponse, error) {
	regs, err := s.repo.FindByCPF(ctx, cpf)
	if err != nil {
		s.logger.Error("history by cpf failed", zap.String("cpf", cpf), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return toListResponse(regs), nil
}

func (s *service) nextNumero(ctx context.Context) (string, error) {
	nextVal, err := s.counter.GetNextValue(ctx, entregaCounterType)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ENT-%06d", nextVal), nil
}

func (s *service) enqueueEvent(
	ctx context.Context,
	tx *sql.Tx,
	eventType, rid string,
	reg *Registro,
	e *epi.EPI,
) error {
	if s.outbox == nil {
		return nil
	}

	event := events.EntregaLifecycleEvent{
		EventType:      eventType,
		RequestID:      rid,
		RegistroID:     reg.ID.String(),
		Numero:         reg.Numero,
		FuncionarioCPF: reg.FuncionarioCPF,
		CA:             e.CA,
		Tipo:           e.Tipo,
		Validade:       e.Validade.Format("2006-01-02"),
		Motivo:         reg.Motivo,
		OccurredAt:     time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal entrega event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	outboxRepo := s.outbox.WithTx(tx)
	if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "entrega",
		AggregateID:   reg.ID.String(),
		EventType:     eventType,
		Topic:         events.EntregaLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("entrega outbox persist failed",
			zap.String("registro_id", reg.ID.String()),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (s *service) invalidateCatalogCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, epi.CatalogCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate catalog cache",
			zap.Error(err),
			zap.String("key", epi.CatalogCacheKey),
		)
	}
}

func toResponse(reg Registro, e epi.EPI) RegistroResponse {
	resp := RegistroResponse{
		ID:             reg.ID.String(),
		Numero:         reg.Numero,
		FuncionarioCPF: reg.FuncionarioCPF,
		Epi:            epi.ToResponse(e),
		DataEntrega:    reg.DataEntrega.Format("2006-01-02"),
		Motivo:         reg.Motivo,
	}
	if reg.DataDevolucao != nil {
		d := reg.DataDevolucao.Format("2006-01-02")
		resp.DataDevolucao = &d
	}
	return resp
}

func toListResponse(regs []Registro) []RegistroResponse {
	res := make([]RegistroResponse, len(regs))
	for i, r := range regs {
		var e epi.EPI
		if r.EPI != nil {
			e = *r.EPI
		}
		res[i] = toResponse(r, e)
	}
	return res
}
