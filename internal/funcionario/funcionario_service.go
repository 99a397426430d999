package funcionario

import (
	"context"

	"go-epi/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, req CreateFuncionarioRequest) (FuncionarioResponse, error)
	GetAll(ctx context.Context) ([]FuncionarioResponse, error)
	SearchByCPF(ctx context.Context, cpf string) ([]FuncionarioResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("funcionario.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("funcionario.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Register(ctx context.Context, req CreateFuncionarioRequest) (FuncionarioResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	f := &Funcionario{
		ID:    uuid.New(),
		Nome:  req.Nome,
		CPF:   req.CPF,
		Cargo: req.Cargo,
		Setor: req.Setor,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		s.logger.Error("register funcionario persist failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return FuncionarioResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("register funcionario success",
		zap.String("request_id", rid),
		zap.String("funcionario_id", f.ID.String()),
	)

	return toResponse(*f), nil
}

func (s *service) GetAll(ctx context.Context) ([]FuncionarioResponse, error) {
	funcionarios, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return toListResponse(funcionarios), nil
}

// SearchByCPF is list-shaped: an unknown CPF yields an empty list, not a
// 404.
func (s *service) SearchByCPF(ctx context.Context, cpf string) ([]FuncionarioResponse, error) {
	funcionarios, err := s.repo.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return toListResponse(funcionarios), nil
}

func toResponse(f Funcionario) FuncionarioResponse {
	return FuncionarioResponse{
		ID:    f.ID.String(),
		Nome:  f.Nome,
		CPF:   f.CPF,
		Cargo: f.Cargo,
		Setor: f.Setor,
	}
}

func toListResponse(funcionarios []Funcionario) []FuncionarioResponse {
	res := make([]FuncionarioResponse, len(funcionarios))
	for i, f := range funcionarios {
		res[i] = toResponse(f)
	}
	return res
}
