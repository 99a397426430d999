package empresa

import (
	"context"
	"os"
	"time"

	empresaerrors "go-epi/internal/empresa/errors"
	"go-epi/internal/shared/contextutil"
	"go-epi/internal/shared/password"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type Service interface {
	Register(ctx context.Context, req RegisterEmpresaRequest) (*EmpresaResponse, error)
	GetAll(ctx context.Context) ([]EmpresaResponse, error)
	GetByEmail(ctx context.Context, email string) (*EmpresaResponse, error)
	GetByID(ctx context.Context, id string) (*EmpresaResponse, error)
	Authenticate(ctx context.Context, req LoginRequest) (accessToken, refreshToken string, resp *EmpresaResponse, err error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
}

type service struct {
	repo   Repository
	hasher password.Hasher
	logger *zap.Logger
}

func NewService(repo Repository, hasher password.Hasher, logger *zap.Logger) Service {
	return &service{repo: repo, hasher: hasher, logger: logger}
}

func (s *service) Register(ctx context.Context, req RegisterEmpresaRequest) (*EmpresaResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	cnpj := SanitizeCNPJ(req.CNPJ)
	if !ValidateCNPJ(cnpj) {
		return nil, empresaerrors.ErrInvalidCNPJ
	}
	if len(req.Senha) <= 6 {
		return nil, empresaerrors.ErrSenhaTooShort
	}

	hash, err := s.hasher.Hash(req.Senha)
	if err != nil {
		return nil, err
	}

	e := &Empresa{
		ID:        uuid.New(),
		Nome:      req.Empresa,
		CNPJ:      cnpj,
		Endereco:  req.Endereco,
		Email:     req.Email,
		SenhaHash: hash,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, mapRepositoryError(err)
	}

	log.Info("empresa registered",
		zap.String("empresa_id", e.ID.String()),
		zap.String("email", e.Email),
	)

	resp := toResponse(*e)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]EmpresaResponse, error) {
	empresas, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	out := make([]EmpresaResponse, 0, len(empresas))
	for _, e := range empresas {
		out = append(out, toResponse(e))
	}
	return out, nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (*EmpresaResponse, error) {
	e, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	resp := toResponse(*e)
	return &resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*EmpresaResponse, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, empresaerrors.ErrInvalidEmpresaID
	}

	e, err := s.repo.FindByID(ctx, parsed)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	resp := toResponse(*e)
	return &resp, nil
}

// Authenticate deliberately collapses "unknown email" and "wrong senha"
// into the same error so the endpoint cannot be used to probe accounts.
func (s *service) Authenticate(ctx context.Context, req LoginRequest) (string, string, *EmpresaResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	e, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", "", nil, empresaerrors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(e.SenhaHash, req.Senha) {
		return "", "", nil, empresaerrors.ErrInvalidCredentials
	}

	access, err := generateToken(e.ID.String(), e.Email, "access", accessTokenTTL)
	if err != nil {
		log.Error("failed to sign access token", zap.Error(err))
		return "", "", nil, empresaerrors.ErrTokenGenerationFailed
	}

	refresh, err := generateToken(e.ID.String(), e.Email, "refresh", refreshTokenTTL)
	if err != nil {
		log.Error("failed to sign refresh token", zap.Error(err))
		return "", "", nil, empresaerrors.ErrTokenGenerationFailed
	}

	log.Info("empresa authenticated", zap.String("empresa_id", e.ID.String()))

	resp := toResponse(*e)
	return access, refresh, &resp, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := parseToken(refreshToken)
	if err != nil {
		return "", empresaerrors.ErrInvalidRefreshToken
	}

	typ, _ := claims["typ"].(string)
	if typ != "refresh" {
		return "", empresaerrors.ErrInvalidRefreshToken
	}

	empresaID, _ := claims["empresa_id"].(string)
	email, _ := claims["email"].(string)
	if empresaID == "" {
		return "", empresaerrors.ErrInvalidRefreshToken
	}

	// Re-check the account still exists before minting a new access token.
	parsed, err := uuid.Parse(empresaID)
	if err != nil {
		return "", empresaerrors.ErrInvalidRefreshToken
	}
	if _, err := s.repo.FindByID(ctx, parsed); err != nil {
		return "", empresaerrors.ErrInvalidRefreshToken
	}

	access, err := generateToken(empresaID, email, "access", accessTokenTTL)
	if err != nil {
		return "", empresaerrors.ErrTokenGenerationFailed
	}
	return access, nil
}

func generateToken(empresaID, email, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"empresa_id": empresaID,
		"email":      email,
		"typ":        typ,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, empresaerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, empresaerrors.ErrInvalidToken
	}
	return claims, nil
}

func toResponse(e Empresa) EmpresaResponse {
	return EmpresaResponse{
		ID:       e.ID.String(),
		Empresa:  e.Nome,
		CNPJ:     e.CNPJ,
		Endereco: e.Endereco,
		Email:    e.Email,
	}
}
