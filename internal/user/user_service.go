package user

import (
	"context"
	"database/sql"

	"go-hrfine/internal/rbac"
	"go-hrfine/internal/shared/contextutil"
	usererrors "go-hrfine/internal/user/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q string) ([]UserResponse, error)
	GetByEmpID(ctx context.Context, empID string) (UserResponse, error)
	AssignRole(ctx context.Context, empID, role string) (UserResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, q string) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx, q)
	if err != nil {
		s.logger.Error("get all users failed", zap.Error(err))
		return nil, MapRepositoryError(err)
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = ToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByEmpID(ctx context.Context, empID string) (UserResponse, error) {
	u, err := s.repo.FindByEmpID(ctx, empID)
	if err != nil {
		return UserResponse{}, MapRepositoryError(err)
	}
	return ToResponse(*u), nil
}

// AssignRole changes a user's role. The new role is carried by tokens issued
// from the next login or refresh on.
func (s *service) AssignRole(ctx context.Context, empID, role string) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if !rbac.IsKnownRole(role) {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("assign role begin tx failed", zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByEmpID(ctx, empID)
	if err != nil {
		return UserResponse{}, MapRepositoryError(err)
	}
	if u.Role == role {
		return ToResponse(*u), nil
	}

	if u.Role == rbac.RoleAdmin {
		admins, err := qtx.CountByRole(ctx, rbac.RoleAdmin)
		if err != nil {
			l.Error("assign role count admins failed", zap.Error(err))
			return UserResponse{}, err
		}
		if admins <= 1 {
			return UserResponse{}, usererrors.ErrLastAdmin
		}
	}

	if err := qtx.UpdateRole(ctx, u.ID, role); err != nil {
		l.Error("assign role persist failed", zap.String("emp_id", empID), zap.Error(err))
		return UserResponse{}, MapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		l.Error("assign role commit failed", zap.Error(err))
		return UserResponse{}, err
	}

	l.Info("role assigned",
		zap.String("emp_id", empID),
		zap.String("from", u.Role),
		zap.String("to", role),
	)
	u.Role = role
	return ToResponse(*u), nil
}
