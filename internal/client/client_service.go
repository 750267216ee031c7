package client

import (
	"context"
	"database/sql"
	"strings"

	clienterrors "go-hrfine/internal/client/errors"
	"go-hrfine/internal/lookup"
	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/codegen"
	"go-hrfine/internal/shared/contextutil"
	"go-hrfine/internal/shared/dberr"
	"go-hrfine/internal/shared/patch"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=client_service.go -destination=mock/client_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q string) ([]ClientResponse, error)
	GetByID(ctx context.Context, id uint) (*ClientResponse, error)
	Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error)
	Update(ctx context.Context, id uint, req UpdateClientRequest) (*ClientResponse, error)
	GenerateCode(ctx context.Context, req GenerateCodeRequest) (*GenerateCodeResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	lookups lookup.Repository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, lookups lookup.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("client.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("client.service")
	}
	return &service{db: db, repo: repo, lookups: lookups, logger: l}
}

func (s *service) GetAll(ctx context.Context, q string) ([]ClientResponse, error) {
	rows, err := s.repo.List(ctx, q)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list clients failed", zap.Error(err))
		return nil, err
	}
	out := make([]ClientResponse, len(rows))
	for i := range rows {
		out[i] = *toResponse(&rows[i])
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*ClientResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return toResponse(row), nil
}

// projectType resolves the prefix code for a client type.
func (s *service) projectType(ctx context.Context, lk lookup.Repository, id uint) (*lookup.ProjectType, error) {
	pt, err := lk.FindProjectType(ctx, id)
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, clienterrors.ErrProjectTypeNotFound
		}
		return nil, err
	}
	return pt, nil
}

func (s *service) checkUnique(ctx context.Context, qtx Repository, name, code string, excludeID uint) error {
	taken, err := qtx.ExistsName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return clienterrors.ErrClientNameExists.Withf("Client with %s already exists.", name)
	}
	taken, err = qtx.ExistsCode(ctx, code, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return clienterrors.ErrClientCodeExists.Withf("Client code %s already exists, please try another code.", code)
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	c := &Client{
		ClientType:     req.ClientType,
		ClientName:     strings.TrimSpace(req.ClientName),
		ClientCode:     strings.ToUpper(strings.TrimSpace(req.ClientCode)),
		ClientEmail:    strings.TrimSpace(req.ClientEmail),
		ContactAddress: strings.TrimSpace(req.ContactAddress),
		ClientTel:      strings.TrimSpace(req.ClientTel),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("create client begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	pt, err := s.projectType(ctx, s.lookups.WithTx(tx), c.ClientType)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, qtx, c.ClientName, c.ClientCode, 0); err != nil {
		return nil, err
	}

	if err := qtx.Create(ctx, c); err != nil {
		l.Error("create client failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		l.Error("create client commit failed", zap.Error(err))
		return nil, err
	}

	l.Info("client created", zap.Uint("id", c.ID), zap.String("client_code", c.ClientCode))
	return toResponse(&Row{Client: *c, ProjectType: pt.Name}), nil
}

func (req UpdateClientRequest) apply(c *Client) error {
	if err := patch.FirstErr(
		req.ClientName.Apply(&c.ClientName, "client_name"),
		req.ClientCode.Apply(&c.ClientCode, "client_code"),
		req.ClientType.Apply(&c.ClientType, "client_type"),
		req.ClientEmail.Apply(&c.ClientEmail, "client_email"),
		req.ContactAddress.Apply(&c.ContactAddress, "contact_address"),
		req.ClientTel.Apply(&c.ClientTel, "client_tel"),
	); err != nil {
		return err
	}
	c.ClientName = strings.TrimSpace(c.ClientName)
	c.ClientCode = strings.ToUpper(strings.TrimSpace(c.ClientCode))
	c.ClientEmail = strings.TrimSpace(c.ClientEmail)

	switch {
	case c.ClientName == "":
		return apperror.RequiredField("client_name")
	case c.ClientCode == "":
		return apperror.RequiredField("client_code")
	case len(c.ClientCode) > 20:
		return apperror.Invalid("client_code must be at most 20 characters")
	case validate.Var(c.ClientEmail, "required,email") != nil:
		return clienterrors.ErrInvalidEmail
	}
	return nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateClientRequest) (*ClientResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("update client begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	c := row.Client
	if err := req.apply(&c); err != nil {
		return nil, err
	}

	projectType := row.ProjectType
	if c.ClientType != row.ClientType {
		pt, err := s.projectType(ctx, s.lookups.WithTx(tx), c.ClientType)
		if err != nil {
			return nil, err
		}
		projectType = pt.Name
	}
	if err := s.checkUnique(ctx, qtx, c.ClientName, c.ClientCode, c.ID); err != nil {
		return nil, err
	}

	if err := qtx.Update(ctx, &c); err != nil {
		l.Error("update client failed", zap.Uint("id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		l.Error("update client commit failed", zap.Error(err))
		return nil, err
	}

	return toResponse(&Row{Client: c, ProjectType: projectType}), nil
}

// GenerateCode suggests the next free code for a client type. Nothing is
// reserved, so two callers may be handed the same code; the unique index on
// client_code rejects the second insert.
func (s *service) GenerateCode(ctx context.Context, req GenerateCodeRequest) (*GenerateCodeResponse, error) {
	pt, err := s.projectType(ctx, s.lookups, req.ClientType)
	if err != nil {
		return nil, err
	}

	prefix := strings.ToUpper(pt.Code)
	codes, err := s.repo.CodesWithPrefix(ctx, prefix)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("read client codes failed", zap.Error(err))
		return nil, err
	}
	return &GenerateCodeResponse{ClientCode: codegen.Next(prefix, codes)}, nil
}
