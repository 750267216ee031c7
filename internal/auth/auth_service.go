package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	autherrors "go-hrfine/internal/auth/errors"
	"go-hrfine/internal/rbac"
	"go-hrfine/internal/shared/contextutil"
	"go-hrfine/internal/shared/counter"
	"go-hrfine/internal/shared/dberr"
	"go-hrfine/internal/shared/dbtx"
	"go-hrfine/internal/shared/token"
	"go-hrfine/internal/user"
	usererrors "go-hrfine/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CounterTypeEmpID = "emp_id"
	maxEmpIDAttempts = 3
)

// Notifier delivers the account mails. Delivery failures never fail the
// request that triggered them.
type Notifier interface {
	SendRegistration(ctx context.Context, email, empID, password string) error
	SendPasswordReset(ctx context.Context, email, empID, password string) error
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, sess Session) error
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	ChangePassword(ctx context.Context, userID uint, req ChangePasswordRequest) error
	ChangeTempPassword(ctx context.Context, userID uint, req ChangeTempPasswordRequest) error
	ResetPassword(ctx context.Context, email string) error
	Me(ctx context.Context, userID uint) (user.UserResponse, error)
	EnsureAdmin(ctx context.Context, email, password string) (bool, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	users    user.Repository
	counters counter.Repository
	tokens   *token.Manager
	denylist *token.Denylist
	notifier Notifier
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	users user.Repository,
	counters counter.Repository,
	tokens *token.Manager,
	denylist *token.Denylist,
	notifier Notifier,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		users:    users,
		counters: counters,
		tokens:   tokens,
		denylist: denylist,
		notifier: notifier,
		now:      time.Now,
		logger:   l,
	}
}

// FormatEmpID renders the n-th employee of a Buddhist-era year, e.g. 68001.
func FormatEmpID(thaiYear int, n int64) string {
	return fmt.Sprintf("%02d%03d", thaiYear%100, n)
}

func ThaiYear(t time.Time) int {
	return t.Year() + 543
}

func subjectOf(u *user.User, sessionID string) token.Subject {
	return token.Subject{
		UserID:      u.ID,
		EmpID:       u.EmpID,
		ResetStatus: u.ResetStatus,
		Role:        u.Role,
		SessionID:   sessionID,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.users.FindByEmpID(ctx, strings.TrimSpace(req.EmpID))
	if err != nil {
		if dberr.IsNotFound(err) {
			return TokenResponse{}, autherrors.ErrInvalidCredentials
		}
		l.Error("login find user failed", zap.Error(err))
		return TokenResponse{}, err
	}
	if !CheckPassword(u.Password, req.Password) {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	sub := subjectOf(u, uuid.NewString())
	access, _, err := s.tokens.IssueAccess(sub)
	if err != nil {
		return TokenResponse{}, err
	}
	refresh, refreshClaims, err := s.tokens.IssueRefresh(sub)
	if err != nil {
		return TokenResponse{}, err
	}

	session := &RefreshToken{
		ID:        sub.SessionID,
		UserID:    u.ID,
		TokenID:   refreshClaims.ID,
		Status:    true,
		ExpiresAt: refreshClaims.ExpiresAt.Time,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		l.Error("login persist session failed", zap.Uint("user_id", u.ID), zap.Error(err))
		return TokenResponse{}, err
	}

	l.Info("user logged in", zap.String("emp_id", u.EmpID), zap.String("session_id", session.ID))
	resp := user.ToResponse(*u)
	return TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    TokenTypeBearer,
		ExpiresIn:    int64(s.tokens.AccessTTL().Seconds()),
		User:         &resp,
	}, nil
}

// Refresh mints a new access token for the session the refresh token belongs
// to. The refresh token itself is not rotated.
func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenResponse, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return TokenResponse{}, autherrors.ErrTokenExpired
		}
		return TokenResponse{}, autherrors.ErrInvalidRefreshToken
	}
	userID, err := claims.UserID()
	if err != nil {
		return TokenResponse{}, autherrors.ErrInvalidRefreshToken
	}

	session, err := s.repo.FindSession(ctx, claims.SessionID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return TokenResponse{}, autherrors.ErrInvalidRefreshToken
		}
		return TokenResponse{}, err
	}
	if !session.Live(s.now()) || session.TokenID != claims.ID || session.UserID != userID {
		return TokenResponse{}, autherrors.ErrInvalidRefreshToken
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if dberr.IsNotFound(err) {
			return TokenResponse{}, autherrors.ErrInvalidRefreshToken
		}
		return TokenResponse{}, err
	}

	access, _, err := s.tokens.IssueAccess(subjectOf(u, session.ID))
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{
		AccessToken: access,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   int64(s.tokens.AccessTTL().Seconds()),
	}, nil
}

func (s *service) Logout(ctx context.Context, sess Session) error {
	l := contextutil.GetLogger(ctx, s.logger)

	if err := s.repo.RevokeSession(ctx, sess.SessionID, sess.UserID); err != nil && !dberr.IsNotFound(err) {
		l.Error("logout revoke session failed", zap.String("session_id", sess.SessionID), zap.Error(err))
		return err
	}

	if err := s.denylist.Revoke(ctx, sess.TokenID, sess.ExpiresAt); err != nil {
		l.Warn("logout denylist access token failed", zap.String("jti", sess.TokenID), zap.Error(err))
	}
	return nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	email := strings.TrimSpace(req.Email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return RegisterResponse{}, autherrors.ErrEmailAlreadyRegistered
	} else if !dberr.IsNotFound(err) {
		return RegisterResponse{}, err
	}

	password, err := GenerateTempPassword(TempPasswordLength)
	if err != nil {
		return RegisterResponse{}, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return RegisterResponse{}, err
	}

	u := &user.User{
		Email:    email,
		Password: hash,
		Role:     rbac.RoleEmployee,
	}
	if err := s.createUser(ctx, u); err != nil {
		l.Error("register user failed", zap.String("email", email), zap.Error(err))
		return RegisterResponse{}, err
	}

	l.Info("user registered", zap.String("emp_id", u.EmpID))
	if s.notifier != nil {
		if err := s.notifier.SendRegistration(ctx, u.Email, u.EmpID, password); err != nil {
			l.Warn("registration mail failed", zap.String("emp_id", u.EmpID), zap.Error(err))
		}
	}

	return RegisterResponse{Email: u.Email, EmpID: u.EmpID, Password: password}, nil
}

// createUser allocates the next emp_id of the current Buddhist-era year and
// inserts u. An emp_id taken outside the counter is skipped.
func (s *service) createUser(ctx context.Context, u *user.User) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	users := s.users.WithTx(tx)
	counters := s.counters.WithTx(tx)
	year := ThaiYear(s.now())
	scope := strconv.Itoa(year)

	for attempt := 1; attempt <= maxEmpIDAttempts; attempt++ {
		n, err := counters.NextValue(ctx, scope, CounterTypeEmpID)
		if err != nil {
			return err
		}
		u.EmpID = FormatEmpID(year, n)

		err = dbtx.Savepoint(ctx, tx, "create_user", func() error {
			return users.Create(ctx, u)
		})
		if err == nil {
			return tx.Commit()
		}

		mapped := user.MapRepositoryError(err)
		switch {
		case errors.Is(mapped, usererrors.ErrEmpIDAlreadyExists):
			s.logger.Warn("emp_id already taken, retrying", zap.String("emp_id", u.EmpID), zap.Int("attempt", attempt))
			continue
		case errors.Is(mapped, usererrors.ErrEmailAlreadyExists):
			return autherrors.ErrEmailAlreadyRegistered
		default:
			return mapped
		}
	}
	return autherrors.ErrEmpIDConflict
}

func (s *service) ChangePassword(ctx context.Context, userID uint, req ChangePasswordRequest) error {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return mapUserError(err)
	}
	if !CheckPassword(u.Password, req.CurrentPassword) {
		return autherrors.ErrWrongPassword
	}
	if req.CurrentPassword == req.NewPassword {
		return autherrors.ErrSamePassword
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, u.ID, hash, u.ResetStatus); err != nil {
		return mapUserError(err)
	}
	contextutil.GetLogger(ctx, s.logger).Info("password changed", zap.String("emp_id", u.EmpID))
	return nil
}

// ChangeTempPassword replaces the mailed temporary password. It succeeds
// once per temporary password.
func (s *service) ChangeTempPassword(ctx context.Context, userID uint, req ChangeTempPasswordRequest) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	users := s.users.WithTx(tx)

	u, err := users.FindByID(ctx, userID)
	if err != nil {
		return mapUserError(err)
	}
	if u.ResetStatus {
		return autherrors.ErrTempPasswordAlreadyChanged
	}
	if CheckPassword(u.Password, req.NewPassword) {
		return autherrors.ErrSamePassword
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := users.UpdatePassword(ctx, u.ID, hash, true); err != nil {
		return mapUserError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	contextutil.GetLogger(ctx, s.logger).Info("temporary password changed", zap.String("emp_id", u.EmpID))
	return nil
}

// ResetPassword issues a new temporary password and ends every session of
// the user. Unknown emails succeed silently so the endpoint cannot be used
// to probe accounts.
func (s *service) ResetPassword(ctx context.Context, email string) error {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if dberr.IsNotFound(err) {
			l.Info("password reset for unknown email")
			return nil
		}
		return err
	}

	password, err := GenerateTempPassword(TempPasswordLength)
	if err != nil {
		return err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.users.WithTx(tx).UpdatePassword(ctx, u.ID, hash, false); err != nil {
		return mapUserError(err)
	}
	if err := s.repo.WithTx(tx).RevokeAllSessions(ctx, u.ID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	l.Info("password reset", zap.String("emp_id", u.EmpID))
	if s.notifier != nil {
		if err := s.notifier.SendPasswordReset(ctx, u.Email, u.EmpID, password); err != nil {
			l.Warn("password reset mail failed", zap.String("emp_id", u.EmpID), zap.Error(err))
		}
	}
	return nil
}

func (s *service) Me(ctx context.Context, userID uint) (user.UserResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, mapUserError(err)
	}
	return user.ToResponse(*u), nil
}

// EnsureAdmin creates the first administrator when the users table is
// empty. It reports whether a user was created.
func (s *service) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, nil
	}
	n, err := s.users.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}
	u := &user.User{
		Email:       email,
		Password:    hash,
		Role:        rbac.RoleAdmin,
		ResetStatus: true,
	}
	if err := s.createUser(ctx, u); err != nil {
		return false, err
	}

	s.logger.Info("admin user seeded", zap.String("emp_id", u.EmpID), zap.String("email", u.Email))
	return true, nil
}

func mapUserError(err error) error {
	mapped := user.MapRepositoryError(err)
	if errors.Is(mapped, usererrors.ErrUserNotFound) {
		return autherrors.ErrUserNotFound
	}
	return mapped
}
