package auth_test

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"testing"
	"time"

	"go-hrfine/internal/auth"
	autherrors "go-hrfine/internal/auth/errors"
	authMock "go-hrfine/internal/auth/mock"
	"go-hrfine/internal/config"
	counterMock "go-hrfine/internal/shared/counter/mock"
	"go-hrfine/internal/shared/token"
	"go-hrfine/internal/user"
	userMock "go-hrfine/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	repo      *authMock.MockRepository
	users     *userMock.MockRepository
	counters  *counterMock.MockRepository
	notifier  *authMock.MockNotifier
	tokens    *token.Manager
	service   auth.Service
}

func newTokens() *token.Manager {
	return token.NewManager(config.JWTConfig{
		Secret:        "access-secret",
		RefreshSecret: "refresh-secret",
		Algorithm:     "HS256",
		AccessTTL:     60 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
	})
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	deps := &serviceDeps{
		sqlMock:   sqlMock,
		redisMock: redisMock,
		repo:      authMock.NewMockRepository(ctrl),
		users:     userMock.NewMockRepository(ctrl),
		counters:  counterMock.NewMockRepository(ctrl),
		notifier:  authMock.NewMockNotifier(ctrl),
		tokens:    newTokens(),
	}
	deps.service = auth.NewService(db, deps.repo, deps.users, deps.counters,
		deps.tokens, token.NewDenylist(rdb), deps.notifier)
	return deps
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	hash, err := auth.HashPassword(plain)
	assert.NoError(t, err)
	return hash
}

func thaiScope() (string, int) {
	year := auth.ThaiYear(time.Now())
	return auth.FormatEmpID(year, 0)[:2], year
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := &user.User{ID: 3, EmpID: "68003", Email: "malee@hr.test", Role: "employee", Password: mustHash(t, "secret-pass")}

		var stored *auth.RefreshToken
		deps.users.EXPECT().FindByEmpID(ctx, "68003").Return(u, nil)
		deps.repo.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, rt *auth.RefreshToken) error {
			stored = rt
			return nil
		})

		resp, err := deps.service.Login(ctx, auth.LoginRequest{EmpID: "68003", Password: "secret-pass"})
		assert.NoError(t, err)
		assert.Equal(t, auth.TokenTypeBearer, resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
		assert.Equal(t, "68003", resp.User.EmpID)

		access, err := deps.tokens.ParseAccess(resp.AccessToken)
		assert.NoError(t, err)
		refresh, err := deps.tokens.ParseRefresh(resp.RefreshToken)
		assert.NoError(t, err)

		assert.True(t, stored.Status)
		assert.Equal(t, uint(3), stored.UserID)
		assert.Equal(t, stored.ID, access.SessionID)
		assert.Equal(t, stored.ID, refresh.SessionID)
		assert.Equal(t, refresh.ID, stored.TokenID)
	})

	t.Run("unknown emp_id", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().FindByEmpID(ctx, "99999").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Login(ctx, auth.LoginRequest{EmpID: "99999", Password: "x"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := &user.User{ID: 3, EmpID: "68003", Password: mustHash(t, "secret-pass")}
		deps.users.EXPECT().FindByEmpID(ctx, "68003").Return(u, nil)

		_, err := deps.service.Login(ctx, auth.LoginRequest{EmpID: "68003", Password: "guess"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	subject := token.Subject{UserID: 3, EmpID: "68003", Role: "employee", SessionID: "s-1"}

	t.Run("live session", func(t *testing.T) {
		deps := setupServiceTest(t)
		raw, claims, err := deps.tokens.IssueRefresh(subject)
		assert.NoError(t, err)

		deps.repo.EXPECT().FindSession(ctx, "s-1").Return(&auth.RefreshToken{
			ID: "s-1", UserID: 3, TokenID: claims.ID, Status: true, ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
		// role changed since login
		deps.users.EXPECT().FindByID(ctx, uint(3)).Return(&user.User{ID: 3, EmpID: "68003", Role: "hr", ResetStatus: true}, nil)

		resp, err := deps.service.Refresh(ctx, raw)
		assert.NoError(t, err)
		assert.Empty(t, resp.RefreshToken)

		access, err := deps.tokens.ParseAccess(resp.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, "s-1", access.SessionID)
		assert.Equal(t, "hr", access.Role)
		assert.True(t, access.ResetStatus)
	})

	t.Run("revoked session", func(t *testing.T) {
		deps := setupServiceTest(t)
		raw, claims, _ := deps.tokens.IssueRefresh(subject)
		deps.repo.EXPECT().FindSession(ctx, "s-1").Return(&auth.RefreshToken{
			ID: "s-1", UserID: 3, TokenID: claims.ID, Status: false, ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

		_, err := deps.service.Refresh(ctx, raw)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("token of another login", func(t *testing.T) {
		deps := setupServiceTest(t)
		raw, _, _ := deps.tokens.IssueRefresh(subject)
		deps.repo.EXPECT().FindSession(ctx, "s-1").Return(&auth.RefreshToken{
			ID: "s-1", UserID: 3, TokenID: "other", Status: true, ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

		_, err := deps.service.Refresh(ctx, raw)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		raw, _, _ := deps.tokens.IssueAccess(subject)

		_, err := deps.service.Refresh(ctx, raw)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.repo.EXPECT().RevokeSession(ctx, "s-1", uint(3)).Return(nil)
	deps.redisMock.CustomMatch(func(expected, actual []interface{}) error {
		assert.Equal(t, "set", actual[0])
		assert.Equal(t, token.DenylistKey("jti-1"), actual[1])
		return nil
	}).ExpectSet(token.DenylistKey("jti-1"), "1", time.Minute).SetVal("OK")

	err := deps.service.Logout(ctx, auth.Session{
		UserID: 3, SessionID: "s-1", TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Minute),
	})
	assert.NoError(t, err)
	assert.NoError(t, deps.redisMock.ExpectationsWereMet())
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	prefix, year := thaiScope()

	t.Run("allocates emp_id and mails password", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().FindByEmail(ctx, "new@hr.test").Return(nil, gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectBegin()
		deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users)
		deps.counters.EXPECT().WithTx(gomock.Any()).Return(deps.counters)
		deps.counters.EXPECT().NextValue(ctx, strconv.Itoa(year), auth.CounterTypeEmpID).Return(int64(4), nil)
		deps.sqlMock.ExpectExec(regexp.QuoteMeta("SAVEPOINT create_user")).WillReturnResult(sqlmock.NewResult(0, 0))
		deps.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.Equal(t, "employee", u.Role)
			assert.False(t, u.ResetStatus)
			u.ID = 12
			return nil
		})
		deps.sqlMock.ExpectExec(regexp.QuoteMeta("RELEASE SAVEPOINT create_user")).WillReturnResult(sqlmock.NewResult(0, 0))
		deps.sqlMock.ExpectCommit()
		deps.notifier.EXPECT().SendRegistration(ctx, "new@hr.test", prefix+"004", gomock.Any()).Return(nil)

		resp, err := deps.service.Register(ctx, auth.RegisterRequest{Email: "new@hr.test"})
		assert.NoError(t, err)
		assert.Equal(t, prefix+"004", resp.EmpID)
		assert.Len(t, resp.Password, auth.TempPasswordLength)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("skips emp_id taken outside the counter", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().FindByEmail(ctx, "new@hr.test").Return(nil, gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectBegin()
		deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users)
		deps.counters.EXPECT().WithTx(gomock.Any()).Return(deps.counters)
		gomock.InOrder(
			deps.counters.EXPECT().NextValue(ctx, strconv.Itoa(year), auth.CounterTypeEmpID).Return(int64(4), nil),
			deps.counters.EXPECT().NextValue(ctx, strconv.Itoa(year), auth.CounterTypeEmpID).Return(int64(5), nil),
		)
		deps.sqlMock.ExpectExec(regexp.QuoteMeta("SAVEPOINT create_user")).WillReturnResult(sqlmock.NewResult(0, 0))
		deps.sqlMock.ExpectExec(regexp.QuoteMeta("ROLLBACK TO SAVEPOINT create_user")).WillReturnResult(sqlmock.NewResult(0, 0))
		deps.sqlMock.ExpectExec(regexp.QuoteMeta("SAVEPOINT create_user")).WillReturnResult(sqlmock.NewResult(0, 0))
		deps.sqlMock.ExpectExec(regexp.QuoteMeta("RELEASE SAVEPOINT create_user")).WillReturnResult(sqlmock.NewResult(0, 0))
		deps.sqlMock.ExpectCommit()
		gomock.InOrder(
			deps.users.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("UNIQUE constraint failed: users.emp_id")),
			deps.users.EXPECT().Create(ctx, gomock.Any()).Return(nil),
		)
		deps.notifier.EXPECT().SendRegistration(ctx, "new@hr.test", prefix+"005", gomock.Any()).Return(errors.New("smtp down"))

		resp, err := deps.service.Register(ctx, auth.RegisterRequest{Email: "new@hr.test"})
		assert.NoError(t, err)
		assert.Equal(t, prefix+"005", resp.EmpID)
	})

	t.Run("email taken", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().FindByEmail(ctx, "old@hr.test").Return(&user.User{ID: 1}, nil)

		_, err := deps.service.Register(ctx, auth.RegisterRequest{Email: "old@hr.test"})
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})
}

func TestAuthService_ChangeTempPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("first change", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users)
		deps.users.EXPECT().FindByID(ctx, uint(3)).Return(&user.User{ID: 3, Password: mustHash(t, "TempPass1234")}, nil)
		deps.users.EXPECT().UpdatePassword(ctx, uint(3), gomock.Any(), true).Return(nil)

		err := deps.service.ChangeTempPassword(ctx, 3, auth.ChangeTempPasswordRequest{NewPassword: "my-own-pass"})
		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("second attempt", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users)
		deps.users.EXPECT().FindByID(ctx, uint(3)).Return(&user.User{ID: 3, ResetStatus: true}, nil)

		err := deps.service.ChangeTempPassword(ctx, 3, auth.ChangeTempPasswordRequest{NewPassword: "my-own-pass"})
		assert.ErrorIs(t, err, autherrors.ErrTempPasswordAlreadyChanged)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong current password", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().FindByID(ctx, uint(3)).Return(&user.User{ID: 3, Password: mustHash(t, "current-pass")}, nil)

		err := deps.service.ChangePassword(ctx, 3, auth.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "new-password"})
		assert.ErrorIs(t, err, autherrors.ErrWrongPassword)
	})

	t.Run("keeps reset status", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().FindByID(ctx, uint(3)).Return(&user.User{ID: 3, ResetStatus: true, Password: mustHash(t, "current-pass")}, nil)
		deps.users.EXPECT().UpdatePassword(ctx, uint(3), gomock.Any(), true).DoAndReturn(
			func(_ context.Context, _ uint, hash string, _ bool) error {
				assert.True(t, auth.CheckPassword(hash, "new-password"))
				return nil
			})

		err := deps.service.ChangePassword(ctx, 3, auth.ChangePasswordRequest{CurrentPassword: "current-pass", NewPassword: "new-password"})
		assert.NoError(t, err)
	})

	t.Run("user gone", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().FindByID(ctx, uint(3)).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.ChangePassword(ctx, 3, auth.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "new-password"})
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("known email", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().FindByEmail(ctx, "malee@hr.test").Return(&user.User{ID: 3, EmpID: "68003", Email: "malee@hr.test", ResetStatus: true}, nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users)
		deps.users.EXPECT().UpdatePassword(ctx, uint(3), gomock.Any(), false).Return(nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().RevokeAllSessions(ctx, uint(3)).Return(nil)
		deps.notifier.EXPECT().SendPasswordReset(ctx, "malee@hr.test", "68003", gomock.Any()).Return(nil)

		assert.NoError(t, deps.service.ResetPassword(ctx, "malee@hr.test"))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown email is silent", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().FindByEmail(ctx, "ghost@hr.test").Return(nil, gorm.ErrRecordNotFound)

		assert.NoError(t, deps.service.ResetPassword(ctx, "ghost@hr.test"))
	})
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("users exist", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.users.EXPECT().Count(ctx).Return(int64(2), nil)

		created, err := deps.service.EnsureAdmin(ctx, "admin@hr.test", "admin-pass")
		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("seeds first admin", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, year := thaiScope()
		deps.users.EXPECT().Count(ctx).Return(int64(0), nil)
		deps.sqlMock.ExpectBegin()
		deps.users.EXPECT().WithTx(gomock.Any()).Return(deps.users)
		deps.counters.EXPECT().WithTx(gomock.Any()).Return(deps.counters)
		deps.counters.EXPECT().NextValue(ctx, strconv.Itoa(year), auth.CounterTypeEmpID).Return(int64(1), nil)
		deps.sqlMock.ExpectExec(regexp.QuoteMeta("SAVEPOINT create_user")).WillReturnResult(sqlmock.NewResult(0, 0))
		deps.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.Equal(t, "admin", u.Role)
			assert.True(t, u.ResetStatus)
			return nil
		})
		deps.sqlMock.ExpectExec(regexp.QuoteMeta("RELEASE SAVEPOINT create_user")).WillReturnResult(sqlmock.NewResult(0, 0))
		deps.sqlMock.ExpectCommit()

		created, err := deps.service.EnsureAdmin(ctx, "admin@hr.test", "admin-pass")
		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("not configured", func(t *testing.T) {
		deps := setupServiceTest(t)
		created, err := deps.service.EnsureAdmin(ctx, "", "")
		assert.NoError(t, err)
		assert.False(t, created)
	})
}
