package client_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go-hrfine/internal/client"
	clienterrors "go-hrfine/internal/client/errors"
	clientMock "go-hrfine/internal/client/mock"
	"go-hrfine/internal/lookup"
	lookupMock "go-hrfine/internal/lookup/mock"
	"go-hrfine/internal/shared/apperror"
	"go-hrfine/internal/shared/patch"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *clientMock.MockRepository
	lookups *lookupMock.MockRepository
	service client.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	deps := &serviceDeps{
		sqlMock: sqlMock,
		repo:    clientMock.NewMockRepository(ctrl),
		lookups: lookupMock.NewMockRepository(ctrl),
	}
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).AnyTimes()
	deps.lookups.EXPECT().WithTx(gomock.Any()).Return(deps.lookups).AnyTimes()
	deps.service = client.NewService(db, deps.repo, deps.lookups)
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func createReq() client.CreateClientRequest {
	return client.CreateClientRequest{
		ClientName: "Siam Retail", ClientCode: "sw-001", ClientType: 1,
		ClientEmail: "it@siamretail.test", ContactAddress: "Bangkok", ClientTel: "021234567",
	}
}

func TestClientService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.lookups.EXPECT().FindProjectType(ctx, uint(1)).Return(&lookup.ProjectType{ID: 1, Name: "Software", Code: "SW"}, nil)
		deps.repo.EXPECT().ExistsName(ctx, "Siam Retail", uint(0)).Return(false, nil)
		deps.repo.EXPECT().ExistsCode(ctx, "SW-001", uint(0)).Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *client.Client) error {
			assert.Equal(t, "SW-001", c.ClientCode)
			c.ID = 4
			return nil
		})

		resp, err := deps.service.Create(ctx, createReq())

		assert.NoError(t, err)
		assert.Equal(t, uint(4), resp.ClientID)
		assert.Equal(t, "Software", resp.ProjectType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.lookups.EXPECT().FindProjectType(ctx, uint(1)).Return(&lookup.ProjectType{ID: 1, Code: "SW"}, nil)
		deps.repo.EXPECT().ExistsName(ctx, "Siam Retail", uint(0)).Return(true, nil)

		_, err := deps.service.Create(ctx, createReq())

		assert.True(t, errors.Is(err, clienterrors.ErrClientNameExists))
		assert.Equal(t, "Client with Siam Retail already exists.", apperror.ToHTTP(err).Message)
	})

	t.Run("duplicate code", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.lookups.EXPECT().FindProjectType(ctx, uint(1)).Return(&lookup.ProjectType{ID: 1, Code: "SW"}, nil)
		deps.repo.EXPECT().ExistsName(ctx, "Siam Retail", uint(0)).Return(false, nil)
		deps.repo.EXPECT().ExistsCode(ctx, "SW-001", uint(0)).Return(true, nil)

		_, err := deps.service.Create(ctx, createReq())

		assert.Equal(t, http.StatusConflict, apperror.ToHTTP(err).Status)
		assert.Equal(t, "Client code SW-001 already exists, please try another code.", apperror.ToHTTP(err).Message)
	})

	t.Run("unknown client type", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.lookups.EXPECT().FindProjectType(ctx, uint(1)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, createReq())

		assert.True(t, errors.Is(err, clienterrors.ErrProjectTypeNotFound))
	})
}

func TestClientService_Update(t *testing.T) {
	ctx := context.Background()
	existing := &client.Row{
		Client: client.Client{
			ID: 4, ClientType: 1, ClientName: "Siam Retail", ClientCode: "SW-001",
			ClientEmail: "it@siamretail.test", ContactAddress: "Bangkok", ClientTel: "021234567",
		},
		ProjectType: "Software",
	}

	t.Run("only present fields change", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().FindByID(ctx, uint(4)).Return(existing, nil)
		deps.repo.EXPECT().ExistsName(ctx, "Siam Retail", uint(4)).Return(false, nil)
		deps.repo.EXPECT().ExistsCode(ctx, "SW-001", uint(4)).Return(false, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *client.Client) error {
			assert.Equal(t, "029999999", c.ClientTel)
			assert.Equal(t, "Bangkok", c.ContactAddress)
			assert.Equal(t, "it@siamretail.test", c.ClientEmail)
			return nil
		})

		resp, err := deps.service.Update(ctx, 4, client.UpdateClientRequest{ClientTel: patch.Of("029999999")})

		assert.NoError(t, err)
		assert.Equal(t, "029999999", resp.ClientTel)
		assert.Equal(t, "Software", resp.ProjectType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindByID(ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 9, client.UpdateClientRequest{ClientTel: patch.Of("0")})

		assert.True(t, errors.Is(err, clienterrors.ErrClientNotFound))
	})

	t.Run("invalid email", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().FindByID(ctx, uint(4)).Return(existing, nil)

		_, err := deps.service.Update(ctx, 4, client.UpdateClientRequest{ClientEmail: patch.Of("nope")})

		assert.True(t, errors.Is(err, clienterrors.ErrInvalidEmail))
	})
}

func TestClientService_GenerateCode(t *testing.T) {
	ctx := context.Background()

	t.Run("next after highest suffix", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.lookups.EXPECT().FindProjectType(ctx, uint(2)).Return(&lookup.ProjectType{ID: 2, Code: "abc"}, nil)
		deps.repo.EXPECT().CodesWithPrefix(ctx, "ABC").Return([]string{"ABC-001", "ABC-002"}, nil)

		resp, err := deps.service.GenerateCode(ctx, client.GenerateCodeRequest{ClientType: 2})

		assert.NoError(t, err)
		assert.Equal(t, "ABC-003", resp.ClientCode)
	})

	t.Run("first code", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.lookups.EXPECT().FindProjectType(ctx, uint(2)).Return(&lookup.ProjectType{ID: 2, Code: "SW"}, nil)
		deps.repo.EXPECT().CodesWithPrefix(ctx, "SW").Return(nil, nil)

		resp, err := deps.service.GenerateCode(ctx, client.GenerateCodeRequest{ClientType: 2})

		assert.NoError(t, err)
		assert.Equal(t, "SW-001", resp.ClientCode)
	})
}
