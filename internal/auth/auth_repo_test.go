package auth_test

import (
	"context"
	"testing"
	"time"

	"go-hrfine/internal/auth"
	"go-hrfine/internal/shared/dberr"
	"go-hrfine/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
)

func TestRepository_Sessions(t *testing.T) {
	ctx := context.Background()
	repo := auth.NewRepository(testdb.Open(t, &auth.RefreshToken{}))
	exp := time.Now().Add(time.Hour)

	for _, id := range []string{"s-1", "s-2"} {
		assert.NoError(t, repo.CreateSession(ctx, &auth.RefreshToken{ID: id, UserID: 3, TokenID: "jti-" + id, Status: true, ExpiresAt: exp}))
	}
	assert.NoError(t, repo.CreateSession(ctx, &auth.RefreshToken{ID: "s-3", UserID: 4, TokenID: "jti-s-3", Status: true, ExpiresAt: exp}))

	got, err := repo.FindSession(ctx, "s-1")
	assert.NoError(t, err)
	assert.True(t, got.Live(time.Now()))
	assert.Equal(t, "jti-s-1", got.TokenID)

	// another user's session is untouched
	assert.True(t, dberr.IsNotFound(repo.RevokeSession(ctx, "s-3", 3)))

	assert.NoError(t, repo.RevokeSession(ctx, "s-1", 3))
	got, _ = repo.FindSession(ctx, "s-1")
	assert.False(t, got.Live(time.Now()))

	assert.NoError(t, repo.RevokeAllSessions(ctx, 3))
	got, _ = repo.FindSession(ctx, "s-2")
	assert.False(t, got.Status)
	got, _ = repo.FindSession(ctx, "s-3")
	assert.True(t, got.Status)

	_, err = repo.FindSession(ctx, "missing")
	assert.True(t, dberr.IsNotFound(err))
}

func TestGenerateTempPassword(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		p, err := auth.GenerateTempPassword(auth.TempPasswordLength)
		assert.NoError(t, err)
		assert.Regexp(t, `^[A-Za-z0-9]{12}$`, p)
		seen[p] = true
	}
	assert.Len(t, seen, 20)
}

func TestFormatEmpID(t *testing.T) {
	assert.Equal(t, "68001", auth.FormatEmpID(2568, 1))
	assert.Equal(t, "69123", auth.FormatEmpID(2569, 123))
	assert.Equal(t, 2568, auth.ThaiYear(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
}
