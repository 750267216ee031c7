package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrfine/internal/shared/testdb"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func TestMigrate(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "refresh_tokens", "clients", "time_stamps", "outbox_events"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "up", want: http.StatusOK},
		{name: "down", err: errors.New("dial tcp: refused"), want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/healthz", healthz(stubPinger{err: tt.err}))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
