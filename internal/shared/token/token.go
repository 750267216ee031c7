// Package token issues and verifies the HMAC signed JWTs used for sessions.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"go-hrfine/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var (
	ErrInvalid = errors.New("token invalid")
	ErrExpired = errors.New("token expired")
)

type Claims struct {
	EmpID       string `json:"emp_id"`
	ResetStatus bool   `json:"reset_status"`
	Role        string `json:"role"`
	SessionID   string `json:"sid"`
	Type        string `json:"typ"`
	jwt.RegisteredClaims
}

// UserID returns the numeric user id carried in sub.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalid
	}
	return uint(id), nil
}

type Subject struct {
	UserID      uint
	EmpID       string
	ResetStatus bool
	Role        string
	SessionID   string
}

type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	method        jwt.SigningMethod
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewManager(cfg config.JWTConfig) *Manager {
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	return &Manager{
		accessSecret:  []byte(cfg.Secret),
		refreshSecret: []byte(cfg.RefreshSecret),
		method:        method,
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	cp := *m
	cp.now = now
	return &cp
}

func (m *Manager) AccessTTL() time.Duration  { return m.accessTTL }
func (m *Manager) RefreshTTL() time.Duration { return m.refreshTTL }

func (m *Manager) IssueAccess(s Subject) (string, *Claims, error) {
	return m.issue(s, TypeAccess, m.accessSecret, m.accessTTL)
}

func (m *Manager) IssueRefresh(s Subject) (string, *Claims, error) {
	return m.issue(s, TypeRefresh, m.refreshSecret, m.refreshTTL)
}

func (m *Manager) ParseAccess(raw string) (*Claims, error) {
	return m.parse(raw, TypeAccess, m.accessSecret)
}

func (m *Manager) ParseRefresh(raw string) (*Claims, error) {
	return m.parse(raw, TypeRefresh, m.refreshSecret)
}

func (m *Manager) issue(s Subject, typ string, secret []byte, ttl time.Duration) (string, *Claims, error) {
	now := m.now()
	claims := &Claims{
		EmpID:       s.EmpID,
		ResetStatus: s.ResetStatus,
		Role:        s.Role,
		SessionID:   s.SessionID,
		Type:        typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(s.UserID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(m.method, claims).SignedString(secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign %s token: %w", typ, err)
	}
	return signed, claims, nil
}

func (m *Manager) parse(raw, typ string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if claims.Type != typ || claims.Subject == "" || claims.EmpID == "" {
		return nil, ErrInvalid
	}
	return claims, nil
}
