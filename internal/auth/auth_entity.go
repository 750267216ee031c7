package auth

import "time"

// RefreshToken is one login session. ID is the session id carried in every
// token of the session as "sid"; TokenID is the jti of the refresh token
// issued for it.
type RefreshToken struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	TokenID   string    `gorm:"type:varchar(36);not null"`
	Status    bool      `gorm:"not null;default:true"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RefreshToken) TableName() string { return "refresh_tokens" }

// Live reports whether the session can still mint access tokens.
func (t RefreshToken) Live(now time.Time) bool {
	return t.Status && now.Before(t.ExpiresAt)
}
