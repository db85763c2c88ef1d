package domain

import "time"

const (
	ProviderACA       = "aca"
	ProviderMicrosoft = "microsoft"
	ProviderLocal     = "local"
)

// Session is the result of any successful sign-in.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}
