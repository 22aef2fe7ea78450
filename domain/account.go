package domain

import "time"

// Account is a registered chat user.
type Account struct {
	Username     string
	PasswordHash string
	PushToken    string
	CreatedAt    time.Time
}
