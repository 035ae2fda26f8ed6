package model

import "time"

// Profile is the locally stored user profile.
type Profile struct {
	Name         string
	Email        string
	AvatarURL    string
	RegisteredAt time.Time
}
