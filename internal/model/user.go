package model

import "time"

// User is identified solely by a unique display name; there is no
// password or other secret.
type User struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}
