package model

import "time"

// Todo is a task owned by exactly one user. Wire field names match the
// original web client (todoTitle/todoText/endTime). EndTime nil means
// "no deadline", which is distinct from a deadline in the past.
type Todo struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"ownerId"`
	Title     string     `json:"todoTitle"`
	Text      string     `json:"todoText"`
	EndTime   *time.Time `json:"endTime"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
