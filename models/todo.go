package models

import "time"

// Todo is a single task item owned by exactly one user. UserID is set at
// creation and never reassigned. The integer ID doubles as the creation-order
// sort key for listings.
type Todo struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
