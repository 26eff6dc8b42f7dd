package models

import "time"

type Todo struct {
	ID          int64
	Title       string
	Description *string
	DueDate     *time.Time
	Resolved    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
