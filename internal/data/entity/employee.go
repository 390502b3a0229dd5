package entity

import (
	"time"
)

type Employee struct {
	BaseNoDelete
	Name     string    `db:"name"`
	Email    string    `db:"email"`
	Position string    `db:"position"`
	Salary   float64   `db:"salary"`
	HiredAt  time.Time `db:"hired_at"`
	IsActive bool      `db:"is_active"`
}
