package entity

import (
	"time"
)

type ProjectStatus string

const (
	ProjectStatusPlanned   ProjectStatus = "planned"
	ProjectStatusOngoing   ProjectStatus = "ongoing"
	ProjectStatusCompleted ProjectStatus = "completed"
)

type Project struct {
	BaseNoDelete
	Title       string        `db:"title"`
	Client      string        `db:"client"`
	Description string        `db:"description"`
	Status      ProjectStatus `db:"status"`
	Budget      float64       `db:"budget"`
	StartedAt   *time.Time    `db:"started_at"`
	FinishedAt  *time.Time    `db:"finished_at"`
}
