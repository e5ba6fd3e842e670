package rdb

import "time"

// RunRecord is the RDB persistence model for a domain Run.
// Table name: runs
type RunRecord struct {
	ID           string    `gorm:"primaryKey;type:text;not null"`
	Domain       string    `gorm:"type:text;not null"`
	Threads      int       `gorm:"not null"`
	DelaySeconds float64   `gorm:"not null"` // inter-request delay as passed on the CLI
	SuccessCount int       `gorm:"not null"`
	FailureCount int       `gorm:"not null"`
	StartedAt    time.Time `gorm:"not null"`
	FinishedAt   time.Time `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (RunRecord) TableName() string { return "runs" }

// OutcomeRecord persistence model, one row per dispatched record type.
type OutcomeRecord struct {
	ID        string    `gorm:"primaryKey;type:text;not null"`
	RunID     string    `gorm:"type:text;not null;index"` // references Run
	Position  int       `gorm:"not null"`                 // order within the run, successes first
	Type      string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:text;not null"`
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

func (OutcomeRecord) TableName() string { return "outcomes" }
