// Package repository provides plain database/sql access to the schema.
package repository

import "time"

// Project is the owning record for an engagement: a client and the reporting
// period their statements must fall within.
type Project struct {
	ID          string
	ClientName  string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Status      string
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Upload is one imported statement file. Soft-deleted uploads keep their rows
// but hide them from reads.
type Upload struct {
	ID               string
	ProjectID        string
	Institution      string
	AccountKind      string
	Filename         string
	TransactionCount int
	Status           string
	DeletedAt        *time.Time
	CreatedAt        time.Time
}

// Transaction is one canonical imported transaction. Amount is integer cents,
// negative means money out.
type Transaction struct {
	ID          string
	ProjectID   string
	UploadID    string
	Date        time.Time
	Description string
	AmountCents int64
	Memo        *string
	CreatedAt   time.Time
}

const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)
