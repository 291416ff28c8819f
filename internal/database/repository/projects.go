package repository

import (
	"context"
	"database/sql"
)

// ProjectRepo handles projects.
type ProjectRepo struct {
	db *sql.DB
}

func NewProjectRepo(db *sql.DB) *ProjectRepo { return &ProjectRepo{db: db} }

func (r *ProjectRepo) Create(ctx context.Context, p Project) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO projects(id, client_name, period_start, period_end, status, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, p.ID, p.ClientName, p.PeriodStart, p.PeriodEnd, StatusActive)
	return err
}

// Get returns the active project with id, or nil if absent or deleted.
func (r *ProjectRepo) Get(ctx context.Context, id string) (*Project, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, client_name, period_start, period_end, status, deleted_at, created_at, updated_at
	FROM projects WHERE id = ? AND status = ?`, id, StatusActive)
	p, err := scanProject(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetTx reads the project inside an open transaction. The importer uses this
// to hold the authoritative period bounds for re-filtering.
func (r *ProjectRepo) GetTx(ctx context.Context, tx *sql.Tx, id string) (*Project, error) {
	row := tx.QueryRowContext(ctx, `
	SELECT id, client_name, period_start, period_end, status, deleted_at, created_at, updated_at
	FROM projects WHERE id = ? AND status = ?`, id, StatusActive)
	p, err := scanProject(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepo) List(ctx context.Context) ([]Project, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, client_name, period_start, period_end, status, deleted_at, created_at, updated_at
	FROM projects WHERE status = ? ORDER BY created_at DESC`, StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SoftDelete marks the project deleted; its uploads and transactions become
// invisible to reads that filter on project status.
func (r *ProjectRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE projects SET status = ?, deleted_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
	WHERE id = ?`, StatusDeleted, id)
	return err
}

func scanProject(row scanner) (Project, error) {
	var p Project
	var deleted sql.NullTime
	if err := row.Scan(&p.ID, &p.ClientName, &p.PeriodStart, &p.PeriodEnd, &p.Status,
		&deleted, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return Project{}, err
	}
	if deleted.Valid {
		p.DeletedAt = &deleted.Time
	}
	return p, nil
}

// scanner handles both Row and Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}
