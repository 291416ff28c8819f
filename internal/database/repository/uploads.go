package repository

import (
	"context"
	"database/sql"
)

// UploadRepo handles statement uploads.
type UploadRepo struct {
	db *sql.DB
}

func NewUploadRepo(db *sql.DB) *UploadRepo { return &UploadRepo{db: db} }

// InsertTx writes the upload row inside the importer's transaction so it
// commits or rolls back together with its transaction rows.
func (r *UploadRepo) InsertTx(ctx context.Context, tx *sql.Tx, u Upload) error {
	_, err := tx.ExecContext(ctx, `
	INSERT INTO uploads(id, project_id, institution, account_kind, filename, transaction_count, status, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, u.ID, u.ProjectID, u.Institution, u.AccountKind, u.Filename, u.TransactionCount, StatusActive)
	return err
}

// Get returns the active upload with id, or nil.
func (r *UploadRepo) Get(ctx context.Context, id string) (*Upload, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, project_id, institution, account_kind, filename, transaction_count, status, deleted_at, created_at
	FROM uploads WHERE id = ? AND status = ?`, id, StatusActive)
	u, err := scanUpload(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UploadRepo) ListByProject(ctx context.Context, projectID string) ([]Upload, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, project_id, institution, account_kind, filename, transaction_count, status, deleted_at, created_at
	FROM uploads WHERE project_id = ? AND status = ? ORDER BY created_at`, projectID, StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Upload
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// SoftDelete hides the upload and, through the status join on reads, every
// transaction it carried.
func (r *UploadRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE uploads SET status = ?, deleted_at = CURRENT_TIMESTAMP WHERE id = ?`, StatusDeleted, id)
	return err
}

func scanUpload(row scanner) (Upload, error) {
	var u Upload
	var deleted sql.NullTime
	if err := row.Scan(&u.ID, &u.ProjectID, &u.Institution, &u.AccountKind, &u.Filename,
		&u.TransactionCount, &u.Status, &deleted, &u.CreatedAt); err != nil {
		return Upload{}, err
	}
	if deleted.Valid {
		u.DeletedAt = &deleted.Time
	}
	return u, nil
}
