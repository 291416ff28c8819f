package repository

import (
	"context"
	"database/sql"
	"strings"
)

// TransactionRepo handles imported transactions.
type TransactionRepo struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) *TransactionRepo { return &TransactionRepo{db: db} }

// transactionInsertColumns is the column count of one row in InsertGroupTx.
// The importer divides sqlite's parameter ceiling by this to size its groups.
const transactionInsertColumns = 7

// InsertColumns returns the number of bound parameters per inserted row.
func (r *TransactionRepo) InsertColumns() int { return transactionInsertColumns }

// InsertGroupTx writes one group of transactions with a single multi-row
// INSERT inside the importer's transaction. The caller is responsible for
// keeping len(txs)*InsertColumns() under the statement parameter limit.
func (r *TransactionRepo) InsertGroupTx(ctx context.Context, tx *sql.Tx, txs []Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(`INSERT INTO transactions(id, project_id, upload_id, date, description, amount, memo, created_at) VALUES `)
	args := make([]interface{}, 0, len(txs)*transactionInsertColumns)
	for i, t := range txs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)")
		args = append(args, t.ID, t.ProjectID, t.UploadID, t.Date, t.Description, t.AmountCents, t.Memo)
	}
	sb.WriteString(";")
	_, err := tx.ExecContext(ctx, sb.String(), args...)
	return err
}

// ListByProject returns transactions from active uploads of the project,
// oldest first.
func (r *TransactionRepo) ListByProject(ctx context.Context, projectID string) ([]Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT t.id, t.project_id, t.upload_id, t.date, t.description, t.amount, t.memo, t.created_at
	FROM transactions t
	JOIN uploads u ON u.id = t.upload_id
	WHERE t.project_id = ? AND u.status = ?
	ORDER BY t.date, t.created_at`, projectID, StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// CountByUpload counts rows regardless of upload status, which makes it
// usable for verifying rollback behavior.
func (r *TransactionRepo) CountByUpload(ctx context.Context, uploadID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions WHERE upload_id = ?`, uploadID).Scan(&n)
	return n, err
}

func scanTransaction(row scanner) (Transaction, error) {
	var t Transaction
	var memo sql.NullString
	if err := row.Scan(&t.ID, &t.ProjectID, &t.UploadID, &t.Date, &t.Description,
		&t.AmountCents, &memo, &t.CreatedAt); err != nil {
		return Transaction{}, err
	}
	if memo.Valid {
		t.Memo = &memo.String
	}
	return t, nil
}
