// Package service orchestrates the statement pipeline against storage.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/calden/bankintake/internal/bank"
	"github.com/calden/bankintake/internal/database"
	"github.com/calden/bankintake/internal/database/repository"
	"github.com/calden/bankintake/internal/statement"
)

const (
	// MaxBatchSize bounds one upload; larger batches are rejected before any write.
	MaxBatchSize = 5000

	// maxStatementParams is sqlite's default per-statement bound-parameter
	// ceiling (SQLITE_MAX_VARIABLE_NUMBER).
	maxStatementParams = 999
)

// ErrProjectNotFound means the owning project is absent or deleted.
var ErrProjectNotFound = errors.New("project not found")

// ErrEmptyBatch means a commit was attempted with no candidates at all.
var ErrEmptyBatch = errors.New("empty batch")

// ErrBatchTooLarge means the candidate count exceeds MaxBatchSize.
var ErrBatchTooLarge = fmt.Errorf("batch exceeds %d transactions", MaxBatchSize)

// ErrEmptyAfterFiltering means the file was readable but every row was
// rejected by parse failure or the date-range filter. Distinct from a parse
// failure on purpose.
var ErrEmptyAfterFiltering = errors.New("no transactions within the project period")

// MissingMappingError reports which required columns detection could not
// satisfy, so the caller can offer a manual remap.
type MissingMappingError struct {
	Missing []string
}

func (e *MissingMappingError) Error() string {
	return fmt.Sprintf("could not detect required columns: %s", strings.Join(e.Missing, ", "))
}

// Batch is the full candidate set from one uploaded file plus its metadata.
type Batch struct {
	ProjectID   string
	Institution string
	AccountKind bank.AccountKind
	Filename    string
	Candidates  []statement.Candidate
}

// ImportResult reports a successful commit. Filtered counts source rows that
// were present in the file but excluded by parse failure or range.
type ImportResult struct {
	UploadID string
	Imported int
	Filtered int
}

// ImportService runs the full pipeline for one uploaded file: parse, detect,
// build, commit.
type ImportService struct {
	DB           *sql.DB
	Projects     *repository.ProjectRepo
	Uploads      *repository.UploadRepo
	Transactions *repository.TransactionRepo
	Log          *log.Logger
}

// ImportFile ingests one statement export into the project. Row-level
// problems are counted, not fatal; structural problems abort with a typed
// error.
func (s *ImportService) ImportFile(ctx context.Context, projectID, institution string, kind bank.AccountKind, filename string, raw []byte) (*ImportResult, error) {
	profile, err := bank.Lookup(institution)
	if err != nil {
		return nil, err
	}
	if !bank.ValidAccountKind(kind) {
		return nil, fmt.Errorf("unknown account kind %q", kind)
	}

	project, err := s.Projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	parsed, err := statement.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	for _, w := range parsed.Warnings {
		s.Log.Warn("csv warning", "file", filename, "warning", w)
	}

	mapping := statement.DetectColumns(parsed.Headers, parsed.Rows[0], &profile)
	if !mapping.HasRequired() {
		return nil, &MissingMappingError{Missing: mapping.Missing()}
	}
	s.Log.Debug("detected columns",
		"date", mapping.Date, "description", mapping.Description,
		"amount", mapping.Amount, "memo", mapping.Memo)

	period := statement.Period{Start: project.PeriodStart, End: project.PeriodEnd}
	built := statement.BuildTransactions(parsed.Rows, mapping, profile, period)
	if len(built.Accepted) == 0 {
		return nil, ErrEmptyAfterFiltering
	}

	res, err := s.Commit(ctx, Batch{
		ProjectID:   projectID,
		Institution: institution,
		AccountKind: kind,
		Filename:    filename,
		Candidates:  built.Accepted,
	})
	if err != nil {
		return nil, err
	}
	res.Filtered += built.Skipped()

	s.Log.Info("import complete",
		"file", filename, "institution", institution,
		"imported", res.Imported, "filtered", res.Filtered)
	return res, nil
}

// Commit writes the batch under an all-or-nothing contract. The project's
// period bounds are re-read inside the transaction and every candidate is
// re-filtered against them; the caller's own pre-filter is advisory only.
// Upload row and grouped transaction inserts share one sql transaction, so
// any failure rolls the whole upload back.
func (s *ImportService) Commit(ctx context.Context, batch Batch) (*ImportResult, error) {
	if len(batch.Candidates) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(batch.Candidates) > MaxBatchSize {
		return nil, ErrBatchTooLarge
	}

	var res ImportResult
	err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		project, err := s.Projects.GetTx(ctx, tx, batch.ProjectID)
		if err != nil {
			return err
		}
		if project == nil {
			return ErrProjectNotFound
		}

		kept := make([]statement.Candidate, 0, len(batch.Candidates))
		for _, c := range batch.Candidates {
			if statement.WithinRange(c.Date, project.PeriodStart, project.PeriodEnd) {
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			return ErrEmptyAfterFiltering
		}

		upload := repository.Upload{
			ID:               uuid.NewString(),
			ProjectID:        batch.ProjectID,
			Institution:      batch.Institution,
			AccountKind:      string(batch.AccountKind),
			Filename:         batch.Filename,
			TransactionCount: len(kept),
		}
		if err := s.Uploads.InsertTx(ctx, tx, upload); err != nil {
			return fmt.Errorf("inserting upload: %w", err)
		}

		rows := make([]repository.Transaction, len(kept))
		for i, c := range kept {
			rows[i] = repository.Transaction{
				ID:          uuid.NewString(),
				ProjectID:   batch.ProjectID,
				UploadID:    upload.ID,
				Date:        c.Date,
				Description: c.Description,
				AmountCents: c.AmountCents,
				Memo:        c.Memo,
			}
		}

		// Group boundaries exist only to stay under the parameter ceiling;
		// consistency comes from the surrounding transaction.
		groupSize := maxStatementParams / s.Transactions.InsertColumns()
		for start := 0; start < len(rows); start += groupSize {
			end := start + groupSize
			if end > len(rows) {
				end = len(rows)
			}
			if err := s.Transactions.InsertGroupTx(ctx, tx, rows[start:end]); err != nil {
				return fmt.Errorf("inserting transactions: %w", err)
			}
		}

		res = ImportResult{
			UploadID: upload.ID,
			Imported: len(kept),
			Filtered: len(batch.Candidates) - len(kept),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
