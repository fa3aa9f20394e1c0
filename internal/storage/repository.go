package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/guttosm/bizdays/internal/domain/models"
)

// CalculationLogRepository persists the history of computed calculations.
type CalculationLogRepository interface {
	InsertCalculation(ctx context.Context, entry models.CalculationLog) error
	ListRecentCalculations(ctx context.Context, limit int) ([]models.CalculationLog, error)
}

type calculationLogRepository struct {
	db *sql.DB
}

// NewCalculationLogRepository returns a Postgres-backed repository.
func NewCalculationLogRepository(db *sql.DB) CalculationLogRepository {
	return &calculationLogRepository{db: db}
}

// InsertCalculation stores one calculation. Request and Result are written to
// jsonb columns.
func (r *calculationLogRepository) InsertCalculation(ctx context.Context, entry models.CalculationLog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calculation_log (id, kind, request, result, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, entry.ID, string(entry.Kind), []byte(entry.Request), []byte(entry.Result), entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert calculation %s: %w", entry.ID, err)
	}
	return nil
}

// ListRecentCalculations returns up to limit entries, newest first.
func (r *calculationLogRepository) ListRecentCalculations(ctx context.Context, limit int) ([]models.CalculationLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, request, result, created_at
		FROM calculation_log
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query calculation log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.CalculationLog, 0, limit)
	for rows.Next() {
		var (
			entry   models.CalculationLog
			kind    string
			request []byte
			result  []byte
		)
		if err := rows.Scan(&entry.ID, &kind, &request, &result, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan calculation log: %w", err)
		}
		entry.Kind = models.CalculationKind(kind)
		entry.Request = request
		entry.Result = result
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calculation log: %w", err)
	}
	return out, nil
}

// noopCalculationLog is used when Postgres is disabled; history stays empty.
type noopCalculationLog struct{}

// NewNoopCalculationLogRepository returns a repository that stores nothing.
func NewNoopCalculationLogRepository() CalculationLogRepository {
	return noopCalculationLog{}
}

func (noopCalculationLog) InsertCalculation(context.Context, models.CalculationLog) error {
	return nil
}

func (noopCalculationLog) ListRecentCalculations(context.Context, int) ([]models.CalculationLog, error) {
	return []models.CalculationLog{}, nil
}
