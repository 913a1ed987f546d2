package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wynet321/fund-insight-backend/internal/model"
)

// CatalogRepository provides data access for the fund_catalog table, the
// local cache behind the year-rate comparison listing.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new CatalogRepository with the provided
// database connection.
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Upsert writes a batch of catalog entries in one transaction, keyed by the
// provider's fund ID. Existing rows are replaced wholesale; UpdatedAt records
// the refresh time.
func (r *CatalogRepository) Upsert(ctx context.Context, entries []model.CatalogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO fund_catalog
			(id, fund_id, name, type, company_name,
			 one_year_rate, three_year_rate, five_year_rate, seven_year_rate, ten_year_rate,
			 updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(fund_id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			company_name = excluded.company_name,
			one_year_rate = excluded.one_year_rate,
			three_year_rate = excluded.three_year_rate,
			five_year_rate = excluded.five_year_rate,
			seven_year_rate = excluded.seven_year_rate,
			ten_year_rate = excluded.ten_year_rate,
			updated_at = excluded.updated_at
	`

	now := time.Now().UTC()
	for _, e := range entries {
		if strings.TrimSpace(e.FundID) == "" {
			continue
		}
		_, err := tx.ExecContext(ctx, query,
			uuid.New().String(), e.FundID, e.Name, e.Type, e.CompanyName,
			e.OneYearRate, e.ThreeYearRate, e.FiveYearRate, e.SevenYearRate, e.TenYearRate,
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert catalog entry %s: %w", e.FundID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog upsert: %w", err)
	}
	return nil
}

// List returns one page of catalog entries ordered by the given year-rate
// column descending, optionally filtered by fund type. The column name must
// come from validation.YearRateColumns; it is interpolated, not bound.
func (r *CatalogRepository) List(ctx context.Context, rateColumn string, types []string, page, size int) (model.CatalogPage, error) {
	where := ""
	args := []any{}
	if len(types) > 0 {
		placeholders := strings.Repeat("?,", len(types))
		where = fmt.Sprintf("WHERE type IN (%s)", placeholders[:len(placeholders)-1])
		for _, t := range types {
			args = append(args, t)
		}
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM fund_catalog %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return model.CatalogPage{}, fmt.Errorf("failed to count catalog entries: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, fund_id, name, type, company_name,
		       one_year_rate, three_year_rate, five_year_rate, seven_year_rate, ten_year_rate,
		       updated_at
		FROM fund_catalog
		%s
		ORDER BY %s DESC NULLS LAST, fund_id ASC
		LIMIT ? OFFSET ?
	`, where, rateColumn)
	args = append(args, size, page*size)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return model.CatalogPage{}, fmt.Errorf("failed to list catalog entries: %w", err)
	}
	defer rows.Close()

	entries := []model.CatalogEntry{}
	for rows.Next() {
		var e model.CatalogEntry
		err := rows.Scan(&e.ID, &e.FundID, &e.Name, &e.Type, &e.CompanyName,
			&e.OneYearRate, &e.ThreeYearRate, &e.FiveYearRate, &e.SevenYearRate, &e.TenYearRate,
			&e.UpdatedAt,
		)
		if err != nil {
			return model.CatalogPage{}, fmt.Errorf("failed to scan catalog entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return model.CatalogPage{}, fmt.Errorf("failed to iterate catalog entries: %w", err)
	}

	return model.CatalogPage{
		Content:    entries,
		Page:       page,
		Size:       size,
		TotalItems: total,
	}, nil
}
