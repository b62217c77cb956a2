package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/zapponejosh/market-holidays/internal/calendar"
	"github.com/zapponejosh/market-holidays/internal/holidays"
)

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Returns nil if no known layout matches.
func parseTimestamp(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return &t
		}
	}
	return nil
}

// SaveYearSet writes every holiday of set under catalog in one
// transaction. Existing rows are updated in place, so saving the same year
// twice is a no-op apart from updated_at, and names no longer in the set
// are removed.
func (db *DB) SaveYearSet(ctx context.Context, catalog string, set holidays.YearSet) error {
	err := db.WithTx(ctx, func(tx *Tx) error {
		if err := tx.deleteStale(ctx, catalog, set); err != nil {
			return err
		}
		for i, h := range set.Holidays {
			if err := tx.upsertHoliday(ctx, catalog, set.Year, i, h); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save %s %d: %w", catalog, set.Year, err)
	}

	db.logger.Debug("year saved",
		"catalog", catalog,
		"year", set.Year,
		"holidays", set.Len(),
	)
	return nil
}

func (tx *Tx) upsertHoliday(ctx context.Context, catalog string, year, position int, h holidays.Holiday) error {
	query := `
		INSERT INTO holidays (catalog, year, position, name, observed_date)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (catalog, year, name) DO UPDATE SET
			position = excluded.position,
			observed_date = excluded.observed_date,
			updated_at = datetime('now')
	`

	if _, err := tx.ExecContext(ctx, query, catalog, year, position, h.Name, h.Date.String()); err != nil {
		return fmt.Errorf("upsert %q: %w", h.Name, err)
	}
	return nil
}

func (tx *Tx) deleteStale(ctx context.Context, catalog string, set holidays.YearSet) error {
	query := "DELETE FROM holidays WHERE catalog = ? AND year = ?"
	args := []any{catalog, set.Year}

	if len(set.Holidays) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(set.Holidays)), ",")
		query += " AND name NOT IN (" + placeholders + ")"
		for _, h := range set.Holidays {
			args = append(args, h.Name)
		}
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete stale holidays: %w", err)
	}
	return nil
}

const selectHolidays = `
	SELECT id, catalog, year, position, name, observed_date, created_at, updated_at
	FROM holidays
`

// GetHolidaysByYear returns the stored holidays of one year in catalog
// order. Returns ErrNotFound if the year was never saved.
func (db *DB) GetHolidaysByYear(ctx context.Context, catalog string, year int) ([]StoredHoliday, error) {
	rows, err := db.queryHolidays(ctx,
		selectHolidays+"WHERE catalog = ? AND year = ? ORDER BY position",
		catalog, year,
	)
	if err != nil {
		return nil, fmt.Errorf("query holidays for %d: %w", year, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows, nil
}

// GetHolidaysByRange returns stored holidays for years from..to inclusive,
// ordered by year then position. Missing years are simply absent.
func (db *DB) GetHolidaysByRange(ctx context.Context, catalog string, from, to int) ([]StoredHoliday, error) {
	rows, err := db.queryHolidays(ctx,
		selectHolidays+"WHERE catalog = ? AND year BETWEEN ? AND ? ORDER BY year, position",
		catalog, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query holidays %d-%d: %w", from, to, err)
	}
	return rows, nil
}

// ListYears returns the years stored for catalog in ascending order.
func (db *DB) ListYears(ctx context.Context, catalog string) ([]int, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT DISTINCT year FROM holidays WHERE catalog = ? ORDER BY year",
		catalog,
	)
	if err != nil {
		return nil, fmt.Errorf("query years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("scan year: %w", err)
		}
		years = append(years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate years: %w", err)
	}
	return years, nil
}

// DeleteYear removes one stored year and returns the number of rows
// deleted. Returns ErrNotFound if nothing was stored.
func (db *DB) DeleteYear(ctx context.Context, catalog string, year int) (int64, error) {
	result, err := db.ExecContext(ctx,
		"DELETE FROM holidays WHERE catalog = ? AND year = ?",
		catalog, year,
	)
	if err != nil {
		return 0, fmt.Errorf("delete %d: %w", year, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return 0, ErrNotFound
	}
	return n, nil
}

func (db *DB) queryHolidays(ctx context.Context, query string, args ...any) ([]StoredHoliday, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []StoredHoliday
	for rows.Next() {
		var h StoredHoliday
		var observed string
		var createdAt, updatedAt sql.NullString

		if err := rows.Scan(&h.ID, &h.Catalog, &h.Year, &h.Position, &h.Name, &observed, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan holiday: %w", err)
		}

		h.Date, err = calendar.ParseDate(observed)
		if err != nil {
			return nil, fmt.Errorf("holiday %d: %w", h.ID, err)
		}
		if t := parseTimestamp(createdAt); t != nil {
			h.CreatedAt = *t
		}
		if t := parseTimestamp(updatedAt); t != nil {
			h.UpdatedAt = *t
		}

		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate holidays: %w", err)
	}
	return result, nil
}
