package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/cycleworks/salesdesk/internal/database"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// table implements the generic repository contract for one entity type.
// Concrete repositories embed it and add their named query shapes on top.
// Predicates and paging compile to SQL; nothing is filtered in memory.
type table[T any] struct {
	db       *database.DB
	name     string
	idColumn string

	// columns is the full select list, in the order scanRow expects.
	columns []string
	scanRow func(rowScanner) (*T, error)

	// insertColumns excludes the auto-increment identity column.
	insertColumns []string
	insertArgs    func(*T) []any
	setID         func(*T, int64)

	updateColumns []string
	updateArgs    func(*T) []any
	idOf          func(*T) int64

	// sortable maps external sort keys to columns for orderClause.
	sortable map[string]string
}

func (t *table[T]) selectList() string {
	return strings.Join(t.columns, ", ")
}

// queryMany runs a full SELECT with the given clause suffix (WHERE/ORDER/
// LIMIT) and scans every row.
func (t *table[T]) queryMany(suffix string, args ...any) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s%s", t.selectList(), t.name, suffix)
	rows, err := t.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.name, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		e, err := t.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", t.name, err)
		}
		out = append(out, *e)
	}

	return out, rows.Err()
}

// GetByID fetches one entity by identity, returning ErrNotFound when absent.
func (t *table[T]) GetByID(id int64) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", t.selectList(), t.name, t.idColumn)
	e, err := t.scanRow(t.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s id %d: %w", t.name, id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s by id: %w", t.name, err)
	}
	return e, nil
}

// GetAll returns every row. Order is unspecified unless the concrete
// repository overrides it.
func (t *table[T]) GetAll() ([]T, error) {
	return t.queryMany("")
}

// GetPaged returns one 1-based page in identity order, so concatenating
// consecutive pages reproduces GetAll exactly once each.
func (t *table[T]) GetPaged(page, pageSize int) ([]T, error) {
	return t.queryMany(" ORDER BY "+t.idColumn+" ASC"+pageClause(page, pageSize))
}

// Add inserts the entity and assigns the generated identity back onto it.
func (t *table[T]) Add(e *T) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.insertColumns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		t.name, strings.Join(t.insertColumns, ", "), placeholders)

	res, err := t.db.Exec(query, t.insertArgs(e)...)
	if err != nil {
		return fmt.Errorf("failed to insert %s: %w", t.name, err)
	}

	if t.setID != nil {
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read %s insert id: %w", t.name, err)
		}
		t.setID(e, id)
	}

	return nil
}

// Update rewrites the entity's mutable columns, returning ErrNotFound when
// no row matches its identity. Re-running an identical update succeeds.
func (t *table[T]) Update(e *T) error {
	sets := make([]string, len(t.updateColumns))
	for i, c := range t.updateColumns {
		sets[i] = c + " = ?"
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		t.name, strings.Join(sets, ", "), t.idColumn)

	args := append(t.updateArgs(e), t.idOf(e))
	res, err := t.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", t.name, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read %s update result: %w", t.name, err)
	}
	if affected == 0 {
		// The driver reports changed rows, not matched rows, so a no-op
		// rewrite of identical values also comes back as zero.
		exists, err := t.Exists(t.idOf(e))
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%s id %d: %w", t.name, t.idOf(e), ErrNotFound)
		}
	}

	return nil
}

// Delete removes the row with the given identity and reports whether a
// row was removed.
func (t *table[T]) Delete(id int64) (bool, error) {
	res, err := t.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", t.name, t.idColumn), id)
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", t.name, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read %s delete result: %w", t.name, err)
	}
	return affected > 0, nil
}

func (t *table[T]) Exists(id int64) (bool, error) {
	var n int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", t.name, t.idColumn)
	if err := t.db.QueryRow(query, id).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", t.name, err)
	}
	return n > 0, nil
}

func (t *table[T]) Count() (int, error) {
	var n int
	if err := t.db.QueryRow("SELECT COUNT(*) FROM " + t.name).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", t.name, err)
	}
	return n, nil
}

// CountWhere counts rows matching the conds, for paged totals computed
// over the filtered-but-unpaged set.
func (t *table[T]) CountWhere(conds ...Cond) (int, error) {
	where, args := whereClause(conds)
	var n int
	if err := t.db.QueryRow("SELECT COUNT(*) FROM "+t.name+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", t.name, err)
	}
	return n, nil
}

// Find returns every row satisfying all conds.
func (t *table[T]) Find(conds ...Cond) ([]T, error) {
	where, args := whereClause(conds)
	return t.queryMany(where, args...)
}

// FindFirst returns the first row satisfying all conds, or nil when none
// does. Absence here is not an error.
func (t *table[T]) FindFirst(conds ...Cond) (*T, error) {
	where, args := whereClause(conds)
	query := fmt.Sprintf("SELECT %s FROM %s%s LIMIT 1", t.selectList(), t.name, where)
	e, err := t.scanRow(t.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.name, err)
	}
	return e, nil
}

// Any reports whether at least one row satisfies all conds.
func (t *table[T]) Any(conds ...Cond) (bool, error) {
	n, err := t.CountWhere(conds...)
	return n > 0, err
}
