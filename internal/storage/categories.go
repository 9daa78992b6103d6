package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hollisb/penny/internal/model"
)

// ListCategories returns all categories ordered by name. Ingestion
// never writes this table; it exists for classification layered on
// after import.
func (s *SQLiteStorage) ListCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT category_id, name, parent_id
		FROM categories
		ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		var parentID sql.NullInt64
		if err := rows.Scan(&cat.ID, &cat.Name, &parentID); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		if parentID.Valid {
			cat.ParentID = &parentID.Int64
		}
		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// CreateCategory inserts a new category, optionally under a parent.
// Names are unique; a repeat name is a duplicate-entry error.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, name string, parentID *int64) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var parent any
	if parentID != nil {
		parent = *parentID
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO categories(name, parent_id) VALUES(?, ?)`, name, parent)
	if err != nil {
		return nil, fmt.Errorf("failed to create category %q: %w", name, classifyConstraintErr(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category id: %w", err)
	}

	return &model.Category{ID: id, Name: name, ParentID: parentID}, nil
}
