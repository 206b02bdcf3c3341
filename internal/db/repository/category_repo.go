package repository

import "context"

// CategoryRepository exposes read access to the categories table. Categories
// have no write endpoint; they are seeded by migrations.
type CategoryRepository struct {
	db DBTX
}

func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns all categories ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, "SELECT id, type FROM categories ORDER BY id")
	if err != nil {
		return nil, mapError("list categories", err)
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, mapError("list categories", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list categories", err)
	}
	return out, nil
}

// GetByID fetches one category, ErrNotFound when missing.
func (r *CategoryRepository) GetByID(ctx context.Context, id int32) (Category, error) {
	var c Category
	err := r.db.QueryRow(ctx, "SELECT id, type FROM categories WHERE id = $1", id).
		Scan(&c.ID, &c.Type)
	if err != nil {
		return Category{}, mapError("get category", err)
	}
	return c, nil
}
