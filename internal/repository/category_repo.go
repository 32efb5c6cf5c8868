package repository

import (
	"context"
	"errors"

	"StorefrontAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	DB *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(ctx context.Context, name, slug string, description *string) (int64, error) {
	var id int64
	query := `INSERT INTO categories (categoryname, slug, description) VALUES ($1, $2, $3) RETURNING categoryid`
	if err := r.DB.QueryRow(ctx, query, name, slug, description).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	var cat model.Category
	query := `SELECT categoryid, categoryname, slug, description, cat_image FROM categories WHERE categoryid=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&cat.CategoryID, &cat.CategoryName, &cat.Slug, &cat.Description, &cat.CatImage); err != nil {
		return nil, errors.New("category not found")
	}
	return &cat, nil
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	var cat model.Category
	query := `SELECT categoryid, categoryname, slug, description, cat_image FROM categories WHERE slug=$1`
	if err := r.DB.QueryRow(ctx, query, slug).Scan(&cat.CategoryID, &cat.CategoryName, &cat.Slug, &cat.Description, &cat.CatImage); err != nil {
		return nil, errors.New("category not found")
	}
	return &cat, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `SELECT categoryid, categoryname, slug, description, cat_image FROM categories ORDER BY categoryname`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.CategoryID, &cat.CategoryName, &cat.Slug, &cat.Description, &cat.CatImage); err != nil {
			return nil, err
		}
		list = append(list, cat)
	}
	return list, nil
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE categoryname=$1)`
	if err := r.DB.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, name, slug string, description *string) error {
	query := `UPDATE categories SET categoryname=$1, slug=$2, description=$3 WHERE categoryid=$4`
	tag, err := r.DB.Exec(ctx, query, name, slug, description, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("category not found")
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM categories WHERE categoryid=$1`
	tag, err := r.DB.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("category not found")
	}
	return nil
}
