package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"StorefrontAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

const productColumns = `productid, productname, slug, description, price, image, stock, is_available, is_trending, is_new, categoryid, created_date, modified_date`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ProductID, &p.ProductName, &p.Slug, &p.Description, &p.Price,
		&p.Image, &p.Stock, &p.IsAvailable, &p.IsTrending, &p.IsNew,
		&p.CategoryID, &p.CreatedDate, &p.ModifiedDate,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	var id int64
	query := `
		INSERT INTO products
			(productname, slug, description, price, image, stock, is_available, is_trending, is_new, categoryid, created_date, modified_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING productid
	`
	err := r.DB.QueryRow(ctx, query,
		p.ProductName, p.Slug, p.Description, p.Price, p.Image, p.Stock,
		p.IsAvailable, p.IsTrending, p.IsNew, p.CategoryID, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE productid=$1`
	p, err := scanProduct(r.DB.QueryRow(ctx, query, id))
	if err != nil {
		return nil, errors.New("product not found")
	}
	return p, nil
}

// GetBySlugs resolves a product from its category slug + product slug pair,
// the storefront's canonical detail URL.
func (r *ProductRepository) GetBySlugs(ctx context.Context, categorySlug, productSlug string) (*model.Product, error) {
	query := `
		SELECT ` + prefixColumns("p", productColumns) + `
		FROM products p
		JOIN categories c ON c.categoryid = p.categoryid
		WHERE c.slug=$1 AND p.slug=$2
	`
	p, err := scanProduct(r.DB.QueryRow(ctx, query, categorySlug, productSlug))
	if err != nil {
		return nil, errors.New("product not found")
	}
	return p, nil
}

func prefixColumns(alias, cols string) string {
	parts := strings.Split(cols, ", ")
	for i, col := range parts {
		parts[i] = alias + "." + col
	}
	return strings.Join(parts, ", ")
}

// ListFilter narrows the storefront listing. Zero values mean "no filter".
type ListFilter struct {
	CategorySlug string
	Search       string // substring match on name/description
	OnlyNew      bool
	OnlyTrending bool
	SortNewest   bool // created_date DESC when true, ASC otherwise
	Limit        int
	Offset       int
}

// List returns available products matching the filter.
func (r *ProductRepository) List(ctx context.Context, f ListFilter) ([]model.Product, error) {
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + prefixColumns("p", productColumns) + ` FROM products p`)
	args := []interface{}{}

	if f.CategorySlug != "" {
		sb.WriteString(` JOIN categories c ON c.categoryid = p.categoryid`)
	}
	sb.WriteString(` WHERE p.is_available = true`)

	if f.CategorySlug != "" {
		args = append(args, f.CategorySlug)
		sb.WriteString(fmt.Sprintf(` AND c.slug = $%d`, len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		sb.WriteString(fmt.Sprintf(` AND (p.productname ILIKE $%d OR p.description ILIKE $%d)`, len(args), len(args)))
	}
	if f.OnlyNew {
		sb.WriteString(` AND p.is_new = true`)
	}
	if f.OnlyTrending {
		sb.WriteString(` AND p.is_trending = true`)
	}

	if f.SortNewest {
		sb.WriteString(` ORDER BY p.created_date DESC`)
	} else {
		sb.WriteString(` ORDER BY p.created_date ASC`)
	}
	args = append(args, f.Limit, f.Offset)
	sb.WriteString(fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args)))

	rows, err := r.DB.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *p)
	}
	return list, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
		UPDATE products
		SET productname=$1, slug=$2, description=$3, price=$4, image=$5, stock=$6,
		    is_available=$7, is_trending=$8, is_new=$9, categoryid=$10, modified_date=$11
		WHERE productid=$12
	`
	tag, err := r.DB.Exec(ctx, query,
		p.ProductName, p.Slug, p.Description, p.Price, p.Image, p.Stock,
		p.IsAvailable, p.IsTrending, p.IsNew, p.CategoryID, time.Now(), p.ProductID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product not found")
	}
	return nil
}

// DecrementStockTx subtracts sold quantity inside the confirmation tx.
// Stock is floored at zero: payment already settled, so a thin stock row
// must not fail the confirmation.
func (r *ProductRepository) DecrementStockTx(ctx context.Context, tx pgx.Tx, productID int64, qty int) error {
	query := `UPDATE products SET stock = GREATEST(stock - $1, 0), modified_date=$2 WHERE productid=$3`
	_, err := tx.Exec(ctx, query, qty, time.Now(), productID)
	return err
}

// ListActiveVariations returns active variations for a product, colors first.
func (r *ProductRepository) ListActiveVariations(ctx context.Context, productID int64) ([]model.Variation, error) {
	query := `
		SELECT variationid, productid, variation_category, variation_value, is_active
		FROM variations
		WHERE productid=$1 AND is_active=true
		ORDER BY variation_category, variation_value
	`
	rows, err := r.DB.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Variation
	for rows.Next() {
		var v model.Variation
		if err := rows.Scan(&v.VariationID, &v.ProductID, &v.VariationCategory, &v.VariationValue, &v.IsActive); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

// GetActiveVariationsByIDs resolves the variation ids a client picked at
// add-to-cart time, restricted to the given product.
func (r *ProductRepository) GetActiveVariationsByIDs(ctx context.Context, productID int64, ids []int64) ([]model.Variation, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT variationid, productid, variation_category, variation_value, is_active
		FROM variations
		WHERE productid=$1 AND variationid = ANY($2) AND is_active=true
	`
	rows, err := r.DB.Query(ctx, query, productID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Variation
	for rows.Next() {
		var v model.Variation
		if err := rows.Scan(&v.VariationID, &v.ProductID, &v.VariationCategory, &v.VariationValue, &v.IsActive); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

func (r *ProductRepository) CreateVariation(ctx context.Context, v *model.Variation) (int64, error) {
	var id int64
	query := `INSERT INTO variations (productid, variation_category, variation_value, is_active) VALUES ($1, $2, $3, $4) RETURNING variationid`
	if err := r.DB.QueryRow(ctx, query, v.ProductID, v.VariationCategory, v.VariationValue, v.IsActive).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProductRepository) ListGallery(ctx context.Context, productID int64) ([]model.GalleryImage, error) {
	query := `SELECT galleryid, productid, image FROM product_gallery WHERE productid=$1 ORDER BY galleryid`
	rows, err := r.DB.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.GalleryImage
	for rows.Next() {
		var g model.GalleryImage
		if err := rows.Scan(&g.GalleryID, &g.ProductID, &g.Image); err != nil {
			return nil, err
		}
		list = append(list, g)
	}
	return list, nil
}
