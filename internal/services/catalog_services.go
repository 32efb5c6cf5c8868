package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode"

	"StorefrontAPI/internal/cache"
	"StorefrontAPI/internal/model"
	"StorefrontAPI/internal/repository"
)

const productDetailTTL = 5 * time.Minute

// CatalogService is the read/query surface over products, categories,
// variations, gallery and review aggregates, plus the admin-side writes.
type CatalogService struct {
	Products   *repository.ProductRepository
	Categories *repository.CategoryRepository
	Reviews    *repository.ReviewRepository
	Cache      cache.Cache // nil disables caching
}

func NewCatalogService(
	pr *repository.ProductRepository,
	cr *repository.CategoryRepository,
	rr *repository.ReviewRepository,
	c cache.Cache,
) *CatalogService {
	return &CatalogService{Products: pr, Categories: cr, Reviews: rr, Cache: c}
}

// Slugify lowercases and hyphenates a name for use in URLs.
func Slugify(name string) string {
	var sb strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			sb.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

func (s *CatalogService) ListProducts(ctx context.Context, f repository.ListFilter) ([]model.Product, error) {
	return s.Products.List(ctx, f)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.Categories.List(ctx)
}

// ProductDetail assembles the product page: product row, active variations,
// gallery, and visible-review aggregates. Served from redis when enabled.
func (s *CatalogService) ProductDetail(ctx context.Context, categorySlug, productSlug string) (*model.ProductDetail, error) {
	var cacheKey string
	if s.Cache != nil {
		cacheKey = s.Cache.GenerateKey("product_detail", categorySlug+"/"+productSlug)
		if raw, err := s.Cache.Get(ctx, cacheKey); err == nil && raw != "" {
			var d model.ProductDetail
			if err := json.Unmarshal([]byte(raw), &d); err == nil {
				return &d, nil
			}
		}
	}

	product, err := s.Products.GetBySlugs(ctx, categorySlug, productSlug)
	if err != nil {
		return nil, ErrProductNotFound
	}
	variations, err := s.Products.ListActiveVariations(ctx, product.ProductID)
	if err != nil {
		return nil, err
	}
	gallery, err := s.Products.ListGallery(ctx, product.ProductID)
	if err != nil {
		return nil, err
	}
	avg, count, err := s.Reviews.Aggregate(ctx, product.ProductID)
	if err != nil {
		return nil, err
	}

	detail := &model.ProductDetail{
		Product:       *product,
		Variations:    variations,
		Gallery:       gallery,
		AverageRating: avg,
		ReviewCount:   count,
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(detail); err == nil {
			_ = s.Cache.Set(ctx, cacheKey, raw, productDetailTTL)
		}
	}
	return detail, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string, description *string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, errors.New("category name is required")
	}
	exists, err := s.Categories.ExistsByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errors.New("category already exists")
	}
	return s.Categories.Create(ctx, name, Slugify(name), description)
}

func (s *CatalogService) CreateProduct(ctx context.Context, p *model.Product) (int64, error) {
	p.ProductName = strings.TrimSpace(p.ProductName)
	if p.ProductName == "" {
		return 0, errors.New("product name is required")
	}
	if p.Price < 0 {
		return 0, errors.New("price must not be negative")
	}
	if p.Stock < 0 {
		return 0, errors.New("stock must not be negative")
	}
	if _, err := s.Categories.GetByID(ctx, p.CategoryID); err != nil {
		return 0, errors.New("category not found")
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.ProductName)
	}
	return s.Products.Create(ctx, p)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, p *model.Product) error {
	if err := s.Products.Update(ctx, p); err != nil {
		return err
	}
	s.invalidateDetail(ctx, p)
	return nil
}

func (s *CatalogService) AddVariation(ctx context.Context, v *model.Variation) (int64, error) {
	if v.VariationCategory != "color" && v.VariationCategory != "size" {
		return 0, errors.New("variation category must be color or size")
	}
	if strings.TrimSpace(v.VariationValue) == "" {
		return 0, errors.New("variation value is required")
	}
	if _, err := s.Products.GetByID(ctx, v.ProductID); err != nil {
		return 0, ErrProductNotFound
	}
	return s.Products.CreateVariation(ctx, v)
}

func (s *CatalogService) invalidateDetail(ctx context.Context, p *model.Product) {
	if s.Cache == nil {
		return
	}
	cat, err := s.Categories.GetByID(ctx, p.CategoryID)
	if err != nil {
		return
	}
	_ = s.Cache.Delete(ctx, s.Cache.GenerateKey("product_detail", cat.Slug+"/"+p.Slug))
}
