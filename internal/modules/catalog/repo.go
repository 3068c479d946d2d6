package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// orderClause whitelists the fields a subscription may order by. Unknown
// fields fall back to newest-first, the storefront's default.
func orderClause(orderBy string) string {
	switch orderBy {
	case "name":
		return "name ASC"
	case "price":
		return "price ASC"
	case "category":
		return "category ASC, created_at DESC"
	case "updatedAt":
		return "updated_at DESC"
	default:
		return "created_at DESC"
	}
}

func (r *Repo) List(ctx context.Context, orderBy string) ([]Product, error) {
	var items []Product
	err := r.db.WithContext(ctx).
		Order(orderClause(orderBy)).
		Find(&items).Error
	return items, err
}

func (r *Repo) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	var items []Product
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// Search matches the storefront overlay's behavior: case-insensitive
// substring match on name or category.
func (r *Repo) Search(ctx context.Context, q string) ([]Product, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []Product{}, nil
	}
	like := "%" + strings.ToLower(q) + "%"
	var items []Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", like, like).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return p, err
}

func (r *Repo) Create(ctx context.Context, p Product) (Product, error) {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *Repo) Update(ctx context.Context, id string, p Product) error {
	res := r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":              p.Name,
			"price":             p.Price,
			"description":       p.Description,
			"category":          p.Category,
			"image":             p.Image,
			"additional_images": p.AdditionalImages,
			"image_positions":   p.ImagePositions,
			"updated_at":        time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Product{}, "id = ?", id).Error
}

func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}
