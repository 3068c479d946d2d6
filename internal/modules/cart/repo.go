package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context) (Cart, error) {
	c := Cart{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (r *Repo) Get(ctx context.Context, cartID string) (Cart, error) {
	var c Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&c, "id = ?", cartID).Error
	return c, err
}

// AddItem accumulates quantity onto an existing line or inserts a new one.
func (r *Repo) AddItem(ctx context.Context, cartID, productID string, qty int) error {
	var existing Item
	err := r.db.WithContext(ctx).
		First(&existing, "cart_id = ? AND product_id = ?", cartID, productID).Error
	switch {
	case err == nil:
		return r.db.WithContext(ctx).Model(&Item{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{
				"quantity":   existing.Quantity + qty,
				"updated_at": time.Now(),
			}).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		it := Item{
			ID:        uuid.NewString(),
			CartID:    cartID,
			ProductID: productID,
			Quantity:  qty,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		return r.db.WithContext(ctx).Create(&it).Error
	default:
		return err
	}
}

func (r *Repo) SetItemQty(ctx context.Context, cartID, productID string, qty int) error {
	return r.db.WithContext(ctx).Model(&Item{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Updates(map[string]any{"quantity": qty, "updated_at": time.Now()}).Error
}

func (r *Repo) RemoveItem(ctx context.Context, cartID, productID string) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&Item{}).Error
}

func (r *Repo) Clear(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&Item{}).Error
}
