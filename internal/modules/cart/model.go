package cart

import "time"

type Cart struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`

	Items []Item `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

func (Cart) TableName() string { return "carts" }

type Item struct {
	ID        string    `gorm:"primaryKey;type:char(36)"`
	CartID    string    `gorm:"type:char(36);not null;uniqueIndex:ux_cart_items_cart_product"`
	ProductID string    `gorm:"type:char(36);not null;uniqueIndex:ux_cart_items_cart_product"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Item) TableName() string { return "cart_items" }
