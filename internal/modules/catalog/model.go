package catalog

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/asadc0de/husnainatelier/internal/editor"
)

// Product is the persisted record. The additional images and positioning
// data live in JSON document columns so the record round-trips the editor's
// shape exactly: additional_images[i] and image_positions.additional[i]
// always describe the same logical image.
type Product struct {
	ID               string         `gorm:"primaryKey;type:char(36)" json:"id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Price            string         `gorm:"size:64;not null" json:"price"`
	Description      string         `gorm:"type:text" json:"description"`
	Category         string         `gorm:"size:32;not null;index:ix_products_category" json:"category"`
	Image            string         `gorm:"size:512;not null" json:"image"`
	AdditionalImages datatypes.JSON `gorm:"not null" json:"additionalImages"`
	ImagePositions   datatypes.JSON `gorm:"not null" json:"imagePositions"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

// Additional decodes the additional-images column. Always length 3; empty
// strings mark unused slots.
func (p Product) Additional() []string {
	out := make([]string, editor.SlotCount-1)
	var decoded []string
	if len(p.AdditionalImages) > 0 {
		_ = json.Unmarshal(p.AdditionalImages, &decoded)
	}
	copy(out, decoded)
	return out
}

// Positions decodes the positioning column. Missing points default to the
// centered focal point, so records written before positioning existed stay
// readable.
func (p Product) Positions() editor.ImagePositions {
	pos := editor.ImagePositions{
		Main:       editor.DefaultFocal,
		Additional: make([]editor.Point, editor.SlotCount-1),
	}
	for i := range pos.Additional {
		pos.Additional[i] = editor.DefaultFocal
	}
	if len(p.ImagePositions) == 0 {
		return pos
	}

	var raw struct {
		Main       *editor.Point   `json:"main"`
		Additional []*editor.Point `json:"additional"`
	}
	if err := json.Unmarshal(p.ImagePositions, &raw); err != nil {
		return pos
	}
	if raw.Main != nil {
		pos.Main = *raw.Main
	}
	for i, pt := range raw.Additional {
		if i >= len(pos.Additional) {
			break
		}
		if pt != nil {
			pos.Additional[i] = *pt
		}
	}
	return pos
}

// Record converts the persisted row into the editor's record shape.
func (p Product) Record() editor.Record {
	return editor.Record{
		ID:               p.ID,
		Name:             p.Name,
		Price:            p.Price,
		Description:      p.Description,
		Category:         p.Category,
		Image:            p.Image,
		AdditionalImages: p.Additional(),
		ImagePositions:   p.Positions(),
	}
}

// fromRecord builds the row columns for a staged editor record. ID,
// CreatedAt and UpdatedAt are left for the repo to manage.
func fromRecord(rec editor.Record) (Product, error) {
	additional, err := json.Marshal(rec.AdditionalImages)
	if err != nil {
		return Product{}, err
	}
	positions, err := json.Marshal(rec.ImagePositions)
	if err != nil {
		return Product{}, err
	}
	return Product{
		Name:             rec.Name,
		Price:            rec.Price,
		Description:      rec.Description,
		Category:         rec.Category,
		Image:            rec.Image,
		AdditionalImages: datatypes.JSON(additional),
		ImagePositions:   datatypes.JSON(positions),
	}, nil
}
