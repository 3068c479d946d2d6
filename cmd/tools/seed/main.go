package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/asadc0de/husnainatelier/internal/editor"
	"github.com/asadc0de/husnainatelier/internal/modules/catalog"
)

type seedProduct struct {
	Name        string
	Price       string
	Category    string
	Description string
	Image       string
}

var seedProducts = []seedProduct{
	{"Emerald Silk Kurta", "Rs. 14,900", "Festive", "A beautiful emerald green silk kurta with intricate embroidery.", "/uploads/seed/kurti.jpg"},
	{"Noor Lehenga", "Rs. 32,900", "Bridal", "Elegant bridal lehenga with heavy embellishments.", "/uploads/seed/lehenga.jpg"},
	{"Velvet Gown", "Rs. 49,900", "Modern", "Luxurious velvet gown perfect for evening parties.", "/uploads/seed/hero.jpg"},
	{"Sapphire Drape", "Rs. 22,900", "Festive", "Sapphire blue drape with golden borders.", "/uploads/seed/kurti.jpg"},
	{"Rosewater Mist", "Rs. 1,400", "Accessories", "Fresh rosewater mist for a refreshing glow.", "/uploads/seed/lehenga.jpg"},
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repo := catalog.NewRepo(db)
	ctx := context.Background()

	emptyAdditional, _ := json.Marshal([]string{"", "", ""})
	positions, _ := json.Marshal(editor.ImagePositions{
		Main:       editor.DefaultFocal,
		Additional: []editor.Point{editor.DefaultFocal, editor.DefaultFocal, editor.DefaultFocal},
	})

	for _, sp := range seedProducts {
		p := catalog.Product{
			Name:             sp.Name,
			Price:            sp.Price,
			Description:      sp.Description,
			Category:         sp.Category,
			Image:            sp.Image,
			AdditionalImages: datatypes.JSON(emptyAdditional),
			ImagePositions:   datatypes.JSON(positions),
		}
		created, err := repo.Create(ctx, p)
		if err != nil {
			log.Fatalf("Failed to seed %q: %v", sp.Name, err)
		}
		log.Printf("✓ seeded %s (%s)", sp.Name, created.ID)
	}
}
