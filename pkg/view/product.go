package view

// FocalPoint is the render-time object-position, percentages in [0,100].
type FocalPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ProductCard is the storefront grid/search tile.
type ProductCard struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Price      string     `json:"price"`
	Category   string     `json:"category"`
	ImageURL   string     `json:"image"`
	ImageFocal FocalPoint `json:"imageFocal"`
}

// ProductDetailPage carries everything the detail view renders: the main
// image plus up to three additional images, each with its focal point.
type ProductDetailPage struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Price            string       `json:"price"`
	Description      string       `json:"description"`
	Category         string       `json:"category"`
	Image            string       `json:"image"`
	AdditionalImages []string     `json:"additionalImages"`
	MainFocal        FocalPoint   `json:"mainFocal"`
	AdditionalFocal  []FocalPoint `json:"additionalFocal"`
}

// CategorySummary backs the category browse strip.
type CategorySummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
