package editor

import (
	"github.com/asadc0de/husnainatelier/internal/shared/pricing"
	"github.com/asadc0de/husnainatelier/internal/shared/textfmt"
)

// Categories is the closed set a product may belong to.
var Categories = []string{"Bridal", "Casual", "Festive", "Modern", "Accessories"}

// ValidCategory reports membership in Categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Draft is the product form in progress. Field values carry their input
// formatting already applied (see WithField).
type Draft struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// NewDraft returns the empty form: price pre-seeded with the currency
// prefix, category on the first of the closed set.
func NewDraft() Draft {
	return Draft{Price: pricing.Prefix, Category: Categories[0]}
}

// WithField applies a single field edit with the form's input rules:
// name gets every word capitalized, price keeps the fixed currency prefix,
// description gets its first letter capitalized, category only accepts
// members of the closed set. Unknown fields are ignored.
func (d Draft) WithField(field, value string) Draft {
	switch field {
	case "name":
		d.Name = textfmt.TitleWords(value)
	case "price":
		d.Price = pricing.Normalize(value)
	case "description":
		d.Description = textfmt.CapitalizeFirst(value)
	case "category":
		if ValidCategory(value) {
			d.Category = value
		}
	}
	return d
}
