package handlers

import (
	"github.com/asadc0de/husnainatelier/internal/modules/catalog"
	"github.com/asadc0de/husnainatelier/pkg/view"
)

func focal(p catalog.Product) view.FocalPoint {
	pos := p.Positions()
	return view.FocalPoint{X: pos.Main.X, Y: pos.Main.Y}
}

func mapProductsForList(items []catalog.Product) []view.ProductCard {
	out := make([]view.ProductCard, 0, len(items))
	for _, p := range items {
		out = append(out, view.ProductCard{
			ID:         p.ID,
			Name:       p.Name,
			Price:      p.Price,
			Category:   p.Category,
			ImageURL:   p.Image,
			ImageFocal: focal(p),
		})
	}
	return out
}

func emptyCartPage() view.CartPage {
	return view.CartPage{Items: []view.CartItem{}}
}

func mapProductForDetail(p catalog.Product) view.ProductDetailPage {
	pos := p.Positions()
	additionalFocal := make([]view.FocalPoint, 0, len(pos.Additional))
	for _, pt := range pos.Additional {
		additionalFocal = append(additionalFocal, view.FocalPoint{X: pt.X, Y: pt.Y})
	}
	return view.ProductDetailPage{
		ID:               p.ID,
		Name:             p.Name,
		Price:            p.Price,
		Description:      p.Description,
		Category:         p.Category,
		Image:            p.Image,
		AdditionalImages: p.Additional(),
		MainFocal:        view.FocalPoint{X: pos.Main.X, Y: pos.Main.Y},
		AdditionalFocal:  additionalFocal,
	}
}
