package view

type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     string  `json:"price"`
	Amount    float64 `json:"amount"`
	ImageURL  string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

type CartPage struct {
	Items []CartItem `json:"items"`
	Count int        `json:"count"`
	Total float64    `json:"total"`
}
