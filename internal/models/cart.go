package models

// CartItem é uma linha do carrinho: no máximo uma linha por produto,
// quantidade sempre >= 1.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url,omitempty"`
	Quantity  int     `json:"quantity"`
}
