// Package cart implementa as operações do carrinho sobre a fatia de linhas
// que fica serializada em JSON no Redis (uma por sessão de cardápio).
package cart

import "github.com/Eduardo-brito329/Menu-Web/internal/models"

// Add incrementa a quantidade se o produto já está no carrinho, senão
// adiciona uma linha nova no fim — a ordem de primeira adição é preservada.
func Add(items []models.CartItem, item models.CartItem) []models.CartItem {
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity++
			return items
		}
	}
	item.Quantity = 1
	return append(items, item)
}

// UpdateQuantity fixa a quantidade da linha; quantidade <= 0 remove a linha.
func UpdateQuantity(items []models.CartItem, productID string, quantity int) []models.CartItem {
	if quantity <= 0 {
		return Remove(items, productID)
	}
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			break
		}
	}
	return items
}

// Remove tira a linha do produto; sem a linha, não faz nada.
func Remove(items []models.CartItem, productID string) []models.CartItem {
	out := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out
}

// Total soma preço unitário × quantidade de todas as linhas.
func Total(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// ItemCount soma as quantidades (não o número de linhas).
func ItemCount(items []models.CartItem) int {
	var count int
	for _, it := range items {
		count += it.Quantity
	}
	return count
}
