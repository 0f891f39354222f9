package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Eduardo-brito329/Menu-Web/internal/models"
)

func burger() models.CartItem {
	return models.CartItem{ProductID: "p1", Name: "Burger", Price: 10}
}

func soda() models.CartItem {
	return models.CartItem{ProductID: "p2", Name: "Refrigerante", Price: 5.5}
}

func TestAddMesmoProdutoViraUmaLinha(t *testing.T) {
	items := Add(nil, burger())
	items = Add(items, burger())

	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, ItemCount(items))
}

func TestAddPreservaOrdemDePrimeiraAdicao(t *testing.T) {
	items := Add(nil, burger())
	items = Add(items, soda())
	items = Add(items, burger())

	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "p2", items[1].ProductID)
}

func TestUpdateQuantityZeroRemoveALinha(t *testing.T) {
	items := Add(nil, burger())
	items = Add(items, soda())

	items = UpdateQuantity(items, "p1", 0)

	assert.Len(t, items, 1)
	for _, it := range items {
		assert.NotEqual(t, "p1", it.ProductID)
	}
}

func TestUpdateQuantityNegativaTambemRemove(t *testing.T) {
	items := Add(nil, burger())
	items = UpdateQuantity(items, "p1", -3)
	assert.Empty(t, items)
}

func TestUpdateQuantityFixaValor(t *testing.T) {
	items := Add(nil, burger())
	items = UpdateQuantity(items, "p1", 5)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestRemoveInexistenteNaoFazNada(t *testing.T) {
	items := Add(nil, burger())
	items = Remove(items, "nao-existe")
	assert.Len(t, items, 1)
}

func TestTotalEItemCount(t *testing.T) {
	items := Add(nil, burger())
	items = Add(items, burger())          // 2x 10.00
	items = Add(items, soda())            // 1x 5.50
	items = UpdateQuantity(items, "p2", 3) // 3x 5.50

	assert.InDelta(t, 36.5, Total(items), 0.0001)
	assert.Equal(t, 5, ItemCount(items))
}

func TestCarrinhoVazio(t *testing.T) {
	assert.Zero(t, Total(nil))
	assert.Zero(t, ItemCount(nil))
}
