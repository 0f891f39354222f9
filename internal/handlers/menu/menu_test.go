package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eduardo-brito329/Menu-Web/internal/models"
)

func TestAgrupamentoPorCategoria(t *testing.T) {
	products := []models.Product{
		{Name: "Coca-Cola", Category: "Bebidas"},
		{Name: "X-Salada", Category: "Lanches"},
		{Name: "Suco de Laranja", Category: "Bebidas"},
		{Name: "X-Bacon", Category: "Lanches"},
	}

	groups := groupProducts(products)

	require.Len(t, groups, 2)
	assert.Equal(t, "Bebidas", groups[0].Category)
	assert.Equal(t, "Lanches", groups[1].Category)

	require.Len(t, groups[0].Products, 2)
	assert.Equal(t, "Coca-Cola", groups[0].Products[0].Name)
	assert.Equal(t, "Suco de Laranja", groups[0].Products[1].Name)
}

func TestSemCategoriaCaiEmOutros(t *testing.T) {
	products := []models.Product{
		{Name: "Brinde Surpresa", Category: ""},
		{Name: "Água", Category: "Bebidas"},
	}

	groups := groupProducts(products)

	require.Len(t, groups, 2)
	assert.Equal(t, "Bebidas", groups[0].Category)
	assert.Equal(t, FallbackCategory, groups[1].Category)
	assert.Equal(t, "Brinde Surpresa", groups[1].Products[0].Name)
}

func TestOutrosSempreNoFim(t *testing.T) {
	products := []models.Product{
		{Name: "Avulso", Category: ""},
		{Name: "Pudim", Category: "Sobremesas"},
		{Name: "Água", Category: "Bebidas"},
	}

	groups := groupProducts(products)

	require.Len(t, groups, 3)
	assert.Equal(t, FallbackCategory, groups[len(groups)-1].Category)
}

func TestOrdenacaoDentroDaCategoria(t *testing.T) {
	products := []models.Product{
		{Name: "X-Tudo", Category: "Lanches"},
		{Name: "Misto Quente", Category: "Lanches"},
		{Name: "X-Bacon", Category: "Lanches"},
	}

	groups := groupProducts(products)

	require.Len(t, groups, 1)
	names := []string{}
	for _, p := range groups[0].Products {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Misto Quente", "X-Bacon", "X-Tudo"}, names)
}

func TestCardapioVazio(t *testing.T) {
	assert.Empty(t, groupProducts(nil))
	assert.Empty(t, groupProducts([]models.Product{}))
}
