package menu

import (
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCartChaveAusente(t *testing.T) {
	items, err := decodeCart("", redis.Nil)

	require.NoError(t, err)
	assert.Empty(t, items)
}

// Redis fora do ar não pode virar carrinho vazio: o checkout recusaria
// um pedido legítimo com "carrinho vazio".
func TestDecodeCartErroDeConexaoSobe(t *testing.T) {
	_, err := decodeCart("", errors.New("connection refused"))

	assert.Error(t, err)
}

func TestDecodeCartJSONValido(t *testing.T) {
	items, err := decodeCart(`[{"product_id":"p1","name":"Burger","price":10,"quantity":2}]`, nil)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Burger", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestDecodeCartJSONCorrompidoReseta(t *testing.T) {
	items, err := decodeCart(`{quebrado`, nil)

	require.NoError(t, err)
	assert.Empty(t, items)
}
