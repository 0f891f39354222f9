package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPedidoNascePendente(t *testing.T) {
	assert.Equal(t, "pendente", OrderStatusPending)
	assert.True(t, ValidOrderStatus(OrderStatusPending))
}

func TestStatusDePedidoValidos(t *testing.T) {
	for _, s := range []string{OrderStatusPending, OrderStatusPreparing, OrderStatusDone, OrderStatusCanceled} {
		assert.True(t, ValidOrderStatus(s), s)
	}

	assert.False(t, ValidOrderStatus("novo"))
	assert.False(t, ValidOrderStatus("entregue"))
	assert.False(t, ValidOrderStatus(""))
}
