package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Ciclo de vida do pedido. Todo pedido nasce pendente; o resto é
// gerido pelo dono no painel.
const (
	OrderStatusPending   = "pendente"
	OrderStatusPreparing = "em_preparo"
	OrderStatusDone      = "concluido"
	OrderStatusCanceled  = "cancelado"
)

// ValidOrderStatus aceita apenas os estados do ciclo de vida acima.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusDone, OrderStatusCanceled:
		return true
	}
	return false
}

// OrderItem é o snapshot de um produto no momento do pedido —
// edições posteriores do catálogo não alteram pedidos já feitos.
type OrderItem struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Address só é preenchido quando o modo de entrega é "entrega".
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	Reference    string `json:"reference,omitempty"`
}

type Order struct {
	ID              gocql.UUID  `json:"id" db:"order_id"`
	StoreID         gocql.UUID  `json:"store_id" db:"store_id"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total" db:"total"`
	CustomerName    string      `json:"customer_name" db:"customer_name"`
	CustomerMode    string      `json:"customer_mode" db:"customer_mode"`
	CustomerPayment string      `json:"customer_payment,omitempty" db:"customer_payment"`
	CustomerAddress *Address    `json:"customer_address,omitempty"`
	CustomerNotes   *string     `json:"customer_notes,omitempty" db:"customer_notes"`
	Status          string      `json:"status" db:"status"`
	UserAgent       string      `json:"user_agent,omitempty" db:"user_agent"`
	CreatedAtClient time.Time   `json:"created_at_client" db:"created_at_client"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
}
