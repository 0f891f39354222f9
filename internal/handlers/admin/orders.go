package admin

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/gorilla/websocket"

	"github.com/Eduardo-brito329/Menu-Web/internal/database"
	"github.com/Eduardo-brito329/Menu-Web/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Liberar todas as origens (ajustar em produção)
		return true
	},
}

func scanOrders(iter *gocql.Iter) ([]models.Order, error) {
	orders := []models.Order{}
	var (
		o           models.Order
		itemsJSON   string
		addressJSON string
		notes       string
	)
	for iter.Scan(&o.StoreID, &o.CreatedAt, &o.ID, &itemsJSON, &o.Total, &o.CustomerName, &o.CustomerMode,
		&o.CustomerPayment, &addressJSON, &notes, &o.Status, &o.UserAgent, &o.CreatedAtClient) {
		o.Items = nil
		o.CustomerAddress = nil
		o.CustomerNotes = nil

		if itemsJSON != "" {
			json.Unmarshal([]byte(itemsJSON), &o.Items)
		}
		if addressJSON != "" {
			var addr models.Address
			if json.Unmarshal([]byte(addressJSON), &addr) == nil {
				o.CustomerAddress = &addr
			}
		}
		if notes != "" {
			n := notes
			o.CustomerNotes = &n
		}
		orders = append(orders, o)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return orders, nil
}

//
// 🟢 GET /api/admin/orders?limit=
//
// Pedidos da loja, mais recentes primeiro.
func ListOrders(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}

	limit := 50
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de conexão com o banco"})
		return
	}

	iter := session.Query(`SELECT store_id, created_at, order_id, items, total, customer_name, customer_mode,
		customer_payment, customer_address, customer_notes, status, user_agent, created_at_client
		FROM orders_by_store WHERE store_id = ? LIMIT ?`, storeID, limit).Iter()

	orders, err := scanOrders(iter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro carregando pedidos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

//
// 🟢 GET /api/admin/dashboard
//
// Números do dia: pedidos, faturamento e tamanho do catálogo.
func Dashboard(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}

	ordersSession, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de conexão com o banco"})
		return
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	iter := ordersSession.Query(`SELECT store_id, created_at, order_id, items, total, customer_name, customer_mode,
		customer_payment, customer_address, customer_notes, status, user_agent, created_at_client
		FROM orders_by_store WHERE store_id = ? AND created_at >= ?`, storeID, startOfDay).Iter()

	orders, err := scanOrders(iter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro carregando pedidos"})
		return
	}

	revenue := 0.0
	pending := 0
	for _, o := range orders {
		revenue += o.Total
		if o.Status == models.OrderStatusPending {
			pending++
		}
	}

	storesSession, err := database.GetStoresSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de conexão com o banco"})
		return
	}

	var productCount int
	if err := storesSession.Query(`SELECT COUNT(*) FROM products_by_store WHERE store_id = ?`, storeID).
		Scan(&productCount); err != nil {
		log.Println("⚠️ Erro contando produtos:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"orders_today":   len(orders),
		"pending_orders": pending,
		"revenue_today":  revenue,
		"product_count":  productCount,
	})
}

//
// 🟢 PUT /api/admin/orders/:orderId/status
//
func UpdateOrderStatus(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}

	orderID, err := gocql.ParseUUID(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pedido inválido"})
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	if !models.ValidOrderStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status inválido"})
		return
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro de conexão com o banco"})
		return
	}

	// A tabela principal guarda created_at do pedido, necessário para
	// atualizar a linha espelhada em orders_by_store
	var createdAt time.Time
	var orderStore gocql.UUID
	if err := session.Query(`SELECT store_id, created_at FROM orders WHERE order_id = ?`, orderID).
		Scan(&orderStore, &createdAt); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado"})
		return
	}
	if orderStore != storeID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado"})
		return
	}

	if err := session.Query(`UPDATE orders SET status = ? WHERE order_id = ?`,
		input.Status, orderID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro atualizando pedido"})
		return
	}
	if err := session.Query(`UPDATE orders_by_store SET status = ? WHERE store_id = ? AND created_at = ? AND order_id = ?`,
		input.Status, storeID, createdAt, orderID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro atualizando pedido"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

//
// 🟢 GET /api/admin/orders/ws
//
// Painel ao vivo: novos pedidos chegam pelo canal Redis da loja.
func OrdersWebSocket(c *gin.Context) {
	storeID, ok := resolveStoreID(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erro no upgrade do WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()

	pubsub := database.Redis.Subscribe(ctx, "orders:"+storeID.String())
	defer pubsub.Close()

	ch := pubsub.Channel()

	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Painel de pedidos ao vivo",
	})

	for {
		select {
		case msg, open := <-ch:
			if !open {
				return
			}

			var order models.Order
			if err := json.Unmarshal([]byte(msg.Payload), &order); err != nil {
				continue
			}

			if err := conn.WriteJSON(map[string]interface{}{
				"type":  "new_order",
				"order": order,
			}); err != nil {
				log.Printf("❌ Erro enviando pelo WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping para manter a conexão viva
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
