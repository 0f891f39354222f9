package menu

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"github.com/Eduardo-brito329/Menu-Web/internal/cache"
	"github.com/Eduardo-brito329/Menu-Web/internal/checkout"
	"github.com/Eduardo-brito329/Menu-Web/internal/database"
	"github.com/Eduardo-brito329/Menu-Web/internal/models"
	"github.com/Eduardo-brito329/Menu-Web/internal/subscription"
	"github.com/Eduardo-brito329/Menu-Web/internal/utils"
)

// Resultado do registro fica disponível por pouco tempo: o cliente já
// está no WhatsApp, o polling é só informativo.
const DispatchTTL = 15 * time.Minute

//
// 🟢 POST /api/public/menu/:storeId/checkout
//
// O link do WhatsApp volta na resposta na hora; o registro do pedido
// roda em segundo plano e nunca segura o cliente. O carrinho é limpo
// independente do resultado do registro.
func Checkout(c *gin.Context) {
	storeID := c.Param("storeId")

	store, err := cache.GetStoreFromCache(storeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro carregando a loja"})
		return
	}
	if store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cardápio não encontrado"})
		return
	}

	sub, err := cache.GetSubscriptionFromCache(store.OwnerID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro verificando assinatura"})
		return
	}
	if !subscription.IsAllowed(sub) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cardápio indisponível", "blocked": true})
		return
	}
	if !store.IsOpen {
		c.JSON(http.StatusConflict, gin.H{"error": "Loja fechada no momento"})
		return
	}

	var input checkout.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	ctx := context.Background()
	sessionID := cartSession(c)
	key := cartKey(storeID, sessionID)

	items, err := loadCart(ctx, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro carregando o carrinho"})
		return
	}

	payload, message, fieldErrs := checkout.Compose(storeID, items, input, c.Request.UserAgent(), time.Now())
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}

	dispatchID := uuid.NewString()
	database.Redis.Set(ctx, "dispatch:"+dispatchID, string(checkout.OutcomePending), DispatchTTL)

	coordinator := checkout.NewCoordinator(checkout.PersisterFunc(persistOrder))
	link := coordinator.Dispatch(payload, message, store.Whatsapp, func(outcome checkout.Outcome) {
		bg := context.Background()
		database.Redis.Set(bg, "dispatch:"+dispatchID, string(outcome), DispatchTTL)
	})

	// Limpa o carrinho já: o pedido saiu, registrado ou não
	database.Redis.Del(ctx, key)

	c.JSON(http.StatusOK, gin.H{
		"whatsapp_url": link,
		"dispatch_id":  dispatchID,
		"message":      message,
	})
}

//
// 🟢 GET /api/public/dispatch/:dispatchId
//
// Polling do resultado do registro em segundo plano.
func DispatchStatus(c *gin.Context) {
	ctx := context.Background()

	status, err := database.Redis.Get(ctx, "dispatch:"+c.Param("dispatchId")).Result()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Envio não encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// persistOrder grava o pedido nas duas tabelas, publica no canal da
// loja e avisa o dono por email. Publicação e email são melhor esforço.
func persistOrder(ctx context.Context, p checkout.Payload) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	storeID, err := gocql.ParseUUID(p.StoreID)
	if err != nil {
		return err
	}

	orderID := gocql.TimeUUID()
	now := time.Now()

	itemsJSON, err := json.Marshal(p.Items)
	if err != nil {
		return err
	}

	var addressJSON []byte
	if p.CustomerAddress != nil {
		addressJSON, err = json.Marshal(p.CustomerAddress)
		if err != nil {
			return err
		}
	}

	notes := ""
	if p.CustomerNotes != nil {
		notes = *p.CustomerNotes
	}

	if err := session.Query(`INSERT INTO orders (order_id, store_id, items, total, customer_name, customer_mode,
		customer_payment, customer_address, customer_notes, status, user_agent, created_at_client, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		orderID, storeID, string(itemsJSON), p.Total, p.CustomerName, p.CustomerMode,
		p.CustomerPayment, string(addressJSON), notes, models.OrderStatusPending, p.UserAgent, p.CreatedAtClient, now).
		WithContext(ctx).Exec(); err != nil {
		return err
	}

	if err := session.Query(`INSERT INTO orders_by_store (store_id, created_at, order_id, items, total, customer_name, customer_mode,
		customer_payment, customer_address, customer_notes, status, user_agent, created_at_client)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		storeID, now, orderID, string(itemsJSON), p.Total, p.CustomerName, p.CustomerMode,
		p.CustomerPayment, string(addressJSON), notes, models.OrderStatusPending, p.UserAgent, p.CreatedAtClient).
		WithContext(ctx).Exec(); err != nil {
		return err
	}

	order := models.Order{
		ID:              orderID,
		StoreID:         storeID,
		Items:           p.Items,
		Total:           p.Total,
		CustomerName:    p.CustomerName,
		CustomerMode:    p.CustomerMode,
		CustomerPayment: p.CustomerPayment,
		CustomerAddress: p.CustomerAddress,
		CustomerNotes:   p.CustomerNotes,
		Status:          models.OrderStatusPending,
		UserAgent:       p.UserAgent,
		CreatedAtClient: p.CreatedAtClient,
		CreatedAt:       now,
	}

	go notifyNewOrder(p.StoreID, order)
	return nil
}

// notifyNewOrder publica o pedido no canal da loja (painel ao vivo) e
// dispara o email para o dono. Falhas aqui só geram log.
func notifyNewOrder(storeID string, order models.Order) {
	ctx := context.Background()

	if data, err := json.Marshal(order); err == nil {
		if err := database.Redis.Publish(ctx, "orders:"+storeID, data).Err(); err != nil {
			log.Println("⚠️ Erro publicando pedido no canal da loja:", err)
		}
	}

	store, err := cache.GetStoreFromCache(storeID)
	if err != nil || store == nil {
		return
	}

	var email, password, name string
	if err := database.QueryUserByID(store.OwnerID).Scan(&email, &password, &name); err != nil {
		return
	}

	if err := utils.SendNewOrderEmail(email, store.Name, order); err != nil {
		log.Println("⚠️ Erro enviando email de novo pedido:", err)
	}
}
