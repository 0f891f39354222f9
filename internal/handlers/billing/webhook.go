package billing

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"github.com/Eduardo-brito329/Menu-Web/internal/cache"
	"github.com/Eduardo-brito329/Menu-Web/internal/database"
)

// Quanto tempo de acesso um pagamento confirmado libera
const PaidPeriod = 365 * 24 * time.Hour

// Eventos da Cakto que confirmam pagamento. Qualquer outro evento é
// reconhecido e ignorado.
var paidEvents = map[string]bool{
	"payment.paid":           true,
	"invoice.paid":           true,
	"subscription.activated": true,
}

func isPaidEvent(event string) bool {
	return paidEvents[strings.ToLower(strings.TrimSpace(event))]
}

// caktoEvent é o recorte do payload da Cakto que interessa aqui. Os
// campos vêm todos na raiz do corpo: customer.email, status, event e
// product.name. O resto é ignorado.
type caktoEvent struct {
	Event    string `json:"event"`
	Status   string `json:"status"`
	Customer struct {
		Email string `json:"email"`
	} `json:"customer"`
	Product struct {
		Name string `json:"name"`
	} `json:"product"`
}

func parseWebhook(body []byte) (email, event string, err error) {
	var payload caktoEvent
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", "", errors.New("payload inválido")
	}

	email = strings.ToLower(strings.TrimSpace(payload.Customer.Email))
	return email, payload.Event, nil
}

//
// 🟢 POST /api/webhooks/cakto
//
// Pagamento confirmado → assinatura paga por um ano, trial zerado.
// O email do comprador é a chave de ligação com a conta.
func CaktoWebhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payload inválido"})
		return
	}

	email, event, err := parseWebhook(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payload inválido"})
		return
	}

	// O email é checado antes do filtro de evento: entrega sem email é
	// malformada mesmo quando o evento seria ignorado
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email do comprador ausente"})
		return
	}

	if !isPaidEvent(event) {
		c.JSON(http.StatusOK, gin.H{"msg": "Evento ignorado"})
		return
	}

	var userID gocql.UUID
	if err := database.QueryUserIDByEmail(email).Scan(&userID); err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			log.Printf("⚠️ Webhook Cakto para email desconhecido: %s", email)
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	now := time.Now()
	if err := session.Query(`UPDATE subscriptions SET is_paid = true, paid_until = ?, trial_end = null, updated_at = ?
		WHERE user_id = ?`,
		now.Add(PaidPeriod), now, userID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno"})
		return
	}

	cache.InvalidateSubscriptionCache(userID.String())

	log.Printf("✅ Assinatura liberada via Cakto: %s (%s)", email, event)

	c.JSON(http.StatusOK, gin.H{"msg": "Assinatura liberada com sucesso!"})
}
