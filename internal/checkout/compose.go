// Package checkout monta e despacha pedidos: valida o formulário,
// gera o payload persistido e a mensagem de WhatsApp, e coordena os
// dois canais de envio.
package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/Eduardo-brito329/Menu-Web/internal/models"
)

// Modos de recebimento suportados (variante canônica: três modos,
// com forma de pagamento).
const (
	ModeLocal    = "local"
	ModeRetirada = "retirada"
	ModeEntrega  = "entrega"
)

var modeLabels = map[string]string{
	ModeLocal:    "Consumo no Local",
	ModeRetirada: "Retirada",
	ModeEntrega:  "Entrega",
}

// Input são os campos crus do formulário de checkout.
type Input struct {
	Name    string          `json:"name"`
	Mode    string          `json:"mode"`
	Payment string          `json:"payment"`
	Notes   string          `json:"notes"`
	Address *models.Address `json:"address"`
}

// FieldErrors mapeia campo → mensagem; o formulário exibe erro por campo,
// nunca uma mensagem agregada.
type FieldErrors map[string]string

// Payload é o pedido normalizado enviado ao backend de persistência.
type Payload struct {
	StoreID         string             `json:"store_id"`
	Items           []models.OrderItem `json:"items"`
	Total           float64            `json:"total"`
	CustomerName    string             `json:"customer_name"`
	CustomerMode    string             `json:"customer_mode"`
	CustomerPayment string             `json:"customer_payment"`
	CustomerAddress *models.Address    `json:"customer_address,omitempty"`
	CustomerNotes   *string            `json:"customer_notes,omitempty"`
	UserAgent       string             `json:"user_agent"`
	CreatedAtClient time.Time          `json:"created_at_client"`
}

// Validate checa os campos do formulário e devolve os erros por campo.
// Mapa vazio significa formulário válido.
func Validate(in Input, items []models.CartItem) FieldErrors {
	errs := FieldErrors{}

	name := strings.TrimSpace(in.Name)
	if len([]rune(name)) < 2 {
		errs["name"] = "Nome deve ter pelo menos 2 caracteres"
	} else if len([]rune(name)) > 100 {
		errs["name"] = "Nome deve ter no máximo 100 caracteres"
	}

	if _, ok := modeLabels[in.Mode]; !ok {
		errs["mode"] = "Modo de recebimento inválido"
	}

	if strings.TrimSpace(in.Payment) == "" {
		errs["payment"] = "Informe a forma de pagamento"
	}

	if len([]rune(in.Notes)) > 500 {
		errs["notes"] = "Observação deve ter no máximo 500 caracteres"
	}

	if in.Mode == ModeEntrega {
		if in.Address == nil {
			errs["address"] = "Informe o endereço de entrega"
		} else {
			if strings.TrimSpace(in.Address.Street) == "" {
				errs["address.street"] = "Informe a rua"
			}
			if strings.TrimSpace(in.Address.Number) == "" {
				errs["address.number"] = "Informe o número"
			}
			if strings.TrimSpace(in.Address.Neighborhood) == "" {
				errs["address.neighborhood"] = "Informe o bairro"
			}
		}
	}

	if len(items) == 0 {
		errs["items"] = "Carrinho vazio"
	}

	return errs
}

// Compose valida o formulário e, se ok, produz o payload do pedido e a
// mensagem de WhatsApp. O snapshot dos itens é tirado aqui — edições
// posteriores do catálogo não mudam o pedido.
func Compose(storeID string, items []models.CartItem, in Input, userAgent string, now time.Time) (Payload, string, FieldErrors) {
	if errs := Validate(in, items); len(errs) > 0 {
		return Payload{}, "", errs
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	var total float64
	for _, it := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
		total += it.Price * float64(it.Quantity)
	}

	var notes *string
	if n := strings.TrimSpace(in.Notes); n != "" {
		notes = &n
	}

	var address *models.Address
	if in.Mode == ModeEntrega && in.Address != nil {
		address = &models.Address{
			Street:       strings.TrimSpace(in.Address.Street),
			Number:       strings.TrimSpace(in.Address.Number),
			Neighborhood: strings.TrimSpace(in.Address.Neighborhood),
			Reference:    strings.TrimSpace(in.Address.Reference),
		}
	}

	payload := Payload{
		StoreID:         storeID,
		Items:           orderItems,
		Total:           total,
		CustomerName:    strings.TrimSpace(in.Name),
		CustomerMode:    in.Mode,
		CustomerPayment: strings.TrimSpace(in.Payment),
		CustomerAddress: address,
		CustomerNotes:   notes,
		UserAgent:       userAgent,
		CreatedAtClient: now,
	}

	return payload, BuildMessage(payload), nil
}

// BuildMessage renderiza a mensagem de WhatsApp no template fixo.
// A ordem dos itens segue a ordem do carrinho.
func BuildMessage(p Payload) string {
	var b strings.Builder

	b.WriteString("🍽️ *Novo Pedido*\n\n")
	b.WriteString("👤 *Cliente:* " + p.CustomerName + "\n")
	b.WriteString("📍 *Tipo:* " + modeLabels[p.CustomerMode] + "\n")

	if p.CustomerPayment != "" {
		b.WriteString("💳 *Pagamento:* " + p.CustomerPayment + "\n")
	}

	if p.CustomerAddress != nil {
		a := p.CustomerAddress
		b.WriteString(fmt.Sprintf("🏠 *Endereço:* %s, %s - %s\n", a.Street, a.Number, a.Neighborhood))
		if a.Reference != "" {
			b.WriteString("🗺️ *Referência:* " + a.Reference + "\n")
		}
	}

	if p.CustomerNotes != nil {
		b.WriteString("📝 *Observação:* " + *p.CustomerNotes + "\n")
	}

	b.WriteString("\n*Itens do Pedido:*\n")
	for _, it := range p.Items {
		b.WriteString(fmt.Sprintf("• %dx %s - %s\n", it.Quantity, it.Name, FormatPrice(it.Price*float64(it.Quantity))))
	}

	b.WriteString("\n💰 *Total:* " + FormatPrice(p.Total) + "\n\n")
	b.WriteString("Obrigado pelo pedido! 🙌")

	return b.String()
}

// FormatPrice formata em reais no padrão pt-BR: R$ 1.234,56.
// Usada tanto nos itens quanto no total para os valores baterem sempre.
func FormatPrice(v float64) string {
	cents := int64(v*100 + 0.5)
	if v < 0 {
		cents = -int64(-v*100 + 0.5)
	}

	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), frac)
}
