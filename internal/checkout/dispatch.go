package checkout

import (
	"context"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/Eduardo-brito329/Menu-Web/internal/phone"
)

// WhatsAppBaseURL é o host do deep link de mensagem.
const WhatsAppBaseURL = "https://wa.me/"

// Outcome é o resultado do canal de persistência de um despacho.
// O link de WhatsApp já foi entregue quando o outcome é conhecido, então
// "nao_registrado" é um aviso suave — o pedido chegou ao lojista, só não
// ficou gravado.
type Outcome string

const (
	OutcomePending    Outcome = "pendente"
	OutcomeRegistered Outcome = "registrado"
	OutcomeUnrecorded Outcome = "nao_registrado"
	OutcomeFailed     Outcome = "erro"
)

// WhatsAppLink monta o deep link: só dígitos no número (DDI + número
// nacional, sem "+") e mensagem percent-encoded em UTF-8.
// Devolve vazio se não há número de contato.
func WhatsAppLink(contact, message string) string {
	digits := phone.Normalize(contact)
	if digits == "" {
		return ""
	}
	// QueryEscape usa "+" para espaço; o WhatsApp espera %20
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return WhatsAppBaseURL + digits + "?text=" + encoded
}

// Persister é o ponto de entrada de criação de pedido no backend.
type Persister interface {
	CreateOrder(ctx context.Context, p Payload) error
}

// PersisterFunc adapta uma função em Persister.
type PersisterFunc func(ctx context.Context, p Payload) error

func (f PersisterFunc) CreateOrder(ctx context.Context, p Payload) error { return f(ctx, p) }

// Coordinator despacha um pedido composto pelos dois canais:
//
//  1. o deep link de WhatsApp é montado e devolvido na hora, na mesma
//     resposta da requisição que o usuário disparou — o navegador precisa
//     abrir o link dentro do gesto original
//  2. a persistência roda numa goroutine desacoplada: nenhum canal espera
//     ou desfaz o outro, e a navegação não aborta a gravação
//
// Não há retry: gravação que falhou é reportada e perdida.
type Coordinator struct {
	persister Persister
	timeout   time.Duration
}

func NewCoordinator(p Persister) *Coordinator {
	return &Coordinator{persister: p, timeout: 10 * time.Second}
}

// Dispatch devolve o link de WhatsApp (vazio se a loja não tem número) e
// agenda a persistência em segundo plano. done é chamado exatamente uma
// vez com o outcome da persistência.
func (c *Coordinator) Dispatch(p Payload, message, whatsapp string, done func(Outcome)) string {
	link := WhatsAppLink(whatsapp, message)

	if done == nil {
		done = func(Outcome) {}
	}
	go c.persist(p, done)

	return link
}

func (c *Coordinator) persist(p Payload, done func(Outcome)) {
	defer func() {
		if r := recover(); r != nil {
			log.Println("❌ Pânico ao registrar pedido:", r)
			done(OutcomeFailed)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	if err := c.persister.CreateOrder(ctx, p); err != nil {
		log.Println("❌ Falha ao registrar pedido:", err)
		done(OutcomeUnrecorded)
		return
	}

	done(OutcomeRegistered)
}
