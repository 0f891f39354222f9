package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitOutcome(t *testing.T, ch <-chan Outcome) Outcome {
	t.Helper()
	select {
	case o := <-ch:
		return o
	case <-time.After(2 * time.Second):
		t.Fatal("timeout esperando outcome do despacho")
		return ""
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("11987654321", "Olá mundo")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511987654321?text="), link)
	assert.Contains(t, link, "Ol%C3%A1%20mundo")
	assert.NotContains(t, link, "+")
}

func TestWhatsAppLinkSemContato(t *testing.T) {
	assert.Empty(t, WhatsAppLink("", "mensagem"))
}

func TestDispatchPersistenciaOk(t *testing.T) {
	done := make(chan Outcome, 1)
	coord := NewCoordinator(PersisterFunc(func(ctx context.Context, p Payload) error {
		return nil
	}))

	link := coord.Dispatch(Payload{}, "pedido", "11987654321", func(o Outcome) { done <- o })

	assert.NotEmpty(t, link)
	assert.Equal(t, OutcomeRegistered, waitOutcome(t, done))
}

func TestDispatchFalhaDePersistenciaNaoBloqueiaOLink(t *testing.T) {
	done := make(chan Outcome, 1)
	coord := NewCoordinator(PersisterFunc(func(ctx context.Context, p Payload) error {
		return errors.New("backend fora do ar")
	}))

	link := coord.Dispatch(Payload{}, "pedido", "11987654321", func(o Outcome) { done <- o })

	// o link já foi montado mesmo com a gravação falhando
	assert.Contains(t, link, "5511987654321")
	assert.Equal(t, OutcomeUnrecorded, waitOutcome(t, done))
}

func TestDispatchPanicoViraErroGenerico(t *testing.T) {
	done := make(chan Outcome, 1)
	coord := NewCoordinator(PersisterFunc(func(ctx context.Context, p Payload) error {
		panic("algo inesperado")
	}))

	coord.Dispatch(Payload{}, "pedido", "11987654321", func(o Outcome) { done <- o })

	assert.Equal(t, OutcomeFailed, waitOutcome(t, done))
}

func TestDispatchSemWhatsappAindaPersiste(t *testing.T) {
	done := make(chan Outcome, 1)
	coord := NewCoordinator(PersisterFunc(func(ctx context.Context, p Payload) error {
		return nil
	}))

	link := coord.Dispatch(Payload{}, "pedido", "", func(o Outcome) { done <- o })

	assert.Empty(t, link)
	assert.Equal(t, OutcomeRegistered, waitOutcome(t, done))
}

func TestDispatchNaoEsperaAPersistencia(t *testing.T) {
	release := make(chan struct{})
	done := make(chan Outcome, 1)
	coord := NewCoordinator(PersisterFunc(func(ctx context.Context, p Payload) error {
		<-release
		return nil
	}))

	start := time.Now()
	link := coord.Dispatch(Payload{}, "pedido", "11987654321", func(o Outcome) { done <- o })

	// o link volta imediatamente, com a gravação ainda pendente
	require.Less(t, time.Since(start), 500*time.Millisecond)
	assert.NotEmpty(t, link)

	close(release)
	assert.Equal(t, OutcomeRegistered, waitOutcome(t, done))
}

func TestDispatchFimAFim(t *testing.T) {
	payload, message, errs := Compose("store-1",
		cartBurger(), Input{Name: "Ana", Mode: ModeRetirada, Payment: "Pix"}, "agent", testNow)
	require.Empty(t, errs)

	var got Payload
	done := make(chan Outcome, 1)
	coord := NewCoordinator(PersisterFunc(func(ctx context.Context, p Payload) error {
		got = p
		return nil
	}))

	link := coord.Dispatch(payload, message, "(11) 98765-4321", func(o Outcome) { done <- o })

	assert.Contains(t, link, "wa.me/5511987654321")
	assert.Equal(t, OutcomeRegistered, waitOutcome(t, done))
	assert.Equal(t, "store-1", got.StoreID)
}
