package checkout

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eduardo-brito329/Menu-Web/internal/models"
)

var testNow = time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)

func cartBurger() []models.CartItem {
	return []models.CartItem{{ProductID: "p1", Name: "Burger", Price: 10, Quantity: 2}}
}

func validInput() Input {
	return Input{Name: "Ana", Mode: ModeRetirada, Payment: "Pix"}
}

func TestValidateNome(t *testing.T) {
	in := validInput()

	in.Name = "A"
	errs := Validate(in, cartBurger())
	assert.Contains(t, errs, "name")

	in.Name = "Jo"
	errs = Validate(in, cartBurger())
	assert.NotContains(t, errs, "name")

	in.Name = strings.Repeat("a", 101)
	errs = Validate(in, cartBurger())
	assert.Contains(t, errs, "name")
}

func TestValidateModo(t *testing.T) {
	in := validInput()
	in.Mode = "drive-thru"
	errs := Validate(in, cartBurger())
	assert.Contains(t, errs, "mode")
}

func TestValidateEntregaExigeEndereco(t *testing.T) {
	in := validInput()
	in.Mode = ModeEntrega

	errs := Validate(in, cartBurger())
	assert.Contains(t, errs, "address")

	in.Address = &models.Address{Number: "10", Neighborhood: "Centro"}
	errs = Validate(in, cartBurger())
	assert.Contains(t, errs, "address.street")
	assert.NotContains(t, errs, "address.number")

	in.Address = &models.Address{Street: "Rua A", Number: "10", Neighborhood: "Centro"}
	errs = Validate(in, cartBurger())
	assert.Empty(t, errs)
}

func TestValidateRetiradaNaoExigeEndereco(t *testing.T) {
	for _, mode := range []string{ModeLocal, ModeRetirada} {
		in := validInput()
		in.Mode = mode
		assert.Empty(t, Validate(in, cartBurger()), "modo %s", mode)
	}
}

func TestValidatePagamentoObrigatorio(t *testing.T) {
	in := validInput()
	in.Payment = "  "
	errs := Validate(in, cartBurger())
	assert.Contains(t, errs, "payment")
}

func TestValidateObservacaoLonga(t *testing.T) {
	in := validInput()
	in.Notes = strings.Repeat("x", 501)
	errs := Validate(in, cartBurger())
	assert.Contains(t, errs, "notes")
}

func TestValidateCarrinhoVazio(t *testing.T) {
	errs := Validate(validInput(), nil)
	assert.Contains(t, errs, "items")
}

func TestComposeMensagem(t *testing.T) {
	in := validInput()
	payload, message, errs := Compose("store-1", cartBurger(), in, "test-agent", testNow)
	require.Empty(t, errs)

	assert.Contains(t, message, "🍽️ *Novo Pedido*")
	assert.Contains(t, message, "*Cliente:* Ana")
	assert.Contains(t, message, "*Tipo:* Retirada")
	assert.Contains(t, message, "*Pagamento:* Pix")
	assert.Contains(t, message, "• 2x Burger - R$ 20,00")
	assert.Contains(t, message, "*Total:* R$ 20,00")

	assert.InDelta(t, 20.0, payload.Total, 0.0001)
	assert.Equal(t, "test-agent", payload.UserAgent)
	assert.Equal(t, testNow, payload.CreatedAtClient)
	assert.Nil(t, payload.CustomerAddress)
	assert.Nil(t, payload.CustomerNotes)
}

func TestComposeEntregaComEndereco(t *testing.T) {
	in := Input{
		Name:    "Ana",
		Mode:    ModeEntrega,
		Payment: "Dinheiro",
		Notes:   "  sem cebola  ",
		Address: &models.Address{Street: " Rua A ", Number: "10", Neighborhood: "Centro"},
	}
	items := []models.CartItem{{ProductID: "p9", Name: "Pizza", Price: 35.5, Quantity: 1}}

	payload, message, errs := Compose("store-1", items, in, "", testNow)
	require.Empty(t, errs)

	require.NotNil(t, payload.CustomerAddress)
	assert.Equal(t, "Rua A", payload.CustomerAddress.Street)
	assert.Equal(t, "10", payload.CustomerAddress.Number)
	assert.Equal(t, "Centro", payload.CustomerAddress.Neighborhood)

	require.NotNil(t, payload.CustomerNotes)
	assert.Equal(t, "sem cebola", *payload.CustomerNotes)

	assert.Contains(t, message, "🏠 *Endereço:* Rua A, 10 - Centro")
	assert.Contains(t, message, "📝 *Observação:* sem cebola")
	assert.Contains(t, message, "*Total:* R$ 35,50")
}

func TestComposeSnapshotIndependeDoCatalogo(t *testing.T) {
	items := cartBurger()
	payload, _, errs := Compose("store-1", items, validInput(), "", testNow)
	require.Empty(t, errs)

	// mudar o carrinho depois não altera o snapshot
	items[0].Price = 99
	assert.InDelta(t, 10.0, payload.Items[0].Price, 0.0001)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "R$ 20,00", FormatPrice(20))
	assert.Equal(t, "R$ 35,50", FormatPrice(35.5))
	assert.Equal(t, "R$ 0,90", FormatPrice(0.9))
	assert.Equal(t, "R$ 1.234,56", FormatPrice(1234.56))
	assert.Equal(t, "R$ 1.000.000,00", FormatPrice(1000000))
	assert.Equal(t, "R$ 10,10", FormatPrice(10.1))
}
