package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"vazio", "", ""},
		{"celular com mascara", "(11) 98765-4321", "5511987654321"},
		{"celular sem mascara", "11987654321", "5511987654321"},
		{"fixo com ddd", "1132654321", "551132654321"},
		{"fixo sem ddd", "32654321", "5532654321"},
		{"zero na frente do ddd", "011 98765-4321", "5511987654321"},
		{"ja com ddi", "5511987654321", "5511987654321"},
		{"ddi com mais e espacos", "+55 11 98765-4321", "5511987654321"},
		{"internacional 12 digitos", "351912345678", "351912345678"},
		{"so pontuacao", "()- ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalizeIdempotente(t *testing.T) {
	inputs := []string{"(11) 98765-4321", "32654321", "5511987654321", "0300 123 4567"}
	for _, raw := range inputs {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once), "normalizar duas vezes deve dar o mesmo resultado: %q", raw)
	}
}

func TestNormalizeWithCountry(t *testing.T) {
	assert.Equal(t, "351912345678", NormalizeWithCountry("912345678", "351"))
	assert.Equal(t, "351912345678", NormalizeWithCountry("351912345678", "351"))
}
