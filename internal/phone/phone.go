// Package phone normaliza números de telefone em formato livre para a
// forma internacional usada nos links do WhatsApp (só dígitos, sem "+").
package phone

import "strings"

// DefaultCountryCode é o DDI usado quando o número não traz código de país.
const DefaultCountryCode = "55"

// Normalize aplica NormalizeWithCountry com o DDI padrão (Brasil).
func Normalize(raw string) string {
	return NormalizeWithCountry(raw, DefaultCountryCode)
}

// NormalizeWithCountry é uma função total: nunca falha, entrada vazia
// devolve saída vazia.
//
// Regras:
//   - remove tudo que não é dígito
//   - remove zeros iniciais (ex: 0DDD)
//   - se já começa com o DDI, devolve como está
//   - 8 a 11 dígitos (fixo/celular, com ou sem DDD) → prefixa o DDI
//   - 12+ dígitos → assume que já tem código de país
func NormalizeWithCountry(raw, countryCode string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimLeft(b.String(), "0")

	if strings.HasPrefix(digits, countryCode) {
		return digits
	}

	if len(digits) >= 8 && len(digits) <= 11 {
		return countryCode + digits
	}

	return digits
}
