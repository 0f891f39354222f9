package utils

import (
	"fmt"
	"os"

	"github.com/skip2/go-qrcode"
)

// MenuURL monta a URL pública do cardápio de uma loja
func MenuURL(storeID string) string {
	base := os.Getenv("FRONTEND_URL")
	if base == "" {
		base = "http://localhost:5173"
	}
	return fmt.Sprintf("%s/menu/%s", base, storeID)
}

// GenerateMenuQR gera o PNG do QR code do cardápio, pronto para imprimir
// e colar na mesa.
func GenerateMenuQR(storeID string, size int) ([]byte, error) {
	if size <= 0 {
		size = 512
	}
	return qrcode.Encode(MenuURL(storeID), qrcode.Medium, size)
}
