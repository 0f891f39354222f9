package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"

	"github.com/Eduardo-brito329/Menu-Web/internal/checkout"
	"github.com/Eduardo-brito329/Menu-Web/internal/models"
)

// SendNewOrderEmail avisa o dono da loja que chegou um pedido novo.
// Melhor esforço: sem SMTP configurado vira no-op e nenhum erro daqui
// afeta o despacho do pedido.
func SendNewOrderEmail(to, storeName string, order models.Order) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}

	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@menuweb.app"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("🍽️ Novo pedido de %s — %s", order.CustomerName, storeName))
	msg.SetBodyString(mail.TypeTextHTML, GenerateNewOrderHTML(storeName, order))

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Enviando aviso de pedido novo para", to)
	return client.DialAndSend(msg)
}

// GenerateNewOrderHTML gera o HTML do aviso de pedido novo
func GenerateNewOrderHTML(storeName string, order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%s</td>
				<td>%s</td>
			</tr>`, item.Name, item.Quantity,
			checkout.FormatPrice(item.Price),
			checkout.FormatPrice(item.Price*float64(item.Quantity)))
	}

	notes := ""
	if order.CustomerNotes != nil {
		notes = fmt.Sprintf("<p><strong>Observação:</strong> %s</p>", *order.CustomerNotes)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="pt-BR">
<head>
	<meta charset="UTF-8">
	<title>Novo pedido</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Novo pedido em %s</h2>
		<p><strong>Cliente:</strong> %s</p>
		%s
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Produto</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Quantidade</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Preço unitário</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 10px; text-align: right; font-weight: bold;">Total:</td>
					<td style="padding: 10px; font-weight: bold;">%s</td>
				</tr>
			</tfoot>
		</table>
	</div>
</body>
</html>`, storeName, order.CustomerName, notes, itemsHTML, checkout.FormatPrice(order.Total))
}
