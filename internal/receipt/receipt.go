// Package receipt renders an order into the WhatsApp receipt text. The
// same text goes to the owner and the customer.
package receipt

import (
	"fmt"
	"strings"

	"marmitaria/internal/models"
	"marmitaria/internal/schedule"
)

const vendorHeader = "🍱 *HORA EXTRA*"

// Format renders the fixed receipt template. The timestamp comes from
// the order's stored creation time converted to the vendor's timezone,
// so the output is identical no matter where the process runs.
func Format(o *models.Order) string {
	createdAt := schedule.VendorTime(o.CreatedAt).Format("02/01/2006 15:04")

	lines := []string{
		vendorHeader,
		"Pedido Confirmado!",
		"—",
		fmt.Sprintf("*PEDIDO #%d*", o.Number),
		createdAt,
		"",
		fmt.Sprintf("*Cliente:* %s", o.CustomerName),
	}
	if o.CustomerPhone != "" {
		lines = append(lines, fmt.Sprintf("*Tel:* %s", o.CustomerPhone))
	}
	lines = append(lines,
		fmt.Sprintf("*Entrega:* %s", o.DeliveryPoint.Name),
		fmt.Sprintf("*Horário:* %s", o.DeliveryPoint.TimeLabel),
		"",
		fmt.Sprintf("*Itens (%dx marmitas):*", o.Quantity),
	)
	for _, name := range models.Names(o.Items) {
		lines = append(lines, "• "+name)
	}
	lines = append(lines, "")
	if o.Notes != "" {
		lines = append(lines, fmt.Sprintf("*Obs:* %s", o.Notes), "")
	}
	lines = append(lines, fmt.Sprintf("*TOTAL: R$ %s*", o.Total.StringFixed(2)))

	return strings.Join(lines, "\n")
}
