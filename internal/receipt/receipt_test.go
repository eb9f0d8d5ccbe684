package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"marmitaria/internal/models"
)

func orderFixture() *models.Order {
	return &models.Order{
		Number:        42,
		CustomerName:  "João Silva",
		CustomerPhone: "(61) 99999-9999",
		Quantity:      2,
		Items:         models.NameList([]string{"Arroz", "Feijão Tropeiro", "Alcatra"}),
		Notes:         "Sem cebola",
		Total:         decimal.RequireFromString("60.00"),
		DeliveryPoint: models.DeliveryPoint{Name: "Cebraspe", TimeLabel: "12h00"},
		// 14:05 UTC is 11:05 in Sao Paulo.
		CreatedAt: time.Date(2025, 6, 2, 14, 5, 0, 0, time.UTC),
	}
}

func TestFormatContents(t *testing.T) {
	got := Format(orderFixture())

	for _, want := range []string{
		"*PEDIDO #42*",
		"*Cliente:* João Silva",
		"*Tel:* (61) 99999-9999",
		"*Entrega:* Cebraspe",
		"*Horário:* 12h00",
		"*Itens (2x marmitas):*",
		"• Arroz",
		"• Feijão Tropeiro",
		"• Alcatra",
		"*Obs:* Sem cebola",
		"*TOTAL: R$ 60.00*",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("receipt missing %q:\n%s", want, got)
		}
	}
}

func TestFormatTimestampInVendorZone(t *testing.T) {
	got := Format(orderFixture())
	if !strings.Contains(got, "02/06/2025 11:05") {
		t.Errorf("expected Brasilia timestamp 02/06/2025 11:05 in:\n%s", got)
	}
}

func TestFormatOmitsOptionalLines(t *testing.T) {
	o := orderFixture()
	o.CustomerPhone = ""
	o.Notes = ""

	got := Format(o)
	if strings.Contains(got, "*Tel:*") {
		t.Errorf("phone line rendered for empty phone:\n%s", got)
	}
	if strings.Contains(got, "*Obs:*") {
		t.Errorf("notes line rendered for empty notes:\n%s", got)
	}
}

func TestFormatTotalAlwaysTwoDecimals(t *testing.T) {
	o := orderFixture()
	o.Total = decimal.RequireFromString("45")

	if got := Format(o); !strings.Contains(got, "*TOTAL: R$ 45.00*") {
		t.Errorf("total not formatted with two decimals:\n%s", got)
	}
}

func TestFormatDeterministic(t *testing.T) {
	o := orderFixture()
	if Format(o) != Format(o) {
		t.Error("same order formatted differently on repeat calls")
	}
}
