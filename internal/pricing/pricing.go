// Package pricing holds the two pure pieces of the ordering flow: the
// per-category selection rules and the unit price calculation. Both are
// re-derivable anywhere with the same inputs, which is what lets the
// server reject a client total that drifted from the live menu.
package pricing

import (
	"github.com/shopspring/decimal"

	"marmitaria/internal/models"
)

// First two proteins ride free on the base price; each one past that
// adds a flat surcharge. Extras always surcharge, with no allowance.
const IncludedProteins = 2

var (
	ProteinSurchargeStep = decimal.NewFromInt(5)
	ExtraSurchargeStep   = decimal.NewFromInt(10)
)

// Breakdown itemizes one order's price.
type Breakdown struct {
	Base             decimal.Decimal `json:"base"`
	ExcessProteins   int             `json:"excess_proteins"`
	ProteinSurcharge decimal.Decimal `json:"protein_surcharge"`
	ExtraCount       int             `json:"extra_count"`
	ExtraSurcharge   decimal.Decimal `json:"extra_surcharge"`
	PerUnit          decimal.Decimal `json:"per_unit"`
	Total            decimal.Decimal `json:"total"`
}

// ComputeTotal prices an order: baseUnitPrice is the selected size's
// price, or the menu's legacy flat price when no size was chosen.
func ComputeTotal(baseUnitPrice decimal.Decimal, selected []models.MenuItem, quantity int) Breakdown {
	proteins := 0
	extras := 0
	for _, item := range selected {
		switch item.Category {
		case models.CategoryProtein:
			proteins++
		case models.CategoryExtra:
			extras++
		}
	}

	excess := proteins - IncludedProteins
	if excess < 0 {
		excess = 0
	}

	proteinSurcharge := ProteinSurchargeStep.Mul(decimal.NewFromInt(int64(excess)))
	extraSurcharge := ExtraSurchargeStep.Mul(decimal.NewFromInt(int64(extras)))
	perUnit := baseUnitPrice.Add(proteinSurcharge).Add(extraSurcharge)

	return Breakdown{
		Base:             baseUnitPrice,
		ExcessProteins:   excess,
		ProteinSurcharge: proteinSurcharge,
		ExtraCount:       extras,
		ExtraSurcharge:   extraSurcharge,
		PerUnit:          perUnit,
		Total:            perUnit.Mul(decimal.NewFromInt(int64(quantity))),
	}
}
