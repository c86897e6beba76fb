package orders

import (
	"github.com/shopspring/decimal"

	"go-marketplace/models"
)

// Rates are the process-wide pricing parameters, injected at service
// construction from configuration.
type Rates struct {
	TaxRate      decimal.Decimal
	ShippingFlat decimal.Decimal
}

// Totals is the priced summary of an order's line items.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// ComputeTotals prices a set of line items. The subtotal keeps full
// precision; tax is rounded half-up to 2 decimals on its own, and the
// total is rounded half-up to 2 decimals from the already-rounded tax.
// That two-step rounding can let subtotal+tax+shipping differ from
// total by a cent in pathological inputs; it matches the totals this
// system has always produced and must not be collapsed into a single
// rounding pass.
func ComputeTotals(items []models.OrderItem, rates Rates) (Totals, error) {
	if rates.TaxRate.IsNegative() || rates.ShippingFlat.IsNegative() {
		return Totals{}, ErrNegativeRate
	}

	subtotal := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Qty)))
		subtotal = subtotal.Add(line)
	}

	tax := subtotal.Mul(rates.TaxRate).Round(2)
	shipping := rates.ShippingFlat
	total := subtotal.Add(tax).Add(shipping).Round(2)

	return Totals{
		Subtotal: subtotal.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}, nil
}
