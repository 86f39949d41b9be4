package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single logged purchase, amortized over its expected
// usage period.
type Expense struct {
	CreatedAt        time.Time
	UpdatedAt        time.Time
	PurchaseDate     time.Time
	ID               string
	Name             string
	Category         string
	Subcategory      string
	BrandColor       string
	BrandAccentColor string
	BrandLogoURL     string
	ImageURL         string
	Notes            string
	TotalCost        decimal.Decimal
	MonthlyCost      decimal.Decimal
	UsageMonths      int
}

// AmortizedMonthlyCost spreads a one-time cost over the expected usage period.
// A non-positive period yields zero rather than a division error.
func AmortizedMonthlyCost(totalCost decimal.Decimal, usageMonths int) decimal.Decimal {
	if usageMonths <= 0 {
		return decimal.Zero
	}
	return totalCost.DivRound(decimal.NewFromInt(int64(usageMonths)), 2)
}
