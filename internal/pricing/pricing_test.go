package pricing

import (
	"testing"

	"seatwise/internal/settings"

	"github.com/stretchr/testify/assert"
)

func paidPrices() settings.PriceSettings {
	p := settings.Defaults().Prices
	p.FreeEvent = false
	return p
}

func TestFreeEventShortCircuits(t *testing.T) {
	prices := settings.Defaults().Prices
	seats := settings.Defaults().Seats

	total := ComputeTotal([]string{"A1", "B2", "C3"}, seats, prices)

	assert.True(t, total.Free)
	assert.Equal(t, FreeLabel, total.Format())
}

func TestIndividualVipAndStandardPricing(t *testing.T) {
	prices := paidPrices() // vipPrice 15, seatPrice 10, vipRows 2
	seats := settings.Defaults().Seats

	total := ComputeTotal([]string{"A1", "C1"}, seats, prices)

	assert.False(t, total.Free)
	assert.Equal(t, 25.0, total.Amount)
	assert.Equal(t, "€25.00", total.Format())
}

func TestIndividualDiscountAppliedOnceAtThreshold(t *testing.T) {
	prices := paidPrices() // groupDiscount 15%, threshold 8 seats
	seats := settings.Defaults().Seats

	ids := []string{"E1", "E2", "E3", "E4", "E5", "E6", "E7", "E8"}
	total := ComputeTotal(ids, seats, prices)

	// 8 standard seats at 10 each, 15% off once
	assert.Equal(t, 68.0, total.Amount)
}

func TestIndividualBelowThresholdNoDiscount(t *testing.T) {
	prices := paidPrices()
	seats := settings.Defaults().Seats

	total := ComputeTotal([]string{"E1", "E2", "E3"}, seats, prices)
	assert.Equal(t, 30.0, total.Amount)
}

func TestGroupedFlatSlotPrice(t *testing.T) {
	prices := paidPrices() // slotPrice 8
	seats := settings.Defaults().Seats
	seats.Mode = settings.ModeGroupedSlots

	total := ComputeTotal([]string{"G1-S1", "G2-S1"}, seats, prices)
	assert.Equal(t, 16.0, total.Amount)
}

func TestGroupedVolumeDiscountAtThreshold(t *testing.T) {
	prices := paidPrices() // discountGroups 5
	seats := settings.Defaults().Seats
	seats.Mode = settings.ModeGroupedSlots

	ids := []string{"G1-S1", "G2-S1", "G3-S1", "G4-S1", "G5-S1"}
	total := ComputeTotal(ids, seats, prices)

	// 5 slots at 8 each with the fixed 10% volume discount
	assert.Equal(t, 36.0, total.Amount)
}

func TestVipRowsBeyondSingleLetters(t *testing.T) {
	prices := paidPrices()
	prices.VipRows = 27
	seats := settings.Defaults().Seats

	total := ComputeTotal([]string{"AA1"}, seats, prices)
	assert.Equal(t, prices.VipPrice, total.Amount)
}

func TestFormatCurrencySymbols(t *testing.T) {
	assert.Equal(t, "$12.50", Total{Amount: 12.5, Currency: "USD"}.Format())
	assert.Equal(t, "CHF 9.00", Total{Amount: 9, Currency: "CHF"}.Format())
}
