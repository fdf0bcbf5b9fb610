// Package pricing computes booking totals from the price settings and the
// current selection. Free events short-circuit to a marker value instead
// of a zero amount.
package pricing

import (
	"fmt"
	"strings"

	"seatwise/internal/layout"
	"seatwise/internal/settings"
)

// FreeLabel marks a total for a free event
const FreeLabel = "free"

// Total is the outcome of a price computation
type Total struct {
	Free     bool    `json:"free"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Format renders the total for display: the free marker for free events,
// otherwise the amount with two decimals and the currency symbol.
func (t Total) Format() string {
	if t.Free {
		return FreeLabel
	}
	return fmt.Sprintf("%s%.2f", currencySymbol(t.Currency), t.Amount)
}

// ComputeTotal prices a selection of units.
//
// Individual mode sums per-seat prices, with seats in the leading VIP rows
// charged the premium price, then applies the group discount once when the
// selection reaches the configured seat count.
//
// Grouped mode charges a flat slot price per selected slot and applies a
// fixed 10% volume discount once the slot count reaches discountGroups.
func ComputeTotal(unitIDs []string, seats settings.SeatSettings, prices settings.PriceSettings) Total {
	if prices.FreeEvent {
		return Total{Free: true, Currency: prices.Currency}
	}

	var total float64

	if seats.Mode == settings.ModeGroupedSlots {
		total = float64(len(unitIDs)) * prices.SlotPrice
		if prices.DiscountGroups > 0 && len(unitIDs) >= prices.DiscountGroups {
			total *= 0.9
		}
		return Total{Amount: round2(total), Currency: prices.Currency}
	}

	vip := vipRowLabels(prices.VipRows)
	for _, id := range unitIDs {
		if vip[rowOf(id)] {
			total += prices.VipPrice
		} else {
			total += prices.SeatPrice
		}
	}

	if prices.GroupDiscount > 0 && len(unitIDs) >= prices.GroupDiscountMinSeats {
		total *= 1 - prices.GroupDiscount/100
	}

	return Total{Amount: round2(total), Currency: prices.Currency}
}

// vipRowLabels returns the set of row labels charged at the premium price.
// The first n rows of the seating area are VIP.
func vipRowLabels(n int) map[string]bool {
	labels := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		labels[layout.RowLabel(i)] = true
	}
	return labels
}

// rowOf extracts the row letters from a seat ID like "A12" or "AB3"
func rowOf(id string) string {
	end := 0
	for end < len(id) && id[end] >= 'A' && id[end] <= 'Z' {
		end++
	}
	return id[:end]
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

func currencySymbol(code string) string {
	switch strings.ToUpper(code) {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	default:
		return code + " "
	}
}
