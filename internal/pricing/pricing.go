package pricing

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"maxdata/internal/models"
)

// Quote sums a resolved cart. There is no tax and no discount, so the total
// equals the subtotal.
func Quote(addons []models.Addon, currency string) models.Quote {
	if currency == "" {
		currency = models.DefaultCurrency
	}
	q := models.Quote{
		Items:    make([]models.LineItem, 0, len(addons)),
		Currency: currency,
	}
	for _, a := range addons {
		q.Items = append(q.Items, models.LineItem{
			AddonID:    a.ID,
			Name:       a.Name,
			PriceCents: a.PriceCents,
		})
		q.SubtotalCents += a.PriceCents
	}
	q.Count = len(q.Items)
	q.TotalCents = q.SubtotalCents
	q.Total = FormatCents(q.TotalCents)
	return q
}

// printer groups thousands with commas.
var printer = message.NewPrinter(language.English)

// FormatCents renders cents as "$1,234.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%s.%02d", sign, printer.Sprintf("%d", cents/100), cents%100)
}

// FormatDollars renders whole dollars as "$410,000".
func FormatDollars(dollars int64) string {
	sign := ""
	if dollars < 0 {
		sign = "-"
		dollars = -dollars
	}
	return sign + "$" + printer.Sprintf("%d", dollars)
}
