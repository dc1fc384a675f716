// Package format renders dates, money and status badges for the workspace
// views. The application locale is French.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.French)

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
)

// FormatDate renders an ISO-8601 timestamp as a short localized date,
// "-" when empty. Unparseable input is shown as-is rather than hidden.
func FormatDate(iso string) string {
	return formatTime(iso, dateLayout)
}

// FormatDateTime renders an ISO-8601 timestamp as localized date + time.
func FormatDateTime(iso string) string {
	return formatTime(iso, dateTimeLayout)
}

func formatTime(iso, layout string) string {
	if iso == "" {
		return "-"
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		// Date-only inputs (deadline fields) come in as 2006-01-02.
		t, err = time.Parse("2006-01-02", iso)
	}
	if err != nil {
		return iso
	}
	return t.Format(layout)
}

// FormatCurrency renders an amount in the given ISO currency with French
// grouping. Unknown currency codes fall back to plain numeric rendering.
func FormatCurrency(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return printer.Sprintf("%.2f", amount.InexactFloat64())
	}
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(amount.InexactFloat64())))
}

// Badge is the visual classification of a status.
type Badge string

const (
	BadgeSuccess Badge = "success"
	BadgeDanger  Badge = "danger"
	BadgeWarning Badge = "warning"
	BadgeInfo    Badge = "info"
)

// Classification keywords, checked in order Success, Danger, Warning; Info
// is the fallback. Matching is case-insensitive substring.
var badgeKeywords = []struct {
	badge    Badge
	keywords []string
}{
	{BadgeSuccess, []string{"livré", "payé", "collecté", "validé", "terminé", "expédié"}},
	{BadgeDanger, []string{"annul", "retour", "refus", "échec"}},
	{BadgeWarning, []string{"attente", "confirmer", "relance"}},
}

// ClassifyStatus maps free-text status to a badge. First matching category
// wins; empty or unrecognized text classifies as Info.
func ClassifyStatus(text string) Badge {
	lowered := strings.ToLower(text)
	for _, group := range badgeKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lowered, kw) {
				return group.badge
			}
		}
	}
	return BadgeInfo
}
