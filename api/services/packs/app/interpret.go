package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// minorUnitExponent fixes amounts to hundredths of the major unit. The change endpoint
// uses the same scale; it is not configurable.
const minorUnitExponent = -2

var amountPrinter = message.NewPrinter(language.French)

// FormatAmount renders a smallest-unit amount in the major unit with French grouping,
// e.g. 150000 -> "1 500".
func FormatAmount(minor int64) string {
	major := decimal.New(minor, minorUnitExponent)
	out := amountPrinter.Sprint(number.Decimal(major.InexactFloat64(), number.MaxFractionDigits(2)))
	// CLDR groups with (narrow) no-break spaces; the UI contract uses a plain space.
	return strings.NewReplacer("\u00a0", " ", "\u202f", " ").Replace(out)
}

// Interpret builds the notification for a change result. A requires-payment result yields
// none: the checkout redirect already happened.
func Interpret(res ChangeResult, packName, currency string) (Notification, bool) {
	n := Notification{
		ID:         uuid.NewString(),
		PackName:   packName,
		ChangeType: res.ChangeType,
		CreatedAt:  time.Now().UTC(),
	}

	switch res.Kind {
	case ResultRequiresPayment:
		return Notification{}, false
	case ResultImmediateSuccess:
		n.Type = NotificationSuccess
		n.Title = TitleChangeSucceeded
		n.Message = res.Message
		if n.Message == "" {
			n.Message = fmt.Sprintf("Vous êtes maintenant sur le %s.", packName)
		}
		if res.CreditAmount > 0 {
			n.CreditAmount = res.CreditAmount
			n.Message = fmt.Sprintf("%s Un crédit de %s %s a été appliqué à votre compte.",
				n.Message, FormatAmount(res.CreditAmount), currency)
			// A credit means a downgrade-shaped settlement: always use the credit template,
			// whatever the advisory classification said.
			n.ChangeType = ChangeDowngrade
		}
		return n, true
	default:
		n.Type = NotificationError
		n.Title = TitleChangeFailed
		n.Message = res.Message
		if n.Message == "" {
			n.Message = UserMessage(res.Err)
		}
		return n, true
	}
}
