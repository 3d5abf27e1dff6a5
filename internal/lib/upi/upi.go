package upi

import (
	"strconv"
	"strings"
)

type App struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Link  string `json:"link"`
}

type target struct {
	key, label, prefix string
}

var targets = []target{
	{key: "phonepe", label: "PhonePe", prefix: "phonepe://pay"},
	{key: "gpay", label: "Google Pay", prefix: "gpay://upi/pay"},
	{key: "paytm", label: "Paytm", prefix: "paytmmp://pay"},
	{key: "upi", label: "Other UPI Apps", prefix: "upi://pay"},
}

// Link builds <prefix>?pa=<payee>&am=<amount>&cu=<currency>. A nil amount
// leaves am out so the app asks the payer for it.
func Link(prefix, payee string, amount *int, currency string) string {
	var b strings.Builder

	b.WriteString(prefix)
	b.WriteString("?pa=")
	b.WriteString(payee)
	if amount != nil {
		b.WriteString("&am=")
		b.WriteString(strconv.Itoa(*amount))
	}
	b.WriteString("&cu=")
	b.WriteString(currency)

	return b.String()
}

// Apps returns deep links for the named apps first and the generic upi scheme last.
func Apps(payee string, amount *int, currency string) []App {
	apps := make([]App, 0, len(targets))
	for _, t := range targets {
		apps = append(apps, App{
			Key:   t.key,
			Label: t.label,
			Link:  Link(t.prefix, payee, amount, currency),
		})
	}

	return apps
}
