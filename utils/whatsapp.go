package utils

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/afriblend/afriblend-backend/models"
)

// Deep links into WhatsApp carrying a pre-filled, human-readable order
// summary. The link is returned to the admin UI; opening it is the
// caller's business.

// DigitsOnly strips everything but digits from a phone number, the
// format wa.me expects.
func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func whatsappLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", DigitsOnly(phone), url.QueryEscape(message))
}

// DispatchMessage is the courier briefing: order id, client contact,
// itemized list, and a payment reminder that tells the rider whether
// cash must be collected.
func DispatchMessage(order models.Order) string {
	var items []string
	for _, item := range order.Items {
		items = append(items, fmt.Sprintf("- %s (%d)", item.Name, item.Quantity))
	}

	paymentInfo := "Payment Status: PAID"
	if order.PaymentStatus != models.PaymentStatusPaid {
		paymentInfo = fmt.Sprintf("Payment Status: UNPAID\nPLEASE COLLECT: KSH %.0f", math.Round(order.Total))
	}

	client := order.ClientDetails
	return fmt.Sprintf(
		"DISPATCH\nOrder ID: %s\n\nClient: %s\nPhone: %s\nAddress: %s\n\nItems:\n%s\n\n%s",
		order.Id.Hex(), client.Name, client.Phone, client.Address,
		strings.Join(items, "\n"), paymentInfo,
	)
}

// DispatchLink builds the wa.me URL addressed to the rider.
func DispatchLink(order models.Order, rider models.Rider) string {
	return whatsappLink(rider.Phone, DispatchMessage(order))
}

// ClientSummaryMessage greets the client with their order summary,
// rounded total, current status, and the public tracking URL.
func ClientSummaryMessage(order models.Order, siteURL string) string {
	var items []string
	for _, item := range order.Items {
		items = append(items, fmt.Sprintf("- %s (Size: %s, Color: %s) x %d",
			item.Name, item.SelectedSize, item.SelectedColor, item.Quantity))
	}
	trackingURL := fmt.Sprintf("%s/#/track/%s", strings.TrimRight(siteURL, "/"), order.TrackingId)

	return fmt.Sprintf(
		"Hello %s,\n\nHere is a summary of your Afriblend order (#%s):\n\n%s\n\nTotal: KSH %.0f\nStatus: %s\n\nYou can track your order here:\n%s",
		order.ClientDetails.Name, order.Id.Hex(),
		strings.Join(items, "\n"), math.Round(order.Total), order.Status, trackingURL,
	)
}

// ClientSummaryLink builds the wa.me URL addressed to the client.
func ClientSummaryLink(order models.Order, siteURL string) string {
	return whatsappLink(order.ClientDetails.Phone, ClientSummaryMessage(order, siteURL))
}
