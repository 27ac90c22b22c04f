// Package notification builds WhatsApp deep links for booking alerts.
// Nothing is delivered from the server: staff open the generated wa.me
// links manually, which is the operator's actual workflow.
package notification

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// The operator's staff. Nadia also holds the superadmin login.
var adminContacts = []Contact{
	{Name: "Ahmed", Phone: "+212600623630", Role: "admin"},
	{Name: "Yahia", Phone: "+212693323368", Role: "admin"},
	{Name: "Nadia", Phone: "+212654497354", Role: "superadmin"},
}

// BookingData is everything the message templates need.
type BookingData struct {
	BookingID        string
	CustomerName     string
	CustomerPhone    string
	ActivityName     string
	NumberOfPeople   int
	PreferredDate    time.Time
	ParticipantNames []string
	TotalAmount      int
	PaymentMethod    string
	PaymentStatus    string
	Status           string
	Notes            string
}

type Link struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Link  string `json:"link"`
}

// Payload is returned with booking creation and payment updates so the
// client can open the pre-filled conversations.
type Payload struct {
	Recipients           []Contact `json:"recipients"`
	Message              string    `json:"message"`
	WhatsappLinks        []Link    `json:"whatsappLinks"`
	CustomerMessage      string    `json:"customerMessage,omitempty"`
	CustomerWhatsappLink string    `json:"customerWhatsappLink,omitempty"`
}

func AdminContacts() []Contact {
	contacts := make([]Contact, len(adminContacts))
	copy(contacts, adminContacts)
	return contacts
}

// WALink builds https://wa.me/<phone-without-plus>?text=<urlencoded>.
func WALink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		strings.TrimPrefix(phone, "+"),
		url.QueryEscape(message))
}

func adminLinks(message string) []Link {
	links := make([]Link, len(adminContacts))
	for i, admin := range adminContacts {
		links[i] = Link{
			Name:  admin.Name,
			Phone: admin.Phone,
			Link:  WALink(admin.Phone, message),
		}
	}
	return links
}

// BookingNotification builds the admin alert plus the customer
// confirmation for a new booking.
func BookingNotification(booking BookingData) Payload {
	adminMessage := formatBookingMessage(booking)
	customerMessage := formatCustomerConfirmation(booking)

	return Payload{
		Recipients:           AdminContacts(),
		Message:              adminMessage,
		WhatsappLinks:        adminLinks(adminMessage),
		CustomerMessage:      customerMessage,
		CustomerWhatsappLink: WALink(booking.CustomerPhone, customerMessage),
	}
}

// PaymentConfirmation builds the admin alert for a recorded payment.
// paymentType is "full" or "deposit"; the deposit is 30% of the total.
func PaymentConfirmation(booking BookingData, paymentType string) Payload {
	message := formatPaymentConfirmation(booking, paymentType)

	return Payload{
		Recipients:    AdminContacts(),
		Message:       message,
		WhatsappLinks: adminLinks(message),
	}
}

func formatBookingMessage(booking BookingData) string {
	participants := booking.CustomerName
	if len(booking.ParticipantNames) > 0 {
		participants = strings.Join(booking.ParticipantNames, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📌 New Booking\n")
	fmt.Fprintf(&b, "Activity: %s\n", booking.ActivityName)
	fmt.Fprintf(&b, "Date: %s\n", booking.PreferredDate.Format("Monday, January 2, 2006"))
	fmt.Fprintf(&b, "People: %d\n", booking.NumberOfPeople)
	fmt.Fprintf(&b, "Names: %s\n", participants)
	fmt.Fprintf(&b, "Phone: %s\n", booking.CustomerPhone)
	if booking.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", booking.Notes)
	}
	fmt.Fprintf(&b, "\n💰 INFORMATIONS PAIEMENT:\n")
	fmt.Fprintf(&b, "• Méthode: %s\n", paymentMethodText(booking.PaymentMethod))
	fmt.Fprintf(&b, "• Statut: %s\n", paymentStatusText(booking.PaymentStatus))
	fmt.Fprintf(&b, "• Statut réservation: %s\n", bookingStatusText(booking.Status))
	fmt.Fprintf(&b, "\n🎯 ACTION REQUISE:\n")
	fmt.Fprintf(&b, "1. Contactez le client rapidement\n")
	fmt.Fprintf(&b, "2. Confirmez la disponibilité\n")
	fmt.Fprintf(&b, "3. Organisez le point de rendez-vous\n")
	fmt.Fprintf(&b, "\n📞 Contactez %s au %s", booking.CustomerName, booking.CustomerPhone)
	return b.String()
}

func formatCustomerConfirmation(booking BookingData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏜️ CONFIRMATION DE RÉSERVATION - MarrakechDunes\n\n")
	fmt.Fprintf(&b, "Bonjour %s,\n\n", booking.CustomerName)
	fmt.Fprintf(&b, "✅ Votre réservation a été enregistrée avec succès !\n\n")
	fmt.Fprintf(&b, "📋 DÉTAILS DE VOTRE RÉSERVATION:\n")
	fmt.Fprintf(&b, "• Activité: %s\n", booking.ActivityName)
	fmt.Fprintf(&b, "• Date: %s\n", booking.PreferredDate.Format("02/01/2006"))
	fmt.Fprintf(&b, "• Nombre de personnes: %d\n", booking.NumberOfPeople)
	fmt.Fprintf(&b, "• Montant total: %d MAD\n", booking.TotalAmount)
	fmt.Fprintf(&b, "• ID de réservation: %s\n\n", booking.BookingID)
	fmt.Fprintf(&b, "💰 PAIEMENT:\n")
	fmt.Fprintf(&b, "• Mode de paiement: Espèces (sur place)\n")
	fmt.Fprintf(&b, "• Statut: %s\n\n", paymentStatusText(booking.PaymentStatus))
	fmt.Fprintf(&b, "📞 CONTACT:\n")
	for _, admin := range adminContacts {
		fmt.Fprintf(&b, "• %s: %s\n", admin.Name, admin.Phone)
	}
	fmt.Fprintf(&b, "\nNotre équipe vous contactera dans les 24h pour confirmer le point de rendez-vous.\n\n")
	fmt.Fprintf(&b, "Merci d'avoir choisi MarrakechDunes pour votre aventure marocaine !\n\n")
	fmt.Fprintf(&b, "L'équipe MarrakechDunes 🐪")
	return b.String()
}

func formatPaymentConfirmation(booking BookingData, paymentType string) string {
	header := "ACOMPTE PAYÉ"
	amount := fmt.Sprintf("%d MAD (acompte 30%%)", depositAmount(booking.TotalAmount))
	if paymentType == "full" {
		header = "PAIEMENT COMPLET"
		amount = fmt.Sprintf("%d MAD (complet)", booking.TotalAmount)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "💰 %s CONFIRMÉ - MarrakechDunes\n\n", header)
	fmt.Fprintf(&b, "📋 RÉSERVATION:\n")
	fmt.Fprintf(&b, "• ID: %s\n", booking.BookingID)
	fmt.Fprintf(&b, "• Client: %s\n", booking.CustomerName)
	fmt.Fprintf(&b, "• Activité: %s\n", booking.ActivityName)
	fmt.Fprintf(&b, "• Montant payé: %s\n\n", amount)
	fmt.Fprintf(&b, "✅ STATUT: Paiement confirmé en espèces\n")
	if paymentType != "full" {
		fmt.Fprintf(&b, "\n⚠️ SOLDE RESTANT: %d MAD\n", booking.TotalAmount-depositAmount(booking.TotalAmount))
	}
	fmt.Fprintf(&b, "\n📞 Client: %s", booking.CustomerPhone)
	return b.String()
}

// depositAmount is 30% of the total, rounded to the nearest dirham.
func depositAmount(total int) int {
	return int(float64(total)*0.3 + 0.5)
}

func paymentMethodText(method string) string {
	switch method {
	case "cash":
		return "Espèces (paiement complet)"
	case "cash_deposit":
		return "Espèces (acompte)"
	default:
		return "Espèces"
	}
}

func paymentStatusText(status string) string {
	switch status {
	case "unpaid":
		return "❌ Non payé"
	case "deposit_paid":
		return "🟡 Acompte payé"
	case "fully_paid":
		return "✅ Entièrement payé"
	default:
		return status
	}
}

func bookingStatusText(status string) string {
	switch status {
	case "pending":
		return "🟡 En attente"
	case "confirmed":
		return "✅ Confirmée"
	case "cancelled":
		return "❌ Annulée"
	default:
		return status
	}
}
