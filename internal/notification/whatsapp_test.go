package notification

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooking() BookingData {
	return BookingData{
		BookingID:        "b-123",
		CustomerName:     "Marie Dupont",
		CustomerPhone:    "+33612345678",
		ActivityName:     "Agafay Desert Combo Experience",
		NumberOfPeople:   2,
		PreferredDate:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		ParticipantNames: []string{"Marie Dupont", "Jean Dupont"},
		TotalAmount:      900,
		PaymentStatus:    "unpaid",
		Status:           "pending",
	}
}

func TestWALink(t *testing.T) {
	link := WALink("+212600623630", "Bonjour & bienvenue")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/212600623630?text="))
	assert.NotContains(t, link, "+212", "plus sign must be stripped from the phone")
	assert.Contains(t, link, "Bonjour+%26+bienvenue")
}

func TestAdminContactsIsACopy(t *testing.T) {
	contacts := AdminContacts()
	require.Len(t, contacts, 3)

	contacts[0].Phone = "tampered"
	assert.Equal(t, "+212600623630", AdminContacts()[0].Phone)
}

func TestBookingNotification(t *testing.T) {
	payload := BookingNotification(sampleBooking())

	require.Len(t, payload.Recipients, 3)
	require.Len(t, payload.WhatsappLinks, 3)

	assert.Contains(t, payload.Message, "Agafay Desert Combo Experience")
	assert.Contains(t, payload.Message, "Marie Dupont, Jean Dupont")
	assert.Contains(t, payload.Message, "+33612345678")

	for _, link := range payload.WhatsappLinks {
		assert.True(t, strings.HasPrefix(link.Link, "https://wa.me/212"))
	}

	assert.Contains(t, payload.CustomerMessage, "900 MAD")
	assert.Contains(t, payload.CustomerMessage, "b-123")
	assert.True(t, strings.HasPrefix(payload.CustomerWhatsappLink, "https://wa.me/33612345678?text="))
}

func TestPaymentConfirmationDeposit(t *testing.T) {
	payload := PaymentConfirmation(sampleBooking(), "deposit")

	// 30% of 900, rounded.
	assert.Contains(t, payload.Message, "ACOMPTE")
	assert.Contains(t, payload.Message, "270 MAD (acompte 30%)")
	assert.Contains(t, payload.Message, "SOLDE RESTANT: 630 MAD")
	assert.Empty(t, payload.CustomerWhatsappLink)
}

func TestPaymentConfirmationFull(t *testing.T) {
	payload := PaymentConfirmation(sampleBooking(), "full")

	assert.Contains(t, payload.Message, "PAIEMENT COMPLET")
	assert.Contains(t, payload.Message, "900 MAD (complet)")
	assert.NotContains(t, payload.Message, "SOLDE RESTANT")
}

func TestDepositAmountRounding(t *testing.T) {
	assert.Equal(t, 135, depositAmount(450))
	assert.Equal(t, 45, depositAmount(150))
	assert.Equal(t, 2, depositAmount(5)) // 1.5 rounds up
	assert.Equal(t, 0, depositAmount(0))
}
