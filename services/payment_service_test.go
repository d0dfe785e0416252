package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/landpro-backend/database"
	"github.com/landpro-backend/models"
	"github.com/stripe/stripe-go/v76"
)

const webhookSecret = "whsec_test_secret"

// signPayload produces a Stripe-Signature header the verifier accepts.
func signPayload(payload []byte, ts int64) string {
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func checkoutCompletedEvent(eventID, invoiceID string) []byte {
	return []byte(fmt.Sprintf(
		`{"id":%q,"api_version":%q,"type":"checkout.session.completed","data":{"object":{"metadata":{"invoice_id":%q},"payment_intent":{"id":"pi_123"}}}}`,
		eventID, stripe.APIVersion, invoiceID))
}

func seedSentInvoice(t *testing.T, userID, clientID string) models.Invoice {
	invoice := models.Invoice{
		UserID:        userID,
		ClientID:      clientID,
		InvoiceNumber: "INV-2026-0001",
		Amount:        500,
		Status:        models.InvoiceSent,
	}
	if err := database.DB.Create(&invoice).Error; err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	return invoice
}

func TestHandleWebhookRejectsBadSignature(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", webhookSecret)
	setupTestDB(t)
	user := seedUser(t, "owner@example.com")
	client := seedClient(t, user.ID, "John Smith")
	invoice := seedSentInvoice(t, user.ID, client.ID)

	svc := NewPaymentService()
	payload := checkoutCompletedEvent("evt_1", invoice.ID)

	err := svc.HandleWebhook(payload, fmt.Sprintf("t=%d,v1=deadbeef", time.Now().Unix()))
	if !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}

	// A rejected request never touches the invoice.
	var stored models.Invoice
	database.DB.First(&stored, "id = ?", invoice.ID)
	if stored.Status != models.InvoiceSent {
		t.Fatalf("expected invoice untouched, got %s", stored.Status)
	}
}

func TestHandleWebhookMarksInvoicePaid(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", webhookSecret)
	setupTestDB(t)
	user := seedUser(t, "owner@example.com")
	client := seedClient(t, user.ID, "John Smith")
	invoice := seedSentInvoice(t, user.ID, client.ID)

	svc := NewPaymentService()
	payload := checkoutCompletedEvent("evt_1", invoice.ID)
	header := signPayload(payload, time.Now().Unix())

	if err := svc.HandleWebhook(payload, header); err != nil {
		t.Fatalf("webhook: %v", err)
	}

	var stored models.Invoice
	database.DB.First(&stored, "id = ?", invoice.ID)
	if stored.Status != models.InvoicePaid {
		t.Fatalf("expected paid, got %s", stored.Status)
	}
	if stored.StripePaymentIntentID != "pi_123" {
		t.Fatalf("expected payment intent recorded, got %q", stored.StripePaymentIntentID)
	}
}

func TestHandleWebhookRedeliveryAcknowledged(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", webhookSecret)
	setupTestDB(t)
	user := seedUser(t, "owner@example.com")
	client := seedClient(t, user.ID, "John Smith")
	invoice := seedSentInvoice(t, user.ID, client.ID)

	svc := NewPaymentService()
	payload := checkoutCompletedEvent("evt_1", invoice.ID)

	if err := svc.HandleWebhook(payload, signPayload(payload, time.Now().Unix())); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	// Stripe retries with the same event id; the retry is acknowledged
	// without applying anything twice.
	if err := svc.HandleWebhook(payload, signPayload(payload, time.Now().Unix())); err != nil {
		t.Fatalf("redelivery: %v", err)
	}

	var events int64
	database.DB.Model(&models.WebhookEvent{}).Count(&events)
	if events != 1 {
		t.Fatalf("expected 1 recorded event, got %d", events)
	}
}

func TestHandleWebhookIgnoresOtherEventTypes(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", webhookSecret)
	setupTestDB(t)
	user := seedUser(t, "owner@example.com")
	client := seedClient(t, user.ID, "John Smith")
	invoice := seedSentInvoice(t, user.ID, client.ID)

	svc := NewPaymentService()
	payload := []byte(fmt.Sprintf(
		`{"id":"evt_other","api_version":%q,"type":"payment_intent.created","data":{"object":{}}}`,
		stripe.APIVersion))

	if err := svc.HandleWebhook(payload, signPayload(payload, time.Now().Unix())); err != nil {
		t.Fatalf("webhook: %v", err)
	}

	var stored models.Invoice
	database.DB.First(&stored, "id = ?", invoice.ID)
	if stored.Status != models.InvoiceSent {
		t.Fatalf("expected invoice untouched by unrelated event, got %s", stored.Status)
	}
}
