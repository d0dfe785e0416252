package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/landpro-backend/models"
	"github.com/landpro-backend/repositories"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentlink"
	"github.com/stripe/stripe-go/v76/price"
	"github.com/stripe/stripe-go/v76/webhook"
	"gorm.io/gorm"
)

// ErrBadSignature reports a webhook request whose signature did not verify.
var ErrBadSignature = errors.New("webhook signature verification failed")

// PaymentService creates hosted payment links and applies webhook events
type PaymentService struct {
	invoiceRepo *repositories.InvoiceRepository
}

// NewPaymentService creates a new payment service instance and wires the
// Stripe client key from the environment.
func NewPaymentService() *PaymentService {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &PaymentService{
		invoiceRepo: repositories.NewInvoiceRepository(),
	}
}

// CreatePaymentLink creates a hosted payment link for an invoice, persists
// its URL and flips the invoice draft→sent. The link carries the invoice id
// in metadata so the webhook can find its way back.
func (s *PaymentService) CreatePaymentLink(invoiceID, userID string, isAdmin bool) (string, error) {
	if stripe.Key == "" {
		return "", errors.New("STRIPE_SECRET_KEY is not configured")
	}

	invoice, err := s.invoiceRepo.FindByID(invoiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if !isAdmin && invoice.UserID != userID {
		return "", ErrForbidden
	}

	log.Printf("Creating payment link for invoice %s (%s)", invoice.InvoiceNumber, invoiceID)

	// Payment links take a saved price, so one is created per link.
	p, err := price.New(&stripe.PriceParams{
		Currency:   stripe.String(string(stripe.CurrencyUSD)),
		UnitAmount: stripe.Int64(int64(invoice.Amount*100 + 0.5)), // cents
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String(fmt.Sprintf("Invoice %s", invoice.InvoiceNumber)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("create price: %w", err)
	}

	link, err := paymentlink.New(&stripe.PaymentLinkParams{
		LineItems: []*stripe.PaymentLinkLineItemParams{
			{
				Price:    stripe.String(p.ID),
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"invoice_id":     invoice.ID,
			"invoice_number": invoice.InvoiceNumber,
		},
		AfterCompletion: &stripe.PaymentLinkAfterCompletionParams{
			Type: stripe.String("hosted_confirmation"),
			HostedConfirmation: &stripe.PaymentLinkAfterCompletionHostedConfirmationParams{
				CustomMessage: stripe.String("Thank you for your payment! Your invoice has been marked as paid."),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create payment link: %w", err)
	}

	invoice.StripePaymentLink = link.URL
	if invoice.Status == models.InvoiceDraft {
		invoice.Status = models.InvoiceSent
	}
	if err := s.invoiceRepo.Update(invoice); err != nil {
		return "", err
	}

	log.Printf("Payment link created: %s", link.URL)
	return link.URL, nil
}

// HandleWebhook verifies the provider's signature and applies the event. A
// failed signature rejects the request before anything is read from it. The
// same event id delivered twice is acknowledged but applied once.
func (s *PaymentService) HandleWebhook(payload []byte, signatureHeader string) error {
	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	event, err := webhook.ConstructEvent(payload, signatureHeader, secret)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		return ErrBadSignature
	}

	log.Printf("Stripe webhook event received: %s", event.Type)

	if event.Type != "checkout.session.completed" {
		return nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("decode checkout session: %w", err)
	}

	invoiceID := session.Metadata["invoice_id"]
	if invoiceID == "" {
		return nil
	}

	paymentIntentID := ""
	if session.PaymentIntent != nil {
		paymentIntentID = session.PaymentIntent.ID
	}

	log.Printf("Marking invoice as paid: %s", invoiceID)
	err = s.invoiceRepo.MarkPaid(invoiceID, paymentIntentID, event.ID, string(event.Type))
	if errors.Is(err, repositories.ErrDuplicateEvent) {
		log.Printf("Webhook event %s already processed, skipping", event.ID)
		return nil
	}
	return err
}
