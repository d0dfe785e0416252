package dto

import "github.com/landpro-backend/models"

// CreateInvoiceRequest issues a draft invoice for a client
type CreateInvoiceRequest struct {
	ClientID string  `json:"clientId" binding:"required"`
	QuoteID  *string `json:"quoteId"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	DueDate  *string `json:"dueDate"`
}

// UpdateInvoiceRequest mutates a draft invoice or advances its status along
// the allowed transitions. UpdatedAt is the optimistic-concurrency
// precondition.
type UpdateInvoiceRequest struct {
	Amount    *float64              `json:"amount"`
	Status    *models.InvoiceStatus `json:"status" binding:"omitempty,oneof=draft sent paid overdue"`
	UpdatedAt string                `json:"updatedAt" binding:"required"`
}

// PaymentLinkResponse is returned after creating a hosted payment link
type PaymentLinkResponse struct {
	Success     bool   `json:"success"`
	PaymentLink string `json:"paymentLink"`
}

// InvoiceListResponse lists the caller's invoices
type InvoiceListResponse struct {
	Invoices   []models.Invoice `json:"invoices"`
	TotalCount int64            `json:"totalCount"`
}
