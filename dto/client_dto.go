package dto

import "github.com/landpro-backend/models"

// CreateClientRequest adds a customer to the caller's book
type CreateClientRequest struct {
	ClientName string `json:"clientName" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Notes      string `json:"notes"`
}

// UpdateClientRequest mutates a client record
type UpdateClientRequest struct {
	ClientName   *string              `json:"clientName"`
	Email        *string              `json:"email" binding:"omitempty,email"`
	Phone        *string              `json:"phone"`
	Address      *string              `json:"address"`
	Notes        *string              `json:"notes"`
	Status       *models.ClientStatus `json:"status" binding:"omitempty,oneof=active inactive"`
	PortalUserID *string              `json:"portalUserId"`
}

// ClientListResponse lists the caller's clients
type ClientListResponse struct {
	Clients    []models.Client `json:"clients"`
	TotalCount int64           `json:"totalCount"`
}
