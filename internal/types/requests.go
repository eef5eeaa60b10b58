package types

import (
	"github.com/pageza/snapdish/backend/internal/model"
)

// GenerateRequest represents the request body for recipe generation
type GenerateRequest struct {
	ImageDataURL string `json:"imageDataUrl" binding:"required"`
	Notes        string `json:"notes"`
}

// GenerateResponse represents the response body for recipe generation
type GenerateResponse struct {
	Summary string         `json:"summary"`
	Recipes []model.Recipe `json:"recipes"`
}

// SendMessageRequest represents the request body for message delivery
type SendMessageRequest struct {
	Message     string `json:"message" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
}

// SendMessageResponse represents the response body for message delivery
type SendMessageResponse struct {
	Status model.DeliveryState `json:"status"`
	ID     *string             `json:"id"`
}

// ErrorResponse is the JSON body returned on any failure
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
