package service

import (
	"context"

	"github.com/pageza/snapdish/backend/internal/model"
)

// IVisionService defines the interface for recipe generation operations
type IVisionService interface {
	Generate(ctx context.Context, imageDataURL, notes string) (*model.GenerationResult, error)
}

// IMessengerService defines the interface for message delivery operations
type IMessengerService interface {
	Send(ctx context.Context, message, recipient string) (*model.DeliveryOutcome, error)
}
