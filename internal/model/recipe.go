package model

import (
	"github.com/go-playground/validator/v10"
)

// Recipe is a single recipe as returned by the vision model. Instances are
// created only by generation-response validation and never mutated afterwards.
type Recipe struct {
	Name        string   `json:"name" validate:"required,min=3"`
	Description string   `json:"description" validate:"required,min=10"`
	Ingredients []string `json:"ingredients" validate:"required,min=3,dive,min=2"`
	Steps       []string `json:"steps" validate:"required,min=3,dive,min=5"`
}

// GenerationResult is the validated output of one generation request.
type GenerationResult struct {
	Summary string   `json:"summary" validate:"required,min=10"`
	Recipes []Recipe `json:"recipes" validate:"required,min=3,max=5,dive"`
}

// DeliveryState reports how the messaging provider accepted a message.
type DeliveryState string

const (
	DeliveryQueued DeliveryState = "queued"
	DeliverySent   DeliveryState = "sent"
)

// DeliveryOutcome is the result of one delivery request. ID is the first
// provider-assigned message id, empty when the provider returned none.
type DeliveryOutcome struct {
	State DeliveryState `json:"status"`
	ID    string        `json:"id"`
}

var validate = validator.New()

// ValidateGenerationResult checks a parsed model reply against the recipe
// schema: 3-5 recipes, name >=3 chars, description >=10 chars, at least 3
// ingredients of >=2 chars and 3 steps of >=5 chars each. The result is
// accepted or rejected as a whole, never truncated or padded.
func ValidateGenerationResult(result *GenerationResult) error {
	return validate.Struct(result)
}
