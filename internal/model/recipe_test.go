package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validResult() *GenerationResult {
	recipe := Recipe{
		Name:        "Quick Tomato Basil Pasta",
		Description: "A fast weeknight pasta from leftovers",
		Ingredients: []string{"200g pasta", "2 tomatoes", "basil"},
		Steps:       []string{"Boil pasta", "Saute tomatoes", "Combine everything"},
	}
	return &GenerationResult{
		Summary: "Detected tomatoes, pasta, basil",
		Recipes: []Recipe{recipe, recipe, recipe},
	}
}

func TestValidateGenerationResult(t *testing.T) {
	t.Run("should accept a result at the lower bounds", func(t *testing.T) {
		assert.NoError(t, ValidateGenerationResult(validResult()))
	})

	t.Run("should accept five recipes", func(t *testing.T) {
		r := validResult()
		r.Recipes = append(r.Recipes, r.Recipes[0], r.Recipes[1])
		assert.NoError(t, ValidateGenerationResult(r))
	})

	t.Run("should reject under-populated results", func(t *testing.T) {
		cases := map[string]func(*GenerationResult){
			"two recipes":        func(r *GenerationResult) { r.Recipes = r.Recipes[:2] },
			"six recipes":        func(r *GenerationResult) { r.Recipes = append(r.Recipes, r.Recipes[0], r.Recipes[0], r.Recipes[0]) },
			"short summary":      func(r *GenerationResult) { r.Summary = "too short" },
			"short name":         func(r *GenerationResult) { r.Recipes[0].Name = "ab" },
			"short description":  func(r *GenerationResult) { r.Recipes[1].Description = "meh" },
			"two ingredients":    func(r *GenerationResult) { r.Recipes[2].Ingredients = r.Recipes[2].Ingredients[:2] },
			"short ingredient":   func(r *GenerationResult) { r.Recipes[0].Ingredients[1] = "x" },
			"two steps":          func(r *GenerationResult) { r.Recipes[1].Steps = r.Recipes[1].Steps[:2] },
			"short step":         func(r *GenerationResult) { r.Recipes[2].Steps[0] = "mix" },
			"missing recipes":    func(r *GenerationResult) { r.Recipes = nil },
			"empty summary":      func(r *GenerationResult) { r.Summary = "" },
		}

		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				r := validResult()
				// Deep-copy the recipe slices so mutations stay local.
				for i := range r.Recipes {
					r.Recipes[i].Ingredients = append([]string(nil), r.Recipes[i].Ingredients...)
					r.Recipes[i].Steps = append([]string(nil), r.Recipes[i].Steps...)
				}
				mutate(r)
				assert.Error(t, ValidateGenerationResult(r))
			})
		}
	})
}
