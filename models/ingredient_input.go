package models

import (
	"strings"
)

// IngredientInput is the body of POST /ingredients and PUT /ingredients/:id.
//
// An empty i18n map passes here and is rejected by the service as a
// validation conflict; a missing one is a malformed request.
type IngredientInput struct {
	NameKey   string               `json:"name_key" validate:"required"`
	I18n      map[string]string    `json:"i18n" validate:"required,dive,keys,langcode,endkeys,required"`
	Aliases   []string             `json:"aliases,omitempty"`
	Category  Category             `json:"category,omitempty" validate:"omitempty,oneof=vegetable fruit meat dairy fish other"`
	CreatedBy string               `json:"created_by,omitempty"`
	Nutrition *IngredientNutrition `json:"nutrition,omitempty"`
}

func (in *IngredientInput) Validate() error {
	in.NameKey = strings.TrimSpace(in.NameKey)
	return check(in)
}

func (in *IngredientInput) Ingredient() *Ingredient {
	ing := &Ingredient{
		NameKey:   in.NameKey,
		I18n:      TrimValues(in.I18n),
		Aliases:   CleanSet(in.Aliases),
		Category:  in.Category,
		CreatedBy: strings.TrimSpace(in.CreatedBy),
		Nutrition: in.Nutrition,
	}
	ing.Normalize()
	return ing
}

// IngredientPatch is the body of PATCH /ingredients/:id. Nil fields are left untouched.
type IngredientPatch struct {
	NameKey   *string              `json:"name_key,omitempty" validate:"omitempty,min=1"`
	I18n      map[string]string    `json:"i18n,omitempty" validate:"omitempty,dive,keys,langcode,endkeys,required"`
	Aliases   []string             `json:"aliases,omitempty"`
	Category  *Category            `json:"category,omitempty" validate:"omitempty,oneof=vegetable fruit meat dairy fish other"`
	Nutrition *IngredientNutrition `json:"nutrition,omitempty"`
}

func (p *IngredientPatch) Validate() error {
	if p.NameKey != nil {
		trimmed := strings.TrimSpace(*p.NameKey)
		p.NameKey = &trimmed
	}
	return check(p)
}

func (p *IngredientPatch) Empty() bool {
	return p.NameKey == nil && p.I18n == nil && p.Aliases == nil && p.Category == nil && p.Nutrition == nil
}

// TrimValues lower-cases language keys and trims display names.
func TrimValues(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = strings.TrimSpace(v)
	}
	return out
}
