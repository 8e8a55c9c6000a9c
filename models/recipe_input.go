package models

import (
	"strings"

	"cookbook/apperr"
)

// RecipeInput is the body of POST /recipes and PUT /recipes/:id.
type RecipeInput struct {
	Title           string             `json:"title" validate:"required"`
	Description     string             `json:"description" validate:"required"`
	TranslationRef  string             `json:"translation_ref,omitempty" validate:"omitempty,uuid"`
	Language        string             `json:"language,omitempty" validate:"omitempty,langcode"`
	PreviewImage    string             `json:"preview_image,omitempty" validate:"omitempty,url"`
	Difficulty      Difficulty         `json:"difficulty" validate:"required,oneof=beginner easy medium hard"`
	PreparationTime *int               `json:"preparation_time,omitempty" validate:"omitempty,gte=0"`
	CookingTime     *int               `json:"cooking_time,omitempty" validate:"omitempty,gte=0"`
	TotalTime       *int               `json:"total_time,omitempty" validate:"omitempty,gte=0"`
	Ingredients     []RecipeIngredient `json:"ingredients,omitempty" validate:"omitempty,dive"`
	Steps           []RecipeStep       `json:"steps,omitempty" validate:"omitempty,dive"`
	Diets           []string           `json:"diets,omitempty"`
	Allergens       []string           `json:"allergens,omitempty"`
	Nutrition       *Nutrition         `json:"nutrition,omitempty"`
	Yield           *int               `json:"yield,omitempty" validate:"omitempty,gte=0"`
	Author          string             `json:"author,omitempty"`
	IsDraft         *bool              `json:"is_draft,omitempty"`
}

// Validate checks field constraints and the time-sum invariant.
func (in *RecipeInput) Validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if err := check(in); err != nil {
		return err
	}
	return CheckTimes(in.PreparationTime, in.CookingTime, in.TotalTime)
}

// Recipe builds the document for this input. ID, author, draft flag and timestamps are left to the caller.
func (in *RecipeInput) Recipe() *Recipe {
	r := &Recipe{
		Title:           in.Title,
		Description:     in.Description,
		TranslationRef:  in.TranslationRef,
		Language:        in.Language,
		PreviewImage:    in.PreviewImage,
		Difficulty:      in.Difficulty,
		PreparationTime: in.PreparationTime,
		CookingTime:     in.CookingTime,
		TotalTime:       in.TotalTime,
		Ingredients:     in.Ingredients,
		Steps:           in.Steps,
		Diets:           CleanSet(in.Diets),
		Allergens:       CleanSet(in.Allergens),
		Nutrition:       in.Nutrition,
		Yield:           in.Yield,
		Author:          strings.TrimSpace(in.Author),
	}
	r.Normalize()
	return r
}

// RecipePatch is the body of PATCH /recipes/:id. Nil fields are left untouched.
type RecipePatch struct {
	Title           *string            `json:"title,omitempty" validate:"omitempty,min=1"`
	Description     *string            `json:"description,omitempty" validate:"omitempty,min=1"`
	TranslationRef  *string            `json:"translation_ref,omitempty" validate:"omitempty,uuid"`
	Language        *string            `json:"language,omitempty" validate:"omitempty,langcode"`
	PreviewImage    *string            `json:"preview_image,omitempty" validate:"omitempty,url"`
	Difficulty      *Difficulty        `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner easy medium hard"`
	PreparationTime *int               `json:"preparation_time,omitempty" validate:"omitempty,gte=0"`
	CookingTime     *int               `json:"cooking_time,omitempty" validate:"omitempty,gte=0"`
	TotalTime       *int               `json:"total_time,omitempty" validate:"omitempty,gte=0"`
	Ingredients     []RecipeIngredient `json:"ingredients,omitempty" validate:"omitempty,dive"`
	Steps           []RecipeStep       `json:"steps,omitempty" validate:"omitempty,dive"`
	Diets           []string           `json:"diets,omitempty"`
	Allergens       []string           `json:"allergens,omitempty"`
	Nutrition       *Nutrition         `json:"nutrition,omitempty"`
	Yield           *int               `json:"yield,omitempty" validate:"omitempty,gte=0"`
	Author          *string            `json:"author,omitempty"`
	IsDraft         *bool              `json:"is_draft,omitempty"`
}

func (p *RecipePatch) Validate() error {
	p.Title = trimmed(p.Title)
	p.Description = trimmed(p.Description)
	if err := check(p); err != nil {
		return err
	}
	return CheckTimes(p.PreparationTime, p.CookingTime, p.TotalTime)
}

// Empty reports whether the patch carries no field at all.
func (p *RecipePatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.TranslationRef == nil && p.Language == nil &&
		p.PreviewImage == nil && p.Difficulty == nil && p.PreparationTime == nil && p.CookingTime == nil &&
		p.TotalTime == nil && p.Ingredients == nil && p.Steps == nil && p.Diets == nil &&
		p.Allergens == nil && p.Nutrition == nil && p.Yield == nil && p.Author == nil && p.IsDraft == nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// CheckTimes enforces total = preparation + cooking when all three are supplied.
func CheckTimes(prep, cook, total *int) error {
	if prep == nil || cook == nil || total == nil {
		return nil
	}
	if *total != *prep+*cook {
		return apperr.Validation(
			"Total time (%d) should equal preparation time (%d) + cooking time (%d)",
			*total, *prep, *cook)
	}
	return nil
}
