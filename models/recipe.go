package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Difficulty string

const (
	DifficultyBeginner Difficulty = "beginner"
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyHard     Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type StepMedia struct {
	Type MediaType `json:"type" bson:"type" validate:"required,oneof=image video"`
	URL  string    `json:"url" bson:"url" validate:"required,url"`
}

type RecipeStep struct {
	Order        int         `json:"order" bson:"order" validate:"gte=1"`
	Instructions string      `json:"instructions" bson:"instructions" validate:"required"`
	Media        []StepMedia `json:"media,omitempty" bson:"media,omitempty" validate:"omitempty,dive"`
	Duration     *int        `json:"duration,omitempty" bson:"duration,omitempty" validate:"omitempty,gte=0"` // minutes
	Temperature  *float64    `json:"temperature,omitempty" bson:"temperature,omitempty"`
}

// RecipeIngredient points at an Ingredient document by ID, or carries a custom name.
type RecipeIngredient struct {
	ID       string  `json:"id,omitempty" bson:"id,omitempty" validate:"omitempty,objectid"`
	Name     string  `json:"name,omitempty" bson:"name,omitempty" validate:"required_without=ID"`
	Quantity float64 `json:"quantity" bson:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit" bson:"unit" validate:"required"`
}

type Nutrition struct {
	Calories *float64 `json:"calories,omitempty" bson:"calories,omitempty" validate:"omitempty,gte=0"`
	Proteins *float64 `json:"proteins,omitempty" bson:"proteins,omitempty" validate:"omitempty,gte=0"`
	Carbs    *float64 `json:"carbs,omitempty" bson:"carbs,omitempty" validate:"omitempty,gte=0"`
	Fats     *float64 `json:"fats,omitempty" bson:"fats,omitempty" validate:"omitempty,gte=0"`
}

type Recipe struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description" bson:"description"`
	TranslationRef  string             `json:"translation_ref,omitempty" bson:"translation_ref,omitempty"`
	Language        string             `json:"language,omitempty" bson:"language,omitempty"`
	PreviewImage    string             `json:"preview_image,omitempty" bson:"preview_image,omitempty"`
	Difficulty      Difficulty         `json:"difficulty" bson:"difficulty"`
	PreparationTime *int               `json:"preparation_time,omitempty" bson:"preparation_time,omitempty"` // minutes
	CookingTime     *int               `json:"cooking_time,omitempty" bson:"cooking_time,omitempty"`
	TotalTime       *int               `json:"total_time,omitempty" bson:"total_time,omitempty"`
	Ingredients     []RecipeIngredient `json:"ingredients" bson:"ingredients"`
	Steps           []RecipeStep       `json:"steps" bson:"steps"`
	Diets           []string           `json:"diets" bson:"diets"`
	Allergens       []string           `json:"allergens" bson:"allergens"`
	Nutrition       *Nutrition         `json:"nutrition,omitempty" bson:"nutrition,omitempty"`
	Yield           *int               `json:"yield,omitempty" bson:"yield,omitempty"`
	Author          string             `json:"author" bson:"author"`
	IsDraft         bool               `json:"is_draft" bson:"is_draft"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// MissingForPublish lists the fields that keep a draft from being published.
func (r *Recipe) MissingForPublish() []string {
	var missing []string
	if r.Title == "" {
		missing = append(missing, "title")
	}
	if r.Description == "" {
		missing = append(missing, "description")
	}
	if len(r.Ingredients) == 0 {
		missing = append(missing, "ingredients")
	}
	if len(r.Steps) == 0 {
		missing = append(missing, "steps")
	}
	return missing
}

// Normalize fills nil slices so documents and responses always carry arrays.
func (r *Recipe) Normalize() {
	if r.Ingredients == nil {
		r.Ingredients = []RecipeIngredient{}
	}
	if r.Steps == nil {
		r.Steps = []RecipeStep{}
	}
	if r.Diets == nil {
		r.Diets = []string{}
	}
	if r.Allergens == nil {
		r.Allergens = []string{}
	}
}
