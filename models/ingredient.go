package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category string

const (
	CategoryVegetable Category = "vegetable"
	CategoryFruit     Category = "fruit"
	CategoryMeat      Category = "meat"
	CategoryDairy     Category = "dairy"
	CategoryFish      Category = "fish"
	CategoryOther     Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryVegetable, CategoryFruit, CategoryMeat, CategoryDairy, CategoryFish, CategoryOther:
		return true
	}
	return false
}

// IngredientNutrition is expressed per 100 g.
type IngredientNutrition struct {
	Calories *float64 `json:"calories,omitempty" bson:"calories,omitempty" validate:"omitempty,gte=0"`
	Proteins *float64 `json:"proteins,omitempty" bson:"proteins,omitempty" validate:"omitempty,gte=0"`
	Carbs    *float64 `json:"carbs,omitempty" bson:"carbs,omitempty" validate:"omitempty,gte=0"`
	Fats     *float64 `json:"fats,omitempty" bson:"fats,omitempty" validate:"omitempty,gte=0"`
	Fibers   *float64 `json:"fibers,omitempty" bson:"fibers,omitempty" validate:"omitempty,gte=0"`
}

type Ingredient struct {
	ID        primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	NameKey   string               `json:"name_key" bson:"name_key"`
	I18n      map[string]string    `json:"i18n" bson:"i18n"`
	Aliases   []string             `json:"aliases" bson:"aliases"`
	Category  Category             `json:"category,omitempty" bson:"category,omitempty"`
	CreatedBy string               `json:"created_by" bson:"created_by"`
	Nutrition *IngredientNutrition `json:"nutrition,omitempty" bson:"nutrition,omitempty"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt"`
}

func (i *Ingredient) Normalize() {
	if i.Aliases == nil {
		i.Aliases = []string{}
	}
	if i.I18n == nil {
		i.I18n = map[string]string{}
	}
}
