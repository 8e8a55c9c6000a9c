package recipes

import (
	"bytes"
	"testing"

	"cookbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRenderCard(t *testing.T) {
	kcal := 320.0
	temp := 180.0
	recipe := &models.Recipe{
		ID:          primitive.NewObjectID(),
		Title:       "Crème brûlée",
		Description: "Vanilla custard with a burnt sugar crust",
		Difficulty:  models.DifficultyMedium,
		CookingTime: intp(40),
		Ingredients: []models.RecipeIngredient{{Name: "cream", Quantity: 500, Unit: "ml"}},
		Steps:       []models.RecipeStep{{Order: 1, Instructions: "Bake", Duration: intp(40), Temperature: &temp}},
		Nutrition:   &models.Nutrition{Calories: &kcal},
		Author:      "chef-1",
	}

	pdf, err := RenderCard(recipe, "http://localhost:8080/recipes/"+recipe.ID.Hex())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestRenderCardMinimalRecipe(t *testing.T) {
	recipe := &models.Recipe{ID: primitive.NewObjectID(), Title: "Toast"}
	recipe.Normalize()

	pdf, err := RenderCard(recipe, "http://localhost/recipes/"+recipe.ID.Hex())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
