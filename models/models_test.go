package models

import (
	"testing"

	"cookbook/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func validRecipeInput() RecipeInput {
	return RecipeInput{
		Title:       "Omelette",
		Description: "Eggs, quickly",
		Difficulty:  DifficultyEasy,
		Ingredients: []RecipeIngredient{{Name: "egg", Quantity: 3, Unit: "piece"}},
		Steps:       []RecipeStep{{Order: 1, Instructions: "Beat the eggs"}},
	}
}

func TestRecipeInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RecipeInput)
		kind    apperr.Kind
		message string
	}{
		{name: "valid", mutate: func(*RecipeInput) {}},
		{
			name:    "missing title",
			mutate:  func(in *RecipeInput) { in.Title = "   " },
			kind:    apperr.KindInvalid,
			message: "title is required",
		},
		{
			name:    "unknown difficulty",
			mutate:  func(in *RecipeInput) { in.Difficulty = "chef" },
			kind:    apperr.KindInvalid,
			message: "difficulty must be one of: beginner, easy, medium, hard",
		},
		{
			name: "ingredient without reference or name",
			mutate: func(in *RecipeInput) {
				in.Ingredients = []RecipeIngredient{{Quantity: 1, Unit: "g"}}
			},
			kind:    apperr.KindInvalid,
			message: "ingredients[0].name is required",
		},
		{
			name: "ingredient with malformed reference",
			mutate: func(in *RecipeInput) {
				in.Ingredients = []RecipeIngredient{{ID: "salt", Quantity: 1, Unit: "g"}}
			},
			kind:    apperr.KindInvalid,
			message: "ingredients[0].id must be an ingredient ID",
		},
		{
			name: "ingredient referenced by id only",
			mutate: func(in *RecipeInput) {
				in.Ingredients = []RecipeIngredient{{ID: "64b7f0c2a1b2c3d4e5f60718", Quantity: 1, Unit: "g"}}
			},
		},
		{
			name:    "step order starts at one",
			mutate:  func(in *RecipeInput) { in.Steps[0].Order = 0 },
			kind:    apperr.KindInvalid,
			message: "steps[0].order must be greater than or equal to 1",
		},
		{
			name: "step media must be image or video",
			mutate: func(in *RecipeInput) {
				in.Steps[0].Media = []StepMedia{{Type: "gif", URL: "https://cdn.example/a.gif"}}
			},
			kind:    apperr.KindInvalid,
			message: "steps[0].media[0].type must be one of: image, video",
		},
		{
			name:    "translation ref must be a uuid",
			mutate:  func(in *RecipeInput) { in.TranslationRef = "abc" },
			kind:    apperr.KindInvalid,
			message: "translation_ref must be a UUID",
		},
		{
			name:    "negative nutrition",
			mutate:  func(in *RecipeInput) { v := -1.0; in.Nutrition = &Nutrition{Calories: &v} },
			kind:    apperr.KindInvalid,
			message: "nutrition.calories must be greater than or equal to 0",
		},
		{
			name: "total time mismatch",
			mutate: func(in *RecipeInput) {
				in.PreparationTime, in.CookingTime, in.TotalTime = intp(10), intp(20), intp(31)
			},
			kind:    apperr.KindValidation,
			message: "Total time (31) should equal preparation time (10) + cooking time (20)",
		},
		{
			name: "total time matches",
			mutate: func(in *RecipeInput) {
				in.PreparationTime, in.CookingTime, in.TotalTime = intp(10), intp(20), intp(30)
			},
		},
		{
			name: "partial times are not checked",
			mutate: func(in *RecipeInput) {
				in.PreparationTime, in.TotalTime = intp(10), intp(99)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRecipeInput()
			tt.mutate(&in)
			err := in.Validate()
			if tt.kind == apperr.KindUnknown {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperr.KindOf(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestRecipeInputRecipeNormalizes(t *testing.T) {
	in := RecipeInput{
		Title:      "Soup",
		Difficulty: DifficultyHard,
		Diets:      []string{" vegan", "vegan", "", "gluten-free"},
	}
	r := in.Recipe()

	assert.Equal(t, []string{"vegan", "gluten-free"}, r.Diets)
	assert.NotNil(t, r.Ingredients)
	assert.NotNil(t, r.Steps)
	assert.NotNil(t, r.Allergens)
}

func TestRecipePatchValidate(t *testing.T) {
	empty := ""
	p := RecipePatch{Title: &empty}
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(p.Validate()))

	blank := "   "
	p = RecipePatch{Description: &blank}
	err := p.Validate()
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "description must not be empty")

	padded := "  Soup  "
	p = RecipePatch{Title: &padded}
	require.NoError(t, p.Validate())
	assert.Equal(t, "Soup", *p.Title)

	bad := Difficulty("chef")
	p = RecipePatch{Difficulty: &bad}
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(p.Validate()))

	p = RecipePatch{PreparationTime: intp(5), CookingTime: intp(5), TotalTime: intp(11)}
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(p.Validate()))

	assert.True(t, (&RecipePatch{}).Empty())
	assert.False(t, (&RecipePatch{Steps: []RecipeStep{}}).Empty())
}

func TestMissingForPublish(t *testing.T) {
	r := &Recipe{Title: "Toast", Ingredients: []RecipeIngredient{{Name: "bread", Unit: "slice"}}}
	assert.Equal(t, []string{"description", "steps"}, r.MissingForPublish())

	r.Description = "Crunchy"
	r.Steps = []RecipeStep{{Order: 1, Instructions: "Toast it"}}
	assert.Empty(t, r.MissingForPublish())
}

func TestIngredientInputValidate(t *testing.T) {
	in := IngredientInput{NameKey: " salt ", I18n: map[string]string{"en": "Salt", "fr": "Sel"}}
	require.NoError(t, in.Validate())
	assert.Equal(t, "salt", in.NameKey)

	in = IngredientInput{NameKey: "salt"}
	err := in.Validate()
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "i18n is required")

	in = IngredientInput{NameKey: "salt", I18n: map[string]string{"French": "Sel"}}
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(in.Validate()))

	in = IngredientInput{NameKey: "salt", I18n: map[string]string{"fr": ""}}
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(in.Validate()))

	in = IngredientInput{NameKey: "salt", I18n: map[string]string{"en": "Salt"}, Category: "mineral"}
	assert.Equal(t, apperr.KindInvalid, apperr.KindOf(in.Validate()))

	// An empty map is a business-rule failure, reported by the service.
	in = IngredientInput{NameKey: "salt", I18n: map[string]string{}}
	assert.NoError(t, in.Validate())
}

func TestIngredientInputIngredient(t *testing.T) {
	in := IngredientInput{
		NameKey: "egg",
		I18n:    map[string]string{"fr": " oeuf "},
		Aliases: []string{"eggs", "eggs", " hen egg"},
	}
	ing := in.Ingredient()

	assert.Equal(t, map[string]string{"fr": "oeuf"}, ing.I18n)
	assert.Equal(t, []string{"eggs", "hen egg"}, ing.Aliases)
	assert.Empty(t, ing.CreatedBy)
}

func TestEnums(t *testing.T) {
	assert.True(t, DifficultyBeginner.Valid())
	assert.False(t, Difficulty("expert").Valid())
	assert.True(t, CategoryFish.Valid())
	assert.False(t, Category("mineral").Valid())
}

func TestIsLanguageCode(t *testing.T) {
	for _, ok := range []string{"fr", "en", "en-GB", "pt-br", "ast"} {
		assert.True(t, IsLanguageCode(ok), ok)
	}
	for _, bad := range []string{"", "FR", "french", "f", "en_GB"} {
		assert.False(t, IsLanguageCode(bad), bad)
	}
}
