package recipes

import (
	"fmt"
	"net/url"
	"strings"

	"cookbook/apperr"
	"cookbook/models"
	"cookbook/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// Filters narrows GET /recipes. Zero values mean "no constraint".
type Filters struct {
	utils.Page
	Difficulty     models.Difficulty
	Diet           string
	MaxCookingTime *int
	Search         string
	Draft          *bool
	Author         string
}

// ParseFilters reads the list filters from a query string.
func ParseFilters(q url.Values) (Filters, error) {
	page, err := utils.ParsePage(q)
	if err != nil {
		return Filters{}, err
	}
	maxCooking, err := utils.QueryInt(q, "maxCookingTime")
	if err != nil {
		return Filters{}, err
	}
	draft, err := utils.QueryBool(q, "draft")
	if err != nil {
		return Filters{}, err
	}
	f := Filters{
		Page:           page,
		Difficulty:     models.Difficulty(strings.TrimSpace(q.Get("difficulty"))),
		Diet:           strings.TrimSpace(q.Get("diet")),
		MaxCookingTime: maxCooking,
		Search:         strings.TrimSpace(q.Get("search")),
		Draft:          draft,
		Author:         strings.TrimSpace(q.Get("author")),
	}
	return f, f.Validate()
}

func (f Filters) Validate() error {
	if f.Difficulty != "" && !f.Difficulty.Valid() {
		return apperr.Invalid(fmt.Sprintf("difficulty must be one of: beginner, easy, medium, hard, got '%s'", f.Difficulty), nil)
	}
	if f.MaxCookingTime != nil && *f.MaxCookingTime < 0 {
		return apperr.Invalid("maxCookingTime must not be negative", nil)
	}
	return nil
}

// Query builds the MongoDB filter document.
func (f Filters) Query() bson.M {
	query := bson.M{}
	if f.Difficulty != "" {
		query["difficulty"] = f.Difficulty
	}
	if f.Diet != "" {
		query["diets"] = bson.M{"$in": []string{f.Diet}}
	}
	if f.MaxCookingTime != nil {
		query["cooking_time"] = bson.M{"$lte": *f.MaxCookingTime}
	}
	if f.Draft != nil {
		query["is_draft"] = *f.Draft
	}
	if f.Author != "" {
		query["author"] = f.Author
	}
	if f.Search != "" {
		query["$text"] = bson.M{"$search": f.Search}
	}
	return query
}

func draftsOf(author string) bson.M {
	return bson.M{"author": author, "is_draft": true}
}
