package ingredients

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"cookbook/apperr"
	"cookbook/models"
	"cookbook/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// Filters narrows GET /ingredients.
type Filters struct {
	utils.Page
	Search    string
	Category  models.Category
	CreatedBy string
}

func ParseFilters(q url.Values) (Filters, error) {
	page, err := utils.ParsePage(q)
	if err != nil {
		return Filters{}, err
	}
	createdBy := q.Get("created_by")
	if createdBy == "" {
		createdBy = q.Get("createdBy")
	}
	f := Filters{
		Page:      page,
		Search:    strings.TrimSpace(q.Get("search")),
		Category:  models.Category(strings.TrimSpace(q.Get("category"))),
		CreatedBy: strings.TrimSpace(createdBy),
	}
	return f, f.Validate()
}

func (f Filters) Validate() error {
	if f.Category != "" && !f.Category.Valid() {
		return apperr.Invalid(fmt.Sprintf("category must be one of: vegetable, fruit, meat, dairy, fish, other, got '%s'", f.Category), nil)
	}
	return nil
}

func (f Filters) Query() bson.M {
	query := bson.M{}
	if f.Search != "" {
		query["$or"] = []bson.M{
			utils.RegexFilter("name_key", f.Search),
			utils.RegexFilter("aliases", f.Search),
			anyTranslation(f.Search),
		}
	}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.CreatedBy != "" {
		query["created_by"] = f.CreatedBy
	}
	return query
}

// anyTranslation matches when any i18n value contains value, ignoring case.
func anyTranslation(value string) bson.M {
	return bson.M{"$expr": bson.M{
		"$anyElementTrue": bson.A{bson.M{
			"$map": bson.M{
				"input": bson.M{"$objectToArray": bson.M{"$ifNull": bson.A{"$i18n", bson.M{}}}},
				"as":    "t",
				"in": bson.M{"$regexMatch": bson.M{
					"input":   "$$t.v",
					"regex":   regexp.QuoteMeta(value),
					"options": "i",
				}},
			},
		}},
	}}
}

// aliasQuery ORs name_key, aliases and the i18n entries for langs.
func aliasQuery(q string, langs []string) bson.M {
	or := []bson.M{
		utils.RegexFilter("name_key", q),
		utils.RegexFilter("aliases", q),
	}
	for _, lang := range langs {
		or = append(or, utils.RegexFilter("i18n."+lang, q))
	}
	return bson.M{"$or": or}
}

func excluding(filter bson.M, id any) bson.M {
	out := bson.M{"_id": bson.M{"$ne": id}}
	for k, v := range filter {
		out[k] = v
	}
	return out
}
