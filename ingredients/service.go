package ingredients

import (
	"context"
	"errors"
	"strings"
	"time"

	"cookbook/apperr"
	"cookbook/globals"
	"cookbook/models"
	"cookbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const resource = "Ingredient"

// Repository is the storage the service needs. Lookups and writes against a
// missing document return mongo.ErrNoDocuments.
type Repository interface {
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Ingredient, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Ingredient, error)
	Exists(ctx context.Context, filter bson.M) (bool, error)
	Insert(ctx context.Context, ing *models.Ingredient) error
	Replace(ctx context.Context, ing *models.Ingredient) error
	Set(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Ingredient, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Service struct {
	repo      Repository
	languages []string
	now       func() time.Time
}

// NewService searches aliases across languages when no language is requested.
func NewService(repo Repository, languages []string) *Service {
	return &Service{
		repo:      repo,
		languages: languages,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

func (s *Service) FindAll(ctx context.Context, f Filters) ([]models.Ingredient, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	skip, limit := f.Window()
	return s.repo.Find(ctx, f.Query(), skip, limit)
}

func (s *Service) FindOne(ctx context.Context, id string) (*models.Ingredient, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	ing, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, notFound(err, id)
	}
	return ing, nil
}

func (s *Service) Create(ctx context.Context, in models.IngredientInput) (*models.Ingredient, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := requireTranslations(in.I18n); err != nil {
		return nil, err
	}
	if err := s.unique(ctx, in.NameKey, primitive.NilObjectID); err != nil {
		return nil, err
	}

	ing := in.Ingredient()
	if ing.CreatedBy == "" {
		ing.CreatedBy = globals.SystemAuthor
	}
	ing.CreatedAt = s.now()
	ing.UpdatedAt = ing.CreatedAt

	if err := s.repo.Insert(ctx, ing); err != nil {
		return nil, duplicate(err, ing.NameKey)
	}
	return ing, nil
}

// Update replaces the whole document, keeping identity, creator and creation time.
func (s *Service) Update(ctx context.Context, id string, in models.IngredientInput) (*models.Ingredient, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := requireTranslations(in.I18n); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, notFound(err, id)
	}
	if err := s.unique(ctx, in.NameKey, oid); err != nil {
		return nil, err
	}

	ing := in.Ingredient()
	ing.ID = existing.ID
	ing.CreatedAt = existing.CreatedAt
	ing.UpdatedAt = s.now()
	if ing.CreatedBy == "" {
		ing.CreatedBy = existing.CreatedBy
	}

	if err := s.repo.Replace(ctx, ing); err != nil {
		return nil, duplicate(notFound(err, id), ing.NameKey)
	}
	return ing, nil
}

func (s *Service) PartialUpdate(ctx context.Context, id string, p models.IngredientPatch) (*models.Ingredient, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Empty() {
		return s.FindOne(ctx, id)
	}
	if p.I18n != nil {
		if err := requireTranslations(p.I18n); err != nil {
			return nil, err
		}
	}
	if p.NameKey != nil {
		if err := s.unique(ctx, *p.NameKey, oid); err != nil {
			return nil, err
		}
	}

	fields := patchFields(p)
	fields["updatedAt"] = s.now()
	ing, err := s.repo.Set(ctx, oid, fields)
	if err != nil {
		key := ""
		if p.NameKey != nil {
			key = *p.NameKey
		}
		return nil, duplicate(notFound(err, id), key)
	}
	return ing, nil
}

func (s *Service) Remove(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, oid); err != nil {
		return notFound(err, id)
	}
	return nil
}

// SearchByAliases matches q against name_key, aliases and the display name in
// lang, or in every configured language when lang is empty. Results are unranked.
func (s *Service) SearchByAliases(ctx context.Context, q, lang string, page utils.Page) ([]models.Ingredient, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, apperr.Invalid("q is required", nil)
	}
	langs := s.languages
	if lang = strings.ToLower(strings.TrimSpace(lang)); lang != "" {
		if !models.IsLanguageCode(lang) {
			return nil, apperr.Invalid("lang must be a language code, got '"+lang+"'", nil)
		}
		langs = []string{lang}
	}
	skip, limit := page.Window()
	return s.repo.Find(ctx, aliasQuery(q, langs), skip, limit)
}

func (s *Service) unique(ctx context.Context, nameKey string, self primitive.ObjectID) error {
	filter := bson.M{"name_key": nameKey}
	if !self.IsZero() {
		filter = excluding(filter, self)
	}
	taken, err := s.repo.Exists(ctx, filter)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Duplicate(resource, "name_key", nameKey)
	}
	return nil
}

func requireTranslations(i18n map[string]string) error {
	if len(i18n) == 0 {
		return apperr.Validation("i18n must contain at least one translation")
	}
	return nil
}

func patchFields(p models.IngredientPatch) bson.M {
	set := bson.M{}
	if p.NameKey != nil {
		set["name_key"] = *p.NameKey
	}
	if p.I18n != nil {
		set["i18n"] = models.TrimValues(p.I18n)
	}
	if p.Aliases != nil {
		set["aliases"] = models.CleanSet(p.Aliases)
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.Nutrition != nil {
		set["nutrition"] = p.Nutrition
	}
	return set
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperr.NotFound(resource, id)
	}
	return oid, nil
}

func notFound(err error, id string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound(resource, id)
	}
	return err
}

// duplicate maps a unique-index violation that slipped past the existence check.
func duplicate(err error, nameKey string) error {
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Duplicate(resource, "name_key", nameKey)
	}
	return err
}
