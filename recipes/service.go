package recipes

import (
	"context"
	"errors"
	"strings"
	"time"

	"cookbook/apperr"
	"cookbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const resource = "Recipe"

// Repository is the storage the service needs. Lookups and writes against a
// missing document return mongo.ErrNoDocuments.
type Repository interface {
	Find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Recipe, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error)
	Insert(ctx context.Context, recipe *models.Recipe) error
	Replace(ctx context.Context, recipe *models.Recipe) error
	Set(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Recipe, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Service holds the recipe business rules. Expected failures come back as
// *apperr.Error; anything else is a store fault.
type Service struct {
	repo          Repository
	defaultAuthor string
	now           func() time.Time
}

func NewService(repo Repository, defaultAuthor string) *Service {
	return &Service{
		repo:          repo,
		defaultAuthor: defaultAuthor,
		now:           func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

func (s *Service) FindAll(ctx context.Context, f Filters) ([]models.Recipe, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	skip, limit := f.Window()
	return s.repo.Find(ctx, f.Query(), skip, limit)
}

func (s *Service) FindOne(ctx context.Context, id string) (*models.Recipe, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	recipe, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, notFound(err, id)
	}
	return recipe, nil
}

func (s *Service) Create(ctx context.Context, in models.RecipeInput) (*models.Recipe, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	recipe := in.Recipe()
	if recipe.Author == "" {
		recipe.Author = s.defaultAuthor
	}
	recipe.IsDraft = true
	if in.IsDraft != nil {
		recipe.IsDraft = *in.IsDraft
	}
	if err := publishable(recipe, ""); err != nil {
		return nil, err
	}
	recipe.CreatedAt = s.now()
	recipe.UpdatedAt = recipe.CreatedAt

	if err := s.repo.Insert(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Update replaces the whole document. Identity, creation time and, when the
// body omits them, author and draft flag carry over from the stored recipe.
func (s *Service) Update(ctx context.Context, id string, in models.RecipeInput) (*models.Recipe, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, notFound(err, id)
	}

	recipe := in.Recipe()
	recipe.ID = existing.ID
	recipe.CreatedAt = existing.CreatedAt
	recipe.UpdatedAt = s.now()
	if recipe.Author == "" {
		recipe.Author = existing.Author
	}
	recipe.IsDraft = existing.IsDraft
	if in.IsDraft != nil {
		recipe.IsDraft = *in.IsDraft
	}
	if err := publishable(recipe, id); err != nil {
		return nil, err
	}

	if err := s.repo.Replace(ctx, recipe); err != nil {
		return nil, notFound(err, id)
	}
	return recipe, nil
}

// PartialUpdate sets only the fields present in the patch.
func (s *Service) PartialUpdate(ctx context.Context, id string, p models.RecipePatch) (*models.Recipe, error) {
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
	if touchesInvariants(p) {
		current, err := s.repo.FindByID(ctx, oid)
		if err != nil {
			return nil, notFound(err, id)
		}
		merged := merge(*current, p)
		if err := models.CheckTimes(merged.PreparationTime, merged.CookingTime, merged.TotalTime); err != nil {
			return nil, err
		}
		if err := publishable(&merged, id); err != nil {
			return nil, err
		}
	}
	fields := patchFields(p)
	fields["updatedAt"] = s.now()

	recipe, err := s.repo.Set(ctx, oid, fields)
	if err != nil {
		return nil, notFound(err, id)
	}
	return recipe, nil
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

// Publish moves a draft to published once it has title, description, ingredients and steps.
func (s *Service) Publish(ctx context.Context, id string) (*models.Recipe, error) {
	recipe, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	published := *recipe
	published.IsDraft = false
	if err := publishable(&published, id); err != nil {
		return nil, err
	}
	return s.setDraft(ctx, recipe.ID, id, false)
}

// Unpublish returns a recipe to draft. It is not guarded.
func (s *Service) Unpublish(ctx context.Context, id string) (*models.Recipe, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.setDraft(ctx, oid, id, true)
}

func (s *Service) FindDraftsByAuthor(ctx context.Context, author string) ([]models.Recipe, error) {
	author = strings.TrimSpace(author)
	if author == "" {
		return nil, apperr.Invalid("author is required", nil)
	}
	return s.repo.Find(ctx, draftsOf(author), 0, 0)
}

func (s *Service) setDraft(ctx context.Context, oid primitive.ObjectID, id string, draft bool) (*models.Recipe, error) {
	recipe, err := s.repo.Set(ctx, oid, bson.M{"is_draft": draft, "updatedAt": s.now()})
	if err != nil {
		return nil, notFound(err, id)
	}
	return recipe, nil
}

// publishable rejects a published recipe that lacks the fields publishing requires.
func publishable(recipe *models.Recipe, id string) error {
	if recipe.IsDraft {
		return nil
	}
	if missing := recipe.MissingForPublish(); len(missing) > 0 {
		return apperr.PublishPrecondition(resource, id, missing)
	}
	return nil
}

// touchesInvariants reports whether the patch can break the time sum or the
// completeness of a published recipe, which both depend on stored fields.
func touchesInvariants(p models.RecipePatch) bool {
	return p.PreparationTime != nil || p.CookingTime != nil || p.TotalTime != nil ||
		p.IsDraft != nil || p.Ingredients != nil || p.Steps != nil
}

// merge applies the patch to a copy of the stored recipe.
func merge(r models.Recipe, p models.RecipePatch) models.Recipe {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.PreparationTime != nil {
		r.PreparationTime = p.PreparationTime
	}
	if p.CookingTime != nil {
		r.CookingTime = p.CookingTime
	}
	if p.TotalTime != nil {
		r.TotalTime = p.TotalTime
	}
	if p.Ingredients != nil {
		r.Ingredients = p.Ingredients
	}
	if p.Steps != nil {
		r.Steps = p.Steps
	}
	if p.IsDraft != nil {
		r.IsDraft = *p.IsDraft
	}
	return r
}

func patchFields(p models.RecipePatch) bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.TranslationRef != nil {
		set["translation_ref"] = *p.TranslationRef
	}
	if p.Language != nil {
		set["language"] = *p.Language
	}
	if p.PreviewImage != nil {
		set["preview_image"] = *p.PreviewImage
	}
	if p.Difficulty != nil {
		set["difficulty"] = *p.Difficulty
	}
	if p.PreparationTime != nil {
		set["preparation_time"] = *p.PreparationTime
	}
	if p.CookingTime != nil {
		set["cooking_time"] = *p.CookingTime
	}
	if p.TotalTime != nil {
		set["total_time"] = *p.TotalTime
	}
	if p.Ingredients != nil {
		set["ingredients"] = p.Ingredients
	}
	if p.Steps != nil {
		set["steps"] = p.Steps
	}
	if p.Diets != nil {
		set["diets"] = models.CleanSet(p.Diets)
	}
	if p.Allergens != nil {
		set["allergens"] = models.CleanSet(p.Allergens)
	}
	if p.Nutrition != nil {
		set["nutrition"] = p.Nutrition
	}
	if p.Yield != nil {
		set["yield"] = *p.Yield
	}
	if p.Author != nil {
		set["author"] = strings.TrimSpace(*p.Author)
	}
	if p.IsDraft != nil {
		set["is_draft"] = *p.IsDraft
	}
	return set
}

// parseID maps a malformed id to NotFound: no document can carry it.
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
