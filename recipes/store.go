package recipes

import (
	"context"

	"cookbook/models"
	"cookbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository stores recipes in a MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

// Find returns matches in collection order. A zero limit means no limit.
func (m *MongoRepository) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Recipe, error) {
	opts := options.Find()
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	recipes, err := utils.FindAndDecode[models.Recipe](ctx, m.coll, filter, opts)
	if err != nil {
		return nil, err
	}
	for i := range recipes {
		recipes[i].Normalize()
	}
	return recipes, nil
}

func (m *MongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe); err != nil {
		return nil, err
	}
	recipe.Normalize()
	return &recipe, nil
}

func (m *MongoRepository) Insert(ctx context.Context, recipe *models.Recipe) error {
	if recipe.ID.IsZero() {
		recipe.ID = primitive.NewObjectID()
	}
	_, err := m.coll.InsertOne(ctx, recipe)
	return err
}

func (m *MongoRepository) Replace(ctx context.Context, recipe *models.Recipe) error {
	res, err := m.coll.ReplaceOne(ctx, bson.M{"_id": recipe.ID}, recipe)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Set applies a $set and returns the updated document.
func (m *MongoRepository) Set(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Recipe, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var recipe models.Recipe
	err := m.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&recipe)
	if err != nil {
		return nil, err
	}
	recipe.Normalize()
	return &recipe, nil
}

func (m *MongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
