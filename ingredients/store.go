package ingredients

import (
	"context"

	"cookbook/models"
	"cookbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository stores ingredients in a MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (m *MongoRepository) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Ingredient, error) {
	opts := options.Find()
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	ings, err := utils.FindAndDecode[models.Ingredient](ctx, m.coll, filter, opts)
	if err != nil {
		return nil, err
	}
	for i := range ings {
		ings[i].Normalize()
	}
	return ings, nil
}

func (m *MongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ing); err != nil {
		return nil, err
	}
	ing.Normalize()
	return &ing, nil
}

func (m *MongoRepository) Exists(ctx context.Context, filter bson.M) (bool, error) {
	n, err := m.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (m *MongoRepository) Insert(ctx context.Context, ing *models.Ingredient) error {
	if ing.ID.IsZero() {
		ing.ID = primitive.NewObjectID()
	}
	_, err := m.coll.InsertOne(ctx, ing)
	return err
}

func (m *MongoRepository) Replace(ctx context.Context, ing *models.Ingredient) error {
	res, err := m.coll.ReplaceOne(ctx, bson.M{"_id": ing.ID}, ing)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (m *MongoRepository) Set(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Ingredient, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ing models.Ingredient
	err := m.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&ing)
	if err != nil {
		return nil, err
	}
	ing.Normalize()
	return &ing, nil
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
