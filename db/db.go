package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	RecipesCollection     = "recipes"
	IngredientsCollection = "ingredients"
)

// Store is the process-wide MongoDB handle. It is created once in main and
// handed to every repository.
type Store struct {
	Client      *mongo.Client
	Recipes     *mongo.Collection
	Ingredients *mongo.Collection
}

// Connect dials uri and verifies the deployment answers a ping.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	clientOptions := options.Client().ApplyURI(uri).SetServerSelectionTimeout(10 * time.Second)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return New(client, database), nil
}

// New wraps an existing client.
func New(client *mongo.Client, database string) *Store {
	d := client.Database(database)
	return &Store{
		Client:      client,
		Recipes:     d.Collection(RecipesCollection),
		Ingredients: d.Collection(IngredientsCollection),
	}
}

// EnsureIndexes creates the indexes the services rely on: the text index
// behind recipe search and the unique index that backs name_key uniqueness.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.Recipes.Indexes().CreateMany(ctx, RecipeIndexes())
	if err != nil {
		return fmt.Errorf("create recipe indexes: %w", err)
	}
	_, err = s.Ingredients.Indexes().CreateMany(ctx, IngredientIndexes())
	if err != nil {
		return fmt.Errorf("create ingredient indexes: %w", err)
	}
	return nil
}

func RecipeIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}},
			Options: options.Index().SetName("recipe_text"),
		},
		{
			Keys:    bson.D{{Key: "author", Value: 1}, {Key: "is_draft", Value: 1}},
			Options: options.Index().SetName("author_draft"),
		},
	}
}

func IngredientIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name_key", Value: 1}},
			Options: options.Index().SetName("name_key_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("category"),
		},
	}
}

func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
