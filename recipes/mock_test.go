package recipes

import (
	"context"

	"cookbook/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Recipe, error) {
	args := m.Called(filter, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, recipe *models.Recipe) error {
	args := m.Called(recipe)
	if args.Error(0) == nil && recipe.ID.IsZero() {
		recipe.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockRepository) Replace(ctx context.Context, recipe *models.Recipe) error {
	args := m.Called(recipe)
	return args.Error(0)
}

func (m *MockRepository) Set(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Recipe, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(id)
	return args.Error(0)
}
