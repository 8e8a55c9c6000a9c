package ingredients

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

func (m *MockRepository) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Ingredient, error) {
	args := m.Called(filter, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ingredient), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Ingredient, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockRepository) Exists(ctx context.Context, filter bson.M) (bool, error) {
	args := m.Called(filter)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, ing *models.Ingredient) error {
	args := m.Called(ing)
	if args.Error(0) == nil && ing.ID.IsZero() {
		ing.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockRepository) Replace(ctx context.Context, ing *models.Ingredient) error {
	return m.Called(ing).Error(0)
}

func (m *MockRepository) Set(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Ingredient, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(id).Error(0)
}
