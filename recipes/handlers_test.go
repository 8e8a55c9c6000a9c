package recipes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"cookbook/models"
	"cookbook/mq"
	"cookbook/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type recordingEmitter struct {
	mu     sync.Mutex
	events []mq.Event
}

func (e *recordingEmitter) Emit(_ context.Context, ev mq.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, ev)
}

func setupRouter(repo *MockRepository) (*httprouter.Router, *recordingEmitter) {
	events := &recordingEmitter{}
	h := NewHandler(newTestService(repo), events, zap.NewNop(), time.Second, "http://localhost:8080")

	router := httprouter.New()
	router.GET("/recipes", h.GetRecipes)
	router.POST("/recipes", h.CreateRecipe)
	router.GET("/recipes/:id", h.GetRecipe)
	router.PUT("/recipes/:id", h.UpdateRecipe)
	router.PATCH("/recipes/:id", h.PatchRecipe)
	router.DELETE("/recipes/:id", h.DeleteRecipe)
	router.POST("/recipes/:id/publish", h.PublishRecipe)
	router.POST("/recipes/:id/unpublish", h.UnpublishRecipe)
	router.GET("/recipes/:id/card", h.GetRecipeCard)
	return router, events
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) utils.ErrorBody {
	t.Helper()
	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

const soupJSON = `{"title":"Soup","description":"Hot","difficulty":"easy",
	"ingredients":[{"name":"water","quantity":1,"unit":"l"}],
	"steps":[{"order":1,"instructions":"Boil"}]}`

func TestCreateRecipeHandler(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Insert", mock.Anything).Return(nil)
	router, events := setupRouter(repo)

	w := do(router, http.MethodPost, "/recipes", soupJSON)
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Soup", got.Title)
	assert.True(t, got.IsDraft)
	assert.Equal(t, "mock-user-id", got.Author)

	require.Len(t, events.events, 1)
	assert.Equal(t, mq.Event{EntityType: "recipe", Method: "POST", Action: "create", EntityID: got.ID.Hex()}, events.events[0])
}

func TestCreateRecipeHandlerErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		msg    string
	}{
		{"empty body", "", http.StatusBadRequest, "Request body must not be empty"},
		{"malformed json", `{"title":`, http.StatusBadRequest, ""},
		{"unknown field", `{"title":"a","bogus":1}`, http.StatusBadRequest, "bogus"},
		{"missing title", `{"description":"d","difficulty":"easy"}`, http.StatusBadRequest, "title is required"},
		{"bad time sum", `{"title":"t","description":"d","difficulty":"easy",
			"preparation_time":10,"cooking_time":20,"total_time":31}`, http.StatusConflict, "Total time (31)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			router, events := setupRouter(repo)

			w := do(router, http.MethodPost, "/recipes", tt.body)
			assert.Equal(t, tt.status, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tt.status, body.StatusCode)
			assert.Contains(t, body.Message, tt.msg)
			assert.Empty(t, events.events)
			repo.AssertNotCalled(t, "Insert", mock.Anything)
		})
	}
}

func TestGetRecipesHandler(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Find", bson.M{"difficulty": models.DifficultyEasy, "cooking_time": bson.M{"$lte": 15}}, int64(0), int64(10)).
		Return([]models.Recipe{{Title: "Salad"}}, nil)
	router, _ := setupRouter(repo)

	w := do(router, http.MethodGet, "/recipes?difficulty=easy&maxCookingTime=15", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Salad", got[0].Title)
}

func TestGetRecipesRejectsBadFilter(t *testing.T) {
	router, _ := setupRouter(new(MockRepository))

	w := do(router, http.MethodGet, "/recipes?difficulty=chef", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecipeHandler(t *testing.T) {
	id := primitive.NewObjectID()
	missing := primitive.NewObjectID()
	repo := new(MockRepository)
	repo.On("FindByID", id).Return(&models.Recipe{ID: id, Title: "Soup"}, nil)
	repo.On("FindByID", missing).Return(nil, mongo.ErrNoDocuments)
	router, _ := setupRouter(repo)

	w := do(router, http.MethodGet, "/recipes/"+id.Hex(), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/recipes/"+missing.Hex(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "Not Found", body.Error)
	assert.Equal(t, "Recipe with ID "+missing.Hex()+" not found", body.Message)

	w = do(router, http.MethodGet, "/recipes/zzz", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDraftsHandler(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Find", bson.M{"author": "chef-1", "is_draft": true}, int64(0), int64(0)).
		Return([]models.Recipe{{Title: "WIP", IsDraft: true}}, nil)
	router, _ := setupRouter(repo)

	w := do(router, http.MethodGet, "/recipes/drafts?author=chef-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "WIP")

	w = do(router, http.MethodGet, "/recipes/drafts", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchRecipeHandler(t *testing.T) {
	id := primitive.NewObjectID()
	repo := new(MockRepository)
	repo.On("Set", id, bson.M{"difficulty": models.DifficultyHard, "updatedAt": fixedNow}).
		Return(&models.Recipe{ID: id, Difficulty: models.DifficultyHard}, nil)
	router, events := setupRouter(repo)

	w := do(router, http.MethodPatch, "/recipes/"+id.Hex(), `{"difficulty":"hard"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, events.events, 1)
	assert.Equal(t, "PATCH", events.events[0].Method)
}

func TestUpdateRecipeHandlerNotFound(t *testing.T) {
	id := primitive.NewObjectID()
	repo := new(MockRepository)
	repo.On("FindByID", id).Return(nil, mongo.ErrNoDocuments)
	router, events := setupRouter(repo)

	w := do(router, http.MethodPut, "/recipes/"+id.Hex(), soupJSON)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, events.events)
}

func TestDeleteRecipeHandler(t *testing.T) {
	id := primitive.NewObjectID()
	repo := new(MockRepository)
	repo.On("Delete", id).Return(nil).Once()
	repo.On("Delete", id).Return(mongo.ErrNoDocuments)
	router, events := setupRouter(repo)

	w := do(router, http.MethodDelete, "/recipes/"+id.Hex(), "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(router, http.MethodDelete, "/recipes/"+id.Hex(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.Len(t, events.events, 1)
	assert.Equal(t, "delete", events.events[0].Action)
}

func TestPublishRecipeHandler(t *testing.T) {
	incomplete := primitive.NewObjectID()
	repo := new(MockRepository)
	repo.On("FindByID", incomplete).Return(&models.Recipe{ID: incomplete, Title: "T", IsDraft: true}, nil)
	router, _ := setupRouter(repo)

	w := do(router, http.MethodPost, "/recipes/"+incomplete.Hex()+"/publish", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "Conflict", body.Error)
	assert.Contains(t, body.Message, "missing required fields for publication (description, ingredients, steps)")
}

func TestStoreFaultIsGeneric500(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("socket closed"))
	router, _ := setupRouter(repo)

	w := do(router, http.MethodGet, "/recipes", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "Internal server error", body.Message)
	assert.NotContains(t, w.Body.String(), "socket closed")
}

func TestGetRecipeCardHandler(t *testing.T) {
	id := primitive.NewObjectID()
	repo := new(MockRepository)
	repo.On("FindByID", id).Return(&models.Recipe{ID: id, Title: "Soup"}, nil)
	router, _ := setupRouter(repo)

	w := do(router, http.MethodGet, "/recipes/"+id.Hex()+"/card", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}
