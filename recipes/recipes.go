package recipes

import (
	"context"
	"net/http"
	"time"

	"cookbook/models"
	"cookbook/mq"
	"cookbook/utils"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// EntityType tags recipe change events.
const EntityType = "recipe"

// Handler maps the /recipes routes onto the Service.
type Handler struct {
	svc     *Service
	events  mq.Emitter
	log     *zap.Logger
	timeout time.Duration
	baseURL string
}

func NewHandler(svc *Service, events mq.Emitter, log *zap.Logger, timeout time.Duration, baseURL string) *Handler {
	if events == nil {
		events = mq.Nop{}
	}
	return &Handler{svc: svc, events: events, log: log, timeout: timeout, baseURL: baseURL}
}

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	utils.RespondWithAppError(w, h.log, err,
		zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.String("request_id", utils.GetRequestID(r)))
}

func (h *Handler) emit(ctx context.Context, method, action, id string) {
	h.events.Emit(ctx, mq.Event{EntityType: EntityType, Method: method, Action: action, EntityID: id})
}

// Create
func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in models.RecipeInput
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	if in.Author == "" {
		in.Author = utils.GetUserIDFromRequest(r)
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	recipe, err := h.svc.Create(ctx, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.emit(ctx, http.MethodPost, "create", recipe.ID.Hex())
	utils.RespondWithJSON(w, http.StatusCreated, recipe)
}

// Replace
func (h *Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var in models.RecipeInput
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	recipe, err := h.svc.Update(ctx, ps.ByName("id"), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.emit(ctx, http.MethodPut, "update", recipe.ID.Hex())
	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

// Patch
func (h *Handler) PatchRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var p models.RecipePatch
	if err := utils.DecodeJSON(w, r, &p); err != nil {
		h.fail(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	recipe, err := h.svc.PartialUpdate(ctx, ps.ByName("id"), p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.emit(ctx, http.MethodPatch, "update", recipe.ID.Hex())
	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

// Delete
func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	id := ps.ByName("id")
	if err := h.svc.Remove(ctx, id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.emit(ctx, http.MethodDelete, "delete", id)
	utils.NoContent(w)
}

func (h *Handler) PublishRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	recipe, err := h.svc.Publish(ctx, ps.ByName("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.emit(ctx, http.MethodPost, "publish", recipe.ID.Hex())
	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

func (h *Handler) UnpublishRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	recipe, err := h.svc.Unpublish(ctx, ps.ByName("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.emit(ctx, http.MethodPost, "unpublish", recipe.ID.Hex())
	utils.RespondWithJSON(w, http.StatusOK, recipe)
}
