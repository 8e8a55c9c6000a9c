package ingredients

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

const EntityType = "ingredient"

type Handler struct {
	svc     *Service
	events  mq.Emitter
	log     *zap.Logger
	timeout time.Duration
}

func NewHandler(svc *Service, events mq.Emitter, log *zap.Logger, timeout time.Duration) *Handler {
	if events == nil {
		events = mq.Nop{}
	}
	return &Handler{svc: svc, events: events, log: log, timeout: timeout}
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

func (h *Handler) CreateIngredient(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in models.IngredientInput
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	ing, err := h.svc.Create(ctx, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.emit(ctx, http.MethodPost, "create", ing.ID.Hex())
	utils.RespondWithJSON(w, http.StatusCreated, ing)
}

func (h *Handler) UpdateIngredient(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var in models.IngredientInput
	if err := utils.DecodeJSON(w, r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	ing, err := h.svc.Update(ctx, ps.ByName("id"), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.emit(ctx, http.MethodPut, "update", ing.ID.Hex())
	utils.RespondWithJSON(w, http.StatusOK, ing)
}

func (h *Handler) PatchIngredient(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var p models.IngredientPatch
	if err := utils.DecodeJSON(w, r, &p); err != nil {
		h.fail(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	ing, err := h.svc.PartialUpdate(ctx, ps.ByName("id"), p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.emit(ctx, http.MethodPatch, "update", ing.ID.Hex())
	utils.RespondWithJSON(w, http.StatusOK, ing)
}

func (h *Handler) DeleteIngredient(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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
