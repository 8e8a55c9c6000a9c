package ingredients

import (
	"net/http"

	"cookbook/utils"

	"github.com/julienschmidt/httprouter"
)

const searchSegment = "search"

func (h *Handler) GetIngredients(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filters, err := ParseFilters(r.URL.Query())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	ings, err := h.svc.FindAll(ctx, filters)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ings)
}

// GetIngredient also answers /ingredients/search, which shares the :id position.
func (h *Handler) GetIngredient(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") == searchSegment {
		h.SearchIngredients(w, r, ps)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	ing, err := h.svc.FindOne(ctx, ps.ByName("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ing)
}

// SearchIngredients handles ?q=&lang=&page=&limit=
func (h *Handler) SearchIngredients(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	page, err := utils.ParsePage(q)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	ings, err := h.svc.SearchByAliases(ctx, q.Get("q"), q.Get("lang"), page)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ings)
}
