package recipes

import (
	"net/http"

	"cookbook/utils"

	"github.com/julienschmidt/httprouter"
)

// draftsSegment shares the /recipes/:id position; httprouter cannot register both.
const draftsSegment = "drafts"

// --- List Recipes ---
func (h *Handler) GetRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filters, err := ParseFilters(r.URL.Query())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	recipes, err := h.svc.FindAll(ctx, filters)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, recipes)
}

// Get one recipe, or the drafts listing for /recipes/drafts
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") == draftsSegment {
		h.GetDrafts(w, r, ps)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	recipe, err := h.svc.FindOne(ctx, ps.ByName("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, recipe)
}

func (h *Handler) GetDrafts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	recipes, err := h.svc.FindDraftsByAuthor(ctx, r.URL.Query().Get("author"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, recipes)
}

// GetRecipeCard serves a printable PDF of the recipe.
func (h *Handler) GetRecipeCard(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	recipe, err := h.svc.FindOne(ctx, ps.ByName("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	pdf, err := RenderCard(recipe, h.baseURL+"/recipes/"+recipe.ID.Hex())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename=recipe-"+recipe.ID.Hex()+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
