package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"adcraft/internal/domain"
	"adcraft/internal/middleware"
)

const maxBriefBytes = 64 << 10

// Generate handles POST /api/generate. Only the request shape can fail: any
// valid brief yields a result, degraded or not.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	if _, res, ok := a.generate(w, r); ok {
		a.json(w, http.StatusOK, res)
	}
}

// generate decodes the brief and runs the generator, writing the error
// response itself when it returns false.
func (a *App) generate(w http.ResponseWriter, r *http.Request) (domain.Brief, *domain.GenerationResult, bool) {
	var brief domain.Brief
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBriefBytes))
	if err := dec.Decode(&brief); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return brief, nil, false
	}
	res, err := a.Generator.Generate(r.Context(), brief)
	switch {
	case errors.Is(err, domain.ErrProductRequired):
		a.error(w, http.StatusBadRequest, "bad_request", domain.ErrProductRequired.Error())
		return brief, nil, false
	case err != nil:
		a.internalError(w, r, err)
		return brief, nil, false
	}
	return brief, res, true
}

func (a *App) internalError(w http.ResponseWriter, r *http.Request, err error) {
	a.Logger.Error().
		Err(err).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Msg("handlers: generation failed")
	a.error(w, http.StatusInternalServerError, "internal", "generation failed")
}
