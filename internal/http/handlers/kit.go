package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"adcraft/internal/generation"
	"adcraft/pkg/zip"
)

// Kit handles POST /api/kit: the same generation as /api/generate, delivered
// as a zip with the JSON result, a copy sheet and any imagery.
func (a *App) Kit(w http.ResponseWriter, r *http.Request) {
	brief, res, ok := a.generate(w, r)
	if !ok {
		return
	}
	assets, err := generation.BuildKit(res)
	if err != nil {
		a.internalError(w, r, err)
		return
	}
	archive, err := zip.ArchiveAssets(assets)
	if err != nil {
		a.internalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", generation.KitFilename(brief.Product)))
	w.Header().Set("Content-Length", strconv.Itoa(len(archive)))
	w.Header().Set("X-Provider", string(res.Provider))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}
