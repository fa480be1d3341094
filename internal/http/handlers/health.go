package handlers

import (
	"net/http"
)

type healthResponse struct {
	Status       string   `json:"status"`
	Version      string   `json:"version,omitempty"`
	Providers    []string `json:"providers"`
	ImageSources []string `json:"imageSources"`
}

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	res := healthResponse{Status: "ok", Version: a.Version, Providers: []string{}, ImageSources: []string{}}
	if a.Generator != nil {
		for _, id := range a.Generator.Providers() {
			res.Providers = append(res.Providers, string(id))
		}
	}
	res.ImageSources = append(res.ImageSources, a.ImageSources...)
	a.json(w, http.StatusOK, res)
}
