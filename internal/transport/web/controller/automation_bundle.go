package controller

import (
	"net/http"

	"github.com/curatednews/digest/internal/domain"
	"github.com/curatednews/digest/internal/scriptgen"
	"github.com/curatednews/digest/internal/state"
)

// AutomationBundleGet handles GET /v1/automation/bundle: the downloadable
// unattended-runner artifacts with the current profile baked in.
type AutomationBundleGet struct {
	State    *state.App
	Model    string
	Schedule string
	Timezone string
}

func (c AutomationBundleGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	bundle, err := scriptgen.Generate(c.State.Profile(), scriptgen.Options{
		Model:    c.Model,
		Schedule: c.Schedule,
		Timezone: c.Timezone,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to generate automation bundle", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="newsbot-bundle.json"`)
	respondJSON(w, r, http.StatusOK, bundle)
}
