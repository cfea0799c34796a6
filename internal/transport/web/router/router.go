package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/curatednews/digest/internal/command"
	"github.com/curatednews/digest/internal/state"
	"github.com/curatednews/digest/internal/transport/web/controller"
)

// Commands groups the user actions the router exposes.
type Commands struct {
	Fetch    command.Command[command.FetchDigestRequest, command.FetchDigestResult]
	Learn    command.Command[command.LearnPreferencesRequest, command.LearnPreferencesResult]
	Dispatch command.Command[command.DispatchDigestRequest, command.DispatchDigestResult]
	Copy     command.Command[command.CopyDigestRequest, command.Empty]
	Save     command.Command[command.SavePreferencesRequest, command.SavePreferencesResult]
}

// BundleConfig parameterizes the downloadable automation bundle.
type BundleConfig struct {
	Model    string
	Schedule string
	Timezone string
}

func MakeRouter(
	appState *state.App,
	commands Commands,
	bundle BundleConfig,
	feedBaseURL string,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.Handle("/v1/digest", controller.DigestGet{
		State: appState,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/digest/refresh", controller.DigestRefresh{
		FetchCmd: commands.Fetch,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/digest/items/{item_id}/like", controller.ItemLikeToggle{
		State: appState,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/digest/items/{item_id}/dislike", controller.ItemDislikeToggle{
		State: appState,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/digest/learn", controller.PreferencesLearn{
		LearnCmd: commands.Learn,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/digest/dispatch", controller.DigestDispatch{
		DispatchCmd: commands.Dispatch,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/digest/copy", controller.DigestCopy{
		CopyCmd: commands.Copy,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/preferences", controller.PreferencesGet{
		State: appState,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/preferences", controller.PreferencesSave{
		SaveCmd: commands.Save,
	}).Methods(http.MethodPut)

	r.Handle("/v1/automation/bundle", controller.AutomationBundleGet{
		State:    appState,
		Model:    bundle.Model,
		Schedule: bundle.Schedule,
		Timezone: bundle.Timezone,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/rss", controller.RSS{
		FeedHostname: feedBaseURL,
		FeedPath:     "/rss",
		State:        appState,
	}).Methods(http.MethodGet)

	return r, nil
}
