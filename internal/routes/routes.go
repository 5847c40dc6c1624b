package routes

import (
	"net/http"

	"github.com/ITSky-Solutions/call-center-dasboard/internal/handler"
	"github.com/ITSky-Solutions/call-center-dasboard/internal/router"
)

// Deps holds the handlers needed to register application routes.
type Deps struct {
	LookupHandler *handler.LookupHandler
	APIHandler    *handler.MinutesAPIHandler
}

// Register wires the lookup form, the JSON API and the static assets
// onto the router.
func Register(r *router.Router, deps Deps) {
	r.Static("/static/", "./web/static")

	r.Get("/", deps.LookupHandler.ShowForm)
	r.Post("/lookup", deps.LookupHandler.HandleSubmit)

	r.Get("/api/minutes/{phone}", func(w http.ResponseWriter, req *http.Request) {
		deps.APIHandler.ServeHTTP(w, req)
	})
}
