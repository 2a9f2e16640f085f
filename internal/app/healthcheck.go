package app

import (
	"net/http"

	"github.com/anshika-1705/movieapp/api"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := api.Response{
		Success: true,
		Data: api.Health{
			Status:      "UP",
			Environment: app.config.Env,
			Version:     version,
		},
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}
