package server

import (
	"net/http"

	"github.com/abhisek/aigua/internal/cycle"
)

type stageInfo struct {
	Stage cycle.Stage `json:"stage"`
	cycle.Details
}

func handleStages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stages := cycle.AllStages()
		out := make([]stageInfo, len(stages))
		for i, s := range stages {
			out[i] = stageInfo{Stage: s, Details: cycle.DetailsFor(s)}
		}
		writeJSON(w, http.StatusOK, out)
	}
}
