package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/adapters/inbound/http/gen"
)

// PostComplete sends the prompt as-is and returns the completion text.
func (api AgentAPIServer) PostComplete(w http.ResponseWriter, r *http.Request) {
	var req gen.PostCompleteJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}

	text, err := api.CompletePromptUseCase.Execute(r.Context(), toCompletionRequest(req))
	if err != nil {
		api.Logger.Printf("[%s] Error completing prompt: %v", RequestID(r.Context()), err)
		respondError(w, r, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, gen.CompleteResp{Text: text})
}

// GetHealth reports that the server is up.
func (api AgentAPIServer) GetHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, gen.HealthResp{Status: "ok"})
}
