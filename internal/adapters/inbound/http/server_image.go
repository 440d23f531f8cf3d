package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/common"
)

// PostImage turns a description into an image prompt and a negative prompt.
func (api AgentAPIServer) PostImage(w http.ResponseWriter, r *http.Request) {
	var req gen.PostImageJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := api.GenerateImagePromptUseCase.Execute(
		r.Context(),
		req.Description,
		common.ValueOr(req.Style, ""),
		common.ValueOr(req.Aspect, ""),
	)
	if err != nil {
		api.Logger.Printf("[%s] Error generating image prompt: %v", RequestID(r.Context()), err)
		respondError(w, r, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toImageResp(p))
}
