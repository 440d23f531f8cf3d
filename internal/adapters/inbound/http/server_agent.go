package http

import (
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/common"
)

// PostAgent runs the agent, or the image prompt generator when mode is "image".
func (api AgentAPIServer) PostAgent(w http.ResponseWriter, r *http.Request) {
	var req gen.PostAgentJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}

	rawMode := string(common.ValueOr(req.Mode, ""))
	mode := gen.Mode(strings.ToLower(strings.TrimSpace(rawMode)))
	if mode == "" {
		mode = gen.Agent
	}

	switch mode {
	case gen.Agent:
		res, err := api.RunAgentUseCase.Execute(r.Context(), req.Input)
		if err != nil {
			api.Logger.Printf("[%s] Error running agent: %v", RequestID(r.Context()), err)
			respondError(w, r, toError(err))
			return
		}
		respondJSON(w, http.StatusOK, toAgentResp(res))

	case gen.Image:
		p, err := api.GenerateImagePromptUseCase.Execute(r.Context(), req.Input, "", "")
		if err != nil {
			api.Logger.Printf("[%s] Error generating image prompt: %v", RequestID(r.Context()), err)
			respondError(w, r, toError(err))
			return
		}
		respondJSON(w, http.StatusOK, toImageModeResp(p))

	default:
		respondBadRequest(w, r, "unknown mode %q", rawMode)
	}
}
