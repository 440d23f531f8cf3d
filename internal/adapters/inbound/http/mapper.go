package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-groq-agent/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/common"
	"github.com/cleitonmarx/symbiont-groq-agent/internal/domain"
)

func toError(err error) gen.ErrorResp {
	errResp := gen.ErrorResp{}

	var (
		validationErr *domain.ValidationErr
		completionErr *domain.CompletionErr
	)
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = gen.BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &completionErr):
		errResp.Error.Code = gen.UPSTREAMERROR
		errResp.Error.Message = completionErr.SentinelText()
	default:
		errResp.Error.Code = gen.INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toAgentResp(res domain.AgentResult) gen.AgentResp {
	resp := gen.AgentResp{
		Mode:      gen.Agent,
		Output:    common.Ptr(res.Output),
		Directive: common.Ptr(gen.Directive(res.Directive)),
	}
	if res.Tool != "" {
		resp.Tool = common.Ptr(res.Tool)
	}
	if res.ToolResult != nil {
		resp.ToolResult = common.Ptr(map[string]any(res.ToolResult))
	}
	return resp
}

func toImageModeResp(p domain.ImagePrompt) gen.AgentResp {
	return gen.AgentResp{
		Mode:     gen.Image,
		Prompt:   common.Ptr(p.Prompt),
		Negative: common.Ptr(p.Negative),
	}
}

func toImageResp(p domain.ImagePrompt) gen.ImageResp {
	return gen.ImageResp{
		Prompt:   p.Prompt,
		Negative: p.Negative,
	}
}

func toCompletionRequest(req gen.CompleteRequest) domain.CompletionRequest {
	return domain.CompletionRequest{
		Model:       common.ValueOr(req.Model, ""),
		Prompt:      req.Prompt,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
}
