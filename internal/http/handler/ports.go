package handler

import (
	"context"
	"net/http"

	"tendersim/internal/core"
	"tendersim/internal/render"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SimulationService . SimulationService
type SimulationService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	UpdateCredentials(ctx context.Context, origin string) error
	SendTransactionPrompt(ctx context.Context, origin string) (string, error)
	TransactionInsight(ctx context.Context, tx core.TransactionPayload, origin string) (render.Node, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
