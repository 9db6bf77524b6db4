package core

import (
	"context"
	"math/big"

	"tendersim/internal/credentials"
	"tendersim/internal/render"
	"tendersim/internal/repository"
	"tendersim/internal/tenderly"
	tokenIssuer "tendersim/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CredentialStore . CredentialStore
type CredentialStore interface {
	Fetch(ctx context.Context, origin string) (*credentials.Record, error)
	Update(ctx context.Context, origin string) error
}

//counterfeiter:generate -o fake -fake-name SimulationAPI . SimulationAPI
type SimulationAPI interface {
	Simulate(ctx context.Context, simReq tenderly.SimulationRequest, creds credentials.Record) (*tenderly.Response, error)
	Share(ctx context.Context, simulationID string, creds credentials.Record) error
}

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	NetworkID(ctx context.Context) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name UserSource . UserSource
type UserSource interface {
	GetUser(ctx context.Context, username string) (repository.User, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}

//counterfeiter:generate -o fake -fake-name Prompter . Prompter
type Prompter interface {
	Prompt(ctx context.Context, content render.Node, placeholder string) (string, error)
}
