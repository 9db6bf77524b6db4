package credentials

import (
	"context"

	"tendersim/internal/render"
	"tendersim/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Prompter . Prompter
type Prompter interface {
	Prompt(ctx context.Context, content render.Node, placeholder string) (string, error)
}

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetCredential(ctx context.Context) (repository.Credential, error)
	PutCredential(ctx context.Context, cred repository.Credential) error
}
