package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tendersim/internal/render"
	"tendersim/internal/repository"

	"go.uber.org/zap"
)

var ErrMissingInput error = errors.New("missing credentials input")
var ErrMalformedInput error = errors.New("malformed credentials input")

const credentialsPlaceholder = "userId@projectId@accessKey"

// Record holds the Tenderly access credentials for a single user and project.
type Record struct {
	UserID    string
	ProjectID string
	AccessKey string
}

// Store manages the single persisted credential record. Reads that find no
// record trigger the update flow as a side effect so the user can supply
// credentials and retry the outer action.
type Store struct {
	logs   *zap.SugaredLogger
	repo   Repository
	prompt Prompter
}

func NewStore(logger *zap.SugaredLogger, repo Repository, prompt Prompter) *Store {
	return &Store{
		logs:   logger,
		repo:   repo,
		prompt: prompt,
	}
}

// Fetch returns the persisted credentials, or nil after triggering the update
// flow when none exist yet.
func (s *Store) Fetch(ctx context.Context, origin string) (*Record, error) {
	cred, err := s.repo.GetCredential(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoCredentials) {
			s.logs.Infow("no credentials stored, requesting new ones", "origin", origin)
			if err := s.Update(ctx, origin); err != nil {
				return nil, err
			}
			return nil, nil
		}
		return nil, fmt.Errorf("fetch credentials: %w", err)
	}

	return &Record{
		UserID:    cred.UserID,
		ProjectID: cred.ProjectID,
		AccessKey: cred.AccessKey,
	}, nil
}

// Update prompts the user for new credentials and replaces the persisted
// record wholesale. Nothing is persisted when the input is missing or
// malformed.
func (s *Store) Update(ctx context.Context, origin string) error {
	record, err := s.requestNewCredentials(ctx, origin)
	if err != nil {
		return err
	}

	err = s.repo.PutCredential(ctx, repository.Credential{
		UserID:    record.UserID,
		ProjectID: record.ProjectID,
		AccessKey: record.AccessKey,
	})
	if err != nil {
		return fmt.Errorf("persist credentials: %w", err)
	}

	s.logs.Infow("tenderly credentials updated", "origin", origin, "project", record.ProjectID)
	return nil
}

func (s *Store) requestNewCredentials(ctx context.Context, origin string) (Record, error) {
	content := render.Panel(
		render.Heading(fmt.Sprintf("%s wants to add credentials from Tenderly", origin)),
		render.Text("Enter your Tenderly credentials in format:"),
		render.Text("**{user_id}@{project_id}@{access_key}**"),
	)

	raw, err := s.prompt.Prompt(ctx, content, credentialsPlaceholder)
	if err != nil {
		return Record{}, fmt.Errorf("request credentials: %w", err)
	}

	if raw == "" {
		return Record{}, ErrMissingInput
	}

	return parseRecord(raw)
}

// parseRecord splits a user-entered "user@project@key" string into a record.
// All three fields must be present and non-empty.
func parseRecord(raw string) (Record, error) {
	parts := strings.Split(raw, "@")
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Record{}, ErrMalformedInput
	}

	return Record{
		UserID:    parts[0],
		ProjectID: parts[1],
		AccessKey: parts[2],
	}, nil
}
