package repository

import (
	"context"
	"errors"
	"fmt"

	"tendersim/internal/db"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrNoCredentials error = errors.New("no credentials stored")

// credentialSlot is the primary key of the single credential row. There is no
// multi-project support.
const credentialSlot = "default"

type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) MigrateAndSeed() error {
	err := r.db.MigrateTable(&Credential{}, &User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     "alice",
			PasswordHash: "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
		},
		{
			ID:           uuid.NewString(),
			Username:     "bob",
			PasswordHash: "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u",
		},
	}
	err = r.db.SaveToTable(&users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *UserRepository) GetUser(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy("username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

type CredentialRepository struct {
	db Storage
}

func NewCredentialRepository(db Storage) *CredentialRepository {
	return &CredentialRepository{
		db: db,
	}
}

func (r *CredentialRepository) GetCredential(ctx context.Context) (Credential, error) {
	var cred Credential

	err := r.db.GetOneBy("slot", credentialSlot, &cred)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Credential{}, ErrNoCredentials
		}
		return Credential{}, fmt.Errorf("get credential record: %w", err)
	}

	return cred, nil
}

func (r *CredentialRepository) PutCredential(ctx context.Context, cred Credential) error {
	cred.Slot = credentialSlot

	if err := r.db.SaveRecord(&cred); err != nil {
		return fmt.Errorf("put credential record: %w", err)
	}

	return nil
}
