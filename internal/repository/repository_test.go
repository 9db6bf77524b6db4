package repository_test

import (
	"context"
	"errors"

	"tendersim/internal/db"
	"tendersim/internal/repository"
	"tendersim/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UserRepository", func() {
	var (
		repo        *repository.UserRepository
		fakeStorage *fake.Storage
		ctx         context.Context
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		ctx = context.Background()
		repo = repository.NewUserRepository(fakeStorage)
	})

	Describe("MigrateAndSeed", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateAndSeed()
		})

		When("migration succeeds", func() {
			It("migrates both tables and seeds users", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.Credential{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.User{}))

				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
				records := fakeStorage.SaveToTableArgsForCall(0)
				Expect(records).To(BeAssignableToTypeOf(&[]repository.User{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("returns an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})

		When("seeding fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(errors.New("seed error"))
			})

			It("returns an error", func() {
				Expect(err).To(MatchError("seed database: seed error"))
			})
		})
	})

	Describe("GetUser", func() {
		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(column string, value any, entity any) error {
					user := entity.(*repository.User)
					user.ID = "user-1"
					user.Username = value.(string)
					user.PasswordHash = "hash"
					return nil
				}
			})

			It("returns the user", func() {
				user, err := repo.GetUser(ctx, "alice")
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal("user-1"))
				Expect(user.Username).To(Equal("alice"))

				column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("username"))
				Expect(value).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("returns ErrUserNotFound", func() {
				_, err := repo.GetUser(ctx, "ghost")
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})
})

var _ = Describe("CredentialRepository", func() {
	var (
		repo        *repository.CredentialRepository
		fakeStorage *fake.Storage
		ctx         context.Context
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		ctx = context.Background()
		repo = repository.NewCredentialRepository(fakeStorage)
	})

	Describe("GetCredential", func() {
		When("a record exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(column string, value any, entity any) error {
					cred := entity.(*repository.Credential)
					cred.Slot = value.(string)
					cred.UserID = "user"
					cred.ProjectID = "proj"
					cred.AccessKey = "key"
					return nil
				}
			})

			It("returns it from the default slot", func() {
				cred, err := repo.GetCredential(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(cred.UserID).To(Equal("user"))

				column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("slot"))
				Expect(value).To(Equal("default"))
			})
		})

		When("no record exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("returns ErrNoCredentials", func() {
				_, err := repo.GetCredential(ctx)
				Expect(err).To(MatchError(repository.ErrNoCredentials))
			})
		})
	})

	Describe("PutCredential", func() {
		It("forces the default slot before saving", func() {
			err := repo.PutCredential(ctx, repository.Credential{
				Slot:      "something-else",
				UserID:    "user",
				ProjectID: "proj",
				AccessKey: "key",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeStorage.SaveRecordCallCount()).To(Equal(1))
			saved := fakeStorage.SaveRecordArgsForCall(0).(*repository.Credential)
			Expect(saved.Slot).To(Equal("default"))
			Expect(saved.AccessKey).To(Equal("key"))
		})

		When("saving fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveRecordReturns(errors.New("save error"))
			})

			It("wraps the error", func() {
				err := repo.PutCredential(ctx, repository.Credential{})
				Expect(err).To(MatchError("put credential record: save error"))
			})
		})
	})
})
