package credentials_test

import (
	"context"
	"errors"

	"tendersim/internal/credentials"
	"tendersim/internal/credentials/fake"
	"tendersim/internal/render"
	"tendersim/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Store", func() {
	var (
		fakeRepo   *fake.Repository
		fakePrompt *fake.Prompter
		store      *credentials.Store
		ctx        context.Context
		fakeErr    error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakePrompt = new(fake.Prompter)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		store = credentials.NewStore(zap.NewNop().Sugar(), fakeRepo, fakePrompt)
	})

	Describe("Fetch", func() {
		var (
			record *credentials.Record
			err    error
		)

		JustBeforeEach(func() {
			record, err = store.Fetch(ctx, "dapp.example")
		})

		When("credentials are stored", func() {
			BeforeEach(func() {
				fakeRepo.GetCredentialReturns(repository.Credential{
					Slot:      "default",
					UserID:    "user",
					ProjectID: "proj",
					AccessKey: "key",
				}, nil)
			})

			It("returns the record without prompting", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record).To(Equal(&credentials.Record{
					UserID:    "user",
					ProjectID: "proj",
					AccessKey: "key",
				}))
				Expect(fakePrompt.PromptCallCount()).To(Equal(0))
			})
		})

		When("no credentials are stored yet", func() {
			BeforeEach(func() {
				fakeRepo.GetCredentialReturns(repository.Credential{}, repository.ErrNoCredentials)
				fakePrompt.PromptReturns("user@proj@key", nil)
			})

			It("runs the update flow and returns nil", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record).To(BeNil())

				Expect(fakePrompt.PromptCallCount()).To(Equal(1))
				Expect(fakeRepo.PutCredentialCallCount()).To(Equal(1))
				_, saved := fakeRepo.PutCredentialArgsForCall(0)
				Expect(saved.UserID).To(Equal("user"))
				Expect(saved.ProjectID).To(Equal("proj"))
				Expect(saved.AccessKey).To(Equal("key"))
			})
		})

		When("the update flow fails", func() {
			BeforeEach(func() {
				fakeRepo.GetCredentialReturns(repository.Credential{}, repository.ErrNoCredentials)
				fakePrompt.PromptReturns("", nil)
			})

			It("propagates the error", func() {
				Expect(err).To(MatchError(credentials.ErrMissingInput))
				Expect(record).To(BeNil())
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetCredentialReturns(repository.Credential{}, fakeErr)
			})

			It("wraps the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(record).To(BeNil())
			})
		})
	})

	Describe("Update", func() {
		var err error

		JustBeforeEach(func() {
			err = store.Update(ctx, "dapp.example")
		})

		When("the user enters valid credentials", func() {
			BeforeEach(func() {
				fakePrompt.PromptReturns("alice@main@tnd-123", nil)
			})

			It("persists the parsed record", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.PutCredentialCallCount()).To(Equal(1))
				_, saved := fakeRepo.PutCredentialArgsForCall(0)
				Expect(saved).To(Equal(repository.Credential{
					UserID:    "alice",
					ProjectID: "main",
					AccessKey: "tnd-123",
				}))
			})

			It("prompts with the expected dialog", func() {
				_, content, placeholder := fakePrompt.PromptArgsForCall(0)
				Expect(placeholder).To(Equal("userId@projectId@accessKey"))
				Expect(content.Type).To(Equal(render.TypePanel))
				Expect(content.Children[0]).To(Equal(render.Heading("dapp.example wants to add credentials from Tenderly")))
			})
		})

		When("the user enters nothing", func() {
			BeforeEach(func() {
				fakePrompt.PromptReturns("", nil)
			})

			It("returns ErrMissingInput and persists nothing", func() {
				Expect(err).To(MatchError(credentials.ErrMissingInput))
				Expect(fakeRepo.PutCredentialCallCount()).To(Equal(0))
			})
		})

		When("the input misses a field", func() {
			BeforeEach(func() {
				fakePrompt.PromptReturns("alice@main", nil)
			})

			It("returns ErrMalformedInput", func() {
				Expect(err).To(MatchError(credentials.ErrMalformedInput))
				Expect(fakeRepo.PutCredentialCallCount()).To(Equal(0))
			})
		})

		When("a field is empty", func() {
			BeforeEach(func() {
				fakePrompt.PromptReturns("alice@@tnd-123", nil)
			})

			It("returns ErrMalformedInput", func() {
				Expect(err).To(MatchError(credentials.ErrMalformedInput))
			})
		})

		When("persisting fails", func() {
			BeforeEach(func() {
				fakePrompt.PromptReturns("alice@main@tnd-123", nil)
				fakeRepo.PutCredentialReturns(fakeErr)
			})

			It("wraps the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
