package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"tendersim/internal/core"
	"tendersim/internal/credentials"
	"tendersim/internal/http/handler"
	"tendersim/internal/http/handler/fake"
	"tendersim/internal/render"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("PreviewHandler", func() {
	var (
		ph            *handler.PreviewHandler
		fakeService   *fake.SimulationService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.SimulationService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeAndValidateJSONPayloadStub = func(r *http.Request, jsonPayload any) error {
			return json.NewDecoder(r.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		ph = handler.NewPreviewHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
	})

	Describe("HandleAuthenticate", func() {
		BeforeEach(func() {
			fakeService.AuthenticateReturns("test-token", nil)

			body := strings.NewReader(`{"username":"alice","password":"pass"}`)
			req = httptest.NewRequest("POST", "/snap/authenticate", body)
		})

		JustBeforeEach(func() {
			ph.HandleAuthenticate(w, req)
		})

		It("returns the signed token", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var response map[string]string
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response).To(HaveKeyWithValue("token", "test-token"))

			_, msg := fakeService.AuthenticateArgsForCall(0)
			Expect(msg).To(Equal(core.AuthMessage{Username: "alice", Password: "pass"}))
		})

		When("the payload cannot be decoded", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("responds with 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the user is unknown", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrUserNotFound)
			})

			It("responds with 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("responds with 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("authentication fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("responds with 500 and hides the detail", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring("fake-error"))
			})
		})
	})

	Describe("HandleInvoke", func() {
		newInvoke := func(body string) *http.Request {
			return httptest.NewRequest("POST", "/snap/invoke", strings.NewReader(body))
		}

		JustBeforeEach(func() {
			ph.HandleInvoke(w, req)
		})

		When("updating credentials", func() {
			BeforeEach(func() {
				req = newInvoke(`{"origin":"dapp.example","method":"update_tenderly_credentials","input":"u@p@k"}`)
				fakeService.UpdateCredentialsReturns(nil)
			})

			It("invokes the update flow", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				Expect(fakeService.UpdateCredentialsCallCount()).To(Equal(1))
				_, origin := fakeService.UpdateCredentialsArgsForCall(0)
				Expect(origin).To(Equal("dapp.example"))
			})

			When("the input is missing", func() {
				BeforeEach(func() {
					fakeService.UpdateCredentialsReturns(credentials.ErrMissingInput)
				})

				It("responds with 400", func() {
					Expect(w.Code).To(Equal(http.StatusBadRequest))
				})
			})

			When("the input is malformed", func() {
				BeforeEach(func() {
					fakeService.UpdateCredentialsReturns(credentials.ErrMalformedInput)
				})

				It("responds with 400", func() {
					Expect(w.Code).To(Equal(http.StatusBadRequest))
				})
			})

			When("the store fails unexpectedly", func() {
				BeforeEach(func() {
					fakeService.UpdateCredentialsReturns(fakeErr)
				})

				It("responds with 500", func() {
					Expect(w.Code).To(Equal(http.StatusInternalServerError))
				})
			})
		})

		When("requesting a transaction payload", func() {
			BeforeEach(func() {
				req = newInvoke(`{"origin":"dapp.example","method":"send_tenderly_transaction"}`)
				fakeService.SendTransactionPromptReturns(`{ "data": "0xabc" }`, nil)
			})

			It("returns the raw reply", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]string
				Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
				Expect(response).To(HaveKeyWithValue("result", `{ "data": "0xabc" }`))
			})
		})

		When("the method is unknown", func() {
			BeforeEach(func() {
				req = newInvoke(`{"origin":"dapp.example","method":"mint_free_tokens"}`)
			})

			It("responds with 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("method not supported"))
			})
		})

		When("the payload cannot be decoded", func() {
			BeforeEach(func() {
				req = newInvoke(`{`)
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("responds with 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleTransaction", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{
				"origin": "dapp.example",
				"transaction": {
					"from": "0xaaaa000000000000000000000000000000000001",
					"to": "0xbbbb000000000000000000000000000000000002",
					"data": "0xdeadbeef",
					"gas": "0x5208",
					"value": "0x0"
				}
			}`)
			req = httptest.NewRequest("POST", "/snap/transaction", body)

			fakeService.TransactionInsightReturns(render.Panel(render.Heading("Tenderly Dashboard:")), nil)
		})

		JustBeforeEach(func() {
			ph.HandleTransaction(w, req)
		})

		It("returns the rendered report", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var response map[string]render.Node
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response["content"].Type).To(Equal(render.TypePanel))

			_, tx, origin := fakeService.TransactionInsightArgsForCall(0)
			Expect(origin).To(Equal("dapp.example"))
			Expect(tx).To(Equal(core.TransactionPayload{
				From:  "0xaaaa000000000000000000000000000000000001",
				To:    "0xbbbb000000000000000000000000000000000002",
				Data:  "0xdeadbeef",
				Gas:   "0x5208",
				Value: "0x0",
			}))
		})

		When("the simulation fails", func() {
			BeforeEach(func() {
				fakeService.TransactionInsightReturns(render.Node{}, fakeErr)
			})

			It("responds with 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})

		When("the payload cannot be decoded", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("responds with 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.TransactionInsightCallCount()).To(Equal(0))
			})
		})
	})
})
