package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"tendersim/internal/http/handler/middleware"
	"tendersim/internal/http/handler/middleware/fake"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RequestID", func() {
	It("attaches a request id to the context", func() {
		var captured any
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = r.Context().Value(middleware.RequestIDKey)
		})

		hdlr := middleware.NewRequestIDMiddleware().RequestID(next)
		hdlr.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

		Expect(captured).To(BeAssignableToTypeOf(""))
		Expect(captured.(string)).NotTo(BeEmpty())
	})
})

var _ = Describe("Auth", func() {
	var (
		fakeValidator *fake.TokenValidator
		nextCalled    bool
		hdlr          http.Handler
		w             *httptest.ResponseRecorder
		req           *http.Request
	)

	BeforeEach(func() {
		fakeValidator = new(fake.TokenValidator)
		nextCalled = false

		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			nextCalled = true
		})
		hdlr = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), fakeValidator).Auth(next)

		w = httptest.NewRecorder()
		req = httptest.NewRequest("POST", "/snap/invoke", nil)
	})

	When("the token is valid", func() {
		BeforeEach(func() {
			fakeValidator.ValidateReturns(jwt.MapClaims{"sub": "user-1"}, nil)
			req.Header.Set("AUTH_TOKEN", "good.token")
		})

		It("passes the request through", func() {
			hdlr.ServeHTTP(w, req)

			Expect(nextCalled).To(BeTrue())
			Expect(fakeValidator.ValidateArgsForCall(0)).To(Equal("good.token"))
		})
	})

	When("the header is missing", func() {
		It("responds with 401", func() {
			hdlr.ServeHTTP(w, req)

			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(fakeValidator.ValidateCallCount()).To(Equal(0))
		})
	})

	When("the token is rejected", func() {
		BeforeEach(func() {
			fakeValidator.ValidateReturns(nil, errors.New("expired"))
			req.Header.Set("AUTH_TOKEN", "bad.token")
		})

		It("responds with 401", func() {
			hdlr.ServeHTTP(w, req)

			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
