package tenderly_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"tendersim/internal/credentials"
	"tendersim/internal/tenderly"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Client", func() {
	var (
		server *httptest.Server
		client *tenderly.Client
		creds  credentials.Record
		ctx    context.Context

		receivedPath   string
		receivedKey    string
		receivedBody   map[string]any
		responseStatus int
		responseBody   string
	)

	BeforeEach(func() {
		ctx = context.Background()
		creds = credentials.Record{
			UserID:    "user",
			ProjectID: "proj",
			AccessKey: "secret-key",
		}
		responseStatus = http.StatusOK
		responseBody = `{"simulation":{"id":"sim-1"},"transaction":{"status":true}}`
		receivedBody = nil

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedPath = r.URL.Path
			receivedKey = r.Header.Get("X-Access-Key")
			if r.Body != nil {
				_ = json.NewDecoder(r.Body).Decode(&receivedBody)
			}
			w.WriteHeader(responseStatus)
			_, _ = w.Write([]byte(responseBody))
		}))

		client = tenderly.NewClient(zap.NewNop().Sugar(), server.URL)
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("Simulate", func() {
		var (
			simReq tenderly.SimulationRequest
			resp   *tenderly.Response
			err    error
		)

		BeforeEach(func() {
			gas := int64(21000)
			networkID := int64(1)
			simReq = tenderly.SimulationRequest{
				From:           "0xaaaa000000000000000000000000000000000001",
				To:             "0xbbbb000000000000000000000000000000000002",
				Input:          "0xdeadbeef",
				Gas:            &gas,
				NetworkID:      &networkID,
				Save:           true,
				SaveIfFails:    true,
				SimulationType: "full",
				Source:         "metamask-snap",
			}
		})

		JustBeforeEach(func() {
			resp, err = client.Simulate(ctx, simReq, creds)
		})

		It("posts to the account-scoped simulate endpoint", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(receivedPath).To(Equal("/account/user/project/proj/simulate"))
		})

		It("authenticates with the access key header", func() {
			Expect(receivedKey).To(Equal("secret-key"))
		})

		It("serializes the full simulation payload", func() {
			Expect(receivedBody).To(HaveKeyWithValue("from", "0xaaaa000000000000000000000000000000000001"))
			Expect(receivedBody).To(HaveKeyWithValue("gas", float64(21000)))
			Expect(receivedBody).To(HaveKeyWithValue("network_id", float64(1)))
			Expect(receivedBody).To(HaveKeyWithValue("save", true))
			Expect(receivedBody).To(HaveKeyWithValue("save_if_fails", true))
			Expect(receivedBody).To(HaveKeyWithValue("simulation_type", "full"))
			Expect(receivedBody).To(HaveKeyWithValue("generate_access_list", false))
			Expect(receivedBody).To(HaveKeyWithValue("source", "metamask-snap"))
			Expect(receivedBody).To(HaveKeyWithValue("value", BeNil()))
		})

		It("decodes the response and keeps the raw body", func() {
			Expect(resp.Simulation).NotTo(BeNil())
			Expect(resp.Simulation.ID).To(Equal("sim-1"))
			Expect(resp.Transaction.Status).To(BeTrue())
			Expect(string(resp.Raw)).To(Equal(responseBody))
		})

		When("the body is not JSON", func() {
			BeforeEach(func() {
				responseBody = "upstream blew up"
			})

			It("returns a decode error", func() {
				Expect(err).To(MatchError(ContainSubstring("decode simulation response")))
			})
		})
	})

	Describe("Share", func() {
		var err error

		JustBeforeEach(func() {
			err = client.Share(ctx, "sim-1", creds)
		})

		It("posts to the share endpoint with the access key", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(receivedPath).To(Equal("/account/user/project/proj/simulations/sim-1/share"))
			Expect(receivedKey).To(Equal("secret-key"))
		})

		When("the service rejects the request", func() {
			BeforeEach(func() {
				responseStatus = http.StatusForbidden
			})

			It("returns an error", func() {
				Expect(err).To(MatchError(ContainSubstring("unexpected status 403")))
			})
		})
	})
})
