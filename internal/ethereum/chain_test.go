package ethereum_test

import (
	"context"
	"errors"
	"math/big"

	"tendersim/internal/ethereum"
	"tendersim/internal/ethereum/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ChainService", func() {
	var (
		service    *ethereum.ChainService
		fakeClient *fake.ChainClient
		ctx        context.Context
	)

	BeforeEach(func() {
		fakeClient = new(fake.ChainClient)
		ctx = context.Background()
		service = ethereum.NewChainService(fakeClient)
	})

	Describe("NetworkID", func() {
		When("the node answers", func() {
			BeforeEach(func() {
				fakeClient.NetworkIDReturns(big.NewInt(11155111), nil)
			})

			It("returns the chain id", func() {
				chainID, err := service.NetworkID(ctx)

				Expect(err).NotTo(HaveOccurred())
				Expect(chainID.Int64()).To(Equal(int64(11155111)))
				Expect(fakeClient.NetworkIDCallCount()).To(Equal(1))
			})
		})

		When("the node is unreachable", func() {
			BeforeEach(func() {
				fakeClient.NetworkIDReturns(nil, errors.New("connection refused"))
			})

			It("wraps the error", func() {
				_, err := service.NetworkID(ctx)

				Expect(err).To(MatchError(ContainSubstring("fetching network id")))
			})
		})
	})
})
