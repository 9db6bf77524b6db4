package tenderly_test

import (
	"tendersim/internal/tenderly"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Labeler", func() {
	var (
		resp    *tenderly.Response
		labeler *tenderly.Labeler
	)

	BeforeEach(func() {
		resp = &tenderly.Response{
			Transaction: &tenderly.Transaction{
				From: "0xAAAA000000000000000000000000000000000001",
				To:   "0xBBBB000000000000000000000000000000000002",
			},
			Contracts: []tenderly.Contract{
				{Address: "0xcccc000000000000000000000000000000000003", ContractName: "DAI"},
			},
		}
	})

	JustBeforeEach(func() {
		labeler = tenderly.NewLabeler(resp)
	})

	Describe("Address", func() {
		It("labels the sender as TxOrigin", func() {
			Expect(labeler.Address("0xaaaa000000000000000000000000000000000001")).To(Equal("TxOrigin"))
		})

		It("labels known contracts with their name", func() {
			Expect(labeler.Address("0xcccc000000000000000000000000000000000003")).To(Equal("DAI"))
		})

		It("labels the recipient as TxRecipient", func() {
			Expect(labeler.Address("0xbbbb000000000000000000000000000000000002")).To(Equal("TxRecipient"))
		})

		It("is case-insensitive", func() {
			Expect(labeler.Address("0xAAAA000000000000000000000000000000000001")).To(Equal("TxOrigin"))
		})

		It("returns unknown addresses unchanged", func() {
			Expect(labeler.Address("0xdead000000000000000000000000000000000004")).
				To(Equal("0xdead000000000000000000000000000000000004"))
		})

		When("the recipient is also a known contract", func() {
			BeforeEach(func() {
				resp.Contracts = append(resp.Contracts, tenderly.Contract{
					Address:      "0xbbbb000000000000000000000000000000000002",
					ContractName: "WETH",
				})
			})

			It("joins the contract name and the recipient role", func() {
				Expect(labeler.Address("0xbbbb000000000000000000000000000000000002")).To(Equal("WETH|TxRecipient"))
			})
		})

		When("the response carries no transaction", func() {
			BeforeEach(func() {
				resp = &tenderly.Response{}
			})

			It("labels nothing", func() {
				Expect(labeler.Address("0xaaaa000000000000000000000000000000000001")).
					To(Equal("0xaaaa000000000000000000000000000000000001"))
			})
		})
	})

	Describe("Substitute", func() {
		It("replaces every known address in the text", func() {
			out := labeler.Substitute(`{"to":"0xBBBB000000000000000000000000000000000002"}`)
			Expect(out).To(Equal(`{"to":"TxRecipient"}`))
		})

		It("lower-cases the input before replacing", func() {
			out := labeler.Substitute("0xCCCC000000000000000000000000000000000003 sent funds")
			Expect(out).To(Equal("DAI sent funds"))
		})

		It("leaves text without addresses untouched except for casing", func() {
			Expect(labeler.Substitute("Nothing Here")).To(Equal("nothing here"))
		})

		When("the recipient doubles as a contract", func() {
			BeforeEach(func() {
				resp.Contracts = append(resp.Contracts, tenderly.Contract{
					Address:      "0xbbbb000000000000000000000000000000000002",
					ContractName: "WETH",
				})
			})

			It("uses the combined label", func() {
				out := labeler.Substitute("0xbbbb000000000000000000000000000000000002")
				Expect(out).To(Equal("WETH|TxRecipient"))
			})
		})
	})
})

var _ = Describe("HexToInt", func() {
	It("decodes a 0x-prefixed quantity", func() {
		v := tenderly.HexToInt("0x5208")
		Expect(v).NotTo(BeNil())
		Expect(*v).To(Equal(int64(21000)))
	})

	It("decodes without the prefix", func() {
		v := tenderly.HexToInt("ff")
		Expect(v).NotTo(BeNil())
		Expect(*v).To(Equal(int64(255)))
	})

	It("returns nil for empty input", func() {
		Expect(tenderly.HexToInt("")).To(BeNil())
	})

	It("returns nil for garbage", func() {
		Expect(tenderly.HexToInt("0xzz")).To(BeNil())
	})
})
