package payload

import (
	"fmt"
	"regexp"

	"tendersim/internal/core"

	"github.com/jellydator/validation"
)

type TransactionRequest struct {
	Origin      string      `json:"origin"`
	Transaction Transaction `json:"transaction"`
	Input       string      `json:"input"`
}

// Transaction mirrors the wire shape of an EVM transaction request. To may be
// absent for contract deployments.
type Transaction struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Data  string `json:"data"`
	Gas   string `json:"gas"`
	Value string `json:"value"`
}

func (t TransactionRequest) Validate() error {
	regex, err := regexp.Compile(`^0x[a-fA-F0-9]+`)
	if err != nil {
		return fmt.Errorf("compile regex: %w", err)
	}

	return validation.ValidateStruct(&t,
		validation.Field(&t.Origin, validation.Required),
		validation.Field(&t.Transaction, validation.By(func(any) error {
			return validation.ValidateStruct(&t.Transaction,
				validation.Field(&t.Transaction.From, validation.Required, validation.Match(regex)),
			)
		})),
	)
}

func (t TransactionRequest) ToCorePayload() core.TransactionPayload {
	return core.TransactionPayload{
		From:  t.Transaction.From,
		To:    t.Transaction.To,
		Data:  t.Transaction.Data,
		Gas:   t.Transaction.Gas,
		Value: t.Transaction.Value,
	}
}
