package payload

import (
	"github.com/jellydator/validation"
)

const (
	MethodUpdateCredentials = "update_tenderly_credentials"
	MethodSendTransaction   = "send_tenderly_transaction"
)

// InvokeRequest is an RPC-style request. Input carries the caller's reply to
// the dialog the invoked method opens, if it opens one.
type InvokeRequest struct {
	Origin string `json:"origin"`
	Method string `json:"method"`
	Input  string `json:"input"`
}

func (i InvokeRequest) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Origin, validation.Required),
		validation.Field(&i.Method, validation.Required),
	)
}
