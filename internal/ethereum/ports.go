package ethereum

import (
	"context"
	"math/big"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainClient . ChainClient
type ChainClient interface {
	NetworkID(ctx context.Context) (*big.Int, error)
}
