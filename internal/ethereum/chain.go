package ethereum

import (
	"context"
	"fmt"
	"math/big"
)

type ChainService struct {
	client ChainClient
}

func NewChainService(chainClient ChainClient) *ChainService {
	return &ChainService{
		client: chainClient,
	}
}

// NetworkID returns the chain id of the node the service is connected to.
func (s *ChainService) NetworkID(ctx context.Context) (*big.Int, error) {
	chainID, err := s.client.NetworkID(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching network id: %w", err)
	}
	return chainID, nil
}
