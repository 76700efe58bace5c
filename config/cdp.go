package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// CdpConfiguration holds the credentials and wallet settings for the
// Coinbase Developer Platform wallet provider. It is assembled once at
// startup and read-only afterwards.
type CdpConfiguration struct {
	APIKeyID     string
	APIKeySecret string
	WalletSecret string
	NetworkID    string

	// Address pins the deployment to an existing account. When it is set,
	// IdempotencyKey is always nil: idempotent creation only matters when
	// the platform is asked to create an account.
	Address        *string
	IdempotencyKey *string
}

// CdpConfig assembles the wallet configuration from the environment for an
// already-validated network. The required credentials are checked in a
// fixed order so the first missing one is the one reported.
func CdpConfig(networkID string) (*CdpConfiguration, error) {
	address := Optional("ADDRESS")

	var idempotencyKey *string
	if address == nil {
		idempotencyKey = Optional("IDEMPOTENCY_KEY")
	} else if !common.IsHexAddress(*address) {
		return nil, fmt.Errorf("ADDRESS is not a valid hex address: %s", *address)
	}

	apiKeyID, err := Require("CDP_API_KEY_ID")
	if err != nil {
		return nil, err
	}
	apiKeySecret, err := Require("CDP_API_KEY_SECRET")
	if err != nil {
		return nil, err
	}
	walletSecret, err := Require("CDP_WALLET_SECRET")
	if err != nil {
		return nil, err
	}

	return &CdpConfiguration{
		APIKeyID:       apiKeyID,
		APIKeySecret:   apiKeySecret,
		WalletSecret:   walletSecret,
		NetworkID:      networkID,
		Address:        address,
		IdempotencyKey: idempotencyKey,
	}, nil
}
