package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Networks the WOW factory is deployed on.
const (
	NetworkBaseMainnet = "base-mainnet"
	NetworkBaseSepolia = "base-sepolia"

	DefaultNetworkID = NetworkBaseSepolia
)

var chainIDs = map[string]int64{
	NetworkBaseMainnet: 8453,
	NetworkBaseSepolia: 84532,
}

// ResolveNetwork reads NETWORK_ID (defaulting to base-sepolia) and validates
// it against the supported networks.
func ResolveNetwork() (string, error) {
	networkID := viper.GetString("NETWORK_ID")
	if networkID == "" {
		networkID = DefaultNetworkID
	}

	if !IsSupportedNetwork(networkID) {
		return "", fmt.Errorf(
			"NETWORK_ID must be %s or %s for WOW token deployments, got %q",
			NetworkBaseMainnet, NetworkBaseSepolia, networkID,
		)
	}

	return networkID, nil
}

// IsSupportedNetwork reports whether a network identifier is on the
// allow-list.
func IsSupportedNetwork(networkID string) bool {
	_, ok := chainIDs[networkID]
	return ok
}

// ChainID returns the EVM chain ID for a supported network, or 0 for an
// unknown one.
func ChainID(networkID string) int64 {
	return chainIDs[networkID]
}
