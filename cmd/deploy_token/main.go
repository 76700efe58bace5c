package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mabdy-labs/token-deployer/config"
	"github.com/mabdy-labs/token-deployer/services"
	"github.com/mabdy-labs/token-deployer/utils/logger"
)

// Deploy a WOW token on Base through a CDP-managed wallet.

const envFile = ".env.local"

func main() {
	fmt.Println("=== Mabdy WOW Token Deployment ===")
	fmt.Println()

	// Load the overlay file; real environment variables win over it.
	if err := config.LoadOverlay(envFile); err != nil {
		logger.Warnf("Skipping %s: %v", envFile, err)
	}
	viper.AutomaticEnv()

	if err := logger.SetupSentry(); err != nil {
		logger.Warnf("Sentry disabled: %v", err)
	}

	networkID, err := config.ResolveNetwork()
	if err != nil {
		logger.Fatalf("%v", err)
	}
	fmt.Printf("Network: %s (chain ID %d)\n", networkID, config.ChainID(networkID))

	cdpConf, err := config.CdpConfig(networkID)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	if cdpConf.Address != nil {
		fmt.Printf("Wallet: %s\n", *cdpConf.Address)
	} else {
		fmt.Println("Wallet: to be created by CDP")
	}

	tokenConf := config.TokenConfig()
	fmt.Printf("Token: %s (%s)\n", tokenConf.Name, tokenConf.Symbol)
	fmt.Println()

	walletProvider := services.NewCdpService(cdpConf)
	wowProvider := services.NewWowService()

	result, err := wowProvider.CreateToken(context.Background(), walletProvider, tokenConf)
	if err != nil {
		logger.Fatalf("Token deployment failed: %v", err)
	}

	fmt.Println(result)
}
