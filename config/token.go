package config

import (
	"github.com/spf13/viper"
)

const (
	DefaultTokenName   = "Mabdy"
	DefaultTokenSymbol = "MABDY"
)

// TokenConfiguration describes the WOW token to deploy. URI is nil when
// TOKEN_URI is unset or empty, and is then omitted from the deployment
// arguments entirely.
type TokenConfiguration struct {
	Name   string
	Symbol string
	URI    *string
}

// TokenConfig returns the token arguments from the environment.
func TokenConfig() *TokenConfiguration {
	name := viper.GetString("TOKEN_NAME")
	if name == "" {
		name = DefaultTokenName
	}

	symbol := viper.GetString("TOKEN_SYMBOL")
	if symbol == "" {
		symbol = DefaultTokenSymbol
	}

	return &TokenConfiguration{
		Name:   name,
		Symbol: symbol,
		URI:    Optional("TOKEN_URI"),
	}
}
