package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/common"
	fastshot "github.com/opus-domini/fast-shot"

	"github.com/mabdy-labs/token-deployer/config"
	"github.com/mabdy-labs/token-deployer/utils"
	"github.com/mabdy-labs/token-deployer/utils/logger"
)

const defaultCdpBaseURL = "https://api.cdp.coinbase.com/platform"

// Wallet is the handle a resolved account is addressed by.
type Wallet struct {
	Address   string
	NetworkID string
}

// ContractCall is a prepared contract invocation for the wallet to submit.
// The platform signs and broadcasts it; nothing here touches keys.
type ContractCall struct {
	To    string
	Data  string // 0x-prefixed calldata
	Value string // wei, decimal string
}

// WalletProvider abstracts the custodial wallet that action providers
// submit calls through.
type WalletProvider interface {
	Resolve(ctx context.Context) (*Wallet, error)
	SubmitTransaction(ctx context.Context, wallet *Wallet, call *ContractCall) (string, error)
}

// CdpService talks to the Coinbase Developer Platform EVM wallet API.
// Credentials travel as headers; signing happens on the platform side.
type CdpService struct {
	config  *config.CdpConfiguration
	baseURL string
}

// NewCdpService creates a wallet provider from an assembled configuration.
func NewCdpService(conf *config.CdpConfiguration) *CdpService {
	return &CdpService{
		config:  conf,
		baseURL: defaultCdpBaseURL,
	}
}

// Resolve returns the wallet the deployment will run against. With an
// explicit address the existing account is fetched; otherwise the platform
// creates one, reusing any account already created under the same
// idempotency key.
func (s *CdpService) Resolve(ctx context.Context) (*Wallet, error) {
	if s.config.Address != nil {
		return s.getAccount(ctx, *s.config.Address)
	}
	return s.createAccount(ctx)
}

func (s *CdpService) getAccount(ctx context.Context, address string) (*Wallet, error) {
	checksummed := common.HexToAddress(address).Hex()

	res, err := fastshot.NewClient(s.baseURL).
		Config().SetTimeout(30 * time.Second).
		Header().AddAll(s.authHeaders()).
		Build().GET(fmt.Sprintf("/v2/evm/accounts/%s", checksummed)).
		Send()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account %s: %w", checksummed, err)
	}

	data, err := utils.ParseJSONResponse(res.RawResponse)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account %s: %w", checksummed, err)
	}

	resolved, ok := data["address"].(string)
	if !ok || resolved == "" {
		return nil, fmt.Errorf("account response for %s carried no address", checksummed)
	}

	logger.WithFields(logger.Fields{
		"Address": resolved,
		"Network": s.config.NetworkID,
	}).Infof("Resolved existing CDP account")

	return &Wallet{Address: resolved, NetworkID: s.config.NetworkID}, nil
}

func (s *CdpService) createAccount(ctx context.Context) (*Wallet, error) {
	headers := s.authHeaders()
	if s.config.IdempotencyKey != nil {
		headers["X-Idempotency-Key"] = *s.config.IdempotencyKey
	}

	res, err := fastshot.NewClient(s.baseURL).
		Config().SetTimeout(30 * time.Second).
		Header().AddAll(headers).
		Build().POST("/v2/evm/accounts").
		Body().AsJSON(map[string]interface{}{}).
		Send()
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	data, err := utils.ParseJSONResponse(res.RawResponse)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	address, ok := data["address"].(string)
	if !ok || address == "" {
		return nil, fmt.Errorf("account creation response carried no address")
	}

	logger.WithFields(logger.Fields{
		"Address": address,
		"Network": s.config.NetworkID,
	}).Infof("Created CDP account")

	return &Wallet{Address: address, NetworkID: s.config.NetworkID}, nil
}

// SubmitTransaction hands a contract call to the platform for signing and
// broadcasting. The raw response body comes back untouched so callers can
// surface it verbatim.
func (s *CdpService) SubmitTransaction(ctx context.Context, wallet *Wallet, call *ContractCall) (string, error) {
	payload := map[string]interface{}{
		"network": wallet.NetworkID,
		"transaction": map[string]interface{}{
			"to":    call.To,
			"data":  call.Data,
			"value": call.Value,
		},
	}

	logger.WithFields(logger.Fields{
		"From":    wallet.Address,
		"To":      call.To,
		"Network": wallet.NetworkID,
	}).Infof("Submitting transaction to CDP")

	res, err := fastshot.NewClient(s.baseURL).
		Config().SetTimeout(30 * time.Second).
		Header().AddAll(s.authHeaders()).
		Build().POST(fmt.Sprintf("/v2/evm/accounts/%s/send", wallet.Address)).
		Body().AsJSON(payload).
		Send()
	if err != nil {
		return "", fmt.Errorf("failed to submit transaction: %w", err)
	}

	body, err := io.ReadAll(res.RawResponse.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read submission response: %w", err)
	}
	defer res.RawResponse.Body.Close()

	if res.RawResponse.StatusCode >= 400 {
		return "", fmt.Errorf("transaction submission failed (%d): %s", res.RawResponse.StatusCode, body)
	}

	return string(body), nil
}

func (s *CdpService) authHeaders() map[string]string {
	return map[string]string{
		"Accept":           "application/json",
		"Content-Type":     "application/json",
		"X-API-Key-ID":     s.config.APIKeyID,
		"X-API-Key-Secret": s.config.APIKeySecret,
		"X-Wallet-Secret":  s.config.WalletSecret,
	}
}
