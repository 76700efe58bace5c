package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/mabdy-labs/token-deployer/config"
	"github.com/mabdy-labs/token-deployer/utils/logger"
)

// WOW factory deployments per network. These are protocol constants.
var wowFactoryAddresses = map[string]string{
	config.NetworkBaseMainnet: "0x997020E5F59cCB79C74D527Be492Cc610CB9fA2B",
	config.NetworkBaseSepolia: "0x04870e22fa217Cb16aa00501D7D5253B8838C1eA",
}

const wowFactoryABI = `[{
	"type": "function",
	"name": "deploy",
	"stateMutability": "payable",
	"inputs": [
		{"name": "_tokenCreator", "type": "address"},
		{"name": "_platformReferrer", "type": "address"},
		{"name": "_tokenURI", "type": "string"},
		{"name": "_name", "type": "string"},
		{"name": "_symbol", "type": "string"}
	],
	"outputs": [{"name": "", "type": "address"}]
}]`

var wowABI abi.ABI

func init() {
	parsed, err := abi.JSON(strings.NewReader(wowFactoryABI))
	if err != nil {
		panic(fmt.Sprintf("invalid WOW factory ABI: %v", err))
	}
	wowABI = parsed
}

// WowService deploys WOW-protocol tokens through a wallet provider. It
// carries no configuration; the factory address follows the wallet's
// network.
type WowService struct{}

// NewWowService returns the WOW action provider.
func NewWowService() *WowService {
	return &WowService{}
}

// CreateToken resolves the wallet, encodes the factory deploy call and
// submits it through the wallet provider. The provider's raw result is
// returned verbatim; any provider error propagates unmodified.
func (s *WowService) CreateToken(ctx context.Context, provider WalletProvider, args *config.TokenConfiguration) (string, error) {
	wallet, err := provider.Resolve(ctx)
	if err != nil {
		return "", err
	}

	factory, ok := wowFactoryAddresses[wallet.NetworkID]
	if !ok {
		return "", fmt.Errorf("no WOW factory deployed on network %s", wallet.NetworkID)
	}

	tokenURI := ""
	if args.URI != nil {
		tokenURI = *args.URI
	}

	calldata, err := wowABI.Pack(
		"deploy",
		common.HexToAddress(wallet.Address),
		common.Address{}, // no platform referrer
		tokenURI,
		args.Name,
		args.Symbol,
	)
	if err != nil {
		return "", fmt.Errorf("failed to encode deploy call: %w", err)
	}

	logger.WithFields(logger.Fields{
		"Network": wallet.NetworkID,
		"Factory": factory,
		"Creator": wallet.Address,
		"Name":    args.Name,
		"Symbol":  args.Symbol,
	}).Infof("Deploying WOW token")

	return provider.SubmitTransaction(ctx, wallet, &ContractCall{
		To:    factory,
		Data:  hexutil.Encode(calldata),
		Value: "0",
	})
}
