// Package flags holds the CLI flags and setup helpers shared by the service
// binaries.
package flags

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/tuanngo/vehicle-registration-backend/common"
	"github.com/tuanngo/vehicle-registration-backend/httpserver"
	"github.com/tuanngo/vehicle-registration-backend/registry"
	"github.com/tuanngo/vehicle-registration-backend/storage"
)

func SetupLogger(cCtx *cli.Context) (log *slog.Logger) {
	logJSON := cCtx.Bool(LogJsonFlag.Name)
	logDebug := cCtx.Bool(LogDebugFlag.Name)
	logUID := cCtx.Bool(LogUidFlag.Name)
	logService := cCtx.String(LogServiceFlag.Name)

	logger := common.SetupLogger(&common.LoggingOpts{
		Debug:   logDebug,
		JSON:    logJSON,
		Service: logService,
		Version: common.Version,
	})

	if logUID {
		id := uuid.Must(uuid.NewRandom())
		logger = logger.With("uid", id.String())
	}
	return logger
}

func ConfigureServer(cCtx *cli.Context, logger *slog.Logger, listenAddr string) *httpserver.HTTPServerConfig {
	metricsAddr := cCtx.String(MetricsAddrFlag.Name)
	enablePprof := cCtx.Bool(PprofFlag.Name)
	drainDuration := time.Duration(cCtx.Int64(DrainSecondsFlag.Name)) * time.Second

	return &httpserver.HTTPServerConfig{
		ListenAddr:               listenAddr,
		MetricsAddr:              metricsAddr,
		Log:                      logger,
		EnablePprof:              enablePprof,
		DrainDuration:            drainDuration,
		GracefulShutdownDuration: 30 * time.Second,
		ReadTimeout:              60 * time.Second,
		WriteTimeout:             30 * time.Second,
	}
}

// BuildOnchainRegistry dials the configured RPC endpoint and binds a registry
// client to the configured contract. When a private key is provided the
// client is authorized for state-changing operations.
func BuildOnchainRegistry(cCtx *cli.Context, logger *slog.Logger) (*registry.OnchainRegistryClient, error) {
	rpcAddress := cCtx.String(RpcAddrFlag.Name)
	contractHex := cCtx.String(ContractAddrFlag.Name)
	privateKeyHex := cCtx.String(PrivateKeyFlag.Name)

	if !ethcommon.IsHexAddress(contractHex) {
		return nil, fmt.Errorf("invalid contract address: %q", contractHex)
	}

	logger.Info("Connecting to Ethereum RPC", "address", rpcAddress)
	ethClient, err := ethclient.Dial(rpcAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to dial RPC: %w", err)
	}

	client, err := registry.NewOnchainRegistryClient(ethClient, ethClient, ethcommon.HexToAddress(contractHex))
	if err != nil {
		return nil, err
	}

	if privateKeyHex != "" {
		privateKey, err := crypto.HexToECDSA(privateKeyHex)
		if err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}

		chainID, err := ethClient.ChainID(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to query chain id: %w", err)
		}

		auth, err := bind.NewKeyedTransactorWithChainID(privateKey, chainID)
		if err != nil {
			return nil, fmt.Errorf("failed to create transactor: %w", err)
		}
		client.SetTransactOpts(auth)
		logger.Info("Registry transactor configured", "address", auth.From.Hex())
	}

	return client, nil
}

var RpcAddrFlag = &cli.StringFlag{
	Name:  "rpc-addr",
	Value: "http://127.0.0.1:8545",
	Usage: "address to connect to RPC",
}

var ContractAddrFlag = &cli.StringFlag{
	Name:  "contract-address",
	Usage: "VehicleRegistration contract address. 40-char hex string, 0x prefix optional",
}

var RegistryModeFlag = &cli.StringFlag{
	Name:  "registry-mode",
	Value: "onchain",
	Usage: "registry backend to use: 'onchain' or 'memory'",
}

var AdminAddrFlag = &cli.StringFlag{
	Name:  "admin-address",
	Usage: "admin wallet address for the in-memory registry. 40-char hex string, 0x prefix optional",
}

var ReleaseRejectedPlatesFlag = &cli.BoolFlag{
	Name:  "release-rejected-plates",
	Value: false,
	Usage: "free a plate for re-registration once its record is rejected (in-memory registry only)",
}

var PrivateKeyFlag = &cli.StringFlag{
	Name:  "private-key",
	Usage: "hex-encoded private key used to sign registry transactions",
}

var StorageUriFlag = &cli.StringSliceFlag{
	Name:  "storage-uri",
	Value: cli.NewStringSlice("ipfs://127.0.0.1:5001/?timeout=30s"),
	Usage: "attachment storage location URIs; exactly one ipfs:// plus optional file:// and s3:// mirrors",
}

var GatewayUrlFlag = &cli.StringFlag{
	Name:  "gateway-url",
	Value: storage.DefaultIPFSGatewayURL,
	Usage: "public IPFS gateway used to render attachment links",
}

var ListenAddrFlag = &cli.StringFlag{
	Name:  "listen-addr",
	Value: "127.0.0.1:8080",
	Usage: "address to listen on for API",
}

var LogJsonFlag = &cli.BoolFlag{
	Name:  "log-json",
	Value: false,
	Usage: "log in JSON format",
}
var LogDebugFlag = &cli.BoolFlag{
	Name:  "log-debug",
	Value: false,
	Usage: "log debug messages",
}
var LogUidFlag = &cli.BoolFlag{
	Name:  "log-uid",
	Value: false,
	Usage: "generate a uuid and add to all log messages",
}
var LogServiceFlag = &cli.StringFlag{
	Name:  "log-service",
	Value: common.PackageName,
	Usage: "add 'service' tag to logs",
}

var PprofFlag = &cli.BoolFlag{
	Name:  "pprof",
	Value: false,
	Usage: "enable pprof debug endpoint",
}
var DrainSecondsFlag = &cli.Int64Flag{
	Name:  "drain-seconds",
	Value: 45,
	Usage: "seconds to wait in drain HTTP request",
}
var MetricsAddrFlag = &cli.StringFlag{
	Name:  "metrics-addr",
	Value: "127.0.0.1:8090",
	Usage: "address to listen on for Prometheus metrics",
}

var CommonFlags = []cli.Flag{
	LogJsonFlag,
	LogDebugFlag,
	LogUidFlag,
	LogServiceFlag,
	PprofFlag,
	DrainSecondsFlag,
	MetricsAddrFlag,
}
