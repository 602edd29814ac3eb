package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/tuanngo/vehicle-registration-backend/cmd/flags"
	"github.com/tuanngo/vehicle-registration-backend/common"
	"github.com/tuanngo/vehicle-registration-backend/httpserver"
	"github.com/tuanngo/vehicle-registration-backend/interfaces"
	"github.com/tuanngo/vehicle-registration-backend/metrics"
	"github.com/tuanngo/vehicle-registration-backend/registry"
	"github.com/tuanngo/vehicle-registration-backend/storage"
)

var cliFlags = append([]cli.Flag{
	flags.ListenAddrFlag,
	flags.RpcAddrFlag,
	flags.ContractAddrFlag,
	flags.RegistryModeFlag,
	flags.AdminAddrFlag,
	flags.ReleaseRejectedPlatesFlag,
	flags.PrivateKeyFlag,
	flags.StorageUriFlag,
	flags.GatewayUrlFlag,
}, flags.CommonFlags...)

func main() {
	app := &cli.App{
		Name:  "registration-server",
		Usage: "Serve the vehicle registration API",
		Flags: cliFlags,
		Action: func(cCtx *cli.Context) error {
			listenAddr := cCtx.String(flags.ListenAddrFlag.Name)
			registryMode := cCtx.String(flags.RegistryModeFlag.Name)
			gatewayURL := cCtx.String(flags.GatewayUrlFlag.Name)
			storageURIs := cCtx.StringSlice(flags.StorageUriFlag.Name)

			logger := flags.SetupLogger(cCtx)

			var reg interfaces.Registry
			switch registryMode {
			case "memory":
				adminHex := cCtx.String(flags.AdminAddrFlag.Name)
				if adminHex == "" {
					return fmt.Errorf("admin-address is required for the in-memory registry")
				}
				admin, err := interfaces.NewAddressFromHex(adminHex)
				if err != nil {
					return fmt.Errorf("invalid admin-address: %w", err)
				}

				logger.Info("Using in-memory registry", "admin", admin.String())
				reg = registry.NewMemoryRegistryWithConfig(registry.MemoryRegistryConfig{
					Admin:                 admin,
					ReleaseRejectedPlates: cCtx.Bool(flags.ReleaseRejectedPlatesFlag.Name),
				})

			case "onchain":
				client, err := flags.BuildOnchainRegistry(cCtx, logger)
				if err != nil {
					logger.Error("Failed to set up on-chain registry", "err", err)
					return err
				}
				reg = client

			default:
				return fmt.Errorf("invalid registry-mode: %s", registryMode)
			}

			storageFactory := storage.NewStorageFactory(logger)
			store, err := storageFactory.CreateMirroredStore(storageURIs)
			if err != nil {
				logger.Error("Failed to set up attachment storage", "err", err)
				return err
			}
			logger.Info("Attachment storage configured", "location", store.LocationURI())

			handler := httpserver.NewHandler(httpserver.HandlerConfig{
				Registry:   reg,
				Store:      store,
				Metrics:    metrics.New(common.PackageName),
				GatewayURL: gatewayURL,
				Log:        logger,
			})

			cfg := flags.ConfigureServer(cCtx, logger, listenAddr)
			server, err := httpserver.New(cfg, handler)
			if err != nil {
				logger.Error("Failed to create server", "err", err)
				return err
			}

			server.RunInBackground()

			exit := make(chan os.Signal, 1)
			signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

			logger.Info("Server is running, press Ctrl+C to stop")
			<-exit
			logger.Info("Shutdown signal received")

			server.Shutdown()
			logger.Info("Server shutdown complete")

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
