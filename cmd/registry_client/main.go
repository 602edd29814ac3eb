package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/urfave/cli/v2"

	"github.com/tuanngo/vehicle-registration-backend/cmd/flags"
	"github.com/tuanngo/vehicle-registration-backend/interfaces"
	"github.com/tuanngo/vehicle-registration-backend/review"
	"github.com/tuanngo/vehicle-registration-backend/storage"
	"github.com/tuanngo/vehicle-registration-backend/submission"
)

var flagRecordID = &cli.Uint64Flag{
	Name:  "id",
	Usage: "registration record id",
}

var flagDecision = &cli.StringFlag{
	Name:  "decision",
	Usage: "review verdict: 'approve' or 'reject'",
}

var flagPlate = &cli.StringFlag{
	Name:  "plate",
	Usage: "license plate to check",
}

var submitFlags = []cli.Flag{
	&cli.StringFlag{Name: "full-name", Required: true, Usage: "owner full name"},
	&cli.StringFlag{Name: "national-id", Required: true, Usage: "owner national id number (12 digits)"},
	&cli.StringFlag{Name: "address", Required: true, Usage: "owner postal address"},
	&cli.StringFlag{Name: "phone", Required: true, Usage: "owner phone number"},
	&cli.StringFlag{Name: "plate", Required: true, Usage: "license plate, e.g. 29A-12345"},
	&cli.StringFlag{Name: "brand", Required: true, Usage: "vehicle brand"},
	&cli.StringFlag{Name: "model", Required: true, Usage: "vehicle model"},
	&cli.StringFlag{Name: "color", Required: true, Usage: "vehicle color"},
	&cli.UintFlag{Name: "year", Required: true, Usage: "vehicle manufacture year"},
	&cli.StringFlag{Name: "front-image", Required: true, Usage: "path to the front photo of the vehicle"},
	&cli.StringFlag{Name: "back-image", Required: true, Usage: "path to the back photo of the vehicle"},
	&cli.StringFlag{Name: "document", Required: true, Usage: "path to the purchase invoice or ownership document"},
	flags.StorageUriFlag,
}

func main() {
	app := &cli.App{
		Name:  "registry-client",
		Usage: "Interact with the vehicle registration contract",
		Flags: []cli.Flag{
			flags.RpcAddrFlag,
			flags.ContractAddrFlag,
			flags.PrivateKeyFlag,
			flags.LogJsonFlag,
			flags.LogDebugFlag,
			flags.LogUidFlag,
			flags.LogServiceFlag,
		},
		Commands: []*cli.Command{
			{
				Name:   "admin",
				Usage:  "print the admin address and registration fee",
				Action: runAdmin,
			},
			{
				Name:   "list",
				Usage:  "print all registration records",
				Action: runList,
			},
			{
				Name:   "get",
				Usage:  "print a single registration record",
				Flags:  []cli.Flag{flagRecordID},
				Action: runGet,
			},
			{
				Name:   "pending",
				Usage:  "print records awaiting review",
				Action: runPending,
			},
			{
				Name:   "plate",
				Usage:  "check whether a plate is already registered",
				Flags:  []cli.Flag{flagPlate},
				Action: runPlateCheck,
			},
			{
				Name:   "submit",
				Usage:  "submit a registration application",
				Flags:  submitFlags,
				Action: runSubmit,
			},
			{
				Name:   "review",
				Usage:  "approve or reject a pending record (admin only)",
				Flags:  []cli.Flag{flagRecordID, flagDecision},
				Action: runReview,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runAdmin(cCtx *cli.Context) error {
	logger := flags.SetupLogger(cCtx)
	client, err := flags.BuildOnchainRegistry(cCtx, logger)
	if err != nil {
		return err
	}

	admin, err := client.AdminAddress(cCtx.Context)
	if err != nil {
		return err
	}
	fee, err := client.RegistrationFee(cCtx.Context)
	if err != nil {
		return err
	}

	return printJSON(map[string]string{
		"admin_address":    admin.String(),
		"registration_fee": fee.String(),
	})
}

func runList(cCtx *cli.Context) error {
	logger := flags.SetupLogger(cCtx)
	client, err := flags.BuildOnchainRegistry(cCtx, logger)
	if err != nil {
		return err
	}

	ids, err := client.AllRecordIDs(cCtx.Context)
	if err != nil {
		return err
	}

	records := make([]interfaces.Record, 0, len(ids))
	for _, id := range ids {
		record, err := client.Record(cCtx.Context, id)
		if err != nil {
			return err
		}
		records = append(records, record)
	}
	return printJSON(records)
}

func runGet(cCtx *cli.Context) error {
	logger := flags.SetupLogger(cCtx)
	client, err := flags.BuildOnchainRegistry(cCtx, logger)
	if err != nil {
		return err
	}

	record, err := client.Record(cCtx.Context, interfaces.RecordID(cCtx.Uint64(flagRecordID.Name)))
	if err != nil {
		return err
	}
	return printJSON(record)
}

func runPending(cCtx *cli.Context) error {
	logger := flags.SetupLogger(cCtx)
	client, err := flags.BuildOnchainRegistry(cCtx, logger)
	if err != nil {
		return err
	}

	pending, err := review.NewReviewer(client, logger).Pending(cCtx.Context)
	if err != nil {
		return err
	}
	return printJSON(pending)
}

func runPlateCheck(cCtx *cli.Context) error {
	logger := flags.SetupLogger(cCtx)
	client, err := flags.BuildOnchainRegistry(cCtx, logger)
	if err != nil {
		return err
	}

	plate := interfaces.NormalizePlate(cCtx.String(flagPlate.Name))
	used, err := client.IsPlateUsed(cCtx.Context, plate)
	if err != nil {
		return err
	}
	return printJSON(map[string]any{"plate": plate, "used": used})
}

func runSubmit(cCtx *cli.Context) error {
	logger := flags.SetupLogger(cCtx)
	client, err := flags.BuildOnchainRegistry(cCtx, logger)
	if err != nil {
		return err
	}

	caller, err := callerFromKey(cCtx)
	if err != nil {
		return err
	}

	store, err := storage.NewStorageFactory(logger).CreateMirroredStore(cCtx.StringSlice(flags.StorageUriFlag.Name))
	if err != nil {
		return err
	}

	req := submission.RegistrationRequest{
		Owner: interfaces.OwnerInfo{
			FullName:   cCtx.String("full-name"),
			NationalID: cCtx.String("national-id"),
			Address:    cCtx.String("address"),
			Phone:      cCtx.String("phone"),
		},
		Vehicle: interfaces.VehicleInfo{
			Plate:           cCtx.String("plate"),
			Brand:           cCtx.String("brand"),
			Model:           cCtx.String("model"),
			Color:           cCtx.String("color"),
			ManufactureYear: uint16(cCtx.Uint("year")),
		},
	}

	if req.FrontImage, err = os.ReadFile(cCtx.String("front-image")); err != nil {
		return fmt.Errorf("reading front image: %w", err)
	}
	if req.BackImage, err = os.ReadFile(cCtx.String("back-image")); err != nil {
		return fmt.Errorf("reading back image: %w", err)
	}
	if req.Document, err = os.ReadFile(cCtx.String("document")); err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	record, err := submission.NewSubmitter(client, store, logger).Submit(context.Background(), caller, req)
	if err != nil {
		return err
	}
	return printJSON(record)
}

func runReview(cCtx *cli.Context) error {
	logger := flags.SetupLogger(cCtx)
	client, err := flags.BuildOnchainRegistry(cCtx, logger)
	if err != nil {
		return err
	}

	caller, err := callerFromKey(cCtx)
	if err != nil {
		return err
	}

	var decision interfaces.ReviewDecision
	switch strings.ToLower(cCtx.String(flagDecision.Name)) {
	case "approve":
		decision = interfaces.DecisionApprove
	case "reject":
		decision = interfaces.DecisionReject
	default:
		return fmt.Errorf("decision must be 'approve' or 'reject'")
	}

	id := interfaces.RecordID(cCtx.Uint64(flagRecordID.Name))
	record, err := review.NewReviewer(client, logger).Review(context.Background(), caller, id, decision)
	if err != nil {
		return err
	}
	return printJSON(record)
}

// callerFromKey derives the caller address from the configured private key.
func callerFromKey(cCtx *cli.Context) (interfaces.Address, error) {
	privateKeyHex := cCtx.String(flags.PrivateKeyFlag.Name)
	if privateKeyHex == "" {
		return interfaces.Address{}, fmt.Errorf("private-key is required for this command")
	}

	privateKey, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return interfaces.Address{}, fmt.Errorf("invalid private key: %w", err)
	}

	return interfaces.Address(crypto.PubkeyToAddress(privateKey.PublicKey)), nil
}

func printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}
