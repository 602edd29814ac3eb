package registry

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/tuanngo/vehicle-registration-backend/bindings/vehiclereg"
	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

// ErrNoTransactOpts is returned when a transaction is attempted without first setting transaction options.
var ErrNoTransactOpts = errors.New("no authorized transactor available")

// ErrCallerMismatch is returned when the caller address passed to a
// state-changing operation does not match the configured transactor identity.
var ErrCallerMismatch = errors.New("caller does not match transactor address")

// ErrTransactionFailed is returned when a submitted transaction was mined but
// reverted.
var ErrTransactionFailed = errors.New("transaction reverted")

// OnchainRegistryClient implements the interfaces.Registry interface for
// interacting with a VehicleRegistration smart contract deployed on a
// blockchain.
type OnchainRegistryClient struct {
	contract *vehiclereg.VehicleRegistration
	client   bind.ContractBackend
	backend  bind.DeployBackend
	address  common.Address
	auth     *bind.TransactOpts
}

// NewOnchainRegistryClient creates a new client for interacting with the
// VehicleRegistration contract at the specified address. It requires a
// ContractBackend for reading from the blockchain and a DeployBackend for
// waiting on transactions.
func NewOnchainRegistryClient(client bind.ContractBackend, backend bind.DeployBackend, address common.Address) (*OnchainRegistryClient, error) {
	contract, err := vehiclereg.NewVehicleRegistration(address, client)
	if err != nil {
		return nil, err
	}

	return &OnchainRegistryClient{
		contract: contract,
		client:   client,
		backend:  backend,
		address:  address,
	}, nil
}

// SetTransactOpts sets the transaction options required for functions that modify state.
// This must be called before using any methods that send transactions to the blockchain.
func (c *OnchainRegistryClient) SetTransactOpts(auth *bind.TransactOpts) {
	c.auth = auth
}

// Register submits a registration transaction with the fee attached as the
// transaction value and waits for it to be mined. The new record id is read
// back from the VehicleRegistered event in the receipt.
func (c *OnchainRegistryClient) Register(ctx context.Context, caller interfaces.Address, sub interfaces.Submission, feeWei *big.Int) (interfaces.RecordID, error) {
	if c.auth == nil {
		return 0, ErrNoTransactOpts
	}
	if common.Address(caller) != c.auth.From {
		return 0, ErrCallerMismatch
	}

	opts := *c.auth
	opts.Context = ctx
	opts.Value = feeWei

	owner := vehiclereg.VehicleRegistrationOwnerInfo{
		FullName:    sub.Owner.FullName,
		Cccd:        sub.Owner.NationalID,
		AddressInfo: sub.Owner.Address,
		Phone:       sub.Owner.Phone,
	}

	tx, err := c.contract.RegisterVehicle(&opts, owner,
		sub.Vehicle.Brand, sub.Vehicle.Model, sub.Vehicle.Color,
		interfaces.NormalizePlate(sub.Vehicle.Plate), sub.Vehicle.ManufactureYear,
		sub.AttachmentRef.String(), "")
	if err != nil {
		return 0, mapRevertError(err)
	}

	receipt, err := c.waitMined(ctx, tx)
	if err != nil {
		return 0, err
	}

	for _, log := range receipt.Logs {
		ev, err := c.contract.ParseVehicleRegistered(*log)
		if err != nil {
			continue
		}
		return interfaces.RecordID(ev.VehicleId.Uint64()), nil
	}

	return 0, fmt.Errorf("transaction %s mined without a registration event", tx.Hash())
}

// Review submits a review transaction and waits for it to be mined.
func (c *OnchainRegistryClient) Review(ctx context.Context, caller interfaces.Address, id interfaces.RecordID, decision interfaces.ReviewDecision) error {
	if c.auth == nil {
		return ErrNoTransactOpts
	}
	if common.Address(caller) != c.auth.From {
		return ErrCallerMismatch
	}
	if !decision.Valid() {
		return interfaces.ErrInvalidDecision
	}

	opts := *c.auth
	opts.Context = ctx

	tx, err := c.contract.ReviewVehicle(&opts, new(big.Int).SetUint64(uint64(id)), uint8(decision))
	if err != nil {
		return mapRevertError(err)
	}

	_, err = c.waitMined(ctx, tx)
	return err
}

// AllRecordIDs retrieves every record id from the contract, in creation order.
func (c *OnchainRegistryClient) AllRecordIDs(ctx context.Context) ([]interfaces.RecordID, error) {
	opts := &bind.CallOpts{Context: ctx}

	raw, err := c.contract.GetAllVehicleIds(opts)
	if err != nil {
		return nil, mapRevertError(err)
	}

	ids := make([]interfaces.RecordID, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, interfaces.RecordID(id.Uint64()))
	}
	return ids, nil
}

// Record reads a single record from the contract storage.
func (c *OnchainRegistryClient) Record(ctx context.Context, id interfaces.RecordID) (interfaces.Record, error) {
	opts := &bind.CallOpts{Context: ctx}

	v, err := c.contract.Vehicles(opts, new(big.Int).SetUint64(uint64(id)))
	if err != nil {
		return interfaces.Record{}, mapRevertError(err)
	}

	// The contract mapping returns a zero struct for ids that were never
	// assigned.
	if v.VehicleId == nil || v.VehicleId.Sign() == 0 {
		return interfaces.Record{}, interfaces.ErrRecordNotFound
	}

	return interfaces.Record{
		ID: interfaces.RecordID(v.VehicleId.Uint64()),
		Owner: interfaces.OwnerInfo{
			FullName:   v.OwnerInfo.FullName,
			NationalID: v.OwnerInfo.Cccd,
			Address:    v.OwnerInfo.AddressInfo,
			Phone:      v.OwnerInfo.Phone,
		},
		Vehicle: interfaces.VehicleInfo{
			Plate:           v.LicensePlate,
			Brand:           v.Brand,
			Model:           v.Model,
			Color:           v.Color,
			ManufactureYear: v.ManufactureYear,
		},
		AttachmentRef: interfaces.AttachmentRef(v.DocumentIpfsHash),
		Status:        interfaces.Status(v.Status),
		Submitter:     interfaces.Address(v.WalletAddress),
		Reviewer:      interfaces.Address(v.Reviewer),
	}, nil
}

// IsPlateUsed checks plate usage against the contract.
func (c *OnchainRegistryClient) IsPlateUsed(ctx context.Context, plate string) (bool, error) {
	opts := &bind.CallOpts{Context: ctx}

	used, err := c.contract.IsLicensePlateUsed(opts, interfaces.NormalizePlate(plate))
	if err != nil {
		return false, mapRevertError(err)
	}
	return used, nil
}

// AdminAddress retrieves the admin identity from the contract.
func (c *OnchainRegistryClient) AdminAddress(ctx context.Context) (interfaces.Address, error) {
	opts := &bind.CallOpts{Context: ctx}

	addr, err := c.contract.AdminAddress(opts)
	if err != nil {
		return interfaces.Address{}, mapRevertError(err)
	}
	return interfaces.Address(addr), nil
}

// RegistrationFee retrieves the fixed registration fee from the contract.
func (c *OnchainRegistryClient) RegistrationFee(ctx context.Context) (*big.Int, error) {
	opts := &bind.CallOpts{Context: ctx}

	fee, err := c.contract.RegistrationFee(opts)
	if err != nil {
		return nil, mapRevertError(err)
	}
	return fee, nil
}

func (c *OnchainRegistryClient) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("waiting for transaction %s: %w", tx.Hash(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: transaction %s", ErrTransactionFailed, tx.Hash())
	}
	return receipt, nil
}

// Contract revert reasons, as emitted by the deployed VehicleRegistration
// contract's require statements.
var revertReasons = []struct {
	reason   string
	sentinel error
}{
	{"License plate already registered", interfaces.ErrPlateAlreadyRegistered},
	{"Incorrect registration fee", interfaces.ErrWrongFee},
	{"Only admin can perform this action", interfaces.ErrNotAdmin},
	{"Vehicle does not exist", interfaces.ErrRecordNotFound},
	{"Vehicle already reviewed", interfaces.ErrAlreadyReviewed},
	{"Invalid status", interfaces.ErrInvalidDecision},
}

// mapRevertError translates a contract revert into the matching sentinel
// error, wrapping it with the original message. Errors that carry no known
// revert reason pass through unchanged.
func mapRevertError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	for _, r := range revertReasons {
		if strings.Contains(msg, r.reason) {
			return fmt.Errorf("%w: %s", r.sentinel, msg)
		}
	}
	return err
}
