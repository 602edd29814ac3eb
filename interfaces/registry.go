package interfaces

import (
	"context"
	"errors"
	"math/big"
)

// RegistrationFeeWei is the fixed creation fee: 0.01 ETH. Create is refused
// unless exactly this amount is attached.
func RegistrationFeeWei() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(16), nil)
}

var (
	// ErrPlateAlreadyRegistered is returned by Register when the normalized
	// plate is already present on any record, regardless of its status.
	ErrPlateAlreadyRegistered = errors.New("license plate already registered")

	// ErrWrongFee is returned by Register when the attached fee does not
	// equal the fixed registration fee.
	ErrWrongFee = errors.New("incorrect registration fee")

	// ErrRecordNotFound is returned when a record id does not exist.
	ErrRecordNotFound = errors.New("record not found")

	// ErrAlreadyReviewed is returned by Review when the record is no longer
	// pending. Approved and rejected are terminal.
	ErrAlreadyReviewed = errors.New("record already reviewed")

	// ErrNotAdmin is returned by Review when the caller is not the
	// configured admin address.
	ErrNotAdmin = errors.New("caller is not the admin")

	// ErrInvalidDecision is returned by Review for a decision that is
	// neither approve nor reject.
	ErrInvalidDecision = errors.New("invalid review decision")
)

// Submission is the immutable payload of a Register call.
type Submission struct {
	Owner         OwnerInfo
	Vehicle       VehicleInfo
	AttachmentRef AttachmentRef
}

// EventKind discriminates registry events.
type EventKind int

const (
	// EventRecordCreated is emitted once per successful Register call.
	EventRecordCreated EventKind = iota
	// EventRecordReviewed is emitted once per successful Review call.
	EventRecordReviewed
)

// RegistryEvent is an observable side effect of a committed state change.
type RegistryEvent struct {
	Kind   EventKind
	ID     RecordID
	Status Status
	Actor  Address
}

// Registry is the registration record state machine. All state-changing
// operations are atomic: they either fully apply or leave no trace. Callers
// must re-read after a write to observe its effect; reads are not ordered
// with respect to concurrent writers.
type Registry interface {
	// Register creates a new pending record owned by caller and returns its
	// id. Fails with ErrPlateAlreadyRegistered or ErrWrongFee without state
	// change.
	Register(ctx context.Context, caller Address, sub Submission, feeWei *big.Int) (RecordID, error)

	// Review resolves a pending record. Only the admin may call it; fails
	// with ErrNotAdmin, ErrRecordNotFound, ErrAlreadyReviewed, or
	// ErrInvalidDecision without state change.
	Review(ctx context.Context, caller Address, id RecordID, decision ReviewDecision) error

	// AllRecordIDs returns every record id ever created, in creation order.
	AllRecordIDs(ctx context.Context) ([]RecordID, error)

	// Record returns the full record for id, or ErrRecordNotFound.
	Record(ctx context.Context, id RecordID) (Record, error)

	// IsPlateUsed reports whether any record holds the normalized plate,
	// regardless of status.
	IsPlateUsed(ctx context.Context, plate string) (bool, error)

	// AdminAddress returns the immutable admin identity configured at
	// initialization.
	AdminAddress(ctx context.Context) (Address, error)
}
