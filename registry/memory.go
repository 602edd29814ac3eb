package registry

import (
	"context"
	"math/big"
	"sync"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

// MemoryRegistryConfig configures a MemoryRegistry.
type MemoryRegistryConfig struct {
	// Admin is the only identity allowed to review records. It cannot be
	// changed after construction.
	Admin interfaces.Address

	// ReleaseRejectedPlates frees a plate for re-registration once the
	// record holding it is rejected. When false (the default) a plate stays
	// reserved by rejected records, matching the on-chain contract.
	ReleaseRejectedPlates bool

	// EventBuffer is the capacity of subscriber channels. Zero means a
	// default of 16.
	EventBuffer int
}

// MemoryRegistry is an in-memory implementation of interfaces.Registry. It is
// safe for concurrent use. Records live for the lifetime of the process.
type MemoryRegistry struct {
	admin                 interfaces.Address
	releaseRejectedPlates bool
	eventBuffer           int

	mu      sync.Mutex
	records map[interfaces.RecordID]interfaces.Record
	order   []interfaces.RecordID
	plates  map[string]interfaces.RecordID
	nextID  interfaces.RecordID
	subs    []chan interfaces.RegistryEvent
}

// NewMemoryRegistry creates a registry with the given admin and default
// configuration.
func NewMemoryRegistry(admin interfaces.Address) *MemoryRegistry {
	return NewMemoryRegistryWithConfig(MemoryRegistryConfig{Admin: admin})
}

// NewMemoryRegistryWithConfig creates a registry from an explicit config.
func NewMemoryRegistryWithConfig(cfg MemoryRegistryConfig) *MemoryRegistry {
	buffer := cfg.EventBuffer
	if buffer <= 0 {
		buffer = 16
	}

	return &MemoryRegistry{
		admin:                 cfg.Admin,
		releaseRejectedPlates: cfg.ReleaseRejectedPlates,
		eventBuffer:           buffer,
		records:               make(map[interfaces.RecordID]interfaces.Record),
		plates:                make(map[string]interfaces.RecordID),
		nextID:                1,
	}
}

// Register creates a new pending record and returns its id. The fee must
// equal interfaces.RegistrationFeeWei exactly and the normalized plate must
// not be held by any existing record. On failure no state changes.
func (r *MemoryRegistry) Register(ctx context.Context, caller interfaces.Address, sub interfaces.Submission, feeWei *big.Int) (interfaces.RecordID, error) {
	if feeWei == nil || feeWei.Cmp(interfaces.RegistrationFeeWei()) != 0 {
		return 0, interfaces.ErrWrongFee
	}

	plate := interfaces.NormalizePlate(sub.Vehicle.Plate)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, used := r.plates[plate]; used {
		return 0, interfaces.ErrPlateAlreadyRegistered
	}

	id := r.nextID
	r.nextID++

	record := interfaces.Record{
		ID:            id,
		Owner:         sub.Owner,
		Vehicle:       sub.Vehicle,
		AttachmentRef: sub.AttachmentRef,
		Status:        interfaces.StatusPending,
		Submitter:     caller,
	}
	record.Vehicle.Plate = plate

	r.records[id] = record
	r.order = append(r.order, id)
	r.plates[plate] = id

	r.emitLocked(interfaces.RegistryEvent{
		Kind:   interfaces.EventRecordCreated,
		ID:     id,
		Status: interfaces.StatusPending,
		Actor:  caller,
	})

	return id, nil
}

// Review resolves a pending record. Only the admin may call it, the record
// must exist and still be pending, and the decision must be approve or
// reject. On failure no state changes.
func (r *MemoryRegistry) Review(ctx context.Context, caller interfaces.Address, id interfaces.RecordID, decision interfaces.ReviewDecision) error {
	if !caller.Equal(r.admin) {
		return interfaces.ErrNotAdmin
	}
	if !decision.Valid() {
		return interfaces.ErrInvalidDecision
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return interfaces.ErrRecordNotFound
	}
	if record.Status.Terminal() {
		return interfaces.ErrAlreadyReviewed
	}

	record.Status = decision.Status()
	record.Reviewer = caller
	r.records[id] = record

	if record.Status == interfaces.StatusRejected && r.releaseRejectedPlates {
		delete(r.plates, record.Vehicle.Plate)
	}

	r.emitLocked(interfaces.RegistryEvent{
		Kind:   interfaces.EventRecordReviewed,
		ID:     id,
		Status: record.Status,
		Actor:  caller,
	})

	return nil
}

// AllRecordIDs returns every record id in creation order.
func (r *MemoryRegistry) AllRecordIDs(ctx context.Context) ([]interfaces.RecordID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]interfaces.RecordID, len(r.order))
	copy(ids, r.order)
	return ids, nil
}

// Record returns the record for id, or interfaces.ErrRecordNotFound.
func (r *MemoryRegistry) Record(ctx context.Context, id interfaces.RecordID) (interfaces.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return interfaces.Record{}, interfaces.ErrRecordNotFound
	}
	return record, nil
}

// IsPlateUsed reports whether the normalized plate is held by any record.
func (r *MemoryRegistry) IsPlateUsed(ctx context.Context, plate string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, used := r.plates[interfaces.NormalizePlate(plate)]
	return used, nil
}

// AdminAddress returns the admin identity fixed at construction.
func (r *MemoryRegistry) AdminAddress(ctx context.Context) (interfaces.Address, error) {
	return r.admin, nil
}

// Subscribe registers a new event channel. Every committed state change is
// delivered as one event. Slow subscribers whose buffer fills up lose events
// rather than blocking writers.
func (r *MemoryRegistry) Subscribe() <-chan interfaces.RegistryEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := make(chan interfaces.RegistryEvent, r.eventBuffer)
	r.subs = append(r.subs, ch)
	return ch
}

func (r *MemoryRegistry) emitLocked(ev interfaces.RegistryEvent) {
	for _, ch := range r.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
