// Package review implements the admin-side review flow: resolving pending
// registration records to approved or rejected, and listing the queue of
// records still awaiting a verdict.
package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

// Reviewer runs review operations against a registry on behalf of the admin.
type Reviewer struct {
	registry interfaces.Registry
	log      *slog.Logger
}

// NewReviewer creates a reviewer bound to a registry.
func NewReviewer(registry interfaces.Registry, log *slog.Logger) *Reviewer {
	return &Reviewer{
		registry: registry,
		log:      log,
	}
}

// Review resolves a pending record and returns it as read back after the
// verdict was committed. The admin check here is advisory and fails fast;
// the registry enforces it authoritatively.
func (r *Reviewer) Review(ctx context.Context, caller interfaces.Address, id interfaces.RecordID, decision interfaces.ReviewDecision) (interfaces.Record, error) {
	if !decision.Valid() {
		return interfaces.Record{}, interfaces.ErrInvalidDecision
	}

	admin, err := r.registry.AdminAddress(ctx)
	if err != nil {
		return interfaces.Record{}, fmt.Errorf("resolving admin address: %w", err)
	}
	if !caller.Equal(admin) {
		return interfaces.Record{}, interfaces.ErrNotAdmin
	}

	if err := r.registry.Review(ctx, caller, id, decision); err != nil {
		return interfaces.Record{}, err
	}

	record, err := r.registry.Record(ctx, id)
	if err != nil {
		return interfaces.Record{}, fmt.Errorf("reading back record %d: %w", id, err)
	}

	r.log.Info("Registration reviewed",
		slog.Uint64("record_id", uint64(id)),
		slog.String("status", record.Status.String()),
		slog.String("reviewer", caller.String()))

	return record, nil
}

// Pending returns every record still awaiting review, in creation order.
func (r *Reviewer) Pending(ctx context.Context) ([]interfaces.Record, error) {
	ids, err := r.registry.AllRecordIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing record ids: %w", err)
	}

	var pending []interfaces.Record
	for _, id := range ids {
		record, err := r.registry.Record(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("reading record %d: %w", id, err)
		}
		if record.Status == interfaces.StatusPending {
			pending = append(pending, record)
		}
	}
	return pending, nil
}
