package submission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

// Submitter runs the registration submit flow against a registry and an
// attachment store.
type Submitter struct {
	registry interfaces.Registry
	store    interfaces.AttachmentStore
	log      *slog.Logger
}

// NewSubmitter creates a submitter bound to a registry and attachment store.
func NewSubmitter(registry interfaces.Registry, store interfaces.AttachmentStore, log *slog.Logger) *Submitter {
	return &Submitter{
		registry: registry,
		store:    store,
		log:      log,
	}
}

// Submit validates the request, uploads the three attachments, and registers
// the record with the fixed fee attached. It returns the freshly created
// record as read back from the registry.
//
// The plate availability pre-check is advisory only; the registry re-checks
// atomically at registration time, so a race between two submitters for the
// same plate still resolves to exactly one record.
func (s *Submitter) Submit(ctx context.Context, caller interfaces.Address, req RegistrationRequest) (interfaces.Record, error) {
	start := time.Now()

	if err := Validate(req); err != nil {
		return interfaces.Record{}, err
	}

	plate := interfaces.NormalizePlate(req.Vehicle.Plate)

	used, err := s.registry.IsPlateUsed(ctx, plate)
	if err != nil {
		return interfaces.Record{}, fmt.Errorf("checking plate availability: %w", err)
	}
	if used {
		return interfaces.Record{}, interfaces.ErrPlateAlreadyRegistered
	}

	ref, err := s.uploadAttachments(ctx, req)
	if err != nil {
		return interfaces.Record{}, err
	}

	sub := interfaces.Submission{
		Owner:         req.Owner,
		Vehicle:       req.Vehicle,
		AttachmentRef: ref,
	}
	sub.Vehicle.Plate = plate

	id, err := s.registry.Register(ctx, caller, sub, interfaces.RegistrationFeeWei())
	if err != nil {
		return interfaces.Record{}, err
	}

	record, err := s.registry.Record(ctx, id)
	if err != nil {
		return interfaces.Record{}, fmt.Errorf("reading back record %d: %w", id, err)
	}

	s.log.Info("Registration submitted",
		slog.Uint64("record_id", uint64(id)),
		slog.String("plate", plate),
		slog.String("submitter", caller.String()),
		slog.Duration("duration", time.Since(start)))

	return record, nil
}

// uploadAttachments pins the three attachments and returns their combined
// reference. A failed upload aborts the submission; nothing has been written
// to the registry at that point.
func (s *Submitter) uploadAttachments(ctx context.Context, req RegistrationRequest) (interfaces.AttachmentRef, error) {
	front, err := s.store.Put(ctx, req.FrontImage)
	if err != nil {
		return "", fmt.Errorf("uploading front image: %w", err)
	}

	back, err := s.store.Put(ctx, req.BackImage)
	if err != nil {
		return "", fmt.Errorf("uploading back image: %w", err)
	}

	document, err := s.store.Put(ctx, req.Document)
	if err != nil {
		return "", fmt.Errorf("uploading document: %w", err)
	}

	s.log.Debug("Attachments uploaded",
		slog.String("front", front.String()),
		slog.String("back", back.String()),
		slog.String("document", document.String()))

	return interfaces.NewAttachmentRef(front, back, document), nil
}
