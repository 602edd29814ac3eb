package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

// MirroredStore composes a canonical attachment store with any number of
// mirrors. The canonical store assigns content identifiers; every successful
// write is then replicated to the mirrors best-effort. Reads fall back
// through the mirrors when the canonical store cannot serve them.
type MirroredStore struct {
	canonical interfaces.AttachmentStore
	mirrors   []interfaces.AttachmentMirror
	log       *slog.Logger
}

// NewMirroredStore creates a mirrored store around a canonical store.
func NewMirroredStore(canonical interfaces.AttachmentStore, mirrors []interfaces.AttachmentMirror, logger *slog.Logger) *MirroredStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &MirroredStore{
		canonical: canonical,
		mirrors:   mirrors,
		log:       logger,
	}
}

// Put stores data in the canonical store and replicates it to all available
// mirrors. Mirror failures are logged but do not fail the write; the
// canonical store alone decides success.
func (m *MirroredStore) Put(ctx context.Context, data []byte) (interfaces.ContentID, error) {
	start := time.Now()

	id, err := m.canonical.Put(ctx, data)
	if err != nil {
		m.log.Error("Canonical store failed to store data",
			slog.String("store_name", m.canonical.Name()),
			"err", err,
			slog.Duration("duration", time.Since(start)))
		return "", err
	}

	for _, mirror := range m.mirrors {
		if !mirror.Available(ctx) {
			m.log.Debug("Mirror unavailable", slog.String("mirror_name", mirror.Name()))
			continue
		}

		if err := mirror.PutAt(ctx, id, data); err != nil {
			m.log.Warn("Failed to replicate to mirror",
				slog.String("mirror_name", mirror.Name()),
				slog.String("cid", id.String()),
				"err", err)
		}
	}

	m.log.Info("Successfully stored content",
		slog.String("cid", id.String()),
		slog.Int("size", len(data)),
		slog.Duration("duration", time.Since(start)))

	return id, nil
}

// Get retrieves data by content identifier, trying the canonical store first
// and falling back through mirrors in order.
func (m *MirroredStore) Get(ctx context.Context, id interfaces.ContentID) ([]byte, error) {
	start := time.Now()
	var errs []error

	if m.canonical.Available(ctx) {
		data, err := m.canonical.Get(ctx, id)
		if err == nil {
			return data, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", m.canonical.Name(), err))
		m.log.Debug("Failed to fetch from canonical store",
			slog.String("store_name", m.canonical.Name()),
			slog.String("cid", id.String()),
			"err", err)
	} else {
		m.log.Debug("Canonical store unavailable",
			slog.String("store_name", m.canonical.Name()),
			slog.String("cid", id.String()))
	}

	for _, mirror := range m.mirrors {
		if !mirror.Available(ctx) {
			m.log.Debug("Mirror unavailable",
				slog.String("mirror_name", mirror.Name()),
				slog.String("cid", id.String()))
			continue
		}

		data, err := mirror.Get(ctx, id)
		if err == nil {
			m.log.Info("Served content from mirror",
				slog.String("mirror_name", mirror.Name()),
				slog.String("cid", id.String()),
				slog.Duration("duration", time.Since(start)))
			return data, nil
		}

		errs = append(errs, fmt.Errorf("%s: %w", mirror.Name(), err))
		m.log.Debug("Failed to fetch from mirror",
			slog.String("mirror_name", mirror.Name()),
			slog.String("cid", id.String()),
			"err", err)
	}

	m.log.Error("All backends failed to fetch content",
		slog.String("cid", id.String()),
		slog.Int("failed_backends", len(errs)),
		slog.Duration("duration", time.Since(start)))

	if len(errs) == 0 {
		return nil, interfaces.ErrBackendUnavailable
	}
	return nil, fmt.Errorf("all backends failed to fetch %s: %w", id, errors.Join(errs...))
}

// Available checks if the canonical store or any mirror is accessible.
func (m *MirroredStore) Available(ctx context.Context) bool {
	if m.canonical.Available(ctx) {
		return true
	}
	for _, mirror := range m.mirrors {
		if mirror.Available(ctx) {
			return true
		}
	}
	return false
}

// Name returns the name of this store.
func (m *MirroredStore) Name() string {
	return "mirrored-storage"
}

// LocationURI returns a combined URI listing the canonical store and all mirrors.
func (m *MirroredStore) LocationURI() string {
	locations := []string{m.canonical.LocationURI()}
	for _, mirror := range m.mirrors {
		locations = append(locations, mirror.LocationURI())
	}
	return "mirrored:[" + strings.Join(locations, ",") + "]"
}
