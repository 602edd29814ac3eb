package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	shell "github.com/ipfs/go-ipfs-api"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

// IPFSStore is the canonical attachment store backed by an IPFS node. Adding
// bytes pins them on the node and yields the CID that becomes the attachment
// reference on the registration record.
type IPFSStore struct {
	shell       *shell.Shell
	host        string
	port        string
	gatewayURL  string
	log         *slog.Logger
	locationURI string
}

// NewIPFSStore creates a new IPFS attachment store connected to the node API
// at the specified host and port. The gateway URL is used to render public
// retrieval links for stored content.
func NewIPFSStore(host, port, timeout, gatewayURL string, log *slog.Logger) (*IPFSStore, error) {
	apiURL := fmt.Sprintf("%s:%s", host, port)

	uri := fmt.Sprintf("ipfs://%s/?timeout=%s", apiURL, timeout)
	if gatewayURL != "" {
		uri += fmt.Sprintf("&gateway_url=%s", gatewayURL)
	}

	return &IPFSStore{
		shell:       shell.NewShell(apiURL),
		host:        host,
		port:        port,
		gatewayURL:  gatewayURL,
		log:         log,
		locationURI: uri,
	}, nil
}

// Put adds data to IPFS and returns its CID. Adding identical bytes twice
// yields the same CID. Returns ErrBackendUnavailable if the IPFS node is not
// accessible.
func (s *IPFSStore) Put(ctx context.Context, data []byte) (interfaces.ContentID, error) {
	start := time.Now()

	if !s.shell.IsUp() {
		s.log.Warn("IPFS node unavailable",
			slog.String("host", s.host),
			slog.String("port", s.port))
		return "", interfaces.ErrBackendUnavailable
	}

	cid, err := s.shell.Add(bytes.NewReader(data))
	if err != nil {
		s.log.Error("Failed to add data to IPFS",
			"err", err,
			slog.Duration("duration", time.Since(start)))
		return "", fmt.Errorf("failed to add data to IPFS: %w", err)
	}

	s.log.Debug("Pinned content in IPFS",
		slog.String("cid", cid),
		slog.Int("size", len(data)),
		slog.Duration("duration", time.Since(start)))

	return interfaces.ContentID(cid), nil
}

// Get retrieves data from IPFS by its CID. Returns ErrContentNotFound if the
// content doesn't exist or ErrBackendUnavailable if the IPFS node is not
// accessible.
func (s *IPFSStore) Get(ctx context.Context, id interfaces.ContentID) ([]byte, error) {
	start := time.Now()

	if !s.shell.IsUp() {
		s.log.Warn("IPFS node unavailable",
			slog.String("host", s.host),
			slog.String("port", s.port))
		return nil, interfaces.ErrBackendUnavailable
	}

	reader, err := s.shell.Cat(fmt.Sprintf("/ipfs/%s", id))
	if err != nil {
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "no link named") {
			s.log.Debug("Content not found in IPFS",
				slog.String("cid", id.String()),
				slog.Duration("duration", time.Since(start)))
			return nil, interfaces.ErrContentNotFound
		}

		s.log.Error("Failed to fetch data from IPFS",
			slog.String("cid", id.String()),
			"err", err,
			slog.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("failed to fetch data from IPFS: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		s.log.Error("Failed to read data from IPFS",
			slog.String("cid", id.String()),
			"err", err,
			slog.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("failed to read data from IPFS: %w", err)
	}

	s.log.Debug("Fetched content from IPFS",
		slog.String("cid", id.String()),
		slog.Int("size", len(data)),
		slog.Duration("duration", time.Since(start)))

	return data, nil
}

// Available checks if the IPFS node is accessible.
func (s *IPFSStore) Available(ctx context.Context) bool {
	return s.shell.IsUp()
}

// Name returns a unique identifier for this store.
func (s *IPFSStore) Name() string {
	return fmt.Sprintf("ipfs-%s-%s", s.host, s.port)
}

// LocationURI returns the URI that identifies this store.
func (s *IPFSStore) LocationURI() string {
	return s.locationURI
}

// GatewayURL returns the public retrieval URL for a stored content id.
func (s *IPFSStore) GatewayURL(id interfaces.ContentID) string {
	return id.GatewayURL(s.gatewayURL)
}
