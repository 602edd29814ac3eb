package interfaces

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ContentID is a content-addressed identifier assigned by the attachment
// store. For the canonical IPFS backend this is the CID string; uploading
// identical bytes twice yields the same identifier.
type ContentID string

// String returns the identifier as a string.
func (id ContentID) String() string {
	return string(id)
}

// GatewayURL renders the public retrieval URL for the content behind a
// gateway, e.g. https://ipfs.io/ipfs/<cid>.
func (id ContentID) GatewayURL(gateway string) string {
	return strings.TrimSuffix(gateway, "/") + "/ipfs/" + string(id)
}

// AttachmentRef is the comma-joined triple of content identifiers stored on a
// record, in fixed order: front image, back image, supporting document.
type AttachmentRef string

// NewAttachmentRef joins the three content identifiers in their canonical
// order.
func NewAttachmentRef(front, back, document ContentID) AttachmentRef {
	return AttachmentRef(fmt.Sprintf("%s,%s,%s", front, back, document))
}

// Parts splits the reference back into its three identifiers.
func (ref AttachmentRef) Parts() (front, back, document ContentID, err error) {
	parts := strings.Split(string(ref), ",")
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("malformed attachment reference %q: expected 3 parts, got %d", ref, len(parts))
	}
	return ContentID(parts[0]), ContentID(parts[1]), ContentID(parts[2]), nil
}

// String returns the raw comma-joined reference.
func (ref AttachmentRef) String() string {
	return string(ref)
}

// StorageLocation is a parsed storage backend URI.
// Format: [scheme]://[auth@]host[:port][/path][?params]
type StorageLocation struct {
	Raw    string     // Original URI
	Scheme string     // Protocol
	Host   string     // Hostname
	Path   string     // Resource path
	Query  url.Values // Query parameters
	Auth   string     // Authentication info
}

// NewStorageLocation parses and validates a storage backend URI.
func NewStorageLocation(uri string) (StorageLocation, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return StorageLocation{}, fmt.Errorf("%w: %v", ErrInvalidLocationURI, err)
	}

	switch parsed.Scheme {
	case "ipfs", "file", "s3":
		// Valid scheme
	default:
		return StorageLocation{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidLocationURI, parsed.Scheme)
	}

	var auth string
	if parsed.User != nil {
		auth = parsed.User.String()
	}

	return StorageLocation{
		Raw:    uri,
		Scheme: parsed.Scheme,
		Host:   parsed.Host,
		Path:   parsed.Path,
		Query:  parsed.Query(),
		Auth:   auth,
	}, nil
}

// String returns the original URI string.
func (loc StorageLocation) String() string {
	return loc.Raw
}

var (
	// ErrContentNotFound is returned when requested content cannot be found
	// in the attachment store.
	ErrContentNotFound = errors.New("content not found")

	// ErrBackendUnavailable is returned when a storage backend is not
	// accessible. This could be due to network issues, authentication
	// failures, or service outages.
	ErrBackendUnavailable = errors.New("storage backend unavailable")

	// ErrInvalidLocationURI is returned when a storage location URI is
	// malformed or uses an unsupported scheme.
	ErrInvalidLocationURI = errors.New("invalid storage location URI")
)

// AttachmentStore provides content-addressed attachment storage. The store
// assigns the identifier; storing identical bytes twice is idempotent.
type AttachmentStore interface {
	// Put stores data and returns its content identifier.
	Put(ctx context.Context, data []byte) (ContentID, error)

	// Get retrieves data by content identifier.
	Get(ctx context.Context, id ContentID) ([]byte, error)

	// Available checks if the store is accessible.
	Available(ctx context.Context) bool

	// Name returns an identifier for logging.
	Name() string

	// LocationURI returns the URI identifying this store.
	LocationURI() string
}

// AttachmentMirror replicates attachment bytes under an identifier already
// assigned by the canonical store. Mirrors serve reads when the canonical
// store is slow or unreachable.
type AttachmentMirror interface {
	// PutAt stores data under the given identifier.
	PutAt(ctx context.Context, id ContentID, data []byte) error

	// Get retrieves data by content identifier.
	Get(ctx context.Context, id ContentID) ([]byte, error)

	// Available checks if the mirror is accessible.
	Available(ctx context.Context) bool

	// Name returns an identifier for logging.
	Name() string

	// LocationURI returns the URI identifying this mirror.
	LocationURI() string
}
