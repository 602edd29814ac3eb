package storage

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

// DefaultIPFSGatewayURL is the public gateway used to render attachment URLs
// when the location URI doesn't name one.
const DefaultIPFSGatewayURL = "https://ipfs.io"

// StorageFactory creates attachment stores and mirrors from location URIs and
// assembles them into a mirrored configuration.
type StorageFactory struct {
	log *slog.Logger
}

// NewStorageFactory creates a new factory instance.
func NewStorageFactory(logger *slog.Logger) *StorageFactory {
	return &StorageFactory{log: logger}
}

// StoreFor creates a canonical attachment store from a location URI. Only the
// ipfs:// scheme can act as canonical store since it is the one that assigns
// content identifiers.
//
// URI format: ipfs://host:port/?timeout=30s&gateway_url=https://ipfs.io
func (sf *StorageFactory) StoreFor(loc interfaces.StorageLocation) (interfaces.AttachmentStore, error) {
	if loc.Scheme != "ipfs" {
		return nil, fmt.Errorf("%w: scheme %q cannot act as canonical store", interfaces.ErrInvalidLocationURI, loc.Scheme)
	}

	sf.log.Debug("Creating IPFS store", slog.String("uri", loc.String()))

	host, port := splitHostPort(loc.Host, "5001")

	timeout := loc.Query.Get("timeout")
	if timeout == "" {
		timeout = "30s"
	}

	gatewayURL := loc.Query.Get("gateway_url")
	if gatewayURL == "" {
		gatewayURL = DefaultIPFSGatewayURL
	}

	return NewIPFSStore(host, port, timeout, gatewayURL, sf.log)
}

// MirrorFor creates an attachment mirror from a location URI.
//
// Supported schemes:
//   - file:// - Local filesystem mirror
//   - s3:// - Amazon S3 or compatible object storage mirror
func (sf *StorageFactory) MirrorFor(loc interfaces.StorageLocation) (interfaces.AttachmentMirror, error) {
	switch loc.Scheme {
	case "file":
		return sf.createFileMirror(loc)
	case "s3":
		return sf.createS3Mirror(loc)
	default:
		return nil, fmt.Errorf("%w: scheme %q cannot act as mirror", interfaces.ErrInvalidLocationURI, loc.Scheme)
	}
}

// CreateMirroredStore builds a mirrored store from a list of location URIs.
// Exactly one URI must use the ipfs:// scheme; it becomes the canonical
// store. Every other URI becomes a mirror. Invalid mirror URIs are skipped
// with a warning; a missing or invalid canonical URI is an error.
func (sf *StorageFactory) CreateMirroredStore(locationURIs []string) (*MirroredStore, error) {
	var canonical interfaces.AttachmentStore
	var mirrors []interfaces.AttachmentMirror

	for _, uri := range locationURIs {
		loc, err := interfaces.NewStorageLocation(uri)
		if err != nil {
			sf.log.Warn("Skipping invalid storage location",
				"err", err,
				slog.String("locationURI", uri))
			continue
		}

		if loc.Scheme == "ipfs" {
			if canonical != nil {
				return nil, fmt.Errorf("multiple ipfs:// locations configured, expected exactly one")
			}
			canonical, err = sf.StoreFor(loc)
			if err != nil {
				return nil, err
			}
			continue
		}

		mirror, err := sf.MirrorFor(loc)
		if err != nil {
			sf.log.Warn("Failed to create attachment mirror",
				"err", err,
				slog.String("locationURI", uri))
			continue
		}
		mirrors = append(mirrors, mirror)
	}

	if canonical == nil {
		return nil, fmt.Errorf("no ipfs:// location configured, attachment storage requires one")
	}

	return NewMirroredStore(canonical, mirrors, sf.log), nil
}

// createFileMirror creates a file system mirror.
// URI format: file:///absolute/path/ or file://./relative/path/
func (sf *StorageFactory) createFileMirror(loc interfaces.StorageLocation) (interfaces.AttachmentMirror, error) {
	sf.log.Debug("Creating file mirror", slog.String("uri", loc.String()))

	path := loc.Path
	if loc.Host != "" {
		path = loc.Host + "/" + strings.TrimPrefix(path, "/")
	}
	if path == "" {
		return nil, fmt.Errorf("empty path in file URI: %s", loc.String())
	}

	return NewFileMirror(path, sf.log)
}

// createS3Mirror creates an S3 or S3-compatible mirror.
// URI format: s3://[ACCESS_KEY:SECRET_KEY@]bucket-name/path/?region=us-west-2&endpoint=custom.s3.com
func (sf *StorageFactory) createS3Mirror(loc interfaces.StorageLocation) (interfaces.AttachmentMirror, error) {
	sf.log.Debug("Creating S3 mirror", slog.String("uri", loc.String()))

	bucketName := loc.Host
	prefix := strings.TrimPrefix(loc.Path, "/")

	region := loc.Query.Get("region")
	if region == "" {
		region = "us-east-1"
	}
	endpoint := loc.Query.Get("endpoint")

	var accessKey, secretKey string
	if loc.Auth != "" {
		parts := strings.SplitN(loc.Auth, ":", 2)
		accessKey = parts[0]
		if len(parts) == 2 {
			secretKey = parts[1]
		}
		sf.log.Debug("Using embedded credentials for write access")
	} else {
		sf.log.Debug("No credentials provided, S3 bucket assumed to be public, write operations may fail")
	}

	return NewS3Mirror(bucketName, prefix, region, endpoint, accessKey, secretKey, sf.log)
}

func splitHostPort(hostport, defaultPort string) (host, port string) {
	host = hostport
	port = defaultPort
	if idx := strings.LastIndex(hostport, ":"); idx >= 0 {
		host = hostport[:idx]
		port = hostport[idx+1:]
	}
	return host, port
}
