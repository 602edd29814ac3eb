// Package storage implements attachment storage for registration paperwork.
//
// IPFS is the canonical backend: it assigns the content identifier (the CID)
// when bytes are first pinned, and those identifiers are what ends up on the
// registration record. Additional backends act as mirrors that replicate the
// bytes under the canonical identifier so reads keep working when the IPFS
// node is slow or down:
//
//   - FileMirror stores attachments on the local filesystem
//   - S3Mirror stores attachments in Amazon S3 or compatible object storage
//
// MirroredStore ties a canonical store and any number of mirrors together
// behind the interfaces.AttachmentStore contract. Writes go to the canonical
// store first and are then replicated best-effort; reads fall back through
// mirrors in order.
//
// StorageFactory builds all of the above from location URIs:
//
//	ipfs://localhost:5001/?timeout=30s&gateway_url=https://ipfs.io
//	file:///var/lib/vehicle-registry/attachments
//	s3://ACCESS_KEY:SECRET_KEY@bucket/prefix/?region=us-west-2
package storage
