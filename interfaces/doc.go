// Package interfaces defines the core types and interfaces of the vehicle
// registration registry. It is the contract between components and carries no
// implementation details: the registry state machine, the attachment store,
// and the orchestrators all speak in terms of this package.
//
// # Core Types
//
// Record is a single registration application with its owner and vehicle
// details, attachment reference, and review status. Records are created in
// StatusPending and move exactly once to StatusApproved or StatusRejected.
//
// Address is a 20-byte wallet or contract address, kept independent of
// go-ethereum so that non-chain implementations do not import it.
//
// ContentID is an attachment store content identifier (an IPFS CID for the
// canonical backend). AttachmentRef is the comma-joined triple of content
// identifiers stored on a record: front image, back image, supporting document.
//
// # Interfaces
//
// Registry is the record state machine. Two implementations exist: the
// authoritative in-process registry (registry.MemoryRegistry) and the on-chain
// contract client (registry.OnchainRegistryClient).
//
// AttachmentStore is a content-addressed blob store producing stable content
// identifiers; AttachmentMirror replicates bytes under an already-assigned
// identifier.
package interfaces
