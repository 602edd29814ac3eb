package interfaces

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Address represents a 20-byte Ethereum wallet or contract address.
type Address [20]byte

// NewAddressFromBytes creates an address from a raw 20-byte slice.
func NewAddressFromBytes(addr []byte) (Address, error) {
	if len(addr) != 20 {
		return Address{}, errors.New("invalid address length: must be 20 bytes")
	}

	var res Address
	copy(res[:], addr)
	return res, nil
}

// NewAddressFromHex creates an address from a hex string, with or without the
// 0x prefix.
func NewAddressFromHex(addr string) (Address, error) {
	clean := strings.TrimPrefix(addr, "0x")
	if len(clean) != 40 {
		return Address{}, errors.New("invalid address length: hex string must be 40 characters")
	}

	addrBytes, err := hex.DecodeString(clean)
	if err != nil {
		return Address{}, fmt.Errorf("invalid hex format: %w", err)
	}

	return NewAddressFromBytes(addrBytes)
}

// String returns the 0x-prefixed lowercase hex representation.
func (addr Address) String() string {
	return "0x" + hex.EncodeToString(addr[:])
}

// Bytes returns the raw 20-byte address.
func (addr Address) Bytes() []byte {
	return addr[:]
}

// Equal compares two addresses for equality.
func (addr Address) Equal(other Address) bool {
	return addr == other
}

// IsZero reports whether the address is the zero address. The zero address is
// the "unset" reviewer value on pending records.
func (addr Address) IsZero() bool {
	return addr == Address{}
}

// RecordID identifies a registration record. IDs are assigned sequentially
// starting at 1 and are never reused.
type RecordID uint64

// Status is the review state of a registration record. The numeric values
// match the on-chain enum.
type Status uint8

const (
	// StatusPending is the initial state of every record.
	StatusPending Status = iota
	// StatusApproved is a terminal state set by the admin.
	StatusApproved
	// StatusRejected is a terminal state set by the admin.
	StatusRejected
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Terminal reports whether the status admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// ReviewDecision is the admin's verdict on a pending record. The numeric
// values match the target status in the on-chain enum.
type ReviewDecision uint8

const (
	// DecisionApprove moves a pending record to StatusApproved.
	DecisionApprove ReviewDecision = 1
	// DecisionReject moves a pending record to StatusRejected.
	DecisionReject ReviewDecision = 2
)

// Valid reports whether the decision is one of the two known verdicts.
func (d ReviewDecision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// Status returns the record status the decision resolves to.
func (d ReviewDecision) Status() Status {
	switch d {
	case DecisionApprove:
		return StatusApproved
	case DecisionReject:
		return StatusRejected
	default:
		return StatusPending
	}
}

// OwnerInfo holds the applicant's identity details. Immutable after creation.
type OwnerInfo struct {
	FullName   string `json:"full_name"`
	NationalID string `json:"national_id"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
}

// VehicleInfo holds the vehicle details. Immutable after creation. Plate is
// stored normalized (trimmed, uppercased) and doubles as the uniqueness key.
type VehicleInfo struct {
	Plate           string `json:"plate"`
	Brand           string `json:"brand"`
	Model           string `json:"model"`
	Color           string `json:"color"`
	ManufactureYear uint16 `json:"manufacture_year"`
}

// NormalizePlate returns the canonical form of a license plate used as the
// registry uniqueness key.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// Record is a single registration application as stored by the registry.
type Record struct {
	ID            RecordID      `json:"id"`
	Owner         OwnerInfo     `json:"owner"`
	Vehicle       VehicleInfo   `json:"vehicle"`
	AttachmentRef AttachmentRef `json:"attachment_ref"`
	Status        Status        `json:"status"`

	// Submitter is the identity that created the record.
	Submitter Address `json:"submitter"`

	// Reviewer is the identity that resolved the record. It is the zero
	// address if and only if Status is StatusPending.
	Reviewer Address `json:"reviewer"`
}
