package submission

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

// Attachment size limits.
const (
	// MaxImageSize is the upper bound for the front and back vehicle photos.
	MaxImageSize = 5 << 20 // 5 MiB

	// MaxDocumentSize is the upper bound for the supporting document.
	MaxDocumentSize = 10 << 20 // 10 MiB
)

// MinManufactureYear is the oldest accepted manufacture year.
const MinManufactureYear = 1980

var (
	// Owner names are letters (including diacritics) and spaces only.
	nameRe = regexp.MustCompile(`^[\p{L}\s]+$`)

	// National id numbers are exactly 12 digits.
	nationalIDRe = regexp.MustCompile(`^\d{12}$`)

	// Mobile numbers are 10 digits with a known carrier prefix.
	phoneRe = regexp.MustCompile(`^(03|05|07|08|09)\d{8}$`)

	// Plates look like 29A-12345 or 30K1-1234, checked after normalization.
	plateRe = regexp.MustCompile(`^\d{2}[A-Z]{1,2}-\d{4,5}$`)
)

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every invalid field of a submission.
type ValidationErrors []FieldError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Error())
	}
	return "invalid submission: " + strings.Join(msgs, "; ")
}

// RegistrationRequest is a complete registration application as received from
// a client, before any of it has been persisted.
type RegistrationRequest struct {
	Owner   interfaces.OwnerInfo
	Vehicle interfaces.VehicleInfo

	FrontImage []byte
	BackImage  []byte
	Document   []byte
}

// Validate checks every field of the request and returns a ValidationErrors
// listing all problems, or nil when the request is acceptable.
func Validate(req RegistrationRequest) error {
	var errs ValidationErrors

	fail := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	name := strings.TrimSpace(req.Owner.FullName)
	if len(strings.Fields(name)) < 2 || !nameRe.MatchString(name) {
		fail("owner.full_name", "must be at least two words of letters only")
	}

	if !nationalIDRe.MatchString(req.Owner.NationalID) {
		fail("owner.national_id", "must be exactly 12 digits")
	} else if strings.HasPrefix(req.Owner.NationalID, "000") {
		fail("owner.national_id", "must not start with 000")
	}

	if len(strings.TrimSpace(req.Owner.Address)) < 10 {
		fail("owner.address", "must be at least 10 characters")
	}

	if !phoneRe.MatchString(req.Owner.Phone) {
		fail("owner.phone", "must be 10 digits starting with 03, 05, 07, 08 or 09")
	}

	plate := interfaces.NormalizePlate(req.Vehicle.Plate)
	if !plateRe.MatchString(plate) {
		fail("vehicle.plate", "must match the national plate format, e.g. 29A-12345")
	}

	if len(strings.TrimSpace(req.Vehicle.Brand)) < 2 {
		fail("vehicle.brand", "must be at least 2 characters")
	}
	if len(strings.TrimSpace(req.Vehicle.Model)) < 2 {
		fail("vehicle.model", "must be at least 2 characters")
	}
	if len(strings.TrimSpace(req.Vehicle.Color)) < 2 {
		fail("vehicle.color", "must be at least 2 characters")
	}

	currentYear := time.Now().Year()
	if int(req.Vehicle.ManufactureYear) < MinManufactureYear || int(req.Vehicle.ManufactureYear) > currentYear {
		fail("vehicle.manufacture_year", fmt.Sprintf("must be between %d and %d", MinManufactureYear, currentYear))
	}

	if len(req.FrontImage) == 0 {
		fail("attachments.front_image", "is required")
	} else if len(req.FrontImage) > MaxImageSize {
		fail("attachments.front_image", "must be at most 5 MiB")
	}

	if len(req.BackImage) == 0 {
		fail("attachments.back_image", "is required")
	} else if len(req.BackImage) > MaxImageSize {
		fail("attachments.back_image", "must be at most 5 MiB")
	}

	if len(req.Document) == 0 {
		fail("attachments.document", "is required")
	} else if len(req.Document) > MaxDocumentSize {
		fail("attachments.document", "must be at most 10 MiB")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
