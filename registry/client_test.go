package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

func TestMapRevertError(t *testing.T) {
	cases := []struct {
		raw      string
		expected error
	}{
		{"execution reverted: License plate already registered", interfaces.ErrPlateAlreadyRegistered},
		{"execution reverted: Incorrect registration fee", interfaces.ErrWrongFee},
		{"execution reverted: Only admin can perform this action", interfaces.ErrNotAdmin},
		{"execution reverted: Vehicle does not exist", interfaces.ErrRecordNotFound},
		{"execution reverted: Vehicle already reviewed", interfaces.ErrAlreadyReviewed},
		{"execution reverted: Invalid status", interfaces.ErrInvalidDecision},
	}

	for _, c := range cases {
		err := mapRevertError(errors.New(c.raw))
		assert.ErrorIs(t, err, c.expected, c.raw)
		// The original revert message is preserved for logging.
		assert.Contains(t, err.Error(), c.raw)
	}
}

func TestMapRevertErrorPassthrough(t *testing.T) {
	assert.NoError(t, mapRevertError(nil))

	unknown := errors.New("connection refused")
	assert.Equal(t, unknown, mapRevertError(unknown))
}
