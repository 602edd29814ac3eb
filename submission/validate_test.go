package submission

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

func validRequest() RegistrationRequest {
	return RegistrationRequest{
		Owner: interfaces.OwnerInfo{
			FullName:   "Nguyễn Văn A",
			NationalID: "012345678901",
			Address:    "123 Tran Hung Dao, Hoan Kiem, Ha Noi",
			Phone:      "0912345678",
		},
		Vehicle: interfaces.VehicleInfo{
			Plate:           "29A-12345",
			Brand:           "Honda",
			Model:           "Wave Alpha",
			Color:           "Red",
			ManufactureYear: 2021,
		},
		FrontImage: []byte("front"),
		BackImage:  []byte("back"),
		Document:   []byte("document"),
	}
}

func TestValidateAccepts(t *testing.T) {
	assert.NoError(t, Validate(validRequest()))

	// Diacritics, short plate series, and boundary years are all fine.
	req := validRequest()
	req.Owner.FullName = "Trần Thị Bích Hằng"
	req.Vehicle.Plate = "30k1-1234" // normalized before matching
	req.Vehicle.ManufactureYear = MinManufactureYear
	assert.NoError(t, Validate(req))

	req.Vehicle.ManufactureYear = uint16(time.Now().Year())
	assert.NoError(t, Validate(req))
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field] = fe.Message
	}
	return fields
}

func TestValidateOwnerFields(t *testing.T) {
	req := validRequest()
	req.Owner.FullName = "Madonna"           // single word
	req.Owner.NationalID = "000345678901"    // bad prefix
	req.Owner.Address = "short"              // too short
	req.Owner.Phone = "0112345678"           // unknown prefix

	fields := fieldErrors(t, Validate(req))
	assert.Contains(t, fields, "owner.full_name")
	assert.Contains(t, fields, "owner.national_id")
	assert.Contains(t, fields, "owner.address")
	assert.Contains(t, fields, "owner.phone")
}

func TestValidateNationalID(t *testing.T) {
	cases := []string{"12345", "0123456789012", "01234567890a", ""}
	for _, id := range cases {
		req := validRequest()
		req.Owner.NationalID = id
		fields := fieldErrors(t, Validate(req))
		assert.Contains(t, fields, "owner.national_id", "id %q", id)
	}
}

func TestValidateNameRejectsDigitsAndSymbols(t *testing.T) {
	for _, name := range []string{"Nguyen Van 4", "Nguyen V@n A", "  "} {
		req := validRequest()
		req.Owner.FullName = name
		fields := fieldErrors(t, Validate(req))
		assert.Contains(t, fields, "owner.full_name", "name %q", name)
	}
}

func TestValidatePlate(t *testing.T) {
	valid := []string{"29A-12345", "30K1-1234", "  51f-98765 "}
	for _, plate := range valid {
		req := validRequest()
		req.Vehicle.Plate = plate
		assert.NoError(t, Validate(req), "plate %q", plate)
	}

	invalid := []string{"29-12345", "29ABC-12345", "29A12345", "29A-123", "29A-123456", "A9A-12345", ""}
	for _, plate := range invalid {
		req := validRequest()
		req.Vehicle.Plate = plate
		fields := fieldErrors(t, Validate(req))
		assert.Contains(t, fields, "vehicle.plate", "plate %q", plate)
	}
}

func TestValidateVehicleFields(t *testing.T) {
	req := validRequest()
	req.Vehicle.Brand = "H"
	req.Vehicle.Model = " "
	req.Vehicle.Color = "R"
	req.Vehicle.ManufactureYear = 1979

	fields := fieldErrors(t, Validate(req))
	assert.Contains(t, fields, "vehicle.brand")
	assert.Contains(t, fields, "vehicle.model")
	assert.Contains(t, fields, "vehicle.color")
	assert.Contains(t, fields, "vehicle.manufacture_year")

	req = validRequest()
	req.Vehicle.ManufactureYear = uint16(time.Now().Year() + 1)
	fields = fieldErrors(t, Validate(req))
	assert.Contains(t, fields, "vehicle.manufacture_year")
}

func TestValidateAttachments(t *testing.T) {
	req := validRequest()
	req.FrontImage = nil
	req.BackImage = bytes.Repeat([]byte{0xff}, MaxImageSize+1)
	req.Document = bytes.Repeat([]byte{0xff}, MaxDocumentSize+1)

	fields := fieldErrors(t, Validate(req))
	assert.Contains(t, fields, "attachments.front_image")
	assert.Contains(t, fields, "attachments.back_image")
	assert.Contains(t, fields, "attachments.document")

	// Boundary sizes pass.
	req = validRequest()
	req.FrontImage = bytes.Repeat([]byte{0xff}, MaxImageSize)
	req.Document = bytes.Repeat([]byte{0xff}, MaxDocumentSize)
	assert.NoError(t, Validate(req))
}

func TestValidationErrorsMessage(t *testing.T) {
	req := validRequest()
	req.Owner.Phone = "123"
	err := Validate(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner.phone")
}
