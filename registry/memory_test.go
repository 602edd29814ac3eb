package registry

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

var (
	testAdmin     = mustAddress("0x1111111111111111111111111111111111111111")
	testSubmitter = mustAddress("0x2222222222222222222222222222222222222222")
	testOther     = mustAddress("0x3333333333333333333333333333333333333333")
)

func mustAddress(hex string) interfaces.Address {
	addr, err := interfaces.NewAddressFromHex(hex)
	if err != nil {
		panic(err)
	}
	return addr
}

func testSubmission(plate string) interfaces.Submission {
	return interfaces.Submission{
		Owner: interfaces.OwnerInfo{
			FullName:   "Nguyen Van A",
			NationalID: "012345678901",
			Address:    "123 Tran Hung Dao, Hoan Kiem, Ha Noi",
			Phone:      "0912345678",
		},
		Vehicle: interfaces.VehicleInfo{
			Plate:           plate,
			Brand:           "Honda",
			Model:           "Wave Alpha",
			Color:           "Red",
			ManufactureYear: 2021,
		},
		AttachmentRef: interfaces.NewAttachmentRef("QmFront", "QmBack", "QmDoc"),
	}
}

func TestRegisterLifecycle(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry(testAdmin)

	id, err := r.Register(ctx, testSubmitter, testSubmission("29A-12345"), interfaces.RegistrationFeeWei())
	require.NoError(t, err)
	assert.Equal(t, interfaces.RecordID(1), id)

	record, err := r.Record(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, interfaces.StatusPending, record.Status)
	assert.Equal(t, testSubmitter, record.Submitter)
	assert.True(t, record.Reviewer.IsZero())
	assert.Equal(t, "29A-12345", record.Vehicle.Plate)
	assert.Equal(t, "Nguyen Van A", record.Owner.FullName)

	used, err := r.IsPlateUsed(ctx, "29A-12345")
	require.NoError(t, err)
	assert.True(t, used)

	require.NoError(t, r.Review(ctx, testAdmin, id, interfaces.DecisionApprove))

	record, err = r.Record(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, interfaces.StatusApproved, record.Status)
	assert.Equal(t, testAdmin, record.Reviewer)
}

func TestRegisterSequentialIDs(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry(testAdmin)

	for i := 1; i <= 5; i++ {
		plate := fmt.Sprintf("29A-1234%d", i)
		id, err := r.Register(ctx, testSubmitter, testSubmission(plate), interfaces.RegistrationFeeWei())
		require.NoError(t, err)
		assert.Equal(t, interfaces.RecordID(i), id)
	}

	ids, err := r.AllRecordIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []interfaces.RecordID{1, 2, 3, 4, 5}, ids)
}

func TestRegisterWrongFee(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry(testAdmin)

	cases := []*big.Int{
		nil,
		big.NewInt(0),
		big.NewInt(1),
		new(big.Int).Sub(interfaces.RegistrationFeeWei(), big.NewInt(1)),
		new(big.Int).Add(interfaces.RegistrationFeeWei(), big.NewInt(1)),
	}
	for _, fee := range cases {
		_, err := r.Register(ctx, testSubmitter, testSubmission("29A-12345"), fee)
		assert.ErrorIs(t, err, interfaces.ErrWrongFee)
	}

	// Refused registrations leave no trace.
	ids, err := r.AllRecordIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	used, err := r.IsPlateUsed(ctx, "29A-12345")
	require.NoError(t, err)
	assert.False(t, used)
}

func TestRegisterDuplicatePlate(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry(testAdmin)

	_, err := r.Register(ctx, testSubmitter, testSubmission("29A-12345"), interfaces.RegistrationFeeWei())
	require.NoError(t, err)

	_, err = r.Register(ctx, testOther, testSubmission("29A-12345"), interfaces.RegistrationFeeWei())
	assert.ErrorIs(t, err, interfaces.ErrPlateAlreadyRegistered)

	// Uniqueness is case- and whitespace-insensitive.
	_, err = r.Register(ctx, testOther, testSubmission("  29a-12345 "), interfaces.RegistrationFeeWei())
	assert.ErrorIs(t, err, interfaces.ErrPlateAlreadyRegistered)

	// A refused duplicate does not consume an id.
	id, err := r.Register(ctx, testOther, testSubmission("30K1-54321"), interfaces.RegistrationFeeWei())
	require.NoError(t, err)
	assert.Equal(t, interfaces.RecordID(2), id)
}

func TestPlateStaysReservedAfterRejection(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry(testAdmin)

	id, err := r.Register(ctx, testSubmitter, testSubmission("29A-12345"), interfaces.RegistrationFeeWei())
	require.NoError(t, err)
	require.NoError(t, r.Review(ctx, testAdmin, id, interfaces.DecisionReject))

	used, err := r.IsPlateUsed(ctx, "29A-12345")
	require.NoError(t, err)
	assert.True(t, used)

	_, err = r.Register(ctx, testSubmitter, testSubmission("29A-12345"), interfaces.RegistrationFeeWei())
	assert.ErrorIs(t, err, interfaces.ErrPlateAlreadyRegistered)
}

func TestReleaseRejectedPlates(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistryWithConfig(MemoryRegistryConfig{
		Admin:                 testAdmin,
		ReleaseRejectedPlates: true,
	})

	id, err := r.Register(ctx, testSubmitter, testSubmission("29A-12345"), interfaces.RegistrationFeeWei())
	require.NoError(t, err)
	require.NoError(t, r.Review(ctx, testAdmin, id, interfaces.DecisionReject))

	used, err := r.IsPlateUsed(ctx, "29A-12345")
	require.NoError(t, err)
	assert.False(t, used)

	// The plate can be registered again; the old record keeps its id.
	id2, err := r.Register(ctx, testSubmitter, testSubmission("29A-12345"), interfaces.RegistrationFeeWei())
	require.NoError(t, err)
	assert.Equal(t, interfaces.RecordID(2), id2)

	old, err := r.Record(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, interfaces.StatusRejected, old.Status)
}

func TestReviewAccessControl(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry(testAdmin)

	id, err := r.Register(ctx, testSubmitter, testSubmission("29A-12345"), interfaces.RegistrationFeeWei())
	require.NoError(t, err)

	// Neither the submitter nor a bystander may review, not even the zero
	// address.
	assert.ErrorIs(t, r.Review(ctx, testSubmitter, id, interfaces.DecisionApprove), interfaces.ErrNotAdmin)
	assert.ErrorIs(t, r.Review(ctx, testOther, id, interfaces.DecisionApprove), interfaces.ErrNotAdmin)
	assert.ErrorIs(t, r.Review(ctx, interfaces.Address{}, id, interfaces.DecisionApprove), interfaces.ErrNotAdmin)

	record, err := r.Record(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, interfaces.StatusPending, record.Status)
}

func TestReviewErrors(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry(testAdmin)

	id, err := r.Register(ctx, testSubmitter, testSubmission("29A-12345"), interfaces.RegistrationFeeWei())
	require.NoError(t, err)

	assert.ErrorIs(t, r.Review(ctx, testAdmin, 999, interfaces.DecisionApprove), interfaces.ErrRecordNotFound)
	assert.ErrorIs(t, r.Review(ctx, testAdmin, id, interfaces.ReviewDecision(0)), interfaces.ErrInvalidDecision)
	assert.ErrorIs(t, r.Review(ctx, testAdmin, id, interfaces.ReviewDecision(7)), interfaces.ErrInvalidDecision)

	require.NoError(t, r.Review(ctx, testAdmin, id, interfaces.DecisionReject))

	// Terminal states admit no further transitions, in either direction.
	assert.ErrorIs(t, r.Review(ctx, testAdmin, id, interfaces.DecisionApprove), interfaces.ErrAlreadyReviewed)
	assert.ErrorIs(t, r.Review(ctx, testAdmin, id, interfaces.DecisionReject), interfaces.ErrAlreadyReviewed)

	record, err := r.Record(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, interfaces.StatusRejected, record.Status)
}

func TestRecordNotFound(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry(testAdmin)

	_, err := r.Record(ctx, 1)
	assert.ErrorIs(t, err, interfaces.ErrRecordNotFound)
}

func TestAdminAddress(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry(testAdmin)

	admin, err := r.AdminAddress(ctx)
	require.NoError(t, err)
	assert.Equal(t, testAdmin, admin)
}

func TestRegistryEvents(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry(testAdmin)
	events := r.Subscribe()

	id, err := r.Register(ctx, testSubmitter, testSubmission("29A-12345"), interfaces.RegistrationFeeWei())
	require.NoError(t, err)
	require.NoError(t, r.Review(ctx, testAdmin, id, interfaces.DecisionApprove))

	created := <-events
	assert.Equal(t, interfaces.EventRecordCreated, created.Kind)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, interfaces.StatusPending, created.Status)
	assert.Equal(t, testSubmitter, created.Actor)

	reviewed := <-events
	assert.Equal(t, interfaces.EventRecordReviewed, reviewed.Kind)
	assert.Equal(t, id, reviewed.ID)
	assert.Equal(t, interfaces.StatusApproved, reviewed.Status)
	assert.Equal(t, testAdmin, reviewed.Actor)
}

func TestConcurrentRegistrations(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRegistry(testAdmin)

	const n = 50
	var wg sync.WaitGroup
	idCh := make(chan interfaces.RecordID, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			plate := fmt.Sprintf("29A-%05d", 10000+i)
			id, err := r.Register(ctx, testSubmitter, testSubmission(plate), interfaces.RegistrationFeeWei())
			if err == nil {
				idCh <- id
			}
		}(i)
	}
	wg.Wait()
	close(idCh)

	seen := make(map[interfaces.RecordID]bool)
	for id := range idCh {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	ids, err := r.AllRecordIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, n)
	for i, id := range ids {
		assert.Equal(t, interfaces.RecordID(i+1), id)
	}
}
