package review

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
	"github.com/tuanngo/vehicle-registration-backend/registry"
)

var (
	reviewAdmin     = mustAddress("0x1111111111111111111111111111111111111111")
	reviewSubmitter = mustAddress("0x2222222222222222222222222222222222222222")
)

func mustAddress(hex string) interfaces.Address {
	addr, err := interfaces.NewAddressFromHex(hex)
	if err != nil {
		panic(err)
	}
	return addr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedRecords(t *testing.T, reg *registry.MemoryRegistry, n int) []interfaces.RecordID {
	t.Helper()
	ctx := context.Background()
	ids := make([]interfaces.RecordID, 0, n)
	for i := 0; i < n; i++ {
		sub := interfaces.Submission{
			Owner: interfaces.OwnerInfo{
				FullName:   "Nguyen Van A",
				NationalID: "012345678901",
				Address:    "123 Tran Hung Dao, Hoan Kiem, Ha Noi",
				Phone:      "0912345678",
			},
			Vehicle: interfaces.VehicleInfo{
				Plate:           fmt.Sprintf("29A-%05d", 10000+i),
				Brand:           "Honda",
				Model:           "Wave Alpha",
				Color:           "Red",
				ManufactureYear: 2021,
			},
			AttachmentRef: interfaces.NewAttachmentRef("QmFront", "QmBack", "QmDoc"),
		}
		id, err := reg.Register(ctx, reviewSubmitter, sub, interfaces.RegistrationFeeWei())
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestReviewApprove(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewMemoryRegistry(reviewAdmin)
	ids := seedRecords(t, reg, 1)

	reviewer := NewReviewer(reg, discardLogger())

	record, err := reviewer.Review(ctx, reviewAdmin, ids[0], interfaces.DecisionApprove)
	require.NoError(t, err)
	assert.Equal(t, interfaces.StatusApproved, record.Status)
	assert.Equal(t, reviewAdmin, record.Reviewer)
}

func TestReviewRejectsNonAdmin(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewMemoryRegistry(reviewAdmin)
	ids := seedRecords(t, reg, 1)

	reviewer := NewReviewer(reg, discardLogger())

	_, err := reviewer.Review(ctx, reviewSubmitter, ids[0], interfaces.DecisionApprove)
	assert.ErrorIs(t, err, interfaces.ErrNotAdmin)

	record, err := reg.Record(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, interfaces.StatusPending, record.Status)
}

func TestReviewInvalidDecision(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewMemoryRegistry(reviewAdmin)
	ids := seedRecords(t, reg, 1)

	reviewer := NewReviewer(reg, discardLogger())

	_, err := reviewer.Review(ctx, reviewAdmin, ids[0], interfaces.ReviewDecision(9))
	assert.ErrorIs(t, err, interfaces.ErrInvalidDecision)
}

func TestReviewTerminalStates(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewMemoryRegistry(reviewAdmin)
	ids := seedRecords(t, reg, 1)

	reviewer := NewReviewer(reg, discardLogger())

	_, err := reviewer.Review(ctx, reviewAdmin, ids[0], interfaces.DecisionReject)
	require.NoError(t, err)

	_, err = reviewer.Review(ctx, reviewAdmin, ids[0], interfaces.DecisionApprove)
	assert.ErrorIs(t, err, interfaces.ErrAlreadyReviewed)
}

func TestPendingQueue(t *testing.T) {
	ctx := context.Background()
	reg := registry.NewMemoryRegistry(reviewAdmin)
	ids := seedRecords(t, reg, 3)

	reviewer := NewReviewer(reg, discardLogger())

	_, err := reviewer.Review(ctx, reviewAdmin, ids[1], interfaces.DecisionApprove)
	require.NoError(t, err)

	pending, err := reviewer.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, ids[0], pending[0].ID)
	assert.Equal(t, ids[2], pending[1].ID)
}
