package registry

import (
	"context"
	"math/big"

	"github.com/stretchr/testify/mock"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

// MockRegistry mocks the interfaces.Registry interface
type MockRegistry struct {
	mock.Mock
}

// Register mocks the Register method
func (m *MockRegistry) Register(ctx context.Context, caller interfaces.Address, sub interfaces.Submission, feeWei *big.Int) (interfaces.RecordID, error) {
	args := m.Called(ctx, caller, sub, feeWei)
	return args.Get(0).(interfaces.RecordID), args.Error(1)
}

// Review mocks the Review method
func (m *MockRegistry) Review(ctx context.Context, caller interfaces.Address, id interfaces.RecordID, decision interfaces.ReviewDecision) error {
	args := m.Called(ctx, caller, id, decision)
	return args.Error(0)
}

// AllRecordIDs mocks the AllRecordIDs method
func (m *MockRegistry) AllRecordIDs(ctx context.Context) ([]interfaces.RecordID, error) {
	args := m.Called(ctx)
	return args.Get(0).([]interfaces.RecordID), args.Error(1)
}

// Record mocks the Record method
func (m *MockRegistry) Record(ctx context.Context, id interfaces.RecordID) (interfaces.Record, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(interfaces.Record), args.Error(1)
}

// IsPlateUsed mocks the IsPlateUsed method
func (m *MockRegistry) IsPlateUsed(ctx context.Context, plate string) (bool, error) {
	args := m.Called(ctx, plate)
	return args.Bool(0), args.Error(1)
}

// AdminAddress mocks the AdminAddress method
func (m *MockRegistry) AdminAddress(ctx context.Context) (interfaces.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).(interfaces.Address), args.Error(1)
}
