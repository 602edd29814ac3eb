package storage

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
)

// MockAttachmentStore mocks the interfaces.AttachmentStore interface
type MockAttachmentStore struct {
	mock.Mock
}

// Put mocks the Put method
func (m *MockAttachmentStore) Put(ctx context.Context, data []byte) (interfaces.ContentID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(interfaces.ContentID), args.Error(1)
}

// Get mocks the Get method
func (m *MockAttachmentStore) Get(ctx context.Context, id interfaces.ContentID) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Available mocks the Available method
func (m *MockAttachmentStore) Available(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

// Name mocks the Name method
func (m *MockAttachmentStore) Name() string {
	args := m.Called()
	return args.String(0)
}

// LocationURI mocks the LocationURI method
func (m *MockAttachmentStore) LocationURI() string {
	args := m.Called()
	return args.String(0)
}

// MockAttachmentMirror mocks the interfaces.AttachmentMirror interface
type MockAttachmentMirror struct {
	mock.Mock
}

// PutAt mocks the PutAt method
func (m *MockAttachmentMirror) PutAt(ctx context.Context, id interfaces.ContentID, data []byte) error {
	args := m.Called(ctx, id, data)
	return args.Error(0)
}

// Get mocks the Get method
func (m *MockAttachmentMirror) Get(ctx context.Context, id interfaces.ContentID) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Available mocks the Available method
func (m *MockAttachmentMirror) Available(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

// Name mocks the Name method
func (m *MockAttachmentMirror) Name() string {
	args := m.Called()
	return args.String(0)
}

// LocationURI mocks the LocationURI method
func (m *MockAttachmentMirror) LocationURI() string {
	args := m.Called()
	return args.String(0)
}
