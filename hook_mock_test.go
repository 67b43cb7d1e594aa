package entx

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// ObservabilityHookMock records hook notifications with testify/mock.
type ObservabilityHookMock struct {
	mock.Mock
}

func NewObservabilityHookMock() *ObservabilityHookMock {
	return &ObservabilityHookMock{}
}

func (m *ObservabilityHookMock) OnProcessStart(operation string, metadata map[string]any) {
	m.Called(operation, metadata)
}

func (m *ObservabilityHookMock) OnProcessComplete(operation string, duration time.Duration, err error, metadata map[string]any) {
	m.Called(operation, duration, err, metadata)
}

func (m *ObservabilityHookMock) OnError(operation string, err error, metadata map[string]any) {
	m.Called(operation, err, metadata)
}

func (m *ObservabilityHookMock) OnFieldSkipped(operation, entityType, field, reason string) {
	m.Called(operation, entityType, field, reason)
}
