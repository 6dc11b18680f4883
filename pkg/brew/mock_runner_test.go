package brew

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Output(ctx context.Context, args ...string) ([]byte, error) {
	ret := m.Called(ctx, args)
	var out []byte
	if b := ret.Get(0); b != nil {
		out = b.([]byte)
	}
	return out, ret.Error(1)
}

func (m *MockRunner) Stream(ctx context.Context, args ...string) error {
	ret := m.Called(ctx, args)
	return ret.Error(0)
}
