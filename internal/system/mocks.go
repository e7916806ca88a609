package system

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCommandExecutor is a mock implementation of the CommandExecutor interface.
type MockCommandExecutor struct {
	mock.Mock
}

func (m *MockCommandExecutor) RunCommand(name string, arg ...string) (string, error) {
	var argsSlice []interface{}
	argsSlice = append(argsSlice, name)
	for _, a := range arg {
		argsSlice = append(argsSlice, a)
	}

	args := m.Called(argsSlice...)
	return args.String(0), args.Error(1)
}

func (m *MockCommandExecutor) RunCommandContext(ctx context.Context, name string, arg ...string) (string, error) {
	return m.RunCommand(name, arg...)
}

func (m *MockCommandExecutor) LookPath(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}
