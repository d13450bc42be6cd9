//go:build unit
// +build unit

package middleware

import (
	"context"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockTokenAuthenticator is a mock implementation of TokenAuthenticator
type MockTokenAuthenticator struct {
	mock.Mock
}

func (m *MockTokenAuthenticator) Authenticate(ctx context.Context, rawToken string) (*users.Principal, error) {
	args := m.Called(ctx, rawToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.Principal), args.Error(1)
}
