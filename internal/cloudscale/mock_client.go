package cloudscale

import "context"

// MockClient is a mock implementation of FloatingIPAPI. Each method
// delegates to the corresponding Func field and records the call so
// tests can assert which API operations ran.
type MockClient struct {
	GetFunc    func(ctx context.Context, ip string) (*FloatingIP, error)
	CreateFunc func(ctx context.Context, req FloatingIPCreateRequest) (*FloatingIP, error)
	UpdateFunc func(ctx context.Context, ip string, req FloatingIPUpdateRequest) (*FloatingIP, error)
	DeleteFunc func(ctx context.Context, ip string) error

	GetCalls    []string
	CreateCalls []FloatingIPCreateRequest
	UpdateCalls []MockUpdateCall
	DeleteCalls []string
}

// MockUpdateCall records one UpdateFloatingIP invocation.
type MockUpdateCall struct {
	IP      string
	Request FloatingIPUpdateRequest
}

var _ FloatingIPAPI = (*MockClient)(nil)

func (m *MockClient) GetFloatingIP(ctx context.Context, ip string) (*FloatingIP, error) {
	m.GetCalls = append(m.GetCalls, ip)
	if m.GetFunc == nil {
		return nil, nil
	}
	return m.GetFunc(ctx, ip)
}

func (m *MockClient) CreateFloatingIP(ctx context.Context, req FloatingIPCreateRequest) (*FloatingIP, error) {
	m.CreateCalls = append(m.CreateCalls, req)
	return m.CreateFunc(ctx, req)
}

func (m *MockClient) UpdateFloatingIP(ctx context.Context, ip string, req FloatingIPUpdateRequest) (*FloatingIP, error) {
	m.UpdateCalls = append(m.UpdateCalls, MockUpdateCall{IP: ip, Request: req})
	return m.UpdateFunc(ctx, ip, req)
}

func (m *MockClient) DeleteFloatingIP(ctx context.Context, ip string) error {
	m.DeleteCalls = append(m.DeleteCalls, ip)
	if m.DeleteFunc == nil {
		return nil
	}
	return m.DeleteFunc(ctx, ip)
}

// MutatingCalls returns the total number of create, update and delete
// calls recorded.
func (m *MockClient) MutatingCalls() int {
	return len(m.CreateCalls) + len(m.UpdateCalls) + len(m.DeleteCalls)
}
