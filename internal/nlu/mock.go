package nlu

import "context"

// MockClient returns canned responses, for tests and for running the
// server without an API key.
type MockClient struct {
	// Reply is returned when Err is nil.
	Reply string
	Err   error

	// Requests records everything sent through the client.
	Requests []Request
}

// NewMockClient creates a mock that always answers with reply.
func NewMockClient(reply string) *MockClient {
	return &MockClient{Reply: reply}
}

// GenerateText implements Client.
func (m *MockClient) GenerateText(_ context.Context, req Request) (string, error) {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}
