package github

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/shurcooL/githubv4"
)

// MockGitHubV4Client is a mock implementation of the GitHubV4Client interface for testing.
type MockGitHubV4Client struct {
	mu sync.Mutex

	// ExpectedVariables is the map of variables Query expects to receive.
	ExpectedVariables map[string]interface{}
	// ResponseToReturn is marshalled into the query result.
	ResponseToReturn interface{}
	// MutationResponse is marshalled into the mutation result.
	MutationResponse interface{}
	// ErrorToReturn is returned by both Query and Mutate when set.
	ErrorToReturn error

	QueryCallCount int
	MutateCalls    []MutateCall

	// QueryFunc and MutateFunc override the canned behavior.
	QueryFunc  func(ctx context.Context, q interface{}, variables map[string]interface{}) error
	MutateFunc func(ctx context.Context, m interface{}, input githubv4.Input, variables map[string]interface{}) error
}

// MutateCall records one Mutate invocation
type MutateCall struct {
	Mutation interface{}
	Input    githubv4.Input
}

// Query mocks the Query method of the GitHubV4Client interface.
func (m *MockGitHubV4Client) Query(ctx context.Context, q interface{}, variables map[string]interface{}) error {
	m.mu.Lock()
	m.QueryCallCount++
	fn := m.QueryFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, q, variables)
	}
	if m.ErrorToReturn != nil {
		return m.ErrorToReturn
	}
	if m.ExpectedVariables != nil && !reflect.DeepEqual(m.ExpectedVariables, variables) {
		return fmt.Errorf("mock Query: variables mismatch. Expected %v, Got %v", m.ExpectedVariables, variables)
	}
	return fill(q, m.ResponseToReturn)
}

// Mutate mocks the Mutate method of the GitHubV4Client interface.
func (m *MockGitHubV4Client) Mutate(ctx context.Context, mutation interface{}, input githubv4.Input, variables map[string]interface{}) error {
	m.mu.Lock()
	m.MutateCalls = append(m.MutateCalls, MutateCall{Mutation: mutation, Input: input})
	fn := m.MutateFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, mutation, input, variables)
	}
	if m.ErrorToReturn != nil {
		return m.ErrorToReturn
	}
	return fill(mutation, m.MutationResponse)
}

// Calls returns a copy of the recorded mutations
func (m *MockGitHubV4Client) Calls() []MutateCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MutateCall, len(m.MutateCalls))
	copy(out, m.MutateCalls)
	return out
}

// SetResponse configures a successful query response
func (m *MockGitHubV4Client) SetResponse(resp interface{}) {
	m.ResponseToReturn = resp
	m.ErrorToReturn = nil
}

// SetError makes every call fail with err
func (m *MockGitHubV4Client) SetError(err error) {
	m.ErrorToReturn = err
	m.ResponseToReturn = nil
	m.MutationResponse = nil
}

// fill simulates how the real client populates the result: the response is
// marshalled to JSON and decoded into the target struct.
func fill(target, resp interface{}) error {
	if resp == nil {
		return nil
	}
	if reflect.ValueOf(target).Kind() != reflect.Ptr {
		return fmt.Errorf("mock: target must be a pointer, got %T", target)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("mock: failed to marshal response: %w", err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("mock: failed to unmarshal response: %w", err)
	}
	return nil
}
