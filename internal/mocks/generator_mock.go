package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zhe.chen/hyprompt/internal/llm"
)

// MockGenerator is a mock type for the llm.Generator type
type MockGenerator struct {
	mock.Mock
}

// Generate provides a mock function with given fields: ctx, systemPrompt, userPrompt
func (_m *MockGenerator) Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	ret := _m.Called(ctx, systemPrompt, userPrompt)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string, string) string); ok {
		r0 = rf(ctx, systemPrompt, userPrompt)
	} else {
		r0 = ret.String(0)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, systemPrompt, userPrompt)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockGenerator creates a new instance of MockGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGenerator {
	m := &MockGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ llm.Generator = (*MockGenerator)(nil)

// MockImageDescriber is a mock type for the llm.ImageDescriber type
type MockImageDescriber struct {
	mock.Mock
}

// DescribeImage provides a mock function with given fields: ctx, data
func (_m *MockImageDescriber) DescribeImage(ctx context.Context, data []byte) (string, error) {
	ret := _m.Called(ctx, data)
	return ret.String(0), ret.Error(1)
}

var _ llm.ImageDescriber = (*MockImageDescriber)(nil)
