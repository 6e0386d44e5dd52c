package oracle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/winnow/pkg/anthropic"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) CreateMessage(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*anthropic.MessageResponse), args.Error(1)
}

func TestOracle_Query_Success(t *testing.T) {
	mc := new(mockClient)
	mc.On("CreateMessage", mock.Anything, mock.Anything).Return(&anthropic.MessageResponse{
		ID:      "msg_1",
		Content: []anthropic.ContentBlock{{Type: "text", Text: "42"}},
	}, nil)

	o := New(mc, Config{Model: "claude-haiku-4-5-20251001", MaxTokens: 64})
	text, err := o.Query(context.Background(), "how many?")

	require.NoError(t, err)
	assert.Equal(t, "42", text)
	mc.AssertExpectations(t)
}

func TestOracle_Query_SkipsNonTextBlocks(t *testing.T) {
	mc := new(mockClient)
	mc.On("CreateMessage", mock.Anything, mock.Anything).Return(&anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{
			{Type: "thinking", Text: "reasoning"},
			{Type: "text", Text: "answer"},
		},
	}, nil)

	o := New(mc, Config{Model: "claude-haiku-4-5-20251001", MaxTokens: 64})
	text, err := o.Query(context.Background(), "q")

	require.NoError(t, err)
	assert.Equal(t, "answer", text)
}

func TestOracle_Query_EmptyContent(t *testing.T) {
	mc := new(mockClient)
	mc.On("CreateMessage", mock.Anything, mock.Anything).Return(&anthropic.MessageResponse{}, nil)

	o := New(mc, Config{Model: "claude-haiku-4-5-20251001", MaxTokens: 64})
	text, err := o.Query(context.Background(), "q")

	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestOracle_Query_PropagatesError(t *testing.T) {
	mc := new(mockClient)
	mc.On("CreateMessage", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	o := New(mc, Config{Model: "claude-haiku-4-5-20251001", MaxTokens: 64, MaxAttempts: 1})
	_, err := o.Query(context.Background(), "q")

	assert.Error(t, err)
}

func TestOracle_Func_AdaptsToOracleFunc(t *testing.T) {
	mc := new(mockClient)
	mc.On("CreateMessage", mock.Anything, mock.Anything).Return(&anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: "ok"}},
	}, nil)

	o := New(mc, Config{Model: "claude-haiku-4-5-20251001", MaxTokens: 64})
	fn := o.Func()
	text, err := fn(context.Background(), "q")

	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}
