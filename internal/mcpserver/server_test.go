package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zhe.chen/hyprompt/internal/catalog"
	"github.com/zhe.chen/hyprompt/internal/mocks"
	"github.com/zhe.chen/hyprompt/internal/pipeline"
)

const sceneJSON = `{"short_description":"cat walks","camera_movement":"pan left"}`

func newTestClient(t *testing.T, gen *mocks.MockGenerator) *client.Client {
	t.Helper()
	srv := New(pipeline.NewEmulator(gen), catalog.ModeNormal, "test", nil)

	c, err := client.NewInProcessClient(srv.MCPServer())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	require.NoError(t, c.Start(ctx))

	_, err = c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			ClientInfo: mcp.Implementation{
				Name:    "hyprompt-test",
				Version: "1.0.0",
			},
		},
	})
	require.NoError(t, err)
	return c
}

func callTool(t *testing.T, c *client.Client, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	result, err := c.CallTool(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	})
	require.NoError(t, err)
	return result
}

func texts(result *mcp.CallToolResult) []string {
	var out []string
	for _, content := range result.Content {
		if tc, ok := mcp.AsTextContent(content); ok {
			out = append(out, tc.Text)
		}
	}
	return out
}

func TestListTools(t *testing.T) {
	c := newTestClient(t, mocks.NewMockGenerator(t))

	tools, err := c.ListTools(context.Background(), mcp.ListToolsRequest{})
	require.NoError(t, err)

	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{ToolGeneratePrompt, ToolDescribeScene}, names)
}

func TestGeneratePrompt(t *testing.T) {
	gen := mocks.NewMockGenerator(t)
	gen.On("Generate", mock.Anything, mock.Anything, "A cat walks across a table").Return(sceneJSON, nil).Once()
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("  Cat walks, pan left.  ", nil).Once()

	c := newTestClient(t, gen)
	result := callTool(t, c, ToolGeneratePrompt, map[string]any{
		"text":               "A cat walks across a table",
		"mode":               "master",
		"include_components": true,
	})

	require.False(t, result.IsError)
	out := texts(result)
	require.Len(t, out, 2)
	assert.Equal(t, "Cat walks, pan left.", out[0])

	var components map[string]any
	require.NoError(t, json.Unmarshal([]byte(out[1]), &components))
	assert.Equal(t, "pan left", components["camera_movement"])
}

func TestGeneratePrompt_InvalidMode(t *testing.T) {
	gen := mocks.NewMockGenerator(t)
	c := newTestClient(t, gen)

	result := callTool(t, c, ToolGeneratePrompt, map[string]any{
		"text": "A cat",
		"mode": "epic",
	})

	assert.True(t, result.IsError)
	assert.Contains(t, texts(result)[0], "invalid mode")
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestGeneratePrompt_MissingText(t *testing.T) {
	c := newTestClient(t, mocks.NewMockGenerator(t))

	result := callTool(t, c, ToolGeneratePrompt, map[string]any{})
	assert.True(t, result.IsError)
}

func TestGeneratePrompt_ModelFailure(t *testing.T) {
	gen := mocks.NewMockGenerator(t)
	gen.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("rate limited")).Once()

	c := newTestClient(t, gen)
	result := callTool(t, c, ToolGeneratePrompt, map[string]any{"text": "A cat"})

	assert.True(t, result.IsError)
	assert.Contains(t, texts(result)[0], "rate limited")
}

func TestDescribeScene_Fallback(t *testing.T) {
	gen := mocks.NewMockGenerator(t)
	gen.On("Generate", mock.Anything, mock.Anything, "A cat").Return("not json at all", nil).Once()

	c := newTestClient(t, gen)
	result := callTool(t, c, ToolDescribeScene, map[string]any{"text": "A cat"})

	require.False(t, result.IsError)
	var desc map[string]any
	require.NoError(t, json.Unmarshal([]byte(texts(result)[0]), &desc))
	assert.Equal(t, "not json at all", desc["short_description"])
	assert.Equal(t, "tracking shot", desc["camera_movement"])
}
