// Package mcpserver exposes the prompt pipeline as MCP tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/zhe.chen/hyprompt/internal/catalog"
	"github.com/zhe.chen/hyprompt/internal/pipeline"
)

const (
	serverName = "hyprompt"

	ToolGeneratePrompt = "generate_prompt"
	ToolDescribeScene  = "describe_scene"
)

// Server wires an Emulator into an MCP server
type Server struct {
	emulator    *pipeline.Emulator
	defaultMode catalog.Mode
	logger      *zap.Logger
	mcp         *server.MCPServer
}

// New creates the MCP server and registers its tools
func New(emulator *pipeline.Emulator, defaultMode catalog.Mode, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		emulator:    emulator,
		defaultMode: defaultMode,
		logger:      logger.With(zap.String("component", "mcp")),
		mcp:         server.NewMCPServer(serverName, version, server.WithToolCapabilities(false)),
	}

	modes := make([]string, 0, len(catalog.Modes()))
	for _, m := range catalog.Modes() {
		modes = append(modes, string(m))
	}

	s.mcp.AddTool(mcp.NewTool(ToolGeneratePrompt,
		mcp.WithDescription("Turn a scene description or image path into a video generation prompt"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Scene text, or a path ending in .jpg/.jpeg/.png to treat as an image"),
		),
		mcp.WithString("mode",
			mcp.Description("Template detail level"),
			mcp.Enum(modes...),
		),
		mcp.WithBoolean("include_components",
			mcp.Description("Also return the intermediate structured description as JSON"),
		),
	), s.handleGeneratePrompt)

	s.mcp.AddTool(mcp.NewTool(ToolDescribeScene,
		mcp.WithDescription("Return the structured scene description for a text or image path"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Scene text, or a path ending in .jpg/.jpeg/.png to treat as an image"),
		),
	), s.handleDescribeScene)

	return s
}

// MCPServer returns the underlying mcp-go server
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// ServeStdio serves JSON-RPC on the given streams until ctx is done or stdin closes
func (s *Server) ServeStdio(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	s.logger.Info("serving MCP over stdio")
	return server.NewStdioServer(s.mcp).Listen(ctx, stdin, stdout)
}

func (s *Server) handleGeneratePrompt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	mode, err := catalog.ParseMode(request.GetString("mode", string(s.defaultMode)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	in := pipeline.ParseInput(text)
	if err := pipeline.ValidateInput(in); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.emulator.Generate(ctx, in, mode)
	if err != nil {
		s.logger.Error("generate_prompt failed", zap.Error(err))
		return mcp.NewToolResultErrorFromErr("prompt generation failed", err), nil
	}

	toolResult := mcp.NewToolResultText(result.Prompt)
	if request.GetBool("include_components", false) {
		components, err := json.Marshal(result.Components)
		if err != nil {
			return nil, fmt.Errorf("failed to encode components: %w", err)
		}
		toolResult.Content = append(toolResult.Content, mcp.NewTextContent(string(components)))
	}
	return toolResult, nil
}

func (s *Server) handleDescribeScene(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	in := pipeline.ParseInput(text)
	if err := pipeline.ValidateInput(in); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	desc, err := s.emulator.StructuredDescription(ctx, in)
	if err != nil {
		s.logger.Error("describe_scene failed", zap.Error(err))
		return mcp.NewToolResultErrorFromErr("scene description failed", err), nil
	}

	encoded, err := json.Marshal(desc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode description: %w", err)
	}
	return mcp.NewToolResultText(string(encoded)), nil
}
