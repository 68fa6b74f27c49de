package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zhe.chen/hyprompt/internal/mcpserver"
)

func newServeCmd(a *app, global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the prompt pipeline as MCP tools over stdio",
		Long: `Serve generate_prompt and describe_scene as MCP tools.

JSON-RPC flows over stdin/stdout; logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(a, global)
			if err != nil {
				return err
			}
			defer func() { _ = env.logger.Sync() }()

			env.logger.Info("starting MCP server", zap.String("model", env.model), zap.String("mode", string(env.mode)))
			srv := mcpserver.New(env.emulator, env.mode, version, env.logger)
			return srv.ServeStdio(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
