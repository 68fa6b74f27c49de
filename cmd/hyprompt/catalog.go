package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhe.chen/hyprompt/internal/catalog"
)

func newCatalogCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the rendered prompt template for a mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			modeName := global.mode
			if modeName == "" {
				modeName = string(catalog.ModeNormal)
			}
			mode, err := catalog.ParseMode(modeName)
			if err != nil {
				return err
			}

			rendered, err := catalog.Render(mode)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "camera movements:    %s\n", strings.Join(catalog.CameraMovements(), ", "))
			fmt.Fprintf(w, "visual styles:       %s\n", strings.Join(catalog.VisualStyles(), ", "))
			fmt.Fprintf(w, "lighting conditions: %s\n\n", strings.Join(catalog.LightingConditions(), ", "))
			fmt.Fprint(w, rendered)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hyprompt %s\n", version)
		},
	}
}
