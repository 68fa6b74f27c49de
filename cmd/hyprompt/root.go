package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zhe.chen/hyprompt/internal/catalog"
	"github.com/zhe.chen/hyprompt/internal/config"
	"github.com/zhe.chen/hyprompt/internal/llm"
	"github.com/zhe.chen/hyprompt/internal/logger"
	"github.com/zhe.chen/hyprompt/internal/output"
	"github.com/zhe.chen/hyprompt/internal/pipeline"
	"github.com/zhe.chen/hyprompt/pkg/types"
)

// app holds the collaborators commands are built from; tests swap them out
type app struct {
	newRegistry func(logger *zap.Logger) *llm.Registry
	newLogger   func(cfg types.LogConfig) (*zap.Logger, error)
}

func newApp() *app {
	return &app{
		newRegistry: newRegistry,
		newLogger:   logger.New,
	}
}

type globalOptions struct {
	configPath string
	model      string
	mode       string
	verbose    bool
}

type generateOptions struct {
	text           string
	image          string
	output         string
	format         string
	saveComponents bool
}

func newRootCmd(a *app) *cobra.Command {
	global := &globalOptions{}
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "hyprompt",
		Short: "Hunyuan-style prompt generator for video generation",
		Long: `hyprompt - turn text or an image into a video generation prompt.

The input is first turned into a structured scene description by the model,
then rewritten into a templated prompt for the selected mode.

Examples:
  hyprompt --text "A cat walks across a table"
  hyprompt -t "A cat walks across a table" --mode master --format json
  hyprompt --image frame.png -o out/prompt.json --format json --save-components`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, global, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&global.configPath, "config", config.DefaultPath, "Path to configuration file")
	pf.StringVar(&global.model, "model", "", "LLM model to use: gpt-4, gpt-3.5-turbo, claude (default from config, gpt-4)")
	pf.StringVar(&global.mode, "mode", "", "Prompt generation mode: normal or master (default from config, normal)")
	pf.BoolVarP(&global.verbose, "verbose", "v", false, "Enable debug logging")

	f := cmd.Flags()
	f.StringVarP(&opts.text, "text", "t", "", "Text input to generate prompt from")
	f.StringVarP(&opts.image, "image", "i", "", "Path to input image")
	f.StringVarP(&opts.output, "output", "o", "", "Output file path (default: prints to console)")
	f.StringVar(&opts.format, "format", string(types.FormatText), "Output format: text or json")
	f.BoolVar(&opts.saveComponents, "save-components", false, "Save intermediate structured components")

	cmd.AddCommand(newServeCmd(a, global))
	cmd.AddCommand(newCatalogCmd(global))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, global *globalOptions, opts *generateOptions) error {
	// Validate inputs before anything touches the network
	if opts.text == "" && opts.image == "" {
		return errors.New("must provide either --text or --image input")
	}
	if opts.text != "" && opts.image != "" {
		return errors.New("cannot provide both text and image input")
	}

	format := types.OutputFormat(strings.ToLower(opts.format))
	if format != types.FormatText && format != types.FormatJSON {
		return fmt.Errorf("invalid --format %q (valid: text, json)", opts.format)
	}

	env, err := setup(a, global)
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Sync() }()

	var in pipeline.Input
	if opts.image != "" {
		data, err := os.ReadFile(opts.image)
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}
		in = pipeline.ImageInput(data)
	} else {
		in = pipeline.ParseInput(opts.text)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Generating %s mode prompt...\n", env.mode)
	result, err := env.emulator.Generate(cmd.Context(), in, env.mode)
	if err != nil {
		return fmt.Errorf("error during prompt generation: %w", err)
	}

	var components any
	if opts.saveComponents {
		components = result.Components
	}

	return output.Save(result.Prompt, output.Options{
		Path:       opts.output,
		Format:     format,
		Components: components,
		Stdout:     cmd.OutOrStdout(),
	})
}

// environment is everything a command needs to run the pipeline
type environment struct {
	config   *types.Config
	logger   *zap.Logger
	mode     catalog.Mode
	model    string
	emulator *pipeline.Emulator
}

func setup(a *app, global *globalOptions) (*environment, error) {
	cfg, err := config.Load(global.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if global.verbose {
		cfg.Log.Level = "debug"
	}

	log, err := a.newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	modeName := cfg.Pipeline.Mode
	if global.mode != "" {
		modeName = global.mode
	}
	mode, err := catalog.ParseMode(modeName)
	if err != nil {
		return nil, err
	}

	model := cfg.LLM.Model
	if global.model != "" {
		model = global.model
	}

	generator, err := a.newRegistry(log).New(model, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("error creating LLM client: %w", err)
	}
	log.Debug("LLM client ready", zap.String("model", model))

	emulator := pipeline.NewEmulator(generator,
		pipeline.WithLogger(log),
		pipeline.WithJSONRepair(cfg.Pipeline.RepairJSON),
	)

	return &environment{
		config:   cfg,
		logger:   log,
		mode:     mode,
		model:    model,
		emulator: emulator,
	}, nil
}
