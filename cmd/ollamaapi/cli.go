package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ollamaapi/internal/config"
	"ollamaapi/internal/manager"
)

// flags holds command-line overrides. Only flags the user set are applied.
type flags struct {
	configPath   string
	host         string
	port         int
	defaultModel string
	debug        bool
	autoStart    bool
	autoInstall  bool
}

func newRootCmd() *cobra.Command { return newRootCmdWith(&flags{}) }

// newRootCmdWith builds the command tree with flag values bound to f.
func newRootCmdWith(f *flags) *cobra.Command {
	root := &cobra.Command{
		Use:           "ollamaapi",
		Short:         "HTTP API in front of a local Ollama daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, f)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "Path to config file (yaml|yml|json|toml)")
	pf.StringVar(&f.host, "host", "", "Listen host (defaults HOST or 0.0.0.0)")
	pf.IntVar(&f.port, "port", 0, "Listen port (defaults PORT or 5000)")
	pf.StringVar(&f.defaultModel, "default-model", "", "Model used when a request omits one (defaults DEFAULT_MODEL)")
	pf.BoolVar(&f.debug, "debug", false, "Debug logging with console output (defaults DEBUG)")
	pf.BoolVar(&f.autoStart, "auto-start", true, "Start the Ollama daemon if it is not running (defaults AUTO_START)")
	pf.BoolVar(&f.autoInstall, "auto-install", false, "Install Ollama if it is missing (defaults AUTO_INSTALL)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, f)
		},
	}
	installCmd := &cobra.Command{
		Use:     "install",
		Short:   "Install Ollama with the official install script",
		Example: "  ollamaapi install",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, f)
		},
	}
	pullCmd := &cobra.Command{
		Use:     "pull <model>",
		Short:   "Pull a model into the daemon",
		Example: "  ollamaapi pull llama3.2",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPull(cmd, f, args[0])
		},
	}
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the service version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", manager.ServiceName, manager.ServiceVersion)
		},
	}
	root.AddCommand(serveCmd, installCmd, pullCmd, versionCmd)
	return root
}

// loadConfig resolves env and file settings, then applies explicitly set flags.
func loadConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	cfg, err := config.Resolve(f.configPath)
	if err != nil {
		return cfg, err
	}
	fs := cmd.Flags()
	if fs.Changed("host") {
		cfg.Server.Host = f.host
	}
	if fs.Changed("port") {
		cfg.Server.Port = f.port
	}
	if fs.Changed("default-model") {
		cfg.Model.Default = f.defaultModel
	}
	if fs.Changed("debug") {
		cfg.Log.Debug = f.debug
	}
	if fs.Changed("auto-start") {
		cfg.Daemon.AutoStart = f.autoStart
	}
	if fs.Changed("auto-install") {
		cfg.Daemon.AutoInstall = f.autoInstall
	}
	return cfg, cfg.Validate()
}

func runServe(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return invoke(cfg, cmd.ErrOrStderr(), func(a app) error { return serve(ctx, a) })
}

func runInstall(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	return invoke(cfg, cmd.ErrOrStderr(), func(a app) error {
		if a.Supervisor.Installed() {
			a.Log.Info().Str("bin", cfg.Daemon.Bin).Msg("Ollama is already installed")
			return nil
		}
		return a.Supervisor.Install(cmd.Context())
	})
}

func runPull(cmd *cobra.Command, f *flags, model string) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return invoke(cfg, cmd.ErrOrStderr(), func(a app) error {
		if cfg.Daemon.AutoStart && !a.Supervisor.EnsureReady(ctx) {
			return fmt.Errorf("ollama is not ready")
		}
		if err := a.Manager.Pull(ctx, model); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Model %s pulled successfully\n", model)
		return nil
	})
}
