package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/logger"
	"github.com/vaultpass/passgen-go/internal/service"
	"github.com/vaultpass/passgen-go/internal/shell"
)

var (
	envFile  string
	logLevel string

	cfg config.Config
	log *zap.Logger
	svc *service.GeneratorService
)

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the passgen command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "passgen",
		Short:        "Secure password generator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(envFile)
			if err != nil {
				return err
			}
			if logLevel != "" {
				if err := cfg.LogLevel.Set(logLevel); err != nil {
					return err
				}
			}

			log, err = logger.New(cfg.LogLevel, cfg.Development())
			if err != nil {
				return err
			}
			if cfg.EnvFile != "" {
				log.Debug("loaded env file", zap.String("path", cfg.EnvFile))
			}

			if _, err := service.PresetOptions(cfg.DefaultPreset); err != nil {
				return err
			}
			svc = service.NewGeneratorService(log, cfg.DefaultPreset, cfg.SaltBytes)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
		RunE: runShell,
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default ./.env when present)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides PASSGEN_LOG_LEVEL)")

	root.AddCommand(shellCmd(), generateCmd(), transformCmd(), verifyCmd(), charsetsCmd())
	return root
}

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive password menu",
		Args:  cobra.NoArgs,
		RunE:  runShell,
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	return shell.New(svc, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
}
