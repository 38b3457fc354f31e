package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"drawer-cabinet/internal/client"
)

// app holds what every command needs once flags are parsed.
type app struct {
	configPath string
	server     string
	verbose    bool

	cfg    Config
	client *client.Client
	out    io.Writer
}

// Execute runs the cabinetctl CLI.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Command output goes to out and
// log output to logOut.
func NewRootCommand(out, logOut io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "cabinetctl",
		Short:         "cabinetctl manages a drawer cabinet",
		Long:          `cabinetctl shows, resizes and labels the drawers of a parts cabinet through the cabinet API server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if a.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(logOut, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return a.init(logger)
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.config/drawer-cabinet/cabinetctl.toml)")
	root.PersistentFlags().StringVarP(&a.server, "server", "s", "", "cabinet API base URL (overrides the config file)")

	root.AddCommand(newShowCmd(a))
	root.AddCommand(newResizeCmd(a))
	root.AddCommand(newLabelCmd(a))
	root.AddCommand(newPrintCmd(a))
	root.AddCommand(newPrinterCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newImportCmd(a))
	root.AddCommand(newConfigCmd(a))

	return root
}

// init loads the config file and builds the API client.
func (a *app) init(logger *charmlog.Logger) error {
	if a.configPath == "" {
		path, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		a.configPath = path
	}

	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.server != "" {
		cfg.Server = a.server
	}
	timeout, err := cfg.timeout()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.client = client.New(cfg.Server, timeout)
	logger.Debug("using server", "url", cfg.Server, "config", a.configPath)
	return nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
