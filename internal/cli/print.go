package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"drawer-cabinet/internal/api"
)

func newPrintCmd(a *app) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "print [ID]",
		Short: "Print a drawer label",
		Long: `Print the label of drawer ID, or free text with --text. When the server has
virtual printing enabled the label is only previewed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.PrintRequest{Text: text}
			if len(args) == 1 {
				req.DrawerID = strings.ToUpper(args[0])
			}
			if req.DrawerID == "" && strings.TrimSpace(req.Text) == "" {
				return errors.New("give a drawer ID or --text")
			}

			resp, err := a.client.Print(cmd.Context(), req)
			if err != nil {
				return err
			}
			if resp.Virtual {
				a.printf("%s virtual print %s\n", styleSuccess.Render(iconSuccess), styleDim.Render(resp.JobID))
				a.printf("  %s\n", resp.Text)
				return nil
			}
			a.printf("%s sent %q to %s on %s\n", styleSuccess.Render(iconSuccess), resp.Text, resp.Queue, resp.Server)
			return nil
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "print this text instead of a drawer label")
	return cmd
}

func newPrinterCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "printer",
		Short: "Show or change the label printer configuration",
	}
	cmd.AddCommand(newPrinterShowCmd(a))
	cmd.AddCommand(newPrinterSetCmd(a))
	return cmd
}

func newPrinterShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the printer configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.client.PrinterConfig(cmd.Context())
			if err != nil {
				return err
			}
			printPrinterConfig(a, cfg)
			return nil
		},
	}
}

func newPrinterSetCmd(a *app) *cobra.Command {
	var (
		server  string
		queue   string
		virtual bool
	)

	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Change the printer configuration",
		Example: "  cabinetctl printer set --cups-server cups.local:631 --queue labels --virtual=false",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := a.client.PrinterConfig(ctx)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("cups-server") {
				cfg.CUPSServer = server
			}
			if cmd.Flags().Changed("queue") {
				cfg.QueueName = queue
			}
			if cmd.Flags().Changed("virtual") {
				cfg.VirtualPrinting = virtual
			}
			cfg.UpdatedAt = ""

			saved, err := a.client.SetPrinterConfig(ctx, cfg)
			if err != nil {
				return err
			}
			printPrinterConfig(a, saved)
			return nil
		},
	}

	cmd.Flags().StringVar(&server, "cups-server", "", "CUPS server as host or host:port")
	cmd.Flags().StringVar(&queue, "queue", "", "CUPS queue name")
	cmd.Flags().BoolVar(&virtual, "virtual", true, "preview labels instead of printing")
	return cmd
}

func printPrinterConfig(a *app, cfg api.PrinterConfigJSON) {
	mode := "printer"
	if cfg.VirtualPrinting {
		mode = "virtual"
	}
	a.printf("mode:    %s\n", mode)
	a.printf("server:  %s\n", orDash(cfg.CUPSServer))
	a.printf("queue:   %s\n", orDash(cfg.QueueName))
	if cfg.UpdatedAt != "" {
		a.printf("updated: %s\n", styleDim.Render(cfg.UpdatedAt))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
