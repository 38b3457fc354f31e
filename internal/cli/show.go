package cli

import (
	"github.com/spf13/cobra"

	"drawer-cabinet/internal/api"
)

func newShowCmd(a *app) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the cabinet as a grid",
		Long:  `Show every drawer, row by row. With --query, drawers that do not match the name, title or keywords are dimmed.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			var (
				wire    []api.DrawerJSON
				visible map[string]bool
				matches int
			)
			if query != "" {
				resp, err := a.client.Search(ctx, query)
				if err != nil {
					return err
				}
				visible = make(map[string]bool, len(resp.Drawers))
				for _, d := range resp.Drawers {
					wire = append(wire, d.DrawerJSON)
					visible[d.ID] = d.Visible
				}
				matches = resp.Matches
			} else {
				drawers, err := a.client.ListDrawers(ctx)
				if err != nil {
					return err
				}
				wire = drawers
			}

			drawers, errs := toDrawers(wire)
			for _, err := range errs {
				logger.Warn("skipping drawer", "err", err)
			}

			a.printf("%s\n\n", styleTitle.Render("Drawer cabinet"))
			a.printf("%s", renderCabinet(drawers, visible))
			if query != "" {
				a.printf("\n%d of %d drawers match %q\n", matches, len(drawers), query)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "highlight drawers matching this text")
	return cmd
}
