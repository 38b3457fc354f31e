package cli

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"drawer-cabinet/internal/cabinet"
	"drawer-cabinet/internal/client"
)

func newResizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resize ID SIZE",
		Short: "Change a drawer's size",
		Long: `Change a drawer's size to SMALL, MEDIUM or LARGE. Growing absorbs the
drawers to the right; shrinking frees columns as new drawers. Requests that
would cross a section boundary are rejected and nothing changes; the sizes
the drawer does accept are listed instead.`,
		Example: "  cabinetctl resize A1 medium",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := strings.ToUpper(args[0])
			size, err := cabinet.ParseSize(args[1])
			if err != nil {
				return err
			}

			resp, err := a.client.Resize(ctx, id, string(size))
			var apiErr *client.APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
				a.printf("%s %s\n", styleError.Render(iconError), apiErr.Message)
				if d, err := a.client.GetDrawer(ctx, id); err == nil && len(d.AllowedSizes) > 0 {
					a.printf("  %s can be: %s\n", id, strings.Join(d.AllowedSizes, ", "))
				}
				return fmt.Errorf("resize of %s to %s rejected", id, size)
			}
			if err != nil {
				return err
			}

			switch resp.Outcome {
			case cabinet.Unchanged.String():
				a.printf("%s is already %s\n", id, size)
			default:
				a.printf("%s %s is now %s (%s)\n", styleSuccess.Render(iconSuccess), id, size, resp.Drawer.Title)
				if len(resp.Removed) > 0 {
					a.printf("  absorbed: %s\n", strings.Join(resp.Removed, ", "))
				}
				if len(resp.Created) > 0 {
					a.printf("  created:  %s\n", strings.Join(resp.Created, ", "))
				}
			}
			return nil
		},
	}
}

func newLabelCmd(a *app) *cobra.Command {
	var (
		name       string
		keywords   []string
		clearLabel bool
	)

	cmd := &cobra.Command{
		Use:     "label ID",
		Short:   "Set a drawer's name and keywords",
		Example: "  cabinetctl label B4 --name \"M3 screws\" --keywords m3,screws,steel",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := strings.ToUpper(args[0])

			var namePtr *string
			var kw []string
			switch {
			case clearLabel:
				empty := ""
				namePtr, kw = &empty, []string{}
			default:
				if cmd.Flags().Changed("name") {
					namePtr = &name
				}
				if cmd.Flags().Changed("keywords") {
					kw = keywords
					if kw == nil {
						kw = []string{}
					}
				}
				if namePtr == nil && kw == nil {
					return errors.New("nothing to change: use --name, --keywords or --clear")
				}
			}

			d, err := a.client.UpdateLabel(ctx, id, namePtr, kw)
			if err != nil {
				return err
			}
			label := d.Title
			if d.Name != nil {
				label = *d.Name
			}
			a.printf("%s %s: %s %s\n", styleSuccess.Render(iconSuccess), d.ID, label, styleDim.Render(d.Keywords))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "drawer name")
	cmd.Flags().StringSliceVarP(&keywords, "keywords", "k", nil, "comma-separated keywords")
	cmd.Flags().BoolVar(&clearLabel, "clear", false, "remove name and keywords")
	cmd.MarkFlagsMutuallyExclusive("clear", "name")
	cmd.MarkFlagsMutuallyExclusive("clear", "keywords")
	return cmd
}
