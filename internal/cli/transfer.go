package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"drawer-cabinet/internal/api"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// yamlDrawer is the editable YAML form of a drawer record. Unlike the API's
// wire form, positions and keywords are plain lists.
type yamlDrawer struct {
	ID             string   `yaml:"id"`
	Size           string   `yaml:"size"`
	Title          string   `yaml:"title"`
	Name           string   `yaml:"name,omitempty"`
	Positions      []int    `yaml:"positions,flow"`
	IsRightSection bool     `yaml:"is_right_section"`
	Keywords       []string `yaml:"keywords,flow,omitempty"`
	Spacing        int      `yaml:"spacing"`
}

// encodeLayout writes drawers to w in the given format.
func encodeLayout(w io.Writer, format string, drawers []api.DrawerJSON) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(drawers)
	case formatYAML:
		out := make([]yamlDrawer, 0, len(drawers))
		for _, d := range drawers {
			rec, err := d.Record()
			if err != nil {
				return err
			}
			out = append(out, yamlDrawer{
				ID:             rec.ID,
				Size:           rec.Size,
				Title:          rec.Title,
				Name:           rec.Name,
				Positions:      rec.Positions,
				IsRightSection: rec.IsRightSection,
				Keywords:       rec.Keywords,
				Spacing:        rec.Spacing,
			})
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatJSON, formatYAML)
	}
}

// decodeLayout reads drawers written by encodeLayout.
func decodeLayout(r io.Reader, format string) ([]api.DrawerJSON, error) {
	switch format {
	case formatJSON:
		var drawers []api.DrawerJSON
		if err := json.NewDecoder(r).Decode(&drawers); err != nil {
			return nil, fmt.Errorf("decoding JSON layout: %w", err)
		}
		return drawers, nil
	case formatYAML:
		var in []yamlDrawer
		if err := yaml.NewDecoder(r).Decode(&in); err != nil {
			return nil, fmt.Errorf("decoding YAML layout: %w", err)
		}
		drawers := make([]api.DrawerJSON, 0, len(in))
		for _, d := range in {
			positions, err := json.Marshal(d.Positions)
			if err != nil {
				return nil, err
			}
			keywords := d.Keywords
			if keywords == nil {
				keywords = []string{}
			}
			encodedKeywords, err := json.Marshal(keywords)
			if err != nil {
				return nil, err
			}
			j := api.DrawerJSON{
				ID:             d.ID,
				Size:           d.Size,
				Title:          d.Title,
				Positions:      string(positions),
				IsRightSection: d.IsRightSection,
				Keywords:       string(encodedKeywords),
				Spacing:        d.Spacing,
			}
			if d.Name != "" {
				name := d.Name
				j.Name = &name
			}
			drawers = append(drawers, j)
		}
		return drawers, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want %s or %s)", format, formatJSON, formatYAML)
	}
}

// formatFor picks the format from an explicit flag or the file extension.
func formatFor(flag, path string) string {
	if flag != "" {
		return strings.ToLower(flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole layout as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			drawers, err := a.client.ListDrawers(ctx)
			if err != nil {
				return err
			}

			layoutFormat := formatFor(format, output)
			if output == "" {
				return encodeLayout(a.out, layoutFormat, drawers)
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := encodeLayout(f, layoutFormat, drawers); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			loggerFromContext(ctx).Info("exported layout", "drawers", len(drawers), "file", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml (default from the file extension, else json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the whole layout from a JSON or YAML file",
		Long: `Replace every drawer with the contents of FILE. The file must describe a
complete layout; the server rejects it otherwise and nothing changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			drawers, err := decodeLayout(f, formatFor(format, args[0]))
			if err != nil {
				return err
			}
			loggerFromContext(ctx).Debug("read layout", "drawers", len(drawers), "file", args[0])

			count, err := a.client.ReplaceDrawers(ctx, drawers)
			if err != nil {
				return err
			}
			a.printf("%s imported %d drawers\n", styleSuccess.Render(iconSuccess), count)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml (default from the file extension)")
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the cabinetctl configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the configuration in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.printf("config: %s\n", a.configPath)
			a.printf("server: %s\n", a.cfg.Server)
			a.printf("timeout: %s\n", orDash(a.cfg.Timeout))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "set-server URL",
		Short:   "Store the API server URL in the config file",
		Example: "  cabinetctl config set-server http://cabinet.local:9000",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			cfg.Server = strings.TrimRight(args[0], "/")
			if err := SaveConfig(a.configPath, cfg); err != nil {
				return err
			}
			a.printf("%s server set to %s\n", styleSuccess.Render(iconSuccess), cfg.Server)
			return nil
		},
	})

	return cmd
}
