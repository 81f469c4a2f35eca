package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	depio "github.com/matzehuels/depscan/pkg/io"
	"github.com/matzehuels/depscan/pkg/manager"
	"github.com/matzehuels/depscan/pkg/manager/managers"
	"github.com/matzehuels/depscan/pkg/pipeline"
)

// managersCommand lists the managers with the configuration applied.
func (c *CLI) managersCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "managers",
		Short: "List supported package managers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runManagers(cmd.Context(), cmd.OutOrStdout(), format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatTable, "output format (table, json)")
	return cmd
}

func (c *CLI) runManagers(_ context.Context, w io.Writer, format string) error {
	if err := pipeline.ValidateFormat(format); err != nil {
		return err
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	list := managers.All(c.Logger)
	if err := managers.Configure(list, cfg.Managers.Enabled, cfg.Managers.FileMatch); err != nil {
		return err
	}

	if format == pipeline.FormatJSON {
		return depio.WriteJSON(managerList(list), w)
	}
	_, err = io.WriteString(w, managersTable(list)+"\n")
	return err
}

type managerEntry struct {
	Name                 string   `json:"name"`
	Enabled              bool     `json:"enabled"`
	Extractor            bool     `json:"extractor"`
	FileMatch            []string `json:"fileMatch"`
	SupportedDatasources []string `json:"supportedDatasources"`
}

func managerList(list []*manager.Manager) []managerEntry {
	out := make([]managerEntry, len(list))
	for i, m := range list {
		out[i] = managerEntry{
			Name:                 m.Name,
			Enabled:              m.Enabled,
			Extractor:            m.HasExtractor(),
			FileMatch:            m.FileMatch,
			SupportedDatasources: m.SupportedDatasources,
		}
	}
	return out
}
