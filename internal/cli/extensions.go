package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/adocast/pkg/plugin"
)

func newExtensionsCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "extensions",
		Short: "List the recognized file extensions",
		Long:  `List the file extensions the plugin claims: the fixed core set plus any configured extras.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			p := plugin.New(nil, plugin.WithExtensions(cfg.Extensions...))
			for _, ext := range p.Extensions() {
				fmt.Fprintln(cmd.OutOrStdout(), ext)
			}

			return nil
		},
	}
}
