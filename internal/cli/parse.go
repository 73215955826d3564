package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/adocast/internal/logging"
	"github.com/yaklabco/adocast/internal/ui/pretty"
	"github.com/yaklabco/adocast/pkg/config"
	"github.com/yaklabco/adocast/pkg/document"
	"github.com/yaklabco/adocast/pkg/parser/asciidoc"
	"github.com/yaklabco/adocast/pkg/txtast"
)

func newParseCommand(configPath, color *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse SOURCE ELEMENTS",
		Short: "Convert a processor element tree into a positioned AST",
		Long: `Convert a document into the host AST.

SOURCE is the original AsciiDoc file. ELEMENTS is the element tree the
document processor emitted for it as JSON (run the processor with source-map
support and a JSON tree converter). The resulting AST is written to stdout.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], args[1], format, *configPath, *color)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, tree")

	return cmd
}

func runParse(cmd *cobra.Command, sourcePath, elementsPath, format, configPath, color string) error {
	logger := logging.Default()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("read source: %w", err))
	}

	elements, err := os.ReadFile(elementsPath)
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("read elements: %w", err))
	}

	root, err := document.DecodeJSON(elements)
	if err != nil {
		return withExitCode(ExitDataError, err)
	}

	opts := []asciidoc.Option{asciidoc.WithLogger(logger)}
	if cfg.DetectLanguage {
		opts = append(opts, asciidoc.WithLanguageDetection())
	}

	ast := asciidoc.New(nil, opts...).Convert(content, root)

	nodeCount := 0
	//nolint:errcheck,revive // counting walk never fails
	txtast.Walk(ast, func(_ *txtast.Node) error {
		nodeCount++
		return nil
	})

	logger.Debug("converted document",
		logging.FieldPath, sourcePath,
		logging.FieldFormat, format,
		logging.FieldNodes, nodeCount,
	)

	switch format {
	case "tree":
		renderer := pretty.NewTreeRenderer(color, cmd.OutOrStdout())
		return renderer.Render(cmd.OutOrStdout(), ast)
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(ast); err != nil {
			return fmt.Errorf("encode ast: %w", err)
		}
		return nil
	default:
		return withExitCode(ExitInvalidUsage, fmt.Errorf("unknown format %q", format))
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(config.DefaultFileName); err != nil {
			return config.Default(), nil
		}
		path = config.DefaultFileName
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, withExitCode(ExitDataError, err)
	}

	return cfg, nil
}
