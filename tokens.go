package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mfdls/medford-lsp/tokens"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Print the major and minor tokens known to the server",
	Args:  cobra.NoArgs,
	RunE:  runTokens,
}

var majorColor = color.New(color.FgGreen, color.Bold)

func runTokens(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Root().PersistentFlags().GetString("schema")
	schema := tokens.DefaultSchema()

	if path != "" {
		var err error

		if schema, err = tokens.LoadSchema(path); err != nil {
			return err
		}
	}

	catalog, err := tokens.Build(schema)

	if err != nil {
		return err
	}

	PrintCatalog(cmd.OutOrStdout(), catalog)

	return nil
}

func PrintCatalog(w io.Writer, catalog tokens.Catalog) {
	for _, major := range catalog.Majors() {
		minors, _ := catalog.Minors(major)

		majorColor.Fprintf(w, "@%s", major)
		fmt.Fprintf(w, ": %s\n", strings.Join(minors, ", "))
	}
}
