package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jkorab/camel/explain"
	"github.com/jkorab/camel/inspect"
)

var explainCmd = &cobra.Command{
	Use:   "explain <context>",
	Short: "Explain all endpoints registered in a context",
	Long: `Fetches the endpoints of a context from a serving camelctl instance and
prints each endpoint's resolved options as name/value/description blocks.
Credential-bearing values in the endpoint URI are masked.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	f := explainCmd.Flags()
	f.BoolP("all-options", "a", false, "include all options, not only those set on the endpoint uri")
	f.StringArrayP("scheme", "s", nil, "filter endpoints by uri prefix (repeatable)")
	f.String("addr", "localhost:8080", "address of the serving instance's admin API")
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	allOptions, _ := cmd.Flags().GetBool("all-options")
	schemes, _ := cmd.Flags().GetStringArray("scheme")
	addr, _ := cmd.Flags().GetString("addr")

	client := inspect.NewClient(addr)
	return explain.Run(client, cmd.OutOrStdout(), args[0], allOptions, schemes)
}
