package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jkorab/camel/catalog"
	"github.com/jkorab/camel/inspect"
)

var listCmd = &cobra.Command{
	Use:   "list [schemes|contexts]",
	Short: "List known schemes or running contexts",
	Long: `Lists the component schemes bundled with the catalog, or the contexts of a
serving camelctl instance.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().String("addr", "localhost:8080", "address of the serving instance's admin API (contexts only)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	kind := "schemes"
	if len(args) > 0 {
		kind = args[0]
	}

	switch kind {
	case "schemes", "scheme":
		cat := catalog.Default()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "SCHEME\tDESCRIPTION")
		for _, name := range cat.SchemeNames() {
			schema, _ := cat.Lookup(name)
			_, _ = fmt.Fprintf(w, "%s\t%s\n", name, schema.Description)
		}
		return w.Flush()

	case "contexts", "context":
		addr, _ := cmd.Flags().GetString("addr")
		names, err := inspect.NewClient(addr).Contexts()
		if err != nil {
			return err
		}
		for _, name := range names {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil

	default:
		return fmt.Errorf("unknown kind %q (expected schemes or contexts)", kind)
	}
}
