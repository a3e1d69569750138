package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jkorab/camel/catalog"
)

var describeCmd = &cobra.Command{
	Use:   "describe <scheme>",
	Short: "Describe a scheme's endpoint options",
	Long:  `Prints the catalog schema for a component scheme: its URI syntax and every endpoint option with kind, default, and description.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	name := args[0]
	schema, ok := catalog.Default().Lookup(name)
	if !ok {
		return fmt.Errorf("unknown scheme %q: not in the bundled catalog", name)
	}

	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(out, "%s", schema.Scheme)
	if schema.Syntax != "" {
		_, _ = fmt.Fprintf(out, " (%s)", schema.Syntax)
	}
	_, _ = fmt.Fprintln(out)
	if schema.Description != "" {
		_, _ = fmt.Fprintln(out, schema.Description)
	}
	_, _ = fmt.Fprintln(out)

	if len(schema.Properties) == 0 {
		_, _ = fmt.Fprintln(out, "No options defined.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tKIND\tDEFAULT\tREQUIRED\tDESCRIPTION")
	_, _ = fmt.Fprintln(w, "----\t----\t-------\t--------\t-----------")
	for _, p := range schema.Properties {
		def := p.Default
		if def == "" {
			def = "-"
		}
		req := "no"
		if p.Required {
			req = "yes"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.Name, p.Kind, def, req, p.Description)
	}
	return w.Flush()
}
