package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nameCmd = &cobra.Command{
	Use:   "name <field_name>",
	Short: "Reverse-lookup a normalized field name to its Universal Label",
	Long: `
Find the Universal Label whose normalized field name equals the argument.

When several entries share a field name the first one in feed order wins.

Examples:
  mxfdict name random_access
  mxfdict name edit_rate
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reg, err := buildRegistry()
		if err != nil {
			exitWithError("failed to build registry", err)
		}

		ul, err := reg.LookupByFieldName(args[0])
		if err != nil {
			exitWithError("name lookup failed", err)
		}
		fmt.Println(ul.Dotted())
	},
}

func init() {
	rootCmd.AddCommand(nameCmd)
}
