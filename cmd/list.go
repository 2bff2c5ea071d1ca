package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johnwheeler/go-mxf/pkg/rp210"
)

var listCmd = &cobra.Command{
	Use:   "list [substring]",
	Short: "List dictionary entries in feed order",
	Long: `
Walk the registry in insertion order and print one line per entry,
optionally filtered on the normalized field name.

Examples:
  mxfdict list
  mxfdict list track
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filter := ""
		if len(args) == 1 {
			filter = args[0]
		}

		reg, err := buildRegistry()
		if err != nil {
			exitWithError("failed to build registry", err)
		}

		reg.Walk(func(ul rp210.UL, d rp210.Descriptor) bool {
			if filter == "" || strings.Contains(d.Name, filter) {
				fmt.Printf("%s  %-24s %s\n", ul.Hex(), d.Type, d.Name)
			}
			return true
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
