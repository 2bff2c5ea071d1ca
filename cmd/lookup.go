package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnwheeler/go-mxf/pkg/rp210"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <ul>",
	Short: "Resolve a Universal Label to its descriptor",
	Long: `
Resolve a 16-byte Universal Label against the RP210 dictionary.

The UL may be given in dot-delimited or plain hex form.

Examples:
  mxfdict lookup 06.0e.2b.34.01.01.01.02.04.07.01.01.00.00.00.00
  mxfdict lookup 060e2b34010101020407010100000000
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ul, err := rp210.ParseUL(args[0])
		if err != nil {
			exitWithError("invalid UL", err)
		}

		reg, err := buildRegistry()
		if err != nil {
			exitWithError("failed to build registry", err)
		}

		desc, err := reg.Lookup(ul)
		if err != nil {
			exitWithError("lookup failed", err)
		}

		fmt.Printf("UL:          %s\n", ul.Dotted())
		fmt.Printf("Type:        %s\n", desc.Type)
		fmt.Printf("Name:        %s\n", desc.Name)
		fmt.Printf("Description: %s\n", desc.Description)
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
