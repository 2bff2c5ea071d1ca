package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/johnwheeler/go-mxf/pkg/rp210"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <ul> <value>",
	Short: "Encode a typed value back into raw field bytes",
	Long: `
Resolve a Universal Label and encode the given value with the first matching
converter. The value is interpreted from its literal form: "true"/"false"
as boolean, decimal literals as integers, everything else as a string
(hex identifiers included).

Examples:
  mxfdict encode 06.0e.2b.34.01.01.01.02.04.07.01.01.00.00.00.00 true
  mxfdict encode 060e2b34010101020301020105000000 1024
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ul, err := rp210.ParseUL(args[0])
		if err != nil {
			exitWithError("invalid UL", err)
		}

		_, dispatcher, err := buildDispatcher()
		if err != nil {
			exitWithError("failed to build registry", err)
		}

		raw, err := dispatcher.Encode(ul, parseValue(args[1]))
		if err != nil {
			exitWithError("encoding failed", err)
		}
		fmt.Println(hex.EncodeToString(raw))
	},
}

// parseValue maps a command-line literal onto the value types the default
// converter set accepts.
func parseValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u
	}
	return s
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
