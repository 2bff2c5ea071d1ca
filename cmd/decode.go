package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnwheeler/go-mxf/pkg/rp210"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <ul> <hex-bytes>",
	Short: "Decode a raw field payload through the converter set",
	Long: `
Resolve a Universal Label and decode the given payload bytes with the first
matching converter.

Examples:
  mxfdict decode 06.0e.2b.34.01.01.01.02.04.07.01.01.00.00.00.00 01
  mxfdict decode 060e2b34010101020530040500000000 0000001900000001
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ul, err := rp210.ParseUL(args[0])
		if err != nil {
			exitWithError("invalid UL", err)
		}
		raw, err := hex.DecodeString(args[1])
		if err != nil {
			exitWithError("invalid payload hex", err)
		}

		_, dispatcher, err := buildDispatcher()
		if err != nil {
			exitWithError("failed to build registry", err)
		}

		value, err := dispatcher.Convert(ul, raw)
		if err != nil {
			exitWithError("conversion failed", err)
		}
		fmt.Printf("%v\n", value)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
