package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

func charsetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "charsets",
		Short: "List the character classes and the excluded symbols",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, c := range crypto.Classes() {
				fmt.Fprintf(out, "%-10s %s\n", c.Name, c.Chars)
			}
			fmt.Fprintf(out, "%-10s %s\n", "excluded", crypto.UnsafeSymbols)
			return nil
		},
	}
}
