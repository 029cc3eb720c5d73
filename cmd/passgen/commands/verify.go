package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

var errMismatch = errors.New("password does not match")

// verify <password> <phc>: exits non-zero unless password matches.
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <password> <argon2id-phc>",
		Short: "Check a password against an Argon2id PHC string",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := crypto.VerifyPassword(args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				return errMismatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "match")
			return nil
		},
	}
}
