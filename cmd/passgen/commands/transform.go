package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

func transformCmd() *cobra.Command {
	var (
		apply  []string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "transform [password]",
		Short: "Show a password with its hashed, salted and reversed forms",
		Long: `Show a password with its hashed, salted and reversed forms.

Without an argument a fresh strong password is generated first. Each
transform is applied to the original password, never to another
transform's output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				resp, err := svc.Generate(model.GenerateRequest{Preset: service.PresetStrong})
				if err != nil {
					return err
				}
				password = resp.Password
			}

			out := cmd.OutOrStdout()
			if len(apply) == 0 {
				t := svc.Showcase(password)
				if asJSON {
					return writeJSON(out, t)
				}
				fmt.Fprintf(out, "Original: %s\nHashed:   %s\nSalted:   %s\nReversed: %s\n",
					t.Original, t.Hashed, t.Salted, t.Reversed)
				return nil
			}

			derived, err := svc.Derive(password, apply)
			if err != nil {
				return err
			}
			resp := model.GenerateResponse{Password: password, Length: len(password), Derived: derived}
			if asJSON {
				return writeJSON(out, resp)
			}
			printResults(out, []model.GenerateResponse{resp}, apply)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&apply, "apply", nil, "transforms to apply instead of the default set (hash, salt, reverse, upper, argon2)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}
