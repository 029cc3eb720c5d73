package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

const maxCount = 1000

func generateCmd() *cobra.Command {
	var (
		req    model.GenerateRequest
		count  int
		apply  []string
		asJSON bool
	)
	classes := map[string]*bool{"lower": nil, "upper": nil, "numbers": nil, "symbols": nil}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate passwords from a preset or custom character classes",
		Example: `  passgen generate
  passgen generate --preset simple --count 5
  passgen generate --length 24 --symbols=false --apply hash,reverse --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 || count > maxCount {
				return errors.Newf("--count must be between 1 and %d", maxCount)
			}

			flags := cmd.Flags()
			for name := range classes {
				if !flags.Changed(name) {
					continue
				}
				v, err := flags.GetBool(name)
				if err != nil {
					return err
				}
				classes[name] = &v
			}
			req.Lowercase = classes["lower"]
			req.Uppercase = classes["upper"]
			req.Numbers = classes["numbers"]
			req.Symbols = classes["symbols"]

			results := make([]model.GenerateResponse, 0, count)
			for i := 0; i < count; i++ {
				resp, err := svc.Generate(req)
				if err != nil {
					return err
				}
				if len(apply) > 0 {
					if resp.Derived, err = svc.Derive(resp.Password, apply); err != nil {
						return err
					}
				}
				results = append(results, resp)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			printResults(cmd.OutOrStdout(), results, apply)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Preset, "preset", "", "base preset: "+strings.Join(service.PresetNames(), ", ")+" (default from PASSGEN_DEFAULT_PRESET)")
	f.IntVarP(&req.Length, "length", "l", 0, "password length (default from preset)")
	f.Bool("lower", false, "include lowercase letters (overrides preset)")
	f.Bool("upper", false, "include uppercase letters (overrides preset)")
	f.Bool("numbers", false, "include digits (overrides preset)")
	f.Bool("symbols", false, "include symbols (overrides preset)")
	f.IntVarP(&count, "count", "n", 1, "number of passwords to generate")
	f.StringSliceVar(&apply, "apply", nil, "transforms to apply to each password (hash, salt, reverse, upper, argon2)")
	f.BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

func printResults(w io.Writer, results []model.GenerateResponse, apply []string) {
	for _, r := range results {
		fmt.Fprintln(w, r.Password)
		for _, name := range apply {
			key := strings.ToLower(strings.TrimSpace(name))
			fmt.Fprintf(w, "  %s: %s\n", key, r.Derived[key])
		}
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
