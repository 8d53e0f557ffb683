package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pagelet/internal/validation"
)

func newValidateCmd() *cobra.Command {
	var reg validation.Registration

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check registration values against the form rules",
		Long: `Validate applies the registration form rules to the given values and
prints whether each field is valid. Exits with code 1 when any field is
invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := validation.Check(reg)
			out := cmd.OutOrStdout()
			for _, field := range validation.Fields {
				state := "valid"
				if !result[field] {
					state = "invalid"
				}
				fmt.Fprintf(out, "%-16s %s\n", string(field)+":", state)
			}

			if invalid := result.Invalid(); len(invalid) > 0 {
				return newResultError(1, "%d field(s) invalid", len(invalid))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&reg.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&reg.Password, "password", "", "Password")
	cmd.Flags().StringVar(&reg.ConfirmPassword, "confirm", "", "Password confirmation")

	return cmd
}
