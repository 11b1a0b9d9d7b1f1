package console

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/km-arc/slarb/framework/slarb"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <success|error> <code>",
		Short: "Check that an HTTP code fits a status",
		Example: `  slarb check success 201
  slarb check error 200   # exits 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := slarb.ParseStatus(args[0])
			if err != nil {
				return err
			}
			code, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("code %q is not an integer", args[1])
			}
			if err := slarb.Validate(status, code); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s is valid for a %s response\n", code, slarb.StatusText(code), args[0])
			return nil
		},
	}
}
