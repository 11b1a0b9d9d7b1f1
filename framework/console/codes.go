package console

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/km-arc/slarb/framework/slarb"
)

func newCodesCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List registered HTTP codes",
		Example: `  slarb codes
  slarb codes --status error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter func(int) bool
			if status != "" {
				ok, err := slarb.ParseStatus(status)
				if err != nil {
					return err
				}
				filter = func(code int) bool { return slarb.Validate(ok, code) == nil }
			}

			codes := slarb.KnownCodes()
			slices.Sort(codes)
			for _, code := range codes {
				if filter != nil && !filter(code) {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", code, slarb.StatusText(code))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "only codes valid for success or error")
	return cmd
}
