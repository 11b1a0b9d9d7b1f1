package console

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/km-arc/slarb/framework/slarb"
)

func newBuildCmd() *cobra.Command {
	var (
		status  string
		code    int
		message string
		data    string
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Print a response envelope",
		Example: `  slarb build --status success --code 201 --message "User created" --data '{"id":7}'
  slarb build --status error --code 404`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var payload any
			if data != "" {
				if err := sonic.UnmarshalString(data, &payload); err != nil {
					return fmt.Errorf("--data is not valid JSON: %w", err)
				}
			}

			ok, err := slarb.ParseStatus(status)
			if err != nil {
				return err
			}
			b := slarb.Error()
			if ok {
				b = slarb.Success()
			}
			if cmd.Flags().Changed("code") {
				if b, err = b.WithHTTPCode(code); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("message") {
				b = b.WithMessage(message)
			}
			res := b.WithData(payload).Build()

			var out []byte
			if pretty {
				out, err = sonic.MarshalIndent(res, "", "  ")
			} else {
				out, err = sonic.Marshal(res)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "HTTP %d %s\n", res.HTTPCode, res.StatusText())
			fmt.Fprintln(w, string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", slarb.StatusSuccess, "success or error")
	cmd.Flags().IntVarP(&code, "code", "c", 0, "HTTP status code (default from status)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message (default from status)")
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON payload")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON body")
	return cmd
}
