package cli

import (
	"context"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/services"

	"github.com/spf13/cobra"
)

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the guest quotation text",
		Long: `Price a package and render the quotation text.

With --out the text is written to that file; if that fails it is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openSession(cmd)
			if err != nil {
				return err
			}
			text := services.QuoteService{RequestID: "cli"}.Text(in)

			stdout := stdoutSink(cmd)
			sharer := services.Sharer{Primary: stdout, RequestID: "cli"}
			outPath, _ := cmd.Flags().GetString("out")
			if outPath != "" {
				sharer = services.Sharer{Primary: services.FileSink{Path: outPath}, Fallback: stdout, RequestID: "cli"}
			}

			res := sharer.Share(context.Background(), text)
			switch {
			case res.Notice != "":
				printWarning(cmd.ErrOrStderr(), res.Notice)
			case outPath != "" && res.Via == "primary":
				printSuccess(cmd.ErrOrStderr(), "quotation written to "+outPath)
			case outPath != "":
				printWarning(cmd.ErrOrStderr(), "could not write "+outPath+", printed instead")
			}
			return nil
		},
	}
	addSessionFlags(cmd)
	cmd.Flags().StringP("out", "o", "", "write the quotation text to this file")
	return cmd
}

// stdoutSink delivers to the command's stdout.
func stdoutSink(cmd *cobra.Command) services.TextSink {
	return services.WriterSink{W: cmd.OutOrStdout()}
}
