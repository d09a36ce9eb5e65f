package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"murmur/internal/domain"
)

// unwrap [file]: open a gift wrap (stdin by default) and print the
// rumor as JSON.
func unwrapCmd() *cobra.Command {
	var recipientKey string
	cmd := &cobra.Command{
		Use:   "unwrap [file]",
		Short: "Open a gift wrap addressed to you",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			raw, err := io.ReadAll(in)
			if err != nil {
				return err
			}
			var wrap domain.Event
			if err := json.Unmarshal(raw, &wrap); err != nil {
				return fmt.Errorf("parse gift wrap: %w", err)
			}

			rumor, err := appCtx.Wrapper.Open(wrap, recipientKey)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetEscapeHTML(false)
			return enc.Encode(rumor)
		},
	}
	cmd.Flags().StringVar(&recipientKey, "key", "", "recipient private key (hex)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
