package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"murmur/internal/crypto"
	"murmur/internal/domain"
)

// wrap <message>: gift wrap a message for a recipient and print the
// outer event as JSON.
func wrapCmd() *cobra.Command {
	var (
		senderKey string
		recipient string
		kind      uint16
	)
	cmd := &cobra.Command{
		Use:   "wrap <message>",
		Short: "Gift wrap a message for a recipient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind == 0 {
				kind = cfg.WrapKind
			}
			senderPub, err := crypto.PublicKeyOf(senderKey)
			if err != nil {
				return err
			}

			rumor := domain.Rumor{
				PubKey:    senderPub,
				CreatedAt: time.Now().Unix(),
				Kind:      kind,
				Tags:      domain.Tags{{"p", recipient}},
				Content:   args[0],
			}
			wrap, err := appCtx.Wrapper.GiftWrap(rumor, senderKey, recipient)
			if err != nil {
				return fmt.Errorf("wrap: %w", err)
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetEscapeHTML(false)
			return enc.Encode(wrap)
		},
	}
	cmd.Flags().StringVar(&senderKey, "key", "", "sender private key (hex)")
	cmd.Flags().StringVar(&recipient, "to", "", "recipient public key (hex)")
	cmd.Flags().Uint16Var(&kind, "kind", 0, "rumor kind (default from config)")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
