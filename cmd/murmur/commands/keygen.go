package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"murmur/internal/crypto"
)

// keygen: print a fresh keypair.
func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a secp256k1 keypair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := crypto.GenerateKeypair()
			if err != nil {
				return err
			}
			fmt.Println("private:", kp.PrivateKey)
			fmt.Println("public: ", kp.PublicKey)
			return nil
		},
	}
}
