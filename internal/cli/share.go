package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	shareUserID    int64
	sharePublicKey string
)

// shareCmd represents the share command.
var shareCmd = &cobra.Command{
	Use:   "share on|off",
	Short: "Toggle a user's public-sharing flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var public bool
		switch args[0] {
		case "on":
			public = true
		case "off":
			public = false
		default:
			return fmt.Errorf("argument must be \"on\" or \"off\", got %q", args[0])
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		user, err := client.LoadUser(cmd.Context(), shareUserID, sharePublicKey)
		if err != nil {
			return err
		}
		if err := user.SetSharingEnabled(cmd.Context(), public); err != nil {
			return err
		}

		if public {
			fmt.Printf("%s now shares their data\n", user.FullName())
		} else {
			fmt.Printf("%s no longer shares their data\n", user.FullName())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
	shareCmd.Flags().Int64Var(&shareUserID, "userid", 0, "user identifier")
	shareCmd.Flags().StringVar(&sharePublicKey, "publickey", "", "user public key")
	_ = shareCmd.MarkFlagRequired("userid")
	_ = shareCmd.MarkFlagRequired("publickey")
}
