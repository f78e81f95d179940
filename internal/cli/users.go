package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var usersEmail string

// usersCmd represents the users command.
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users who share their measurement data",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		email := usersEmail
		if email == "" {
			reader := bufio.NewReader(os.Stdin)
			email, err = GetSimpleText(reader, "Account email", os.Stdout)
			if err != nil {
				return err
			}
		}
		password, err := GetPassword(os.Stdout)
		if err != nil {
			return err
		}

		users, err := client.ListSharedUsers(cmd.Context(), email, password)
		if err != nil {
			return err
		}
		if len(users) == 0 {
			fmt.Println("No users share their data on this account")
			return nil
		}

		for _, u := range users {
			fmt.Printf("%d\t%s\t(%s, publickey %s)\n", u.ID, u.FullName(), u.Gender, u.PublicKey)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.Flags().StringVar(&usersEmail, "email", "", "account email (prompted when omitted)")
}
