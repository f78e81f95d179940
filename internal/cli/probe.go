package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// probeCmd represents the probe command.
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check whether the WBS API is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if !client.Probe(cmd.Context()) {
			return errors.New("WBS API is unreachable")
		}
		fmt.Println("WBS API is reachable")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
