package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	wbs "github.com/stfnandersen/go-wbs"
)

var (
	measUserID    int64
	measPublicKey string
	measStart     int64
	measEnd       int64
	measType      int
	measLastUpd   int64
	measCategory  int
	measLimit     int
	measOffset    int
)

// measuresCmd represents the measures command.
var measuresCmd = &cobra.Command{
	Use:   "measures",
	Short: "Print a user's measure groups",
	Long: `Loads a user by id and public key and prints their measure groups,
most recent first, in the form:

	2010-06-12 08:31:02  (Captured by device, belongs to this user)
		Weight 72 kg
		Fat Ratio 18.2 %

Scoping flags are sent only when provided.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		user, err := client.LoadUser(cmd.Context(), measUserID, measPublicKey)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("start") {
			user.SetStartDate(measStart)
		}
		if cmd.Flags().Changed("end") {
			user.SetEndDate(measEnd)
		}
		if cmd.Flags().Changed("type") {
			user.SetMeasureType(wbs.MeasureType(measType))
		}
		if cmd.Flags().Changed("lastupdate") {
			user.SetLastUpdate(measLastUpd)
		}
		if cmd.Flags().Changed("category") {
			user.SetCategory(wbs.Category(measCategory))
		}
		if cmd.Flags().Changed("limit") {
			user.SetLimit(measLimit)
		}
		if cmd.Flags().Changed("offset") {
			user.SetOffset(measOffset)
		}

		groups, err := user.FetchMeasures(cmd.Context(), true)
		if err != nil {
			return err
		}

		fmt.Println(user.FullName())
		for _, g := range groups {
			fmt.Printf("\t%s  (%s)\n", g.Time().Format("2006-01-02 15:04:05"), g.Attribution)
			for _, m := range g.Measures {
				fmt.Printf("\t\t%s %g %s\n", m.Type, m.PhysicalValue(), m.Type.Unit())
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(measuresCmd)
	measuresCmd.Flags().Int64Var(&measUserID, "userid", 0, "user identifier")
	measuresCmd.Flags().StringVar(&measPublicKey, "publickey", "", "user public key")
	measuresCmd.Flags().Int64Var(&measStart, "start", 0, "exclude measures before this epoch time")
	measuresCmd.Flags().Int64Var(&measEnd, "end", 0, "exclude measures after this epoch time")
	measuresCmd.Flags().IntVar(&measType, "type", 0, "restrict to one measure type (1 weight, 4 height, 5 fat free mass, 6 fat ratio, 8 fat mass weight)")
	measuresCmd.Flags().Int64Var(&measLastUpd, "lastupdate", 0, "only entries modified since this epoch time")
	measuresCmd.Flags().IntVar(&measCategory, "category", 0, "1 for measurements, 2 for objectives")
	measuresCmd.Flags().IntVar(&measLimit, "limit", 0, "maximum number of measure groups")
	measuresCmd.Flags().IntVar(&measOffset, "offset", 0, "skip the most recent measure groups")
	_ = measuresCmd.MarkFlagRequired("userid")
	_ = measuresCmd.MarkFlagRequired("publickey")
}
