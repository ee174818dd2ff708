// Package cli is the wardrobe command line: a thin cobra layer over the
// domain use cases.
package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd(opts ...Option) *cobra.Command {
	a := &app{}
	for _, opt := range opts {
		opt(a)
	}

	cmd := &cobra.Command{
		Use:   "wardrobe",
		Short: "Catalogue clothes, compose outfits and plan what to wear",
		Long: `Wardrobe talks to the wardrobe backend to manage your clothing items and
outfits, and keeps saved outfits, weekly plans and occasion outfits on this
machine.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (default: ./config/config.yaml)")
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", OutputTable, "Output format: table, yaml or json")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log at debug level")

	cmd.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newItemsCmd(a),
		newOutfitsCmd(a),
		newPlanCmd(a),
		newProfileCmd(a),
		newSuggestCmd(a),
		newFeedbackCmd(a),
		newStatsCmd(a),
		newWearCmd(a),
		newServeFakeCmd(a),
	)

	return cmd
}
