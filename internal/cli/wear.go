package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"wardrobe-planner/internal/account"
	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/wardrobe"
)

func newItemsWornCmd(a *app) *cobra.Command {
	var date, notes string

	cmd := &cobra.Command{
		Use:     "worn ID",
		Short:   "Log that an item was worn",
		Example: `  wardrobe items worn 12 --date yesterday --notes "Team dinner"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var wornAt time.Time
			if date != "" {
				t, err := a.dates.Parse(date, time.Now())
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				wornAt = t
			}
			if err := a.loadItems(cmd); err != nil {
				return err
			}
			item, err := a.items.MarkWorn(cmd.Context(), wardrobe.WearInput{ID: model.ID(args[0]), WornAt: wornAt, Notes: notes})
			if err != nil {
				return fmt.Errorf("failed to log wear: %w", err)
			}
			a.printf("%s worn %d times, last on %s\n", item.Name, item.TimesWorn, formatTime(item.LastWorn))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day worn, e.g. 2024-05-06, today or yesterday (default now)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	return cmd
}

func newOutfitsWornCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "worn ID",
		Short: "Log that an outfit was worn today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadOutfits(cmd); err != nil {
				return err
			}
			o, err := a.outfits.MarkWorn(cmd.Context(), model.ID(args[0]))
			if err != nil {
				return fmt.Errorf("failed to log wear: %w", err)
			}
			a.printf("%s worn %d times\n", o.Name, o.TimesWorn)
			return nil
		},
	}
}

func newWearCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wear",
		Aliases: []string{"history"},
		Short:   "Wear history and usage statistics",
	}
	cmd.AddCommand(
		newWearListCmd(a),
		newWearDeleteCmd(a),
		newWearFrequencyCmd(a),
		newWearCategoriesCmd(a),
	)
	return cmd
}

func newWearListCmd(a *app) *cobra.Command {
	var (
		filter           account.WearFilter
		itemID, outfitID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged wears",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			filter.ItemID, filter.OutfitID = model.ID(itemID), model.ID(outfitID)
			list, err := a.account.WearHistory(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("failed to load wear history: %w", err)
			}
			return a.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "ID\tITEM\tOUTFIT\tWORN\tNOTES\n")
				for _, e := range list {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.ItemID, e.OutfitID, formatTime(e.DateWorn), e.Notes)
				}
			})
		},
	}

	cmd.Flags().StringVar(&itemID, "item", "", "Only wears of this item")
	cmd.Flags().StringVar(&outfitID, "outfit", "", "Only wears of this outfit")
	cmd.Flags().IntVar(&filter.Skip, "skip", 0, "Entries to skip")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "Maximum entries (backend default when 0)")
	return cmd
}

func newWearDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ENTRY_ID",
		Aliases: []string{"rm"},
		Short:   "Delete a wear entry; item counters are kept",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			if err := a.account.DeleteWearEntry(cmd.Context(), model.ID(args[0])); err != nil {
				return fmt.Errorf("failed to delete wear entry: %w", err)
			}
			a.printf("Deleted wear entry %s\n", args[0])
			return nil
		},
	}
}

func newWearFrequencyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "frequency",
		Short: "Items by how often they were worn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadItems(cmd); err != nil {
				return err
			}
			list, err := a.account.WearFrequency(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get wear frequency: %w", err)
			}
			return a.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "ID\tNAME\tCATEGORY\tWORN\tLAST WORN\n")
				for _, f := range list {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", f.Item.ID, f.Item.Name, f.Item.Category, f.WearCount, formatTime(f.Item.LastWorn))
				}
			})
		},
	}
}

func newWearCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Share of the wardrobe per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadItems(cmd); err != nil {
				return err
			}
			list, err := a.account.CategoryUsage(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get category usage: %w", err)
			}
			return a.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "CATEGORY\tITEMS\tSHARE\n")
				for _, u := range list {
					fmt.Fprintf(w, "%s\t%d\t%.2f%%\n", u.Category, u.ItemCount, u.UsagePercentage)
				}
			})
		},
	}
}
