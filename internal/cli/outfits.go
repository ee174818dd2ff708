package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/outfit"
	"wardrobe-planner/internal/view"
)

func newOutfitsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "outfits",
		Aliases: []string{"outfit"},
		Short:   "Compose and manage outfits",
	}
	cmd.AddCommand(
		newOutfitsListCmd(a),
		newOutfitsCreateCmd(a),
		newOutfitsDeleteCmd(a),
		newOutfitsWornCmd(a),
		newOutfitsSaveCmd(a),
		newOutfitsSavedCmd(a),
	)
	return cmd
}

func (a *app) loadOutfits(cmd *cobra.Command) error {
	if err := a.requireAuth(cmd.Context()); err != nil {
		return err
	}
	if err := a.outfits.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load outfits: %w", err)
	}
	return nil
}

func newOutfitsListCmd(a *app) *cobra.Command {
	var (
		q    view.OutfitQuery
		sort string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List outfits",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			q.Sort = view.ParseSortKey(sort)
			out, err := a.outfits.List(cmd.Context(), outfit.ListInput{Query: q, Refresh: true})
			if err != nil {
				return fmt.Errorf("failed to list outfits: %w", err)
			}
			return a.render(out.Outfits, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "ID\tNAME\tITEMS\tTAGS\n")
				for _, o := range out.Outfits {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.Name, joinIDs(o.ItemIDs), strings.Join(o.Tags, ","))
				}
				fmt.Fprintf(w, "\n%d of %d outfits\n", len(out.Outfits), out.Total)
			})
		},
	}

	cmd.Flags().StringVarP(&q.Search, "search", "s", "", "Match name or tags")
	cmd.Flags().StringVar(&q.Occasion, "occasion", view.All, "Only this occasion")
	cmd.Flags().StringVar(&sort, "sort", "", "Order by name, rating, lastWorn, date or timesWorn")
	return cmd
}

// pick builds an outfit selection from item ids, in argument order.
func (a *app) pick(name string, ids []string) (*outfit.Builder, error) {
	b := outfit.NewBuilder()
	b.Name = name
	for _, id := range ids {
		item, ok := a.items.Items().Get(id)
		if !ok {
			return nil, fmt.Errorf("item %s not found", id)
		}
		b.Toggle(item)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func newOutfitsCreateCmd(a *app) *cobra.Command {
	var name, tags, imageURL string

	cmd := &cobra.Command{
		Use:     "create ITEM_ID...",
		Short:   "Create an outfit from items",
		Example: `  wardrobe outfits create 3 7 12 --name "Friday office" --tags work`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadItems(cmd); err != nil {
				return err
			}
			b, err := a.pick(name, args)
			if err != nil {
				return err
			}
			input := b.CreateInput()
			input.TagsText = tags
			input.ImageURL = imageURL
			o, err := a.outfits.Create(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to create outfit: %w", err)
			}
			a.printf("Created outfit %s (%s) with %d items\n", o.ID, o.Name, len(o.ItemIDs))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Outfit name")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma separated tags")
	cmd.Flags().StringVar(&imageURL, "image-url", "", "Image URL")
	return cmd
}

func newOutfitsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete an outfit",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadOutfits(cmd); err != nil {
				return err
			}
			if err := a.outfits.Delete(cmd.Context(), model.ID(args[0])); err != nil {
				return fmt.Errorf("failed to delete outfit: %w", err)
			}
			a.printf("Deleted outfit %s\n", args[0])
			return nil
		},
	}
}

func newOutfitsSaveCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save ITEM_ID...",
		Short: "Keep an outfit on this machine only",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadItems(cmd); err != nil {
				return err
			}
			b, err := a.pick(name, args)
			if err != nil {
				return err
			}
			saved, err := a.outfits.Save(cmd.Context(), b.SaveInput())
			if err != nil {
				return fmt.Errorf("failed to save outfit: %w", err)
			}
			a.printf("Saved outfit %s (%s)\n", saved.ID, saved.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Outfit name")
	return cmd
}

func newOutfitsSavedCmd(a *app) *cobra.Command {
	var remove string

	cmd := &cobra.Command{
		Use:   "saved",
		Short: "List outfits kept on this machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			if remove != "" {
				if err := a.outfits.DeleteSaved(cmd.Context(), remove); err != nil {
					return fmt.Errorf("failed to delete saved outfit: %w", err)
				}
				a.printf("Deleted saved outfit %s\n", remove)
				return nil
			}
			saved := a.outfits.Saved(cmd.Context())
			return a.render(saved, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "ID\tNAME\tITEMS\tCREATED\n")
				for _, s := range saved {
					names := make([]string, len(s.Items))
					for i, it := range s.Items {
						names[i] = it.Name
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Name, strings.Join(names, ", "), formatTime(s.CreatedAt))
				}
			})
		},
	}

	cmd.Flags().StringVar(&remove, "delete", "", "Delete the saved outfit with this id")
	return cmd
}

func joinIDs(ids []model.ID) string {
	ss := make([]string, len(ids))
	for i, id := range ids {
		ss[i] = id.String()
	}
	return strings.Join(ss, ",")
}

func formatTime(t model.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
