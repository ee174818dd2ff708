package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"wardrobe-planner/internal/export"
	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/view"
	"wardrobe-planner/internal/wardrobe"
)

func newItemsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"item"},
		Short:   "Manage wardrobe items",
	}
	cmd.AddCommand(
		newItemsListCmd(a),
		newItemsAddCmd(a),
		newItemsEditCmd(a),
		newItemsFavoriteCmd(a),
		newItemsWornCmd(a),
		newItemsDeleteCmd(a),
		newItemsExportCmd(a),
	)
	return cmd
}

// loadItems restores the session and fetches the wardrobe.
func (a *app) loadItems(cmd *cobra.Command) error {
	if err := a.requireAuth(cmd.Context()); err != nil {
		return err
	}
	if err := a.items.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}
	return nil
}

func newItemsListCmd(a *app) *cobra.Command {
	var (
		q    view.ItemQuery
		sort string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List items",
		Example: `  wardrobe items list --category shirts --sort name
  wardrobe items list --search linen --favorites`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			q.Sort = view.ParseSortKey(sort)
			out, err := a.items.List(cmd.Context(), wardrobe.ListInput{Query: q, Refresh: true})
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}
			return a.render(out.Items, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "ID\tNAME\tBRAND\tCATEGORY\tSEASON\tPRICE\tFAV\tTAGS\n")
				for _, it := range out.Items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.2f\t%s\t%s\n",
						it.ID, it.Name, it.Brand, it.Category, it.Season, it.Price, star(it.Favorite), strings.Join(it.Tags, ","))
				}
				fmt.Fprintf(w, "\n%d of %d items\n", len(out.Items), out.Total)
			})
		},
	}

	cmd.Flags().StringVarP(&q.Search, "search", "s", "", "Match name, brand or tags")
	cmd.Flags().StringVar(&q.Category, "category", view.All, "Only this category")
	cmd.Flags().BoolVar(&q.FavoritesOnly, "favorites", false, "Only favorites")
	cmd.Flags().StringVar(&sort, "sort", "", "Order by name, lastWorn, date or timesWorn")
	return cmd
}

// itemFlags binds the add/edit form fields.
type itemFlags struct {
	name, brand, category, size, price, material string
	season, imageURL, tags, color, notes, image  string
}

func (f *itemFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.name, "name", "", "Item name")
	fl.StringVar(&f.brand, "brand", "", "Brand")
	fl.StringVar(&f.category, "category", "", "Category ("+strings.Join(model.Categories, ", ")+")")
	fl.StringVar(&f.size, "size", "", "Size")
	fl.StringVar(&f.price, "price", "", "Price")
	fl.StringVar(&f.material, "material", "", "Material")
	fl.StringVar(&f.season, "season", "", "Season ("+strings.Join(model.Seasons, ", ")+")")
	fl.StringVar(&f.imageURL, "image-url", "", "Image URL")
	fl.StringVar(&f.tags, "tags", "", "Comma separated tags")
	fl.StringVar(&f.color, "color", "", "Color")
	fl.StringVar(&f.notes, "notes", "", "Notes")
	fl.StringVar(&f.image, "image", "", "Photo to upload")
}

// changed returns a pointer to v when the named flag was set.
func changed(cmd *cobra.Command, name string, v string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func readImage(path string) (*wardrobe.ImageInput, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return &wardrobe.ImageInput{Filename: filepath.Base(path), Data: data}, nil
}

func newItemsAddCmd(a *app) *cobra.Command {
	var f itemFlags

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add an item",
		Example: `  wardrobe items add --name "Blue Oxford" --brand Uniqlo --category shirts --price 29.90 --tags "work, cotton"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			img, err := readImage(f.image)
			if err != nil {
				return err
			}
			item, err := a.items.Add(cmd.Context(), wardrobe.AddItemInput{
				Name:      f.name,
				Brand:     f.brand,
				Category:  f.category,
				Size:      f.size,
				PriceText: f.price,
				Material:  f.material,
				Season:    f.season,
				ImageURL:  f.imageURL,
				TagsText:  f.tags,
				Color:     f.color,
				Notes:     f.notes,
				Image:     img,
			})
			if err != nil {
				return fmt.Errorf("failed to add item: %w", err)
			}
			a.printf("Added item %s (%s)\n", item.ID, item.Name)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func newItemsEditCmd(a *app) *cobra.Command {
	var f itemFlags

	cmd := &cobra.Command{
		Use:     "edit ID",
		Short:   "Change some fields of an item",
		Example: `  wardrobe items edit 12 --price 19.90 --tags "sale"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadItems(cmd); err != nil {
				return err
			}
			img, err := readImage(f.image)
			if err != nil {
				return err
			}
			item, err := a.items.Edit(cmd.Context(), wardrobe.EditItemInput{
				ID:        model.ID(args[0]),
				Name:      changed(cmd, "name", f.name),
				Brand:     changed(cmd, "brand", f.brand),
				Category:  changed(cmd, "category", f.category),
				Size:      changed(cmd, "size", f.size),
				PriceText: changed(cmd, "price", f.price),
				Material:  changed(cmd, "material", f.material),
				Season:    changed(cmd, "season", f.season),
				ImageURL:  changed(cmd, "image-url", f.imageURL),
				TagsText:  changed(cmd, "tags", f.tags),
				Color:     changed(cmd, "color", f.color),
				Notes:     changed(cmd, "notes", f.notes),
				Image:     img,
			})
			if err != nil {
				return fmt.Errorf("failed to edit item: %w", err)
			}
			a.printf("Updated item %s (%s)\n", item.ID, item.Name)
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func newItemsFavoriteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "favorite ID",
		Aliases: []string{"fav"},
		Short:   "Toggle the favorite flag of an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadItems(cmd); err != nil {
				return err
			}
			item, err := a.items.ToggleFavorite(cmd.Context(), model.ID(args[0]))
			if err != nil {
				return fmt.Errorf("failed to toggle favorite: %w", err)
			}
			if item.Favorite {
				a.printf("%s is now a favorite\n", item.Name)
			} else {
				a.printf("%s is no longer a favorite\n", item.Name)
			}
			return nil
		},
	}
}

func newItemsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadItems(cmd); err != nil {
				return err
			}
			if err := a.items.Delete(cmd.Context(), model.ID(args[0])); err != nil {
				return fmt.Errorf("failed to delete item: %w", err)
			}
			a.printf("Deleted item %s\n", args[0])
			return nil
		},
	}
}

func newItemsExportCmd(a *app) *cobra.Command {
	var format, path string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the wardrobe as parquet or yaml",
		Example: `  wardrobe items export --out wardrobe.parquet
  wardrobe items export --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" && path != "" {
				format = strings.TrimPrefix(filepath.Ext(path), ".")
			}
			if format == "" {
				format = string(export.FormatYAML)
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			if f == export.FormatParquet && path == "" {
				return fmt.Errorf("parquet export needs --out")
			}

			if err := a.loadItems(cmd); err != nil {
				return err
			}
			items := a.items.Items().Items()

			if path == "" {
				return export.WriteItems(a.out, f, items, time.Now())
			}
			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			if err := export.WriteItems(file, f, items, time.Now()); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			a.printf("Exported %d items to %s\n", len(items), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "parquet or yaml (default: from --out, else yaml)")
	cmd.Flags().StringVar(&path, "out", "", "Output file (default: stdout)")
	return cmd
}

func star(b bool) string {
	if b {
		return "*"
	}
	return ""
}
