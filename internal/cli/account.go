package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"wardrobe-planner/internal/account"
	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/outfit"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change your style profile",
	}
	cmd.AddCommand(newProfileGetCmd(a), newProfileSetCmd(a))
	return cmd
}

func (a *app) renderProfile(p model.Profile) error {
	return a.render(p, func(w *tabwriter.Writer) {
		fmt.Fprintf(w, "Name:\t%s\n", p.FullName)
		fmt.Fprintf(w, "Gender:\t%s\n", p.Gender)
		fmt.Fprintf(w, "Location:\t%s\n", p.Location)
		fmt.Fprintf(w, "Body type:\t%s\n", p.BodyType)
		fmt.Fprintf(w, "Styles:\t%s\n", strings.Join(p.StylePreferences, ", "))
		fmt.Fprintf(w, "Colors:\t%s\n", strings.Join(p.FavoriteColors, ", "))
		fmt.Fprintf(w, "Bio:\t%s\n", p.Bio)
	})
}

func newProfileGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			p, err := a.account.Profile(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}
			return a.renderProfile(p)
		},
	}
}

func newProfileSetCmd(a *app) *cobra.Command {
	var (
		fullName, gender, location, bodyType, bio string
		styles, colors                            []string
	)

	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Change profile fields",
		Example: `  wardrobe profile set --location Porto --styles minimal,smart-casual`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			input := account.ProfileInput{
				FullName: changed(cmd, "name", fullName),
				Gender:   changed(cmd, "gender", gender),
				Location: changed(cmd, "location", location),
				BodyType: changed(cmd, "body-type", bodyType),
				Bio:      changed(cmd, "bio", bio),
			}
			if cmd.Flags().Changed("styles") {
				input.StylePreferences = &styles
			}
			if cmd.Flags().Changed("colors") {
				input.FavoriteColors = &colors
			}
			p, err := a.account.UpdateProfile(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to update profile: %w", err)
			}
			return a.renderProfile(p)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&fullName, "name", "", "Full name")
	fl.StringVar(&gender, "gender", "", "Gender")
	fl.StringVar(&location, "location", "", "Location")
	fl.StringVar(&bodyType, "body-type", "", "Body type")
	fl.StringVar(&bio, "bio", "", "Short bio")
	fl.StringSliceVar(&styles, "styles", nil, "Style preferences")
	fl.StringSliceVar(&colors, "colors", nil, "Favorite colors")
	return cmd
}

func newSuggestCmd(a *app) *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Get outfit ideas and shopping suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			var input account.SuggestInput
			if cmd.Flags().Changed("lat") {
				input.Lat = &lat
			}
			if cmd.Flags().Changed("lon") {
				input.Lon = &lon
			}
			s, err := a.account.Suggestions(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to get suggestions: %w", err)
			}
			return a.render(s, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "Outfit ideas:\n")
				for _, idea := range s.NewOutfitIdeas {
					fmt.Fprintf(w, "  - %s\n", idea)
				}
				fmt.Fprintf(w, "Worth acquiring:\n")
				for _, item := range s.ItemsToAcquire {
					fmt.Fprintf(w, "  - %s\n", item)
				}
			})
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise the wardrobe",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The local collections back the summary when the backend has none.
			if err := a.loadItems(cmd); err != nil {
				return err
			}
			if err := a.outfits.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to load outfits: %w", err)
			}
			s, err := a.account.Statistics(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get statistics: %w", err)
			}
			return a.render(s, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "Items:\t%d\n", s.TotalItems)
				fmt.Fprintf(w, "Outfits:\t%d\n", s.TotalOutfits)
				fmt.Fprintf(w, "Favorites:\t%d\n", s.FavoriteItemsCount)
				writeCounts(w, "By category", s.ItemsByCategory)
				writeCounts(w, "By season", s.ItemsBySeason)
				writeWorn(w, "Most worn", s.MostWornItems)
				writeWorn(w, "Least worn", s.LeastWornItems)
			})
		},
	}
}

func writeCounts(w *tabwriter.Writer, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintf(w, "%s:\n", title)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s\t%d\n", k, counts[k])
	}
}

func writeWorn(w *tabwriter.Writer, title string, items []model.WardrobeItem) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(w, "  %s\t%d\n", it.Name, it.TimesWorn)
	}
}

func newFeedbackCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Community feedback on outfits",
	}
	cmd.AddCommand(newFeedbackListCmd(a), newFeedbackAddCmd(a), newFeedbackDeleteCmd(a))
	return cmd
}

func newFeedbackListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list OUTFIT_ID",
		Short: "Show feedback left on an outfit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			list, err := a.outfits.Feedback(cmd.Context(), model.ID(args[0]))
			if err != nil {
				return fmt.Errorf("failed to load feedback: %w", err)
			}
			return a.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "ID\tRATING\tCOMMENT\tCREATED\n")
				for _, fb := range list {
					fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", fb.ID, fb.Rating, fb.Comment, formatTime(fb.CreatedAt))
				}
			})
		},
	}
}

func newFeedbackAddCmd(a *app) *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:     "add OUTFIT_ID RATING",
		Short:   "Rate an outfit from 1 to 5",
		Example: `  wardrobe feedback add 7 5 --comment "Love the colours"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return outfit.ErrInvalidRating
			}
			if err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			fb, err := a.outfits.AddFeedback(cmd.Context(), outfit.FeedbackInput{
				OutfitID: model.ID(args[0]),
				Rating:   rating,
				Comment:  comment,
			})
			if err != nil {
				return fmt.Errorf("failed to add feedback: %w", err)
			}
			a.printf("Added feedback %s\n", fb.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&comment, "comment", "", "Comment")
	return cmd
}

func newFeedbackDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete FEEDBACK_ID",
		Aliases: []string{"rm"},
		Short:   "Delete your feedback",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(cmd.Context()); err != nil {
				return err
			}
			if err := a.outfits.DeleteFeedback(cmd.Context(), model.ID(args[0])); err != nil {
				return fmt.Errorf("failed to delete feedback: %w", err)
			}
			a.printf("Deleted feedback %s\n", args[0])
			return nil
		},
	}
}
