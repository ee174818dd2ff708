package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/planner"
	"wardrobe-planner/pkg/gcalendar"
)

func newPlanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan outfits for the week and for occasions",
	}
	cmd.AddCommand(
		newPlanWeekCmd(a),
		newPlanListCmd(a),
		newPlanShowCmd(a),
		newPlanDeleteCmd(a),
		newPlanOccasionCmd(a),
		newPlanOccasionsCmd(a),
		newPlanExportCmd(a),
		newPlanCalendarAuthCmd(a),
	)
	return cmd
}

func newPlanWeekCmd(a *app) *cobra.Command {
	var (
		name, start string
		days        map[string]string
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Assign outfits to the days of a week",
		Example: `  wardrobe plan week --name "Busy week" --start "next monday" --day mon=4 --day wed=9
  wardrobe plan week --name Holiday --start 2024-07-01 --day saturday=2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := planner.WeeklyPlanInput{
				Name:      name,
				StartDate: start,
				Days:      make(map[string]model.ID, len(days)),
			}
			for day, id := range days {
				input.Days[day] = model.ID(id)
			}
			p, err := a.planner.CreateWeeklyPlan(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to create plan: %w", err)
			}
			a.printf("Created plan %s (%s) for %s to %s\n", p.ID, p.Name, p.StartDate, p.EndDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Plan name")
	cmd.Flags().StringVar(&start, "start", "", `First day, e.g. 2024-05-06, "tomorrow", "next monday" (default: today)`)
	cmd.Flags().StringToStringVar(&days, "day", nil, "weekday=outfit id, repeatable")
	return cmd
}

func newPlanListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List weekly plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans := a.planner.WeeklyPlans(cmd.Context())
			return a.render(plans, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "ID\tNAME\tSTART\tEND\tDAYS\n")
				for _, p := range plans {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.StartDate, p.EndDate, len(p.DailyOutfits))
				}
			})
		},
	}
}

func newPlanShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show PLAN_ID",
		Short: "Show the days of a weekly plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := a.planner.Schedule(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve plan: %w", err)
			}
			return a.render(days, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "DATE\tDAY\tOUTFIT\n")
				for _, d := range days {
					fmt.Fprintf(w, "%s\t%s\t%s\n", a.dates.Format(d.Date), d.Weekday, d.OutfitID)
				}
			})
		},
	}
}

func newPlanDeleteCmd(a *app) *cobra.Command {
	var occasion bool

	cmd := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a weekly plan or, with --occasion, an occasion outfit",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			del := a.planner.DeleteWeeklyPlan
			if occasion {
				del = a.planner.DeleteOccasionOutfit
			}
			if err := del(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete: %w", err)
			}
			a.printf("Deleted %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&occasion, "occasion", false, "Delete an occasion outfit")
	return cmd
}

func newPlanOccasionCmd(a *app) *cobra.Command {
	var (
		occasion string
		event    model.EventDetails
	)

	cmd := &cobra.Command{
		Use:   "occasion OUTFIT_ID",
		Short: "Pick an outfit for an event",
		Example: `  wardrobe plan occasion 7 --occasion wedding --event "Sam & Lee" --date 2024-06-15 --location Lisbon`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadOutfits(cmd); err != nil {
				return err
			}
			o, ok := a.outfits.Outfits().Get(args[0])
			if !ok {
				return fmt.Errorf("outfit %s not found", args[0])
			}
			saved, err := a.planner.PlanOccasion(cmd.Context(), planner.OccasionInput{
				Occasion: occasion,
				Event:    event,
				Outfit:   o,
			})
			if err != nil {
				return fmt.Errorf("failed to plan occasion: %w", err)
			}
			a.printf("Planned %s for %s\n", saved.Outfit.Name, describeEvent(saved))
			return nil
		},
	}

	cmd.Flags().StringVar(&occasion, "occasion", "", "Occasion ("+strings.Join(model.Occasions, ", ")+")")
	cmd.Flags().StringVar(&event.Name, "event", "", "Event name")
	cmd.Flags().StringVar(&event.Date, "date", "", "Event date, absolute or relative")
	cmd.Flags().StringVar(&event.Location, "location", "", "Event location")
	cmd.Flags().StringVar(&event.Notes, "notes", "", "Notes")
	return cmd
}

func newPlanOccasionsCmd(a *app) *cobra.Command {
	var occasion string

	cmd := &cobra.Command{
		Use:   "occasions",
		Short: "List occasion outfits",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := a.planner.OccasionOutfits(cmd.Context(), occasion)
			return a.render(list, func(w *tabwriter.Writer) {
				fmt.Fprintf(w, "ID\tOCCASION\tEVENT\tDATE\tOUTFIT\n")
				for _, o := range list {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", o.ID, o.Occasion, o.EventDetails.Name, o.EventDetails.Date, o.Outfit.Name)
				}
			})
		},
	}

	cmd.Flags().StringVar(&occasion, "occasion", "all", "Only this occasion")
	return cmd
}

func describeEvent(o model.OccasionOutfit) string {
	parts := []string{o.Occasion}
	if o.EventDetails.Name != "" {
		parts = append(parts, o.EventDetails.Name)
	}
	if o.EventDetails.Date != "" {
		parts = append(parts, "on "+o.EventDetails.Date)
	}
	return strings.Join(parts, " ")
}

func newPlanExportCmd(a *app) *cobra.Command {
	var input planner.ExportInput

	cmd := &cobra.Command{
		Use:   "export-calendar",
		Short: "Add planned outfits to Google Calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Outfit names make nicer event titles; ids are used when offline.
			if err := a.loadOutfits(cmd); err != nil {
				a.l.Debugf(cmd.Context(), "cli.plan.export: outfits unavailable: %v", err)
			}
			if input.CalendarID == "" {
				input.CalendarID = a.cfg.GoogleCalendar.CalendarID
			}
			out, err := a.planner.ExportCalendar(cmd.Context(), input)
			if errors.Is(err, planner.ErrCalendarDisabled) {
				return fmt.Errorf("%w: set google_calendar.credentials_path and run `wardrobe plan calendar-auth`", err)
			}
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
			a.printf("Created %d events, %d already in the calendar\n", out.Created, out.Skipped)
			for _, link := range out.Links {
				a.printf("  %s\n", link)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input.PlanID, "plan", "", "Only this weekly plan (default: all)")
	cmd.Flags().BoolVar(&input.Occasions, "occasions", false, "Include dated occasion outfits")
	cmd.Flags().StringVar(&input.CalendarID, "calendar", "", "Calendar id (default: from config, else primary)")
	return cmd
}

func newPlanCalendarAuthCmd(a *app) *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access for OAuth desktop credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			gc := a.cfg.GoogleCalendar
			if !gc.Enabled() {
				return planner.ErrCalendarDisabled
			}
			creds, err := os.ReadFile(gc.CredentialsPath)
			if err != nil {
				return fmt.Errorf("failed to read credentials: %w", err)
			}
			auth, err := gcalendar.NewAuthorizer(creds)
			if err != nil {
				return err
			}

			if code == "" {
				a.printf("Open this link in your browser and paste the code below:\n\n%s\n\nCode: ", auth.AuthURL("state-token"))
				sc := bufio.NewScanner(cmd.InOrStdin())
				if !sc.Scan() {
					return fmt.Errorf("no authorization code entered")
				}
				code = strings.TrimSpace(sc.Text())
			}
			if err := auth.Exchange(cmd.Context(), code, gc.TokenPath); err != nil {
				return err
			}
			a.printf("Token saved to %s\n", gc.TokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Authorization code, prompted for when empty")
	return cmd
}
