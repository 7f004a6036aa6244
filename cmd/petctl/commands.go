package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"text/tabwriter"

	"pet-care-tracker/internal/domain/pets"
	"pet-care-tracker/internal/domain/reminders"
	"pet-care-tracker/internal/platform/calendar"
	"pet-care-tracker/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

func newPetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pets",
		Short: "List pets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var items []pets.Pet
			if err := a.client.DoJSON(cmd.Context(), http.MethodGet, "/pets", nil, nil, &items); err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNAME\tTYPE\tBREED\tNEXT VET")
			for _, p := range items {
				next := "-"
				if p.NextVetVisit != nil {
					next = p.NextVetVisit.Format(calendar.DayLayout)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Type, orDash(p.Breed), next)
			}
			return tw.Flush()
		},
	}
}

func newTodayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Reminders due today, by time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var items []reminders.Reminder
			if err := a.client.DoJSON(cmd.Context(), http.MethodGet, "/reminders/today", nil, nil, &items); err != nil {
				return err
			}
			names, err := a.petNames(cmd)
			if err != nil {
				return err
			}
			return printReminders(cmd.OutOrStdout(), items, names)
		},
	}
}

func newUpcomingCmd(a *app) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Reminders between today and today+days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{"days": {strconv.Itoa(days)}}
			var items []reminders.Reminder
			if err := a.client.DoJSON(cmd.Context(), http.MethodGet, "/reminders/upcoming", q, nil, &items); err != nil {
				return err
			}
			names, err := a.petNames(cmd)
			if err != nil {
				return err
			}
			return printReminders(cmd.OutOrStdout(), items, names)
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "Window size in days")
	return cmd
}

func newToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <reminder-id>",
		Short: "Mark a reminder as done (or undone)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r reminders.Reminder
			err := a.client.DoJSON(cmd.Context(), http.MethodPost, "/reminders/"+url.PathEscape(args[0])+"/toggle", nil, nil, &r)
			if httpclient.IsNotFound(err) {
				return fmt.Errorf("reminder %s not found", args[0])
			}
			if err != nil {
				return err
			}

			state := "pending"
			if r.IsComplete {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %q is now %s\n", r.ID, r.Title, state)
			return nil
		},
	}
}

func newCalendarCmd(a *app) *cobra.Command {
	var (
		from string
		days int
	)
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Day-by-day view of reminders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{"days": {strconv.Itoa(days)}}
			if from != "" {
				q.Set("from", from)
			}
			var out []reminders.Day
			if err := a.client.DoJSON(cmd.Context(), http.MethodGet, "/reminders/calendar", q, nil, &out); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, d := range out {
				marker := ""
				if d.IsToday {
					marker = " (today)"
				}
				fmt.Fprintf(w, "%s%s\n", d.Date.Format("Mon 2006-01-02"), marker)
				if !d.HasReminders() {
					fmt.Fprintln(w, "  -")
					continue
				}
				for _, r := range d.Reminders {
					fmt.Fprintf(w, "  %s  %s [%s]\n", r.Time, r.Title, r.Type)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "First day YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&days, "days", 7, "Number of days")
	return cmd
}

func (a *app) petNames(cmd *cobra.Command) (map[string]string, error) {
	var items []pets.Pet
	if err := a.client.DoJSON(cmd.Context(), http.MethodGet, "/pets", nil, nil, &items); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(items))
	for _, p := range items {
		out[p.ID] = p.Name
	}
	return out, nil
}

func printReminders(w io.Writer, items []reminders.Reminder, names map[string]string) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No reminders.")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTIME\tDATE\tPET\tTITLE\tTYPE\tFREQ\tDONE")
	for _, r := range items {
		date := "-"
		if r.Date != nil {
			date = r.Date.Format(calendar.DayLayout)
		}
		done := " "
		if r.IsComplete {
			done = "x"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Time, date, orDash(names[r.PetID]), r.Title, r.Type, r.Frequency, done)
	}
	return tw.Flush()
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
