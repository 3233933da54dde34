package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
)

// Dashboard shows the market summary: the tracked dollar quotes as a table,
// greeting the session user the way the web dashboard's header does.
func (a *App) Dashboard(ctx context.Context) error {
	if a.session.User != nil {
		name, _, _ := strings.Cut(a.session.User.Email, "@")
		fmt.Fprintf(a.out, "Welcome, %s. Market summary:\n", name)
	}

	quotes, err := a.market.DollarQuotes(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load the quotes. Try again later.")
		return err
	}
	if len(quotes) == 0 {
		fmt.Fprintln(a.out, "No quotes available right now.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RATE\tBUY\tSELL\tUPDATED")
	for _, q := range quotes {
		fmt.Fprintf(tw, "Dolar %s\t%s\t%s\t%s\n",
			q.Name, formatARS(q.Buy), formatARS(q.Sell), q.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

// Whoami prints the profile the bootstrapper resolved for this entry.
func (a *App) Whoami(ctx context.Context) error {
	if a.session.User == nil {
		fmt.Fprintln(a.out, "No authenticated user.")
		return nil
	}
	fmt.Fprintf(a.out, "id=%d email=%s\n", a.session.User.ID, a.session.User.Email)
	return nil
}
