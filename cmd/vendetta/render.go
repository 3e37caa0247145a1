package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/archive"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/stats"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/travel"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("14")).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("14")).
	Padding(0, 2)

func banner(title string) string {
	return bannerStyle.Render("Vendetta\n" + title)
}

func winnerColor(w models.Winner) *color.Color {
	switch w {
	case models.WinnerAttacker:
		return color.New(color.FgGreen, color.Bold)
	case models.WinnerDefender:
		return color.New(color.FgRed, color.Bold)
	}
	return color.New(color.FgYellow, color.Bold)
}

func printBattle(w io.Writer, report *models.BattleReport, quiet bool) {
	if !quiet {
		for _, round := range report.Rounds {
			printRound(w, round)
		}
	}

	winnerColor(report.Winner).Fprintf(w, "\n✓ %s\n", report.Message)
	printSideStats(w, report)

	if looted := report.Attacker.Looted; looted != nil {
		fmt.Fprintf(w, "\n💰 Looted: %s\n", formatResources(*looted))
	}
	fmt.Fprintf(w, "\n🏠 Attacker survivors: %s\n", formatRoster(report.AttackerSurvivors))
	fmt.Fprintf(w, "🛡️  Defender survivors: %s\n", formatRoster(report.DefenderSurvivors))
	fmt.Fprintf(w, "\n🔖 Report %s\n", report.ID)
}

func printRound(w io.Writer, round models.RoundReport) {
	title := fmt.Sprintf("\n⚔️  Round %d", round.Number)
	if round.Number == 0 {
		title = "\n⚔️  No combat"
	}
	fmt.Fprintln(w, title)

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Side", "Unit", "Initial", "Lost", "Remaining"}),
	)
	for _, side := range []struct {
		name string
		rs   models.RoundSide
	}{{"Attacker", round.Attacker}, {"Defender", round.Defender}} {
		for _, u := range side.rs.Units {
			table.Append([]string{
				side.name,
				u.Name,
				fmt.Sprintf("%d", u.Initial),
				fmt.Sprintf("%d", u.Lost),
				fmt.Sprintf("%d", u.Remaining()),
			})
		}
	}
	table.Render()

	fmt.Fprintf(w, "   Attacker: attack %d → %.0f, defense %d → %.0f at %.2f%% power\n",
		round.Attacker.RawAttack, round.Attacker.PowerAttack,
		round.Attacker.RawDefense, round.Attacker.PowerDefense, round.Attacker.PowerPercent)
	fmt.Fprintf(w, "   Defender: attack %d → %.0f, defense %d → %.0f at %.2f%% power\n",
		round.Defender.RawAttack, round.Defender.PowerAttack,
		round.Defender.RawDefense, round.Defender.PowerDefense, round.Defender.PowerPercent)
}

func printSideStats(w io.Writer, report *models.BattleReport) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Side", "Troops", "Final", "Lost", "Points Lost", "Resources Lost"}),
	)
	for _, side := range []struct {
		name string
		s    models.SideStats
	}{{"Attacker", report.Attacker}, {"Defender", report.Defender}} {
		table.Append([]string{
			side.name,
			fmt.Sprintf("%d", side.s.InitialTroops),
			fmt.Sprintf("%d", side.s.FinalTroops),
			fmt.Sprintf("%d", side.s.TroopsLost),
			fmt.Sprintf("%d", side.s.PointsLost),
			formatResources(side.s.ResourcesLost),
		})
	}
	table.Render()
}

func printEspionage(w io.Writer, report *models.EspionageReport, quiet bool) {
	printBattle(w, &report.Battle, quiet)

	if report.Intel == nil {
		color.New(color.FgRed).Fprintln(w, "\n🕵️  The spies brought nothing back")
	} else {
		color.New(color.FgGreen, color.Bold).Fprintln(w, "\n🕵️  Intel")
		fmt.Fprintf(w, "   Resources: %s\n", formatResources(report.Intel.Resources))
		if len(report.Intel.Buildings) > 0 {
			table := tablewriter.NewTable(w, tablewriter.WithHeader([]string{"Building", "Level"}))
			for _, b := range report.Intel.Buildings {
				table.Append([]string{b.Building, fmt.Sprintf("%d", b.Level)})
			}
			table.Render()
		}
	}
	if len(report.Returning) > 0 {
		fmt.Fprintf(w, "\n🚚 Returning: %s\n", formatRoster(report.Returning))
	}
}

func printPlan(w io.Writer, plan travel.Plan) {
	color.New(color.FgYellow).Fprintln(w, "\n🗺️  Travel")
	fmt.Fprintf(w, "   Distance: %.2f\n", plan.Distance)
	fmt.Fprintf(w, "   Fleet speed: %d\n", plan.Speed)
	fmt.Fprintf(w, "   Duration: %s\n", time.Duration(plan.DurationSeconds)*time.Second)
	fmt.Fprintf(w, "   Cost: %d currency\n", plan.Cost)
}

func printUnits(w io.Writer, cfg *models.Config, resolver *stats.Resolver, levels models.TrainingLevels) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Unit", "Type", "Attack", "Defense", "Capacity", "Speed", "Salary", "Points", "Cost"}),
	)
	cfg.Each(func(u *models.UnitConfig) {
		r := resolver.Resolve(u, levels)
		table.Append([]string{
			u.Name,
			string(u.Type),
			fmt.Sprintf("%d", r.Attack),
			fmt.Sprintf("%d", r.Defense),
			fmt.Sprintf("%d", r.Capacity),
			fmt.Sprintf("%d", r.Speed),
			fmt.Sprintf("%d", r.Salary),
			fmt.Sprintf("%d", u.Points),
			formatResources(u.Cost),
		})
	})
	table.Render()
}

func printSummaries(w io.Writer, summaries []archive.Summary) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No archived reports")
		return
	}
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"ID", "Mission", "Winner", "Outcome", "Rounds", "Engine", "Archived"}),
	)
	for _, s := range summaries {
		table.Append([]string{
			s.ID,
			string(s.Mission),
			string(s.Winner),
			string(s.Outcome),
			fmt.Sprintf("%d", s.Rounds),
			s.EngineVersion,
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	table.Render()
}

func formatResources(r models.ResourceBundle) string {
	if r.IsZero() {
		return "-"
	}
	out := ""
	r.Each(func(kind models.ResourceKind, amount int64) {
		if amount == 0 {
			return
		}
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s=%d", kind, amount)
	})
	return out
}

func formatRoster(r models.Roster) string {
	out := ""
	for _, e := range r {
		if e.Quantity == 0 {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%d %s", e.Quantity, e.UnitID)
	}
	if out == "" {
		return "none"
	}
	return out
}
