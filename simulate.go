package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mark3labs/last-stand/config"
	"github.com/mark3labs/last-stand/game"
	"github.com/mark3labs/last-stand/match"
	"github.com/mark3labs/last-stand/utils"
	"github.com/mark3labs/last-stand/views"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	deadStyle   = cellStyle.Foreground(lipgloss.Color("241"))
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
)

func newSimulateCommand(cfg game.Config, settings config.Settings) *cobra.Command {
	var (
		seed     int64
		bots     int
		maxTicks int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a headless match and print the standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			simCfg := cfg
			simCfg.BotCount = bots
			rng := game.NewRandom(seed)

			result, err := match.Simulate(cmd.Context(), simCfg, rng, utils.GenerateCallsign(rng), maxTicks)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderStandings(result))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", settings.Seed, "random seed (0 = time based)")
	cmd.Flags().IntVar(&bots, "bots", cfg.BotCount, "number of bots")
	cmd.Flags().IntVar(&maxTicks, "ticks", 60*60*5, "tick limit")
	return cmd
}

func renderStandings(result match.SimulationResult) string {
	players := append([]game.PlayerState(nil), result.Final.Players...)
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Alive != players[j].Alive {
			return players[i].Alive
		}
		if players[i].Kills != players[j].Kills {
			return players[i].Kills > players[j].Kills
		}
		return players[i].Health > players[j].Health
	})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Name", "Kind", "Kills", "Health", "Weapon", "Status").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(players) && !players[row].Alive {
				return deadStyle
			}
			return cellStyle
		})

	for i, p := range players {
		status := "alive"
		if !p.Alive {
			status = "dead"
		}
		t.Row(strconv.Itoa(i+1), p.Name, string(p.Kind), strconv.Itoa(p.Kills), strconv.Itoa(p.Health), string(p.Weapon), status)
	}

	winner := "none"
	if result.Final.Winner != nil {
		if w, ok := result.Final.Player(*result.Final.Winner); ok {
			winner = w.Name
		}
	}
	title := titleStyle.Render(fmt.Sprintf("Phase %s after %d ticks (%s). Winner: %s. Kills: %d",
		result.Final.Phase, result.Ticks, views.FormatDuration(result.Duration), winner, len(result.Kills)))

	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render())
}
