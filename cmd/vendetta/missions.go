package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/archive"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/config"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/loader"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/mission"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/travel"
)

func cmdRun() *cobra.Command {
	var (
		asJSON     bool
		quiet      bool
		ignoreCost bool
	)
	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Resolve the mission described by a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, engine, err := loadScenario(args[0])
			if err != nil {
				return err
			}

			if !quiet && !asJSON {
				fmt.Println(banner(fmt.Sprintf("%s vs %s", nameOr(scenario.Attacker.Name, "attacker"), nameOr(scenario.Defender.Name, "defender"))))
			}

			if scenario.Attacker.HasCoordinates() && scenario.Defender.HasCoordinates() {
				plan, err := planTravel(scenario, engine)
				if err != nil {
					return err
				}
				if err := travel.CheckAffordable(plan, scenario.Attacker.Resources.Currency); err != nil {
					if !ignoreCost {
						return err
					}
					logger.Warn("mission sent without enough currency", zap.Error(err))
				}
				if !quiet && !asJSON {
					printPlan(os.Stdout, plan)
				}
			}

			var store *archive.Store
			if archivePath != "" {
				store, err = archive.Open(archivePath, logger)
				if err != nil {
					return err
				}
				defer store.Close()
			}
			ctx := context.Background()

			switch scenario.Mission {
			case models.MissionEspionage:
				report, err := engine.RunEspionage(scenario.EspionageInput(engine))
				if err != nil {
					return err
				}
				logger.Debug("espionage resolved",
					zap.String("id", report.Battle.ID),
					zap.String("outcome", string(report.Battle.Outcome)))
				if store != nil {
					if _, err := store.SaveEspionage(ctx, report); err != nil {
						return err
					}
				}
				if asJSON {
					return writeJSON(report)
				}
				printEspionage(os.Stdout, report, quiet)
			default:
				report, err := engine.RunBattle(scenario.BattleInput(engine))
				if err != nil {
					return err
				}
				logger.Debug("battle resolved",
					zap.String("id", report.ID),
					zap.String("outcome", string(report.Outcome)),
					zap.Int("rounds", report.RoundsFought()))
				if store != nil {
					if _, err := store.SaveBattle(ctx, report); err != nil {
						return err
					}
				}
				if asJSON {
					return writeJSON(report)
				}
				printBattle(os.Stdout, report, quiet)
			}

			if store != nil && !asJSON {
				color.New(color.FgYellow).Printf("\n📦 Archived in %s\n", archivePath)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	cmd.Flags().BoolVar(&ignoreCost, "ignore-cost", false, "Resolve the mission even if the attacker cannot pay for travel")
	return cmd
}

func cmdTravel() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "travel <scenario.yaml>",
		Short: "Compute distance, duration and cost from attacker to defender",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, engine, err := loadScenario(args[0])
			if err != nil {
				return err
			}
			if !scenario.Attacker.HasCoordinates() || !scenario.Defender.HasCoordinates() {
				return fmt.Errorf("scenario %s: both players need coordinates", args[0])
			}
			plan, err := planTravel(scenario, engine)
			if err != nil {
				return err
			}
			printPlan(os.Stdout, plan)
			if err := travel.CheckAffordable(plan, scenario.Attacker.Resources.Currency); err != nil {
				color.Red("✗ %v", err)
			}
			return nil
		},
	}
	return cmd
}

// planTravel computes the trip from attacker to defender. The fleet must
// hold units that can carry out the mission: spies for espionage.
func planTravel(scenario *config.Scenario, engine *mission.Engine) (travel.Plan, error) {
	fleet := scenario.Attacker.Roster
	if scenario.Mission == models.MissionEspionage {
		fleet, _ = engine.SplitSpies(fleet)
	}
	if err := travel.CheckFleet(fleet); err != nil {
		return travel.Plan{}, fmt.Errorf("%s mission: %w", scenario.Mission, err)
	}
	return engine.ComputeTravel(scenario.Attacker.Coordinates, scenario.Defender.Coordinates,
		scenario.Attacker.Roster, scenario.Attacker.Trainings)
}

// loadScenario reads a scenario and builds an engine for its catalog
func loadScenario(path string) (*config.Scenario, *mission.Engine, error) {
	scenario, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	dir := dataDir
	if scenario.DataDir != "" {
		dir = scenario.DataDir
	}
	cfg, err := loader.LoadConfigOrDefault(dir, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("scenario loaded",
		zap.String("file", path),
		zap.String("mission", string(scenario.Mission)),
		zap.String("data", dir))
	return scenario, mission.NewEngine(cfg), nil
}

func writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
