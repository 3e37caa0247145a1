package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/loader"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/stats"
)

func cmdUnits() *cobra.Command {
	var (
		trainings  map[string]int
		properties int
	)
	cmd := &cobra.Command{
		Use:   "units",
		Short: "Show the unit catalog with stats resolved for the given trainings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loader.LoadConfigOrDefault(dataDir, logger)
			if err != nil {
				return err
			}

			levels := make(models.TrainingLevels, len(trainings))
			for id, lvl := range trainings {
				levels[models.TrainingID(id)] = lvl
			}

			printUnits(os.Stdout, cfg, stats.NewResolverWithConfig(cfg), levels)

			if properties > 0 {
				power := stats.Power(properties, levels.Level(cfg.HonorTraining))
				color.New(color.FgYellow).Printf("\n⚔️  Power with %d properties: %.2f%%\n", properties, power)
			}
			return nil
		},
	}
	cmd.Flags().StringToIntVarP(&trainings, "training", "t", nil, "Training levels, e.g. -t firearms=10,honor=3")
	cmd.Flags().IntVarP(&properties, "properties", "p", 0, "Number of properties, to show the resulting power")
	return cmd
}
