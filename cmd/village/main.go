package main

import (
	"fmt"
	"os"
	"strings"
	"village-delivery-sim/internal/config"
	"village-delivery-sim/internal/domain"
	"village-delivery-sim/internal/services"
	"village-delivery-sim/internal/village"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	roadsPath string
	seed      int64
	parcels   int
	start     string
	maxTurns  int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cfg = &config.Config{ParcelCount: services.DefaultParcelCount, Trials: services.DefaultTrials, StartPlace: services.DefaultStart}
	}

	root := &cobra.Command{
		Use:          "village",
		Short:        "Simulate parcel delivery robots on a village road map",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.roadsPath, "roads", cfg.RoadsPath, "JSON file with roads and mail route (built-in village when empty)")
	root.PersistentFlags().Int64Var(&opts.seed, "seed", cfg.Seed, "random seed, 0 for a random run")
	root.PersistentFlags().IntVar(&opts.parcels, "parcels", cfg.ParcelCount, "number of parcels per scenario")
	root.PersistentFlags().StringVar(&opts.start, "start", cfg.StartPlace, "place where the robot starts")
	root.PersistentFlags().IntVar(&opts.maxTurns, "max-turns", 0, "abort a run after this many turns, 0 for no limit")

	root.AddCommand(newRunCmd(opts), newCompareCmd(opts, cfg.Trials), newRouteCmd(opts))
	return root
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	var robot string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one robot on a random scenario and print every move",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := village.Load(opts.roadsPath)
			if err != nil {
				return err
			}

			src := services.SourceForSeed(opts.seed)
			entry, err := services.RobotByName(robot, m.Graph, m.MailRoute, src)
			if err != nil {
				return err
			}

			state, err := services.RandomVillageState(m.Graph, src, services.ScenarioOptions{ParcelCount: opts.parcels, Start: opts.start})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			res, err := services.RunRobot(m.Graph, state, entry.Robot, entry.Memory,
				services.WithMaxTurns(opts.maxTurns),
				services.WithOnMove(func(_ int, direction string, _ domain.VillageState) {
					fmt.Fprintf(out, "Moved to %s\n", direction)
				}),
			)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Done in %d turns\n", res.Turns)
			return nil
		},
	}
	cmd.Flags().StringVar(&robot, "robot", services.RobotGoal, "robot to run: "+strings.Join(services.RobotNames(), ", "))
	return cmd
}

func newCompareCmd(opts *rootOptions, defaultTrials int) *cobra.Command {
	var robotA, robotB string
	var trials int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the average turn counts of two robots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := village.Load(opts.roadsPath)
			if err != nil {
				return err
			}

			run, err := services.RecordComparison(cmd.Context(), services.ComparisonRequest{
				RobotA:      robotA,
				RobotB:      robotB,
				Trials:      trials,
				ParcelCount: opts.parcels,
				Start:       opts.start,
				Seed:        opts.seed,
				MaxTurns:    opts.maxTurns,
			}, m, nil, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s robot: %.2f turns on average over %d trials\n", run.RobotA, run.AverageA, run.Trials)
			fmt.Fprintf(out, "%s robot: %.2f turns on average over %d trials\n", run.RobotB, run.AverageB, run.Trials)
			return nil
		},
	}
	cmd.Flags().StringVar(&robotA, "a", services.RobotRoute, "first robot")
	cmd.Flags().StringVar(&robotB, "b", services.RobotGoal, "second robot")
	cmd.Flags().IntVar(&trials, "trials", defaultTrials, "number of random scenarios")
	return cmd
}

func newRouteCmd(opts *rootOptions) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print the shortest route between two places",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := village.Load(opts.roadsPath)
			if err != nil {
				return err
			}

			route, err := services.FindRoute(m.Graph, from, to)
			if err != nil {
				return err
			}

			stops := append([]string{from}, route...)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d steps)\n", strings.Join(stops, " -> "), len(route))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", village.PostOffice, "start place")
	cmd.Flags().StringVar(&to, "to", "", "target place")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
