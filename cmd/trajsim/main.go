package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/storage"
)

var logger = log.New(os.Stderr, "trajsim: ", log.LstdFlags)

var rootCmd = &cobra.Command{
	Use:   "trajsim",
	Short: "projectile trajectories in vacuum and under air drag",
	Long: "trajsim integrates a projectile with and without quadratic air drag,\n" +
		"compares range, peak height and flight time, and stores or renders the runs.",
	SilenceUsage: true,
}

// main registers every command and exits with status 1 on error.
func main() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("data", ".trajsim", "data directory")
	rootCmd.PersistentFlags().String("settings", "", "settings file (default .trajsim.yaml)")
	_ = viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list launch presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s g=%-5.2f m=%-7.4f c=%-7.4f v0=%-5.0f angle=%-3.0f dt=%.3f\n",
					name, p.Gravity, p.Mass, p.Drag, p.Speed, p.AngleDeg, p.Dt)
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		newRunCmd(), newListCmd(), newShowCmd(), newRmCmd(),
		newPlotCmd(), newLiveCmd(),
		newExportCSVCmd(), newExportSVGCmd(), newExportGIFCmd(),
		newCompareCmd(), newSweepCmd(), newOptimizeCmd(), newDispersionCmd(), newScenarioCmd(),
		newWatchCmd(), newServeCmd(),
		presetsCmd,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig() {
	if file, _ := rootCmd.PersistentFlags().GetString("settings"); file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName(".trajsim")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("TRAJSIM")
	viper.AutomaticEnv()

	// A missing settings file leaves the flag defaults in place.
	_ = viper.ReadInConfig()
}

func dataDir() string {
	return viper.GetString("data")
}

func openStore(cmd *cobra.Command) (*storage.Store, error) {
	return storage.Open(cmd.Context(), dataDir())
}
