// Package cmds builds the fleet command tree.
package cmds

import (
	"fmt"

	"github.com/golangdaddy/fleet/pkg/config"
	"github.com/golangdaddy/fleet/pkg/fleet"
	"github.com/golangdaddy/fleet/pkg/logflags"
	"github.com/golangdaddy/fleet/pkg/messages"
	"github.com/golangdaddy/fleet/pkg/scenario"
	"github.com/golangdaddy/fleet/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// lang selects the message catalog.
	lang string
	// logFlag enables logging.
	logFlag bool
	// logOutput is a comma separated list of components that should log.
	logOutput string
	// logDest is the file logs are written to.
	logDest string
	// envFile is the .env file read before anything else.
	envFile string
	// configFile is the scenario to load.
	configFile string
	// capacity limits the number of vehicles in the garage.
	capacity int
	// summary prints the fleet table after the run.
	summary bool

	stepKm     int
	stepLiters int
)

// WindowOptions are the settings of the window subcommand.
type WindowOptions struct {
	// StepKm is the distance driven per key press.
	StepKm int
	// StepLiters is the amount refueled per key press.
	StepLiters int
}

// WindowFunc opens an interactive view over g. It blocks until the window closes.
type WindowFunc func(g *fleet.Garage, catalog *messages.Catalog, opts WindowOptions) error

const fleetCommandLongDesc = `Fleet models cars and trucks that can be started, driven and refueled.

Run without a subcommand it replays the demonstration scenario: one car and one
truck are started, driven and refueled, and the fleet totals are printed.

Settings may also come from a .env file (see --env):

	FLEET_LANG        message language (en, ru)
	FLEET_LOG         enable logging (true/false)
	FLEET_LOG_OUTPUT  components that log (garage, scenario, ui)

Flags take precedence over the environment.`

// New returns an initialized command tree. When window is nil the window
// subcommand is left out.
func New(window WindowFunc) *cobra.Command {
	rootCommand := &cobra.Command{
		Use:               "fleet",
		Short:             "Fleet drives and refuels a small garage of vehicles.",
		Long:              fleetCommandLongDesc,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logflags.Close()
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, config.Default())
		},
	}

	rootCommand.PersistentFlags().StringVar(&lang, "lang", "", fmt.Sprintf("Message language %v.", messages.Languages()))
	rootCommand.PersistentFlags().BoolVarP(&logFlag, "log", "", false, "Enable logging.")
	rootCommand.PersistentFlags().StringVarP(&logOutput, "log-output", "", "", "Comma separated list of components that should log (garage, scenario, ui).")
	rootCommand.PersistentFlags().StringVarP(&logDest, "log-dest", "", "", "Writes logs to the specified file.")
	rootCommand.PersistentFlags().StringVar(&envFile, "env", ".env", "Environment file loaded at startup, ignored when missing.")
	addGarageFlags(rootCommand.Flags())

	// 'run' subcommand.
	runCommand := &cobra.Command{
		Use:   "run",
		Short: "Run a scenario file.",
		Long: `Builds the vehicles listed in a YAML scenario file and executes its steps.

Step actions: start, drive, refuel, set-fuel, info, fuel, totals, summary.
Rejected operations are reported and the run continues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadScenario()
			if err != nil {
				return err
			}
			return runScenario(cmd, c)
		},
	}
	runCommand.Flags().StringVarP(&configFile, "config", "c", "", "Scenario file to run.")
	runCommand.MarkFlagRequired("config")
	addGarageFlags(runCommand.Flags())
	rootCommand.AddCommand(runCommand)

	// 'window' subcommand.
	if window != nil {
		windowCommand := &cobra.Command{
			Use:   "window",
			Short: "Open the fleet in a window.",
			Long: `Shows every vehicle with its fuel level.

Arrow keys select a vehicle, S starts the engine, D drives, R refuels and
Escape closes the window. Without --config the demonstration fleet is shown.`,
			Args: cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := loadScenario()
				if err != nil {
					return err
				}
				catalog, err := messages.Lookup(resolveLang(c.Lang))
				if err != nil {
					return err
				}
				g := fleet.NewGarage(capacity)
				if err := scenario.Build(c, g); err != nil {
					return err
				}
				return window(g, catalog, WindowOptions{StepKm: stepKm, StepLiters: stepLiters})
			},
		}
		windowCommand.Flags().StringVarP(&configFile, "config", "c", "", "Scenario file whose vehicles are shown.")
		windowCommand.Flags().IntVar(&stepKm, "step-km", 50, "Distance driven per key press.")
		windowCommand.Flags().IntVar(&stepLiters, "step-liters", 10, "Fuel added per key press.")
		windowCommand.Flags().IntVar(&capacity, "capacity", 0, "Maximum number of vehicles in the garage (0 = unlimited).")
		rootCommand.AddCommand(windowCommand)
	}

	// 'version' subcommand.
	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Prints version.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Fleet\nVersion: %s\n", version.String())
		},
	}
	rootCommand.AddCommand(versionCommand)

	return rootCommand
}

func addGarageFlags(fs *pflag.FlagSet) {
	fs.IntVar(&capacity, "capacity", 0, "Maximum number of vehicles in the garage (0 = unlimited).")
	fs.BoolVar(&summary, "summary", false, "Print a table of the fleet after the run.")
}

// setup merges the environment into the flags and configures logging
func setup(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadEnv(envFile)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("lang") && settings.Lang != "" {
		lang = settings.Lang
	}
	if !cmd.Flags().Changed("log") && settings.Log {
		logFlag = true
	}
	if !cmd.Flags().Changed("log-output") && settings.LogOutput != "" && logFlag {
		logOutput = settings.LogOutput
	}
	return logflags.Setup(logFlag, logOutput, logDest)
}

func loadScenario() (*config.Config, error) {
	if configFile == "" {
		return config.Default(), nil
	}
	return config.Load(configFile)
}

// resolveLang prefers the flag or environment over the scenario file
func resolveLang(fileLang string) string {
	if lang != "" {
		return lang
	}
	return fileLang
}

func runScenario(cmd *cobra.Command, c *config.Config) error {
	catalog, err := messages.Lookup(resolveLang(c.Lang))
	if err != nil {
		return err
	}
	g := fleet.NewGarage(capacity)
	con := fleet.NewConsole(cmd.OutOrStdout(), catalog)
	report, err := scenario.Run(c, g, con)
	if err != nil {
		return err
	}
	if summary {
		con.PrintSummary(g)
	}
	logflags.ScenarioLogger().Infof("%d steps, %d rejected; %s", report.Executed, report.Rejected, g)
	return nil
}
