package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"exclusive/internal/callsite"
	"exclusive/internal/config"
	"exclusive/internal/gen"
)

// Version is filled when building with -ldflags, but *not* when installing
// via "go install".
var Version string

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exclusive",
		Short: "Expand exclusive! invocations into collision-free Go declarations.",
		Long: `Expand exclusive! { ... } invocations found in .exgo files into uniquely
named, never-called function values. Generated files are written next to
their sources as <name>_exclusive.go.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Configure log level
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			if getFlag(cmd, "version") {
				fmt.Fprintln(cmd.OutOrStdout(), "exclusive "+version())
				return
			}

			_ = cmd.Help()
		},
	}

	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("config", config.DefaultFile, "project config file (optional)")

	rootCmd.AddCommand(newGenCmd(), newCheckCmd(), newExpandCmd())

	return rootCmd
}

func version() string {
	if Version != "" {
		// Built with -ldflags
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		return info.Main.Version
	}
	// Unknown, perhaps "go run"
	return "(unknown version)"
}

// generatorConfig loads the project config and applies command line
// overrides shared by all subcommands.
func generatorConfig(cmd *cobra.Command) (gen.GeneratorConfig, *config.Config, error) {
	path := getString(cmd, "config")

	var (
		cfg *config.Config
		err error
	)

	if cmd.Flags().Changed("config") {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.LoadOptional(path)
	}

	if err != nil {
		return gen.GeneratorConfig{}, nil, err
	}

	genCfg := gen.ConfigFrom(cfg)
	if getFlag(cmd, "placeholder") {
		genCfg.Mode = callsite.ModePlaceholder
	}

	if f := cmd.Flags().Lookup("out"); f != nil {
		genCfg.OutputDir = f.Value.String()
	}

	if f := cmd.Flags().Lookup("dump-tokens"); f != nil {
		genCfg.DumpTokens = getFlag(cmd, "dump-tokens")
	}

	log.Debugf("config: %+v", genCfg)

	return genCfg, cfg, nil
}
