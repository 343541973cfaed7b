package cli

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"exclusive/internal/discover"
	"exclusive/internal/gen"
)

// errStale is returned by check when any generated file needs regenerating.
var errStale = errors.New("generated files are out of date; run exclusive gen")

func newCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check [flags] [patterns...]",
		Short: "verify that generated files are up to date.",
		Long: `Regenerate in memory and compare with the files on disk. Exits with a
non-zero status when a generated file is missing or differs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			genCfg, cfg, err := generatorConfig(cmd)
			if err != nil {
				return err
			}

			sources, err := discover.Sources(args, cfg.Extension)
			if err != nil {
				return err
			}

			files, err := gen.NewGenerator(genCfg).Generate(sources)
			if err != nil {
				return err
			}

			stale, err := gen.Stale(files, genCfg.OutputDir)
			if err != nil {
				return err
			}

			for _, path := range stale {
				log.Errorf("%s is out of date", path)
			}

			if len(stale) > 0 {
				return fmt.Errorf("%w (%d of %d)", errStale, len(stale), len(files))
			}

			log.Debugf("%d generated file(s) up to date", len(files))

			return nil
		},
	}

	checkCmd.Flags().String("out", "", "directory the generated files were written to")
	addModeFlags(checkCmd)

	return checkCmd
}
