package cli

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"exclusive/internal/discover"
	"exclusive/internal/gen"
)

func newGenCmd() *cobra.Command {
	genCmd := &cobra.Command{
		Use:   "gen [flags] [patterns...]",
		Short: "expand macro source files and write the generated Go files.",
		Long: `Expand every exclusive! invocation in the macro source files selected by
patterns (directories, dir/... trees, files or Go package patterns; default
".") and write the results.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			genCfg, cfg, err := generatorConfig(cmd)
			if err != nil {
				return err
			}

			sources, err := discover.Sources(args, cfg.Extension)
			if err != nil {
				return err
			}

			if len(sources) == 0 {
				log.Warnf("no %s files found", cfg.Extension)
				return nil
			}

			files, err := gen.NewGenerator(genCfg).Generate(sources)
			if err != nil {
				return err
			}

			logInfos(files)

			if err := gen.WriteFiles(files, genCfg.OutputDir); err != nil {
				return err
			}

			for _, f := range files {
				log.Infof("wrote %s (%d invocations)", f.Path(genCfg.OutputDir), f.Invocations)
			}

			return nil
		},
	}

	genCmd.Flags().String("out", "", "write generated files to this directory instead of next to their sources")
	addModeFlags(genCmd)

	return genCmd
}
