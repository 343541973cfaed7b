package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"exclusive/internal/gen"
)

func newExpandCmd() *cobra.Command {
	expandCmd := &cobra.Command{
		Use:   "expand [flags] file",
		Short: "print the expansion of one macro source file.",
		Long: `Expand a single macro source file and print the generated Go code to
standard output. Use "-" to read from standard input; --name then sets the
file name used for call-site identity.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			genCfg, _, err := generatorConfig(cmd)
			if err != nil {
				return err
			}

			// Output goes to stdout only; no sidecar next to the source.
			genCfg.NoSidecar = true

			filename := args[0]

			var src []byte
			if filename == "-" {
				filename = getString(cmd, "name")
				src, err = io.ReadAll(cmd.InOrStdin())
			} else {
				src, err = os.ReadFile(filename)
			}

			if err != nil {
				return err
			}

			file, err := gen.NewGenerator(genCfg).GenerateFile(filename, src)
			if err != nil {
				return err
			}

			logInfos([]gen.GeneratedFile{*file})

			_, err = cmd.OutOrStdout().Write(file.Content)

			return err
		},
	}

	expandCmd.Flags().String("name", "stdin.exgo", "file name for call sites when reading standard input")
	addModeFlags(expandCmd)

	return expandCmd
}
