package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"exclusive/internal/diagnostic"
	"exclusive/internal/gen"
)

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string, or exit if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func addModeFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("placeholder", false, "bind every expansion to the blank identifier instead of a call-site name")
	cmd.Flags().Bool("dump-tokens", false, "log every emitted token sequence (with --verbose)")
}

// logInfos logs the info diagnostics of a run at debug level (--verbose).
// Warnings are already logged by the generator as they are found.
func logInfos(files []gen.GeneratedFile) {
	var diags diagnostic.Diagnostics
	for _, f := range files {
		diags.Merge(f.Diagnostics)
	}

	for _, d := range diags.Infos {
		log.Debug(d.String())
	}
}
