package cmd

import (
	"fmt"

	"github.com/jjtimmons/phynex/internal/align"
	"github.com/jjtimmons/phynex/internal/ctxlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newDetectCmd is for printing the detected format of alignment files
func newDetectCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:                        "detect [file] ... [fileN]",
		Short:                      "Print the format of alignment files",
		SuggestionsMinimumDistance: 2,
		Long: `Print the format (FASTA, NEXUS or PHYLIP) phynex detects for each file,
one "file<TAB>format" line per file.`,
		Example: "  phynex detect primates.fasta primates.nex",
		Args:    cobra.MinimumNArgs(1),
		Aliases: []string{"sniff"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := setup(cmd, v)
			if err != nil {
				return err
			}
			logger := ctxlog.FromContext(ctx)

			for _, path := range args {
				format, err := align.DetectFile(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				logger.Debug("detected input format", "path", path, "format", format)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", path, format)
			}
			return nil
		},
	}
}
