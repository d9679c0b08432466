// Package cmd is for command line interactions with the phynex application
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jjtimmons/phynex/config"
	"github.com/jjtimmons/phynex/internal/align"
	"github.com/jjtimmons/phynex/internal/convert"
	"github.com/jjtimmons/phynex/internal/ctxlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	formatHelp = `output format: FASTA, NEXUS or PHYLIP (or FA, NEX, PHY).
Case-insensitive.`

	outnameHelp = `output file name without extension. Defaults to the
input file name up to its first '.'`

	outgroupHelp = `outgroup taxon for the MrBayes block of NEXUS output`

	settingsHelp = `YAML settings file (MrBayes MCMC and log settings)`
)

// newRootCmd builds the base command, which converts a single alignment
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "phynex",
		Short: "Convert alignments between FASTA, NEXUS and PHYLIP",
		Long: `Convert a multiple sequence alignment between FASTA, NEXUS and PHYLIP.

The input format is detected from the first line of --infile. Sequences must be
aligned (all the same length) or nothing is written. NEXUS output ends with a
MrBayes block that uses --outgroup; pass --no-mrbayes to leave it out.`,
		Example: `  phynex --infile primates.fasta --format phylip
  phynex --infile primates.phy --format NEX --outgroup Lemur --outname run1`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, v)
		},
	}

	rootCmd.Flags().StringP("infile", "i", "", "input alignment (.fasta, .fa, .nex or .phy)")
	rootCmd.Flags().StringP("format", "f", "", formatHelp)
	rootCmd.Flags().StringP("outname", "o", "", outnameHelp)
	rootCmd.Flags().StringP("outgroup", "g", "", outgroupHelp)
	rootCmd.Flags().Bool("no-mrbayes", false, "leave the MrBayes block out of NEXUS output")
	rootCmd.MarkFlagRequired("infile")
	rootCmd.MarkFlagRequired("format")

	// settings is an optional parameter for a settings file that overrides the defaults
	rootCmd.PersistentFlags().StringP("settings", "s", "", settingsHelp)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")
	v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(newDetectCmd(v))
	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main() and is the only place the process exits.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the settings and puts a logger into the command's context
func setup(cmd *cobra.Command, v *viper.Viper) (context.Context, *config.Config, error) {
	settings, _ := cmd.Flags().GetString("settings")
	c, err := config.New(v, settings)
	if err != nil {
		return nil, nil, err
	}

	logger := ctxlog.New(c.LogLevel(), c.Log.Format, cmd.ErrOrStderr())
	return ctxlog.WithLogger(cmd.Context(), logger), c, nil
}

// runConvert parses the conversion flags and runs it. The output format is
// checked before anything is read.
func runConvert(cmd *cobra.Command, v *viper.Viper) error {
	formatName, _ := cmd.Flags().GetString("format")
	format, err := align.ParseFormat(formatName)
	if err != nil {
		return err
	}

	ctx, c, err := setup(cmd, v)
	if err != nil {
		return err
	}

	req := convert.Request{Format: format}
	req.InPath, _ = cmd.Flags().GetString("infile")
	req.OutName, _ = cmd.Flags().GetString("outname")
	req.Outgroup, _ = cmd.Flags().GetString("outgroup")

	if noMrBayes, _ := cmd.Flags().GetBool("no-mrbayes"); !noMrBayes {
		req.MrBayes = c.Analysis()
	}

	res, err := convert.Run(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d sequences, %d sites)\n", req.InPath, res.OutPath, res.Records, res.Width)
	return nil
}
