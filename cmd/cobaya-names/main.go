// Package main provides the cobaya-names binary.
// It exposes the cobaya naming conventions on the command line: compound
// output names, component subfolders, reserved attributes, sample table
// headers and the resolved packages path.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/c360studio/cobayaconv/config"
	"github.com/c360studio/cobayaconv/output"
	"github.com/c360studio/cobayaconv/vocabulary/cobaya"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "cobaya-names"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	return newRootCmd("")
}

// newRootCmd builds the command tree. An empty configRoot reads the user
// config from os.UserConfigDir.
func newRootCmd(configRoot string) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Cobaya naming conventions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), logLevel))
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		chi2Cmd(),
		minusLogPriorCmd(),
		decomposeCmd(),
		subfolderCmd(),
		reservedCmd(),
		columnsCmd(),
		packagesPathCmd(configRoot),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}

func newLogger(w io.Writer, logLevel string) *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printLines(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

func chi2Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chi2 LIKELIHOOD...",
		Short: "Print the chi2 column name of each likelihood",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printLines(cmd.OutOrStdout(), cobaya.Chi2NamesFor(args))
		},
	}
}

func minusLogPriorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minuslogprior PRIOR...",
		Short: "Print the minuslogprior column name of each prior",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printLines(cmd.OutOrStdout(), cobaya.MinusLogPriorNamesFor(args))
		},
	}
}

func decomposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompose NAME",
		Short: "Print the likelihood or prior name of a compound column name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if like, err := cobaya.DecomposeChi2Name(name); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cobaya.FieldChi2, like)
				return nil
			}
			prior, err := cobaya.DecomposeMinusLogPriorName(name)
			if err != nil {
				return fmt.Errorf("%q is neither a %s nor a %s name: %w",
					name, cobaya.FieldChi2, cobaya.FieldMinusLogPrior, cobaya.ErrInvalidName)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cobaya.FieldMinusLogPrior, prior)
			return nil
		},
	}
}

func subfolderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subfolder [KIND]",
		Short: "Print the package subfolder of a component kind (all kinds if omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				folder, err := cobaya.SubfolderFor(cobaya.ComponentKind(args[0]))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), folder)
				return nil
			}
			for _, kind := range cobaya.Kinds() {
				folder, err := cobaya.SubfolderFor(kind)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", kind, folder)
			}
			return nil
		},
	}
}

func reservedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reserved [NAME]",
		Short: "Check whether a class attribute is reserved (list all if omitted)",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				printLines(cmd.OutOrStdout(), cobaya.Default().ReservedAttributes())
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), cobaya.IsReservedAttribute(args[0]))
		},
	}
}

func columnsCmd() *cobra.Command {
	var sampled, derived, priors, likelihoods []string

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Print the header of a sample table",
		Run: func(cmd *cobra.Command, args []string) {
			cols := output.Columns(sampled, derived, priors, likelihoods)
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(cols, " "))
		},
	}

	cmd.Flags().StringSliceVar(&sampled, "sampled", nil, "Sampled parameters")
	cmd.Flags().StringSliceVar(&derived, "derived", nil, "Derived parameters")
	cmd.Flags().StringSliceVar(&priors, "prior", []string{cobaya.Prior1DName}, "Prior names")
	cmd.Flags().StringSliceVar(&likelihoods, "likelihood", nil, "Likelihood names")

	return cmd
}

func packagesPathCmd(configRoot string) *cobra.Command {
	var (
		explicit string
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "packages-path",
		Short: "Print the resolved external packages path",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewLoader(slog.Default()).WithConfigRoot(configRoot)
			if save {
				if explicit == "" {
					return fmt.Errorf("--save requires --%s", cobaya.PackagesPathArgPOSIX)
				}
				if err := loader.SavePackagesPath(explicit); err != nil {
					return err
				}
			}

			cfg, err := loader.Load(explicit)
			if err != nil {
				return err
			}
			if cfg.PackagesPath == "" {
				return fmt.Errorf("no packages path: set %s, pass --%s, or save one with --save",
					cobaya.PackagesPathEnv, cobaya.PackagesPathArgPOSIX)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.PackagesPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&explicit, cobaya.PackagesPathArgPOSIX, "p", "", "Packages path (overrides env and config file)")
	cmd.Flags().BoolVar(&save, "save", false, "Store the packages path in the user config file")

	return cmd
}
