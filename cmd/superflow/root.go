package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/superflow-dev/superflow-extension/internal/version"
	"github.com/superflow-dev/superflow-extension/pkg/config"
	"github.com/superflow-dev/superflow-extension/pkg/display"
	"github.com/superflow-dev/superflow-extension/pkg/hooks"
	"github.com/superflow-dev/superflow-extension/pkg/inject"
	"github.com/superflow-dev/superflow-extension/pkg/logging"
	"github.com/superflow-dev/superflow-extension/pkg/netlify"
)

// app is the state shared by all commands of one invocation
type app struct {
	verbosity  int
	configFile string
	format     string

	// getenv reads the build environment, os.Getenv outside tests
	getenv func(string) string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{getenv: os.Getenv})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "superflow",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return a.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "build", Title: "BUILD EVENTS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "inject", Title: "INJECTION:"})
	rootCmd.AddGroup(&cobra.Group{ID: "config", Title: "CONFIGURATION:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newPreBuildCmd(a))
	rootCmd.AddCommand(newPostBuildCmd(a))
	rootCmd.AddCommand(newInjectCmd(a))
	rootCmd.AddCommand(newSnippetCmd(a))
	rootCmd.AddCommand(newSiteConfigCmd(a))
	rootCmd.AddCommand(newTeamConfigCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig resolves the configuration once for the whole invocation
func (a *app) loadConfig() error {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	cfg, err := config.Load(config.LoadOptions{ConfigFile: a.configFile, WorkDir: wd})
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// buildFlags are the event overrides shared by commands that talk to a site
type buildFlags struct {
	publishDir string
	siteID     string
	accountID  string
	token      string
}

func (f *buildFlags) register(cmd *cobra.Command, withPublishDir bool) {
	flags := cmd.Flags()
	if !cmd.Runnable() {
		// parent commands share the flags with their subcommands
		flags = cmd.PersistentFlags()
	}
	if withPublishDir {
		flags.StringVar(&f.publishDir, "publish-dir", "", MsgFlagPublishDir)
	}
	flags.StringVar(&f.siteID, "site-id", "", MsgFlagSiteID)
	flags.StringVar(&f.accountID, "account-id", "", MsgFlagAccountID)
	flags.StringVar(&f.token, "token", "", MsgFlagToken)
}

// event builds the Event from the environment with flags taking precedence
func (a *app) event(f buildFlags) hooks.Event {
	return hooks.EventFromEnv(a.getenv).Override(hooks.Event{
		PublishDir: f.publishDir,
		SiteID:     f.siteID,
		AccountID:  f.accountID,
		Token:      f.token,
	})
}

func (a *app) client(token string) *netlify.Client {
	return netlify.NewClient(a.cfg.API.BaseURL, token, a.cfg.API.Timeout)
}

func (a *app) render(cmd *cobra.Command, report *inject.Report) error {
	format, err := display.ParseFormat(a.format)
	if err != nil {
		return err
	}
	return display.NewRenderer(format.Resolve(os.Stdout)).Render(cmd.OutOrStdout(), report)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
