package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/superflow-dev/superflow-extension/pkg/config"
	"github.com/superflow-dev/superflow-extension/pkg/filesystem"
	"github.com/superflow-dev/superflow-extension/pkg/inject"
)

func newInjectCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "inject [dir]",
		Short:   MsgInjectShort,
		GroupID: "inject",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.getenv("PUBLISH_DIR")
			if len(args) == 1 {
				dir = args[0]
			}

			cfg := *a.cfg
			cfg.Inject.Mode = config.ModeFiles
			cfg.Inject.DryRun = cfg.Inject.DryRun || dryRun

			injector, err := inject.New(&cfg, inject.Target{PublishDir: dir}, inject.Backends{FS: filesystem.NewOS()})
			if err != nil {
				return err
			}
			report, err := injector.Inject(commandContext(cmd))
			if err != nil {
				return err
			}
			if err := a.render(cmd, report); err != nil {
				return err
			}
			if failed := report.Summary().Failed; failed > 0 {
				return fmt.Errorf(MsgErrTargetsFailed, failed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	return cmd
}

func newSnippetCmd(a *app) *cobra.Command {
	var (
		flags    buildFlags
		position string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:     "snippet",
		Short:   MsgSnippetShort,
		GroupID: "inject",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ev := a.event(flags)

			cfg := *a.cfg
			cfg.Inject.Mode = config.ModeSnippet
			cfg.Inject.DryRun = cfg.Inject.DryRun || dryRun
			if position != "" {
				cfg.Snippet.Position = position
			}

			injector, err := inject.New(&cfg, inject.Target{SiteID: ev.SiteID, Token: ev.Token},
				inject.Backends{Snippet: a.client(ev.Token)})
			if err != nil {
				return err
			}
			report, err := injector.Inject(commandContext(cmd))
			if err != nil {
				return err
			}
			if err := a.render(cmd, report); err != nil {
				return err
			}
			s := report.Summary()
			if s.Failed > 0 {
				return fmt.Errorf(MsgErrTargetsFailed, s.Failed)
			}
			if s.Skipped > 0 {
				return report.Results[0].Err
			}
			return nil
		},
	}
	flags.register(cmd, false)
	cmd.Flags().StringVar(&position, "position", "", MsgFlagPosition)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	return cmd
}
