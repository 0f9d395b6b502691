package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/superflow-dev/superflow-extension/pkg/filesystem"
	"github.com/superflow-dev/superflow-extension/pkg/hooks"
	"github.com/superflow-dev/superflow-extension/pkg/logging"
)

func (a *app) handlers(ev hooks.Event) *hooks.Handlers {
	client := a.client(ev.Token)
	return hooks.NewHandlers(a.cfg, client, client.ConfigStore(a.cfg.Extension.Slug), client, filesystem.NewOS())
}

func newPreBuildCmd(a *app) *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:     "prebuild",
		Short:   MsgPreBuildShort,
		GroupID: "build",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ev := a.event(flags)
			return a.handlers(ev).OnPreBuild(commandContext(cmd), ev)
		},
	}
	flags.register(cmd, true)
	return cmd
}

func newPostBuildCmd(a *app) *cobra.Command {
	var (
		flags  buildFlags
		strict bool
	)

	cmd := &cobra.Command{
		Use:     "postbuild",
		Short:   MsgPostBuildShort,
		Long:    MsgPostBuildLong,
		GroupID: "build",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.postbuild")
			ev := a.event(flags)

			report, err := a.handlers(ev).OnPostBuild(commandContext(cmd), ev)
			if err != nil {
				if strict {
					return err
				}
				logger.Warn().Err(err).Msg("Injection skipped, build continues")
				return nil
			}
			if report == nil {
				return nil
			}

			if err := a.render(cmd, report); err != nil {
				if strict {
					return err
				}
				logger.Warn().Err(err).Msg("Could not render injection report")
			}
			if failed := report.Summary().Failed; strict && failed > 0 {
				return fmt.Errorf(MsgErrTargetsFailed, failed)
			}
			return nil
		},
	}
	flags.register(cmd, true)
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	return cmd
}
