package main

import (
	"github.com/spf13/cobra"

	"github.com/superflow-dev/superflow-extension/pkg/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr  string
		token string
	)

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   MsgServeShort,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			if token == "" {
				token = a.event(buildFlags{}).Token
			}
			store := a.client(token).ConfigStore(a.cfg.Extension.Slug)
			return server.New(store).Run(commandContext(cmd), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", MsgFlagAddr)
	cmd.Flags().StringVar(&token, "token", "", MsgFlagToken)
	return cmd
}
