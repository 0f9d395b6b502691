package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/superflow-dev/superflow-extension/pkg/siteconfig"
)

func newSiteConfigCmd(a *app) *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:     "site-config",
		Short:   MsgSiteConfigShort,
		GroupID: "config",
	}
	flags.register(cmd, false)

	store := func() (siteconfig.Store, string, string) {
		ev := a.event(flags)
		return a.client(ev.Token).ConfigStore(a.cfg.Extension.Slug), ev.AccountID, ev.SiteID
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: MsgSiteGetShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, accountID, siteID := store()
			doc, err := siteconfig.GetSite(commandContext(cmd), s, accountID, siteID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set key=value...",
		Short: MsgSiteSetShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := parsePairs(args)
			if err != nil {
				return err
			}
			s, accountID, siteID := store()
			doc, err := siteconfig.UpdateSite(commandContext(cmd), s, accountID, siteID, patch)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		},
	})

	for _, enabled := range []bool{true, false} {
		use, short, msg := "enable", MsgSiteEnableShort, MsgHandlerEnabled
		if !enabled {
			use, short, msg = "disable", MsgSiteDisableShort, MsgHandlerDisabled
		}
		cmd.AddCommand(&cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, accountID, siteID := store()
				if err := siteconfig.SetHandlerEnabled(commandContext(cmd), s, accountID, siteID, enabled); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), msg, siteID)
				return err
			},
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: MsgSiteStatusShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, accountID, siteID := store()
			enabled, err := siteconfig.HandlerEnabled(commandContext(cmd), s, accountID, siteID)
			if err != nil {
				return err
			}
			msg := MsgHandlerEnabled
			if !enabled {
				msg = MsgHandlerDisabled
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), msg, siteID)
			return err
		},
	})

	return cmd
}

func newTeamConfigCmd(a *app) *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:     "team-config",
		Short:   MsgTeamConfigShort,
		GroupID: "config",
	}
	flags.register(cmd, false)

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: MsgTeamGetShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ev := a.event(flags)
			store := a.client(ev.Token).ConfigStore(a.cfg.Extension.Slug)
			doc, err := siteconfig.GetTeam(commandContext(cmd), store, ev.AccountID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set key=value...",
		Short: MsgTeamSetShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := parsePairs(args)
			if err != nil {
				return err
			}
			ev := a.event(flags)
			store := a.client(ev.Token).ConfigStore(a.cfg.Extension.Slug)
			doc, err := siteconfig.UpdateTeam(commandContext(cmd), store, ev.AccountID, patch)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), doc)
		},
	})
	return cmd
}

// parsePairs turns key=value arguments into a patch; values are read as
// YAML scalars so true, 12 and 1.5 keep their types
func parsePairs(args []string) (map[string]interface{}, error) {
	patch := make(map[string]interface{}, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf(MsgErrBadPair, arg)
		}
		var value interface{}
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil || value == nil {
			value = raw
		}
		switch value.(type) {
		case map[string]interface{}, []interface{}:
			value = raw
		}
		patch[key] = value
	}
	return patch, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
