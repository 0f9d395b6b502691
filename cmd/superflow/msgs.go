package main

// Command descriptions
const (
	MsgRootShort = "Inject the Superflow toolbar into Netlify builds"
	MsgRootLong  = `superflow runs at the pre-build and post-build points of a Netlify build
and makes sure every published HTML page, or the site's snippet slot,
carries the Superflow toolbar script exactly once.

Configuration is read from the embedded defaults, then superflow.toml in the
working directory (or --config), then SUPERFLOW_* environment variables.`

	MsgPreBuildShort   = "Run the pre-build handler"
	MsgPostBuildShort  = "Run the post-build handler and inject the toolbar"
	MsgPostBuildLong   = `Reads SITE_ID, ACCOUNT_ID, DEPLOY_ID, PUBLISH_DIR and NETLIFY_API_TOKEN from
the environment, logs the site and its configuration, then injects the
toolbar using the configured mode. Injection problems never fail the build
unless --strict is set.`
	MsgInjectShort     = "Inject the toolbar into HTML files under a directory"
	MsgSnippetShort    = "Create or update the toolbar snippet of a site"
	MsgSiteConfigShort = "Read and write the extension's site configuration"
	MsgTeamConfigShort = "Read the extension's team configuration"
	MsgConfigShort     = "Inspect superflow configuration"
	MsgConfigShowShort = "Print the effective configuration"
	MsgConfigInitShort = "Print a commented superflow.toml"
	MsgServeShort      = "Serve the site configuration endpoint"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	MsgSiteGetShort     = "Print the site configuration document"
	MsgSiteSetShort     = "Merge key=value pairs into the site configuration"
	MsgSiteEnableShort  = "Enable the build event handler for the site"
	MsgSiteDisableShort = "Disable the build event handler for the site"
	MsgSiteStatusShort  = "Show whether the build event handler is enabled for the site"
	MsgTeamGetShort     = "Print the team configuration document"
	MsgTeamSetShort     = "Merge key=value pairs into the team configuration"
)

// Flag descriptions
const (
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Path to a superflow.toml file"
	MsgFlagFormat     = "Output format: auto, term, text or json"
	MsgFlagPublishDir = "Publish directory (default $PUBLISH_DIR)"
	MsgFlagSiteID     = "Site id (default $SITE_ID)"
	MsgFlagAccountID  = "Account id (default $ACCOUNT_ID)"
	MsgFlagToken      = "API token (default $NETLIFY_API_TOKEN)"
	MsgFlagStrict     = "Fail when injection could not run or a target failed"
	MsgFlagDryRun     = "Report what would change without writing"
	MsgFlagPosition   = "Snippet position: head or footer"
	MsgFlagOutput     = "Output format: toml, yaml or json"
	MsgFlagAddr       = "Listen address"
)

// Status and error messages
const (
	MsgErrorPrefix      = "Error: %v\n"
	MsgHandlerEnabled   = "Build event handler enabled for site %s\n"
	MsgHandlerDisabled  = "Build event handler disabled for site %s\n"
	MsgErrBadPair       = "expected key=value, got %q"
	MsgErrTargetsFailed = "%d target(s) failed"
	MsgNoCommand        = "no command specified"
)
