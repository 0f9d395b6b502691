// Package hooks implements the pre-build and post-build handlers the CI
// pipeline invokes.
package hooks

// Environment variables the build platform exposes to build commands
const (
	EnvSiteID     = "SITE_ID"
	EnvAccountID  = "ACCOUNT_ID"
	EnvDeployID   = "DEPLOY_ID"
	EnvPublishDir = "PUBLISH_DIR"
	EnvAPIToken   = "NETLIFY_API_TOKEN"
	EnvAuthToken  = "NETLIFY_AUTH_TOKEN"
)

// Event is the part of a build event the handlers depend on
type Event struct {
	SiteID     string
	AccountID  string
	DeployID   string
	PublishDir string
	Token      string
}

// EventFromEnv reads an Event through getenv, normally os.Getenv.
// NETLIFY_API_TOKEN takes precedence over NETLIFY_AUTH_TOKEN.
func EventFromEnv(getenv func(string) string) Event {
	token := getenv(EnvAPIToken)
	if token == "" {
		token = getenv(EnvAuthToken)
	}
	return Event{
		SiteID:     getenv(EnvSiteID),
		AccountID:  getenv(EnvAccountID),
		DeployID:   getenv(EnvDeployID),
		PublishDir: getenv(EnvPublishDir),
		Token:      token,
	}
}

// Override returns ev with every non-empty field of o applied
func (ev Event) Override(o Event) Event {
	if o.SiteID != "" {
		ev.SiteID = o.SiteID
	}
	if o.AccountID != "" {
		ev.AccountID = o.AccountID
	}
	if o.DeployID != "" {
		ev.DeployID = o.DeployID
	}
	if o.PublishDir != "" {
		ev.PublishDir = o.PublishDir
	}
	if o.Token != "" {
		ev.Token = o.Token
	}
	return ev
}
