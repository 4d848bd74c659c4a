package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/viper"

	"github.com/daticahealth/snapdash/config"
	"github.com/daticahealth/snapdash/profile"
	"github.com/daticahealth/snapdash/session"
)

var verboseLoggingEnabled bool
var configPath string
var noColor bool

var v = viper.New()
var cfg *config.Config

func bindFlags() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verboseLoggingEnabled, "verbose", "v", false, "print verbose messages")
	flags.StringVarP(&configPath, "config", "c", "", "use a specific config file (default ~/.config/snapdash/snapdash.yaml)")
	flags.String("api-host", profile.DefaultHost, "profile service URL")
	flags.Duration("timeout", 0, "per-request timeout, 0 waits indefinitely")
	flags.String("session-file", session.DefaultPath, "where the login session is stored")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")

	mustBind("verbose", "verbose")
	mustBind("api.host", "api-host")
	mustBind("api.timeout", "timeout")
	mustBind("session.file", "session-file")
}

func mustBind(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag --%s to %s: %v", flag, key, err))
	}
}

func sessionStore() (*session.Store, error) {
	return session.NewStore(cfg.Session.File)
}

func profileClient(tokens profile.TokenProvider) *profile.Client {
	return profile.New(cfg.API.Host, tokens, profile.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}))
}

// signedInClient returns a client authenticated with the stored session.
func signedInClient() (*profile.Client, *session.Store, error) {
	store, err := sessionStore()
	if err != nil {
		return nil, nil, err
	}
	return profileClient(store), store, nil
}
