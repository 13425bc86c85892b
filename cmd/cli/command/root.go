package command

// root.go defines the root command for the dramahub-admin console.
// Global flags, config loading and the shared session/client live here.

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dramahub/internal/api"
	"dramahub/internal/config"
	"dramahub/internal/console"
	"dramahub/internal/session"
)

var (
	apiURL  string // global flag for API server URL, overrides config
	envFile string // global flag for an alternate env file

	cfg       *config.Config
	store     *session.Store
	apiClient *api.Client
	notify    console.Notifier
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dramahub-admin",
	Short: "dramahub-admin - DramaHub administration console",
	Long: `dramahub-admin drives the DramaHub catalog API from the terminal.
Administrators can:
- Manage dramas, seasons and episodes
- Manage actors, genres and drama cast assignments
- Moderate user accounts
- Review dashboard statistics

Use "dramahub-admin [command] --help" to see the options of each command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if envFile != "" {
			cfg, err = config.LoadConfig(envFile)
		} else {
			cfg, err = config.LoadConfig()
		}
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if apiURL != "" {
			cfg.APIURL = apiURL
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		configureLogging(cfg)

		store = session.New(session.KeyringBackend{})
		if err := store.Restore(); err != nil {
			// a broken keyring entry should not brick the console
			log.WithError(err).Warn("could not restore session")
		}

		apiClient = api.NewClient(cfg.APIURL, store, cfg.Timeout)
		notify = &console.PrintNotifier{Out: cmd.OutOrStdout()}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := guardSession(rootCmd.Execute()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// guardSession intercepts server-side 401s: the persisted session is stale
// (revoked or expired), so clear it and point the user at login instead of
// surfacing a raw API error.
func guardSession(err error) error {
	if err == nil || !errors.Is(err, api.ErrUnauthorized) {
		return err
	}
	if store != nil {
		if lerr := store.Logout(); lerr != nil {
			log.WithError(lerr).Warn("could not clear stale session")
		}
	}
	return fmt.Errorf("session expired or invalid, please run 'dramahub-admin auth login' (%v)", err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "API server URL (overrides DRAMAHUB_API_URL)")
	rootCmd.PersistentFlags().StringVar(&envFile, "config", "", "Path to an env file (defaults to .env)")
}

func configureLogging(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
}

// requireLogin guards every command that talks to a protected endpoint.
func requireLogin() error {
	if !store.LoggedIn() {
		return fmt.Errorf("not logged in, please run 'dramahub-admin auth login'")
	}
	return nil
}
