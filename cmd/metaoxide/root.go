package main

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/yfedoseev/meta-oxide/internal/config"
)

// app carries the state shared by every subcommand.
type app struct {
	cfgPath  string
	logLevel string
	cfg      config.Config
	logger   *slog.Logger
	client   *http.Client
}

func newRootCmd(client *http.Client) *cobra.Command {
	a := &app{client: client}

	root := &cobra.Command{
		Use:   "metaoxide",
		Short: "Extract structured data from HTML documents",
		Long: `metaoxide reads Microformats2, RDFa and Microdata items from HTML
documents, together with meta tags, Open Graph, Twitter Cards, JSON-LD,
Dublin Core, rel links, oEmbed and web app manifest links.

Settings come from an optional YAML file (--config) and from
METAOXIDE_* environment variables.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}

	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "configuration file (YAML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		a.extractCmd(),
		a.manifestCmd(),
		a.oembedCmd(),
		a.serveCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	logger, err := config.NewLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	if a.client.Timeout == 0 {
		a.client.Timeout = cfg.Fetch.Timeout
	}
	return nil
}
