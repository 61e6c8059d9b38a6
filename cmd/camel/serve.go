package main

import (
	"github.com/oarkflow/log"
	"github.com/spf13/cobra"

	"github.com/camel-lab/camelgo/disambig"
	"github.com/camel-lab/camelgo/internal/config"
	"github.com/camel-lab/camelgo/morphology"
	"github.com/camel-lab/camelgo/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis API over HTTP",
	Long: `Loads the configured morphology database and disambiguation
model and serves the analysis endpoints. Configuration is read from
config.yaml (or CONFIG_PATH) and the environment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var (
			analyzer      *morphology.Analyzer
			disambiguator disambig.Disambiguator
		)

		if cfg.Morph.DBPath != "" {
			db, err := morphology.OpenDBCached(cfg.Morph.DBPath, "a")
			if err != nil {
				return err
			}
			analyzer, err = morphology.NewAnalyzer(db, morphology.AnalyzerConfig{
				Backoff:   cfg.Morph.Backoff,
				CacheSize: cfg.Morph.CacheSize,
			})
			if err != nil {
				return err
			}
			disambiguator, err = disambig.NewMLEDisambiguator(analyzer, "")
			if err != nil {
				return err
			}
		} else {
			mle, err := disambig.Pretrained(cfg.Morph.Dataset)
			if err != nil {
				return err
			}
			analyzer = mle.Analyzer()
			disambiguator = mle
		}

		log.Info().Str("addr", cfg.Server.Addr()).Msg("loaded analysis pipeline")

		controller := web.NewMorphController(analyzer, disambiguator)
		web.StartServer(cfg.Server.Addr(), controller, cfg.Server.RoutePrefix)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
