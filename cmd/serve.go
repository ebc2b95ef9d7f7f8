package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/cpusched/api"
	"github.com/inference-sim/cpusched/config"
)

var serverConfigPath string // YAML server config; empty uses defaults and environment

// serveCmd exposes the policies over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling policies as a JSON HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel(logLevel)

		cfg, err := config.LoadServerConfig(serverConfigPath)
		if err != nil {
			logrus.Fatalf("unable to load server config; %v", err)
		}

		addr := fmt.Sprintf(":%d", cfg.Port)
		logrus.Infof("Serving on %s (context switch=%d, quantum=%d, max segments=%d)", addr, cfg.ContextSwitch, cfg.Quantum, cfg.MaxSegments)
		logrus.Fatal(api.NewApp(cfg).Listen(addr))
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverConfigPath, "config", "", "Path to a YAML server config")

	rootCmd.AddCommand(serveCmd)
}
