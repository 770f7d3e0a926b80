package main

import (
	"fmt"

	"battery-atlas/internal/api"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard API server",
		RunE: func(*cobra.Command, []string) error {
			cfg, assets, zones, err := loadAll()
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Server.Port = port
			}

			srv, err := api.New(cfg, assets, zones, nil)
			if err != nil {
				return err
			}

			addr := fmt.Sprintf(":%d", cfg.Server.Port)
			logrus.Infof("starting atlas API on %s (%d assets, %d zones)",
				addr, assets.Len(), zones.Len())
			return srv.Router.Run(addr)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")
	return cmd
}
