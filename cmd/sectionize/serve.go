package main

import (
	"github.com/spf13/cobra"

	"github.com/VivekMane57/sectionize/internal/server"
	"github.com/VivekMane57/sectionize/pkg/sectionize"
)

var (
	addr      string
	maxUpload int64
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := server.New(sectionize.NewPipeline(opts, log), log, server.WithMaxUpload(maxUpload<<20))
			return srv.Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().Int64Var(&maxUpload, "max-upload-mb", 32, "Maximum upload size in MiB")
	return cmd
}
