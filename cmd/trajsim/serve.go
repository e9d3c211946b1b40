package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/experiment"
	"github.com/san-kum/trajsim/internal/stream"
	"github.com/san-kum/trajsim/internal/watch"
)

func newServeCmd() *cobra.Command {
	var (
		addr          string
		frameInterval time.Duration
		maxFrames     int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "stream trajectories to websocket clients on /ws",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			handler := stream.NewHandler(stream.HandlerConfig{
				Logger:        logger,
				Registry:      experiment.NewRegistry(),
				FrameInterval: frameInterval,
				MaxFrames:     maxFrames,
				MaxSteps:      base.MaxSteps,
				Base:          base,
			})
			srv := &http.Server{
				Addr:              addr,
				Handler:           stream.NewMux(handler),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Printf("listening on %s", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
			}

			logger.Printf("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}
	// --max-steps doubles as the per-request step cap (0 = stream.DefaultMaxSteps).
	addLaunchFlags(cmd)
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().DurationVar(&frameInterval, "frame-interval", stream.DefaultFrameInterval, "delay between frames")
	cmd.Flags().IntVar(&maxFrames, "max-frames", stream.DefaultMaxFrames, "frame cap per stream")
	return cmd
}

func newWatchCmd() *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "watch [config]",
		Short: "recompute a config file every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			w, err := watch.NewWatcher(path)
			if err != nil {
				return err
			}
			if err := w.Start(); err != nil {
				return err
			}
			defer w.Stop()

			recompute := func() {
				cfg, err := config.Load(path)
				if err != nil {
					logger.Printf("%s: %v", path, err)
					return
				}
				cmp, err := experiment.New(cfg, nil).Run(cmd.Context())
				if err != nil {
					logger.Printf("%s: %v", cfg.Label(), err)
					return
				}

				fmt.Printf("\n%s (%s)\n", cfg.Label(), time.Now().Format("15:04:05"))
				if err := printComparison(cmp); err != nil {
					logger.Printf("print: %v", err)
				}
				if !save {
					return
				}

				st, err := openStore(cmd)
				if err != nil {
					logger.Printf("store: %v", err)
					return
				}
				defer st.Close()
				id, err := st.Save(cmd.Context(), cfg.Label(), cfg.Integrator, cmp)
				if err != nil {
					logger.Printf("save: %v", err)
					return
				}
				fmt.Printf("run id: %s\n", id)
			}

			recompute()
			logger.Printf("watching %s", w.Path)

			for {
				select {
				case _, ok := <-w.Changes:
					if !ok {
						return nil
					}
					recompute()
				case <-cmd.Context().Done():
					return nil
				}
			}
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "store every recomputed run")
	return cmd
}
