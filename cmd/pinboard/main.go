package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pinboard/internal/apiclient"
	"pinboard/internal/bootstrap"
	"pinboard/internal/config"
	"pinboard/internal/pkg/logger"
	"pinboard/internal/repository"
	"pinboard/internal/server"
	"pinboard/internal/state"
	"pinboard/internal/ui"
)

var canvasName string

func main() {
	root := &cobra.Command{
		Use:   "pinboard",
		Short: "Infinite-canvas notes in the terminal",
		RunE:  runClient,
	}
	root.Flags().StringVar(&canvasName, "canvas", "", "canvas to open (created if missing)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the persistence server",
		RunE:  runServer,
	})
	root.AddCommand(canvasCommand())

	if err := root.Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func runClient(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	// file-only logging: stdout belongs to the TUI
	log := logger.New(cfg.Client.LogFilePath, false)
	defer log.Sync()

	prefs, err := state.Open(state.DefaultDir())
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}

	api := apiclient.New(cfg.Client.ServerURL)
	canvas, err := resolveCanvas(api, prefs)
	if err != nil {
		return fmt.Errorf("resolve canvas (is the server running?): %w", err)
	}

	p := tea.NewProgram(
		ui.New(cfg.Client, api, log, prefs, canvas),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Error("program exited", zap.Error(err))
		return err
	}
	return nil
}

// resolveCanvas picks the canvas to open: the --canvas flag, then the last
// one used, then "default". Missing canvases are created.
func resolveCanvas(api *apiclient.Client, prefs *state.Store) (apiclient.Canvas, error) {
	name := canvasName
	if name == "" {
		name = prefs.LastCanvas()
	}
	if name == "" {
		name = "default"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	canvases, err := api.ListCanvases(ctx)
	if err != nil {
		return apiclient.Canvas{}, err
	}
	for _, c := range canvases {
		if c.Name == name {
			return c, nil
		}
	}
	return api.CreateCanvas(ctx, name)
}

func canvasCommand() *cobra.Command {
	canvas := &cobra.Command{
		Use:   "canvas",
		Short: "Manage canvases",
	}
	canvas.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List canvases",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withAPI(func(ctx context.Context, api *apiclient.Client) error {
					canvases, err := api.ListCanvases(ctx)
					if err != nil {
						return err
					}
					for _, c := range canvases {
						fmt.Printf("%4d  %s\n", c.ID, c.Name)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "rename <name> <new-name>",
			Short: "Rename a canvas",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withAPI(func(ctx context.Context, api *apiclient.Client) error {
					c, err := findCanvas(ctx, api, args[0])
					if err != nil {
						return err
					}
					if err := api.RenameCanvas(ctx, c.ID, args[1]); err != nil {
						return err
					}
					color.Green("renamed %q to %q", args[0], args[1])
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "delete <name>",
			Short: "Delete a canvas and all its notes",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withAPI(func(ctx context.Context, api *apiclient.Client) error {
					c, err := findCanvas(ctx, api, args[0])
					if err != nil {
						return err
					}
					if err := api.DeleteCanvas(ctx, c.ID); err != nil {
						return err
					}
					color.Yellow("deleted %q", args[0])
					return nil
				})
			},
		},
	)
	return canvas
}

func withAPI(fn func(context.Context, *apiclient.Client) error) error {
	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return fn(ctx, apiclient.New(cfg.Client.ServerURL))
}

func findCanvas(ctx context.Context, api *apiclient.Client, name string) (apiclient.Canvas, error) {
	canvases, err := api.ListCanvases(ctx)
	if err != nil {
		return apiclient.Canvas{}, err
	}
	for _, c := range canvases {
		if c.Name == name {
			return c, nil
		}
	}
	return apiclient.Canvas{}, fmt.Errorf("no canvas named %q", name)
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := logger.New(cfg.App.LogFilePath, true)
	defer log.Sync()

	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	container := bootstrap.NewContainer(db, cfg, log)
	srv := server.New(cfg, container, log)
	log.Info("starting server", zap.String("port", cfg.App.Port))
	return srv.Run()
}
