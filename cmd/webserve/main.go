package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/anarckk/p2p-chat/webserve"
)

// rootCommand is the only command: serve the build output directory.
var rootCommand = &cobra.Command{
	Use:           "webserve",
	Short:         "Serve the chat frontend build directory over HTTP",
	Args:          cobra.NoArgs,
	RunE:          rootMain,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	port    int
	dir     string
	verbose bool
}

func init() {
	flags := rootCommand.Flags()
	flags.SortFlags = false
	flags.IntVar(&rootConfiguration.port, "port", webserve.DefaultPort, "TCP port to listen on")
	flags.StringVar(&rootConfiguration.dir, "dir", webserve.DefaultDir, "directory to serve")
	flags.BoolVar(&rootConfiguration.verbose, "verbose", false, "enable verbose logging")
}

func rootMain(_ *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if rootConfiguration.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	server, err := webserve.NewServer(webserve.Config{
		Port: rootConfiguration.port,
		Dir:  rootConfiguration.dir,
	})
	if err != nil {
		return err
	}
	return server.Run()
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
