package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flashbar-dev/flashbar/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const logo = `
  ┌─┐┬  ┌─┐┌─┐┬ ┬┌┐ ┌─┐┬─┐
  ├┤ │  ├─┤└─┐├─┤├┴┐├─┤├┬┘
  └  ┴─┘┴ ┴└─┘┴ ┴└─┘┴ ┴┴└─
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "flashbar",
		Short: "Transient notification server for web applications",
		Long: `Flashbar serves transient notification banners to web applications.

It renders server-side snackbars, pushes live toast events to
connected browsers over WebSocket, and exposes Prometheus metrics
for notification traffic.

Commands:
  • serve    start the notification server
  • toast    push a toast to a running server
  • init     write a default flashbar.json
  • version  print version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		toastCmd(),
		initCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var ferr *errors.Error
		if stderrors.As(err, &ferr) {
			fmt.Fprintln(os.Stderr, ferr.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printLogo prints the flashbar ASCII art logo.
func printLogo() {
	fmt.Print(logo)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
