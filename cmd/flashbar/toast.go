package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/flashbar-dev/flashbar/internal/errors"
	"github.com/flashbar-dev/flashbar/pkg/status"
)

func toastCmd() *cobra.Command {
	var (
		addr     string
		severity string
		title    string
	)

	cmd := &cobra.Command{
		Use:   "toast [message]",
		Short: "Push a toast to a running server",
		Long: `Push a toast notification to a running flashbar server.

The message is delivered to every connected browser.

Examples:
  flashbar toast "Deploy finished"
  flashbar toast --severity=error "Deploy failed"
  flashbar toast --title="CI" --severity=warning "Flaky test detected"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToast(addr, severity, title, args[0])
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Server address (default from flashbar.json)")
	cmd.Flags().StringVarP(&severity, "severity", "s", "info", "Severity: success, info, warning, error")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Optional toast title")

	return cmd
}

func runToast(addr, severity, title, message string) error {
	if !status.Severity(severity).Valid() {
		return errors.Newf(errors.CategoryCLI, "unknown severity %q", severity).
			WithSuggestion("Use success, info, warning, or error")
	}

	if addr == "" {
		cfg, err := loadOrDefaultConfig()
		if err != nil {
			return err
		}
		addr = cfg.Address()
	}
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}

	body, err := json.Marshal(map[string]string{
		"severity": severity,
		"title":    title,
		"message":  message,
	})
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(addr+"/toast", "application/json", bytes.NewReader(body))
	if err != nil {
		return errors.New(errors.CategoryCLI, "server unreachable").
			Wrap(err).
			WithSuggestion("Is 'flashbar serve' running at " + addr + "?")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		out, _ := io.ReadAll(resp.Body)
		return errors.Newf(errors.CategoryCLI, "server rejected toast: %s", strings.TrimSpace(string(out)))
	}

	var result struct {
		Delivered int `json:"delivered"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}

	success("toast delivered to %s", plural(result.Delivered, "client"))
	return nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
