// Command littlejohnctl is a small HTTP client for the auth endpoints,
// handy for smoke-testing a running instance.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type client struct {
	BaseURL   string
	OutFormat string // "json" | "text"
	HTTP      *http.Client
}

func (c *client) post(path string, payload any) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}
	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Printf("status=%d\n%s\n", status, string(body))
	} else {
		fmt.Printf("status=%d\n", status)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	var (
		baseURL = envOr("LITTLEJOHN_URL", "http://localhost:8080")
		out     = envOr("LITTLEJOHN_OUT", "text")
	)

	root := &cobra.Command{
		Use:   "littlejohnctl",
		Short: "Client CLI for the littlejohn auth service",
	}

	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "Service base URL (env LITTLEJOHN_URL)")
	root.PersistentFlags().StringVar(&out, "out", out, "Output format: json|text")

	cl := &client{HTTP: &http.Client{Timeout: 30 * time.Second}}
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cl.BaseURL = baseURL
		cl.OutFormat = out
	}

	var name string
	registerCmd := &cobra.Command{
		Use:   "register <email> <password>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.post("/v2/auth/register", map[string]string{
				"name":     name,
				"email":    args[0],
				"password": args[1],
			})
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}
	registerCmd.Flags().StringVar(&name, "name", "", "Display name")

	loginCmd := &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in and print the token pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.post("/v2/auth/login", map[string]string{
				"email":    args[0],
				"password": args[1],
			})
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}

	refreshCmd := &cobra.Command{
		Use:   "refresh <token>",
		Short: "Exchange a refresh token for a new access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.post("/v2/auth/refresh", map[string]string{
				"token": args[0],
			})
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}

	root.AddCommand(registerCmd, loginCmd, refreshCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
