// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/coffee-shop-service/internal/config"
	"github.com/canonical/coffee-shop-service/internal/logging"
	"github.com/canonical/coffee-shop-service/internal/monitoring"
	"github.com/canonical/coffee-shop-service/internal/tracing"
	"github.com/canonical/coffee-shop-service/pkg/authentication"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a bearer token against the configured trust domain",
	Long: `Verify a bearer token the same way the API does and print its claims.

The trust domain is read from AUTH0_DOMAIN, API_AUDIENCE and the other JWKS variables.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, _ := cmd.Flags().GetString("token")
		permission, _ := cmd.Flags().GetString("permission")
		logLevel, _ := cmd.Flags().GetString("log-level")

		specs := new(config.AuthSpec)
		if err := envconfig.Process("", specs); err != nil {
			return fmt.Errorf("issues with environment sourcing: %w", err)
		}

		logger := logging.NewLogger(logLevel)
		defer logger.Sync()

		tracer := tracing.NewNoopTracer()
		monitor := monitoring.NewNoopMonitor("coffee-shop-service")

		authorizer, err := newAuthorizer(cmd.Context(), *specs, nil, 0, tracer, monitor, logger)
		if err != nil {
			return err
		}

		return verifyToken(cmd, authorizer, token, permission)
	},
}

func verifyToken(cmd *cobra.Command, authorizer authentication.AuthorizerInterface, token, permission string) error {
	claims, err := authorizer.Authorize(cmd.Context(), http.Header{"Authorization": {"Bearer " + token}}, permission)
	if err != nil {
		authErr := authentication.AsAuthError(err)
		return fmt.Errorf("%s (%d): %s", authErr.Kind, authErr.StatusCode, authErr.Message)
	}

	return printClaims(cmd.OutOrStdout(), claims)
}

func printClaims(out io.Writer, claims authentication.Claims) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(claims)
}

func init() {
	verifyCmd.Flags().String("token", "", "Raw JWT, without the Bearer prefix")
	verifyCmd.Flags().String("permission", "", "Permission the token must grant, e.g. get:drinks-detail")
	verifyCmd.Flags().String("log-level", "error", "Log level")
	_ = verifyCmd.MarkFlagRequired("token")
	_ = verifyCmd.MarkFlagRequired("permission")

	rootCmd.AddCommand(verifyCmd)
}
