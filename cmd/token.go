// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/url"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"
)

var (
	clientID     string
	clientSecret string
	tokenURL     string
	issuerURL    string
	authDomain   string
	audience     string
	scopes       []string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token using Client Credentials flow",
	Long: `Get an access token for the drinks API using the Client Credentials flow.

The token endpoint is taken from --token-url, discovered from --issuer-url or
derived from --domain as https://<domain>/oauth/token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		endpoint, err := resolveTokenURL(ctx, tokenURL, issuerURL, authDomain)
		if err != nil {
			return err
		}

		token, err := clientCredentialsConfig(endpoint).Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
		return nil
	},
}

func resolveTokenURL(ctx context.Context, tokenURL, issuerURL, domain string) (string, error) {
	switch {
	case tokenURL != "":
		return tokenURL, nil
	case issuerURL != "":
		// Discovery endpoint
		provider, err := oidc.NewProvider(ctx, issuerURL)
		if err != nil {
			return "", fmt.Errorf("failed to create OIDC provider from issuer: %w", err)
		}
		return provider.Endpoint().TokenURL, nil
	case domain != "":
		return fmt.Sprintf("https://%s/oauth/token", domain), nil
	}

	return "", fmt.Errorf("one of --token-url, --issuer-url or --domain must be provided")
}

func clientCredentialsConfig(endpoint string) *clientcredentials.Config {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     endpoint,
		Scopes:       scopes,
	}

	// the audience selects the API whose permissions end up in the token
	if audience != "" {
		config.EndpointParams = url.Values{"audience": {audience}}
	}

	return config
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&clientID, "client-id", "", "Client ID")
	tokenCmd.Flags().StringVar(&clientSecret, "client-secret", "", "Client Secret")
	tokenCmd.Flags().StringVar(&tokenURL, "token-url", "", "Token URL")
	tokenCmd.Flags().StringVar(&issuerURL, "issuer-url", "", "Issuer URL (for OIDC discovery)")
	tokenCmd.Flags().StringVar(&authDomain, "domain", "", "Trust domain, e.g. coffee.eu.auth0.com")
	tokenCmd.Flags().StringVar(&audience, "audience", "", "API audience, e.g. dev")
	tokenCmd.Flags().StringSliceVar(&scopes, "scopes", []string{}, "Scopes (comma-separated)")

	_ = tokenCmd.MarkFlagRequired("client-id")
	_ = tokenCmd.MarkFlagRequired("client-secret")
}
