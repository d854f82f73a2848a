package core

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// GrantTypeAPIKey is the required value for the grant_type parameter
// when exchanging an IBM Cloud API key for an access token.
const GrantTypeAPIKey = "urn:ibm:params:oauth:grant-type:apikey"

// DefaultEndpoint is the IBM Cloud IAM token endpoint.
const DefaultEndpoint = "https://iam.cloud.ibm.com/identity/token"

const responseBodyLimit = 32 * 1024 // 32KiB

// Token is the identity provider's answer to a credential exchange.
type Token struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

/*
	Ports
*/

// TokenExchanger exchanges the configured credential for an access token.
type TokenExchanger interface {
	Exchange(ctx context.Context) (Token, error)
}

// UpstreamError reports that the identity provider answered with a
// non-success status. The status code and body text are kept verbatim.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("IAM error %d: %s", e.StatusCode, e.Body)
}

// IAMExchanger posts an API key to the IAM token endpoint.
type IAMExchanger struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

// NewIAMExchanger builds an exchanger for the given endpoint and credential.
// A nil client falls back to http.DefaultClient; an empty endpoint falls
// back to DefaultEndpoint.
func NewIAMExchanger(client *http.Client, endpoint, apiKey string) *IAMExchanger {
	if client == nil {
		client = http.DefaultClient
	}

	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &IAMExchanger{client: client, endpoint: endpoint, apiKey: apiKey}
}

// Exchange performs a single credential exchange. The API key is sent
// as-is; an empty key is rejected by IAM and surfaces as an UpstreamError.
func (e *IAMExchanger) Exchange(ctx context.Context) (Token, error) {
	form := url.Values{}
	form.Set("grant_type", GrantTypeAPIKey)
	form.Set("apikey", e.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Token{}, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	res, err := e.client.Do(req)
	if err != nil {
		return Token{}, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, responseBodyLimit))
	if err != nil {
		return Token{}, err
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return Token{}, &UpstreamError{StatusCode: res.StatusCode, Body: string(body)}
	}

	var token Token
	if err := json.Unmarshal(body, &token); err != nil {
		return Token{}, fmt.Errorf("unable to parse IAM response body: %w", err)
	}

	return token, nil
}
