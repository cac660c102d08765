package googleauth

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Client is an authorized HTTP client for Google Cloud REST APIs.
// With an API key the key is sent as a query parameter; with a service
// account the transport adds OAuth2 bearer tokens.
type Client struct {
	HTTP   *http.Client
	apiKey string
}

// New builds a Client. apiKey takes precedence. credentials can be:
//   - A file path to a JSON key file (e.g., "./keys/google-service-account.json")
//   - A JSON string containing the service account credentials
//
// When both are empty, application default credentials are used.
func New(ctx context.Context, apiKey, credentials string, timeout time.Duration) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey != "" {
		log.Printf("[Google Auth] Using API key authentication")
		return &Client{
			HTTP:   &http.Client{Timeout: timeout},
			apiKey: apiKey,
		}, nil
	}

	credentials = strings.TrimSpace(credentials)
	var creds *google.Credentials
	var err error

	if credentials == "" {
		creds, err = google.FindDefaultCredentials(ctx, cloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("failed to find default credentials: %w. Please set GOOGLE_API_KEY or GOOGLE_CREDENTIALS", err)
		}
	} else {
		var jsonData []byte
		if strings.HasPrefix(credentials, "{") {
			log.Printf("[Google Auth] Using JSON credentials from environment variable")
			jsonData = []byte(credentials)
		} else {
			log.Printf("[Google Auth] Reading key file: %s", credentials)
			jsonData, err = os.ReadFile(credentials)
			if err != nil {
				return nil, fmt.Errorf("failed to read key file '%s': %w", credentials, err)
			}
		}

		creds, err = google.CredentialsFromJSON(ctx, jsonData, cloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("failed to create credentials from JSON: %w", err)
		}
	}

	// oauth2.NewClient picks up the base client from the context.
	base := &http.Client{Timeout: timeout}
	httpClient := oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, base), creds.TokenSource)
	httpClient.Timeout = timeout

	return &Client{HTTP: httpClient}, nil
}

// NewWithHTTPClient wraps an existing client, mostly for tests against a fake
// endpoint.
func NewWithHTTPClient(httpClient *http.Client, apiKey string) *Client {
	return &Client{HTTP: httpClient, apiKey: apiKey}
}

// UsesAPIKey reports whether requests are authorized with an API key.
func (c *Client) UsesAPIKey() bool {
	return c.apiKey != ""
}

// Endpoint returns rawURL with the API key appended when one is configured.
func (c *Client) Endpoint(rawURL string) (string, error) {
	if c.apiKey == "" {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", rawURL, err)
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
