package game

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cbodonnell/stackfall/client/ui"
	authhandlers "github.com/cbodonnell/stackfall/pkg/auth/handlers"
)

// AuthClient exchanges credentials for an ID token with the API's auth routes.
type AuthClient struct {
	authURL string
	client  *http.Client
}

func NewAuthClient(authURL string, client *http.Client) *AuthClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &AuthClient{
		authURL: strings.TrimSuffix(authURL, "/"),
		client:  client,
	}
}

// Login returns the ID token of an existing account.
func (c *AuthClient) Login(email, password string) (string, error) {
	resp := &authhandlers.LoginResponseBody{}
	if err := c.postCredentials("/login", email, password, resp); err != nil {
		return "", err
	}
	return resp.IDToken, nil
}

// Register creates an account and returns its ID token.
func (c *AuthClient) Register(email, password string) (string, error) {
	resp := &authhandlers.RegisterResponseBody{}
	if err := c.postCredentials("/register", email, password, resp); err != nil {
		return "", err
	}
	return resp.IDToken, nil
}

// postCredentials posts a form and decodes the JSON reply. Bad request replies
// carry a message for the player and become an ActionableError.
func (c *AuthClient) postCredentials(endpoint, email, password string, responsePayload interface{}) error {
	values := url.Values{}
	values.Set("email", email)
	values.Set("password", password)
	requestBody := strings.NewReader(values.Encode())

	req, err := http.NewRequest(http.MethodPost, c.authURL+endpoint, requestBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		b, _ := io.ReadAll(resp.Body)
		return ui.NewActionableError(strings.TrimSpace(string(b)))
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status: %s, body: %s", resp.Status, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(responsePayload); err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}
	return nil
}
