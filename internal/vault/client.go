package vault

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/vault/api"
)

// Client wraps the HashiCorp Vault API for transit encryption. Free-text
// decline reasons can carry sensitive commentary about candidates and
// org internals, so they are encrypted at rest when Vault is enabled.
type Client struct {
	client       *api.Client
	transitMount string
	keyName      string
}

// Config holds Vault configuration
type Config struct {
	Address      string
	Token        string
	TransitMount string
	KeyName      string
}

// NewClient creates a new Vault client and ensures the transit engine and
// encryption key exist
func NewClient(cfg *Config) (*Client, error) {
	config := api.DefaultConfig()
	config.Address = cfg.Address

	client, err := api.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}

	client.SetToken(cfg.Token)

	vaultClient := &Client{
		client:       client,
		transitMount: cfg.TransitMount,
		keyName:      cfg.KeyName,
	}

	if err := vaultClient.initTransitEngine(); err != nil {
		return nil, fmt.Errorf("failed to initialize transit engine: %w", err)
	}

	if err := vaultClient.ensureKey(); err != nil {
		return nil, fmt.Errorf("failed to ensure transit key: %w", err)
	}

	return vaultClient, nil
}

// initTransitEngine enables the transit secrets engine if not already enabled
func (c *Client) initTransitEngine() error {
	ctx := context.Background()

	mounts, err := c.client.Sys().ListMountsWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to list mounts: %w", err)
	}

	mountPath := c.transitMount + "/"
	if _, exists := mounts[mountPath]; exists {
		return nil // Already mounted
	}

	err = c.client.Sys().MountWithContext(ctx, c.transitMount, &api.MountInput{
		Type:        "transit",
		Description: "Transit encryption for HireGate",
		Config: api.MountConfigInput{
			DefaultLeaseTTL: "768h",
			MaxLeaseTTL:     "8760h",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to mount transit engine: %w", err)
	}

	return nil
}

// ensureKey creates the transit encryption key if it doesn't exist.
// Creating an existing key is a no-op on Vault's side.
func (c *Client) ensureKey() error {
	ctx := context.Background()

	path := fmt.Sprintf("%s/keys/%s", c.transitMount, c.keyName)

	data := map[string]interface{}{
		"type":       "aes256-gcm96",
		"exportable": false,
		"derived":    false,
	}

	_, err := c.client.Logical().WriteWithContext(ctx, path, data)
	if err != nil {
		return fmt.Errorf("failed to create key %s: %w", c.keyName, err)
	}

	return nil
}

// EncryptString encrypts a string with the transit engine and returns the
// Vault ciphertext (vault:v1:... format)
func (c *Client) EncryptString(ctx context.Context, plaintext string) (string, error) {
	path := fmt.Sprintf("%s/encrypt/%s", c.transitMount, c.keyName)

	data := map[string]interface{}{
		"plaintext": base64.StdEncoding.EncodeToString([]byte(plaintext)),
	}

	secret, err := c.client.Logical().WriteWithContext(ctx, path, data)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt: %w", err)
	}

	ciphertext, ok := secret.Data["ciphertext"].(string)
	if !ok {
		return "", fmt.Errorf("invalid ciphertext response")
	}

	return ciphertext, nil
}

// DecryptString decrypts a Vault transit ciphertext back into a string
func (c *Client) DecryptString(ctx context.Context, ciphertext string) (string, error) {
	path := fmt.Sprintf("%s/decrypt/%s", c.transitMount, c.keyName)

	data := map[string]interface{}{
		"ciphertext": ciphertext,
	}

	secret, err := c.client.Logical().WriteWithContext(ctx, path, data)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	encodedPlaintext, ok := secret.Data["plaintext"].(string)
	if !ok {
		return "", fmt.Errorf("invalid plaintext response")
	}

	plaintext, err := base64.StdEncoding.DecodeString(encodedPlaintext)
	if err != nil {
		return "", fmt.Errorf("failed to decode plaintext: %w", err)
	}

	return string(plaintext), nil
}

// IsCiphertext reports whether a stored value is a Vault transit ciphertext
func IsCiphertext(value string) bool {
	return strings.HasPrefix(value, "vault:v")
}

// Health checks Vault health status
func (c *Client) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	health, err := c.client.Sys().HealthWithContext(ctx)
	if err != nil {
		return fmt.Errorf("vault health check failed: %w", err)
	}

	if !health.Initialized {
		return fmt.Errorf("vault is not initialized")
	}

	if health.Sealed {
		return fmt.Errorf("vault is sealed")
	}

	return nil
}
