package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"plexconsole/internal/engine/plexconfig"
	"plexconsole/internal/pkg/errors"
	"plexconsole/internal/platform/models"
)

// Client is the typed wrapper around the console API that the editing layer
// uses. It performs no retries and adds no timeouts beyond what the supplied
// http.Client enforces.
type Client struct {
	baseURL  string
	tenantID string
	token    string
	http     *http.Client
}

func New(baseURL, tenantID, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:  baseURL,
		tenantID: tenantID,
		token:    token,
		http:     httpClient,
	}
}

func (c *Client) tenantPath(suffix string) string {
	return fmt.Sprintf("%s/api/tenants/%s%s", c.baseURL, c.tenantID, suffix)
}

func (c *Client) do(method, url string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.FromResponse(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) doJSON(method, url string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	return c.do(method, url, body, "application/json", out)
}

// FetchPlexConfig loads the tenant configuration with list defaults applied.
func (c *Client) FetchPlexConfig() (*models.TenantPlexConfig, error) {
	var cfg models.TenantPlexConfig
	if err := c.doJSON(http.MethodGet, c.tenantPath("/plexconfig"), nil, &cfg); err != nil {
		return nil, err
	}
	plexconfig.EnsureDefaults(&cfg)
	return &cfg, nil
}

// SavePlexConfig persists a configuration and returns the echoed result with
// list defaults applied.
func (c *Client) SavePlexConfig(cfg *models.TenantPlexConfig) (*models.TenantPlexConfig, error) {
	var saved models.TenantPlexConfig
	if err := c.doJSON(http.MethodPost, c.tenantPath("/plexconfig"), cfg, &saved); err != nil {
		return nil, err
	}
	plexconfig.EnsureDefaults(&saved)
	return &saved, nil
}

type addLoginAppRequest struct {
	AppID        string `json:"app_id"`
	Name         string `json:"name"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// AddLoginApp creates a login app and returns the updated configuration.
func (c *Client) AddLoginApp(appID, name, clientID, clientSecret string) (*models.TenantPlexConfig, error) {
	payload := addLoginAppRequest{AppID: appID, Name: name, ClientID: clientID, ClientSecret: clientSecret}
	var cfg models.TenantPlexConfig
	if err := c.doJSON(http.MethodPost, c.tenantPath("/loginapps"), payload, &cfg); err != nil {
		return nil, err
	}
	plexconfig.EnsureDefaults(&cfg)
	return &cfg, nil
}

// DeleteLoginApp removes a login app and returns the updated configuration.
func (c *Client) DeleteLoginApp(appID string) (*models.TenantPlexConfig, error) {
	var cfg models.TenantPlexConfig
	if err := c.doJSON(http.MethodDelete, c.tenantPath("/loginapps/"+url.PathEscape(appID)), nil, &cfg); err != nil {
		return nil, err
	}
	plexconfig.EnsureDefaults(&cfg)
	return &cfg, nil
}

// EnableSAMLIDP provisions a SAML IDP for the app and returns the updated
// configuration.
func (c *Client) EnableSAMLIDP(appID string) (*models.TenantPlexConfig, error) {
	var cfg models.TenantPlexConfig
	path := c.tenantPath("/loginapps/actions/samlidp") + "?app_id=" + url.QueryEscape(appID)
	if err := c.doJSON(http.MethodPost, path, nil, &cfg); err != nil {
		return nil, err
	}
	plexconfig.EnsureDefaults(&cfg)
	return &cfg, nil
}

type elementsEnvelope struct {
	TenantAppMessageElements *models.TenantAppMessageElements `json:"tenant_app_message_elements"`
}

type saveElementsEnvelope struct {
	Modified *models.ModifiedMessageTypeMessageElements `json:"modified_message_type_message_elements"`
}

func (c *Client) fetchElements(suffix string) (*models.TenantAppMessageElements, error) {
	var envelope elementsEnvelope
	if err := c.doJSON(http.MethodGet, c.tenantPath(suffix), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.TenantAppMessageElements, nil
}

func (c *Client) saveElements(suffix string, modified *models.ModifiedMessageTypeMessageElements) (*models.TenantAppMessageElements, error) {
	var envelope elementsEnvelope
	if err := c.doJSON(http.MethodPost, c.tenantPath(suffix), saveElementsEnvelope{Modified: modified}, &envelope); err != nil {
		return nil, err
	}
	return envelope.TenantAppMessageElements, nil
}

func (c *Client) FetchEmailElements() (*models.TenantAppMessageElements, error) {
	return c.fetchElements("/emailelements")
}

func (c *Client) SaveEmailElements(modified *models.ModifiedMessageTypeMessageElements) (*models.TenantAppMessageElements, error) {
	return c.saveElements("/emailelements", modified)
}

func (c *Client) FetchSMSElements() (*models.TenantAppMessageElements, error) {
	return c.fetchElements("/smselements")
}

func (c *Client) SaveSMSElements(modified *models.ModifiedMessageTypeMessageElements) (*models.TenantAppMessageElements, error) {
	return c.saveElements("/smselements", modified)
}

// FetchPageParameters loads the page parameter set for one app.
func (c *Client) FetchPageParameters(appID string) (*models.PageParametersResponse, error) {
	var resp models.PageParametersResponse
	if err := c.doJSON(http.MethodGet, c.tenantPath("/apppageparameters/"+url.PathEscape(appID)), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SavePageParameters persists a page parameter set and returns the echo.
func (c *Client) SavePageParameters(appID string, params *models.PageParametersResponse) (*models.PageParametersResponse, error) {
	var resp models.PageParametersResponse
	if err := c.doJSON(http.MethodPut, c.tenantPath("/apppageparameters/"+url.PathEscape(appID)), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UploadLogo posts an image as a multipart form and returns the stored URL.
func (c *Client) UploadLogo(appID, filename string, image io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	var out struct {
		LogoURL string `json:"logo_url"`
	}
	path := c.tenantPath("/uploadlogo") + "?app_id=" + url.QueryEscape(appID)
	if err := c.do(http.MethodPost, path, &buf, writer.FormDataContentType(), &out); err != nil {
		return "", err
	}
	return out.LogoURL, nil
}

// ListKeys returns the tenant signing key id and public key.
func (c *Client) ListKeys() (*models.TenantKeys, error) {
	var keys models.TenantKeys
	if err := c.doJSON(http.MethodGet, c.tenantPath("/keys"), nil, &keys); err != nil {
		return nil, err
	}
	return &keys, nil
}

// RotateKeys rotates the tenant signing key pair.
func (c *Client) RotateKeys() (*models.TenantKeys, error) {
	var keys models.TenantKeys
	if err := c.doJSON(http.MethodPut, c.tenantPath("/keys/actions/rotate"), nil, &keys); err != nil {
		return nil, err
	}
	return &keys, nil
}

// FetchPrivateKey returns the signing key including the private PEM.
func (c *Client) FetchPrivateKey() (*models.TenantKeys, error) {
	var keys models.TenantKeys
	if err := c.doJSON(http.MethodGet, c.tenantPath("/keys/private"), nil, &keys); err != nil {
		return nil, err
	}
	return &keys, nil
}
