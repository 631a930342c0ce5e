package plexconfig

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/crewjam/saml"
	"github.com/google/uuid"

	"plexconsole/internal/platform/keys"
	"plexconsole/internal/platform/models"
)

// Service owns all configuration edits for one tenant. Handlers build one per
// request from the tenant resolved by the middleware.
type Service struct {
	repo   *Repository
	tenant *models.Tenant
	client *http.Client
}

func NewService(repo *Repository, tenant *models.Tenant) *Service {
	return &Service{
		repo:   repo,
		tenant: tenant,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetConfig returns the stored configuration, bootstrapping a default one for
// tenants that have never been configured.
func (s *Service) GetConfig() (*models.TenantPlexConfig, error) {
	cfg, err := s.repo.GetConfig()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg, err = s.bootstrapConfig()
		if err != nil {
			return nil, err
		}
	}
	EnsureDefaults(cfg)
	return cfg, nil
}

func (s *Service) bootstrapConfig() (*models.TenantPlexConfig, error) {
	pair, err := keys.Generate(2048)
	if err != nil {
		return nil, err
	}

	provider := models.Provider{
		ID:   uuid.New().String(),
		Name: "Default provider",
		Type: models.ProviderTypeUC,
	}
	NormalizeProviderPayload(&provider)
	providerApp := models.UCApp{ID: uuid.New().String(), Name: "Default app"}
	provider.UC.Apps = append(provider.UC.Apps, providerApp)

	app := newLoginApp(uuid.New().String(), "Default app", uuid.New().String(), uuid.New().String())
	app.ProviderAppIDs = []string{providerApp.ID}

	cfg := &models.TenantPlexConfig{
		TenantConfig: models.TenantConfig{
			PlexMap: models.PlexMap{
				Providers: []models.Provider{provider},
				Apps:      []models.LoginApp{app},
				Policy:    models.Policy{ActiveProviderID: provider.ID},
			},
			OIDCProviders: models.OIDCProviders{Providers: []models.OIDCProvider{}},
			TenantURL:     s.tenant.TenantURL,
			TenantID:      s.tenant.ID,
			VerifyEmails:  true,
			Keys: models.KeyPair{
				KeyID:      pair.KeyID,
				PrivateKey: pair.PrivatePEM,
			},
		},
	}
	if err := s.repo.SaveConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig validates and persists a full configuration. Trusted service
// providers referenced only by entity id get their SAML metadata fetched
// before the save. Returns the saved configuration.
func (s *Service) SaveConfig(cfg *models.TenantPlexConfig) (*models.TenantPlexConfig, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if err := s.resolveTrustedServiceProviders(cfg); err != nil {
		return nil, err
	}
	if err := s.repo.SaveConfig(cfg); err != nil {
		return nil, err
	}
	EnsureDefaults(cfg)
	return cfg, nil
}

func (s *Service) resolveTrustedServiceProviders(cfg *models.TenantPlexConfig) error {
	for i := range cfg.TenantConfig.PlexMap.Apps {
		app := &cfg.TenantConfig.PlexMap.Apps[i]
		if app.SAMLIDP == nil {
			continue
		}
		for j := range app.SAMLIDP.TrustedServiceProviders {
			sp := &app.SAMLIDP.TrustedServiceProviders[j]
			if sp.EntityID == "" || len(sp.SPSSODescriptors) > 0 {
				continue
			}
			fetched, err := s.fetchSPMetadata(sp.EntityID)
			if err != nil {
				return fmt.Errorf("fetch metadata for %s: %w", sp.EntityID, err)
			}
			*sp = *fetched
		}
	}
	return nil
}

func (s *Service) fetchSPMetadata(entityID string) (*saml.EntityDescriptor, error) {
	resp, err := s.client.Get(entityID)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata endpoint returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	var descriptor saml.EntityDescriptor
	if err := xml.Unmarshal(body, &descriptor); err != nil {
		return nil, err
	}
	return &descriptor, nil
}

func newLoginApp(id, name, clientID, clientSecret string) models.LoginApp {
	return models.LoginApp{
		ID:           id,
		Name:         name,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenValidity: models.TokenValidity{
			Access:          86400,
			Refresh:         2592000,
			ImpersonateUser: 3600,
		},
		ProviderAppIDs:      []string{},
		AllowedRedirectURIs: []string{},
		AllowedLogoutURIs:   []string{},
		GrantTypes:          []string{"authorization_code", "refresh_token"},
	}
}

// CreateLoginApp appends a new login app and persists the configuration.
func (s *Service) CreateLoginApp(appID, name, clientID, clientSecret string) (*models.TenantPlexConfig, error) {
	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}
	if appID == "" {
		appID = uuid.New().String()
	}
	if FindApp(cfg, appID) != nil {
		return nil, fmt.Errorf("login app %s already exists", appID)
	}
	if clientID == "" {
		clientID = uuid.New().String()
	}
	if clientSecret == "" {
		clientSecret = uuid.New().String()
	}
	cfg.TenantConfig.PlexMap.Apps = append(cfg.TenantConfig.PlexMap.Apps, newLoginApp(appID, name, clientID, clientSecret))
	if err := s.repo.SaveConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DeleteLoginApp removes a login app along with its message element and page
// parameter overrides.
func (s *Service) DeleteLoginApp(appID string) (*models.TenantPlexConfig, error) {
	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}
	apps := cfg.TenantConfig.PlexMap.Apps
	found := false
	for i := range apps {
		if apps[i].ID == appID {
			cfg.TenantConfig.PlexMap.Apps = append(apps[:i], apps[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return nil, errors.New("login app not found")
	}
	if err := s.repo.SaveConfig(cfg); err != nil {
		return nil, err
	}
	if err := s.repo.DeleteMessageElements(appID); err != nil {
		return nil, err
	}
	if err := s.repo.DeletePageParameters(appID); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EnableSAMLIDP provisions a SAML identity provider for one login app:
// a fresh signing certificate plus metadata and SSO URLs under the tenant
// URL. Idempotent for apps that already have one.
func (s *Service) EnableSAMLIDP(appID string) (*models.TenantPlexConfig, error) {
	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}
	app := FindApp(cfg, appID)
	if app == nil {
		return nil, errors.New("login app not found")
	}
	if app.SAMLIDP == nil {
		cert, key, err := keys.SelfSignedCert("plexconsole-saml-" + appID)
		if err != nil {
			return nil, err
		}
		app.SAMLIDP = &models.SAMLIDP{
			Certificate: cert,
			PrivateKey:  key,
			MetadataURL: fmt.Sprintf("%s/saml/metadata/%s", s.tenant.TenantURL, appID),
			SSOURL:      fmt.Sprintf("%s/saml/sso/%s", s.tenant.TenantURL, appID),
		}
		if err := s.repo.SaveConfig(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// GetMessageElements builds the full element set for every login app of the
// transport, overlaying saved custom values on the built-in defaults.
func (s *Service) GetMessageElements(sms bool) (*models.TenantAppMessageElements, error) {
	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}
	out := &models.TenantAppMessageElements{
		TenantID:           s.tenant.ID,
		AppMessageElements: []models.AppMessageElement{},
	}
	for _, app := range cfg.TenantConfig.PlexMap.Apps {
		merged := DefaultMessageElements(app.ID, sms)
		saved, err := s.repo.ListMessageElements(app.ID)
		if err != nil {
			return nil, err
		}
		for messageType, elements := range saved {
			mt, ok := merged.MessageTypeMessageElements[messageType]
			if !ok {
				continue
			}
			for name, el := range elements {
				base, ok := mt.MessageElements[name]
				if !ok {
					continue
				}
				base.CustomValue = el.CustomValue
				mt.MessageElements[name] = base
			}
			merged.MessageTypeMessageElements[messageType] = mt
		}
		out.AppMessageElements = append(out.AppMessageElements, merged)
	}
	return out, nil
}

// SaveMessageElements persists one app+message-type element set and returns
// the refreshed full set for the transport.
func (s *Service) SaveMessageElements(payload *models.ModifiedMessageTypeMessageElements) (*models.TenantAppMessageElements, error) {
	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}
	if FindApp(cfg, payload.AppID) == nil {
		return nil, errors.New("login app not found")
	}
	if err := s.repo.SaveMessageElements(payload.AppID, payload.MessageType, payload.MessageElements); err != nil {
		return nil, err
	}
	return s.GetMessageElements(models.IsSMSMessageType(payload.MessageType))
}

// GetPageParameters overlays the saved current values on the default
// parameter catalog for one app.
func (s *Service) GetPageParameters(appID string) (*models.PageParametersResponse, error) {
	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}
	if FindApp(cfg, appID) == nil {
		return nil, errors.New("login app not found")
	}
	resp := DefaultPageParameters(s.tenant.ID, appID)
	saved, err := s.repo.GetPageParameters(appID)
	if err != nil {
		return nil, err
	}
	for page, params := range saved {
		defaults, ok := resp.PageTypeParameters[page]
		if !ok {
			continue
		}
		for name, value := range params {
			param, ok := defaults[name]
			if !ok {
				continue
			}
			param.CurrentValue = value
			defaults[name] = param
		}
	}
	return &resp, nil
}

// SavePageParameters persists the current values of a full parameter
// response and returns the refreshed merge.
func (s *Service) SavePageParameters(appID string, resp *models.PageParametersResponse) (*models.PageParametersResponse, error) {
	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}
	if FindApp(cfg, appID) == nil {
		return nil, errors.New("login app not found")
	}
	values := models.ParamsByPage{}
	for page, params := range resp.PageTypeParameters {
		for name, param := range params {
			if values[page] == nil {
				values[page] = map[string]string{}
			}
			values[page][name] = param.CurrentValue
		}
	}
	if err := s.repo.SavePageParameters(appID, values); err != nil {
		return nil, err
	}
	return s.GetPageParameters(appID)
}

// ListKeys returns the tenant signing key id and public key.
func (s *Service) ListKeys() (*models.TenantKeys, error) {
	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}
	pub, err := keys.PublicPEM(cfg.TenantConfig.Keys.PrivateKey)
	if err != nil {
		return nil, err
	}
	return &models.TenantKeys{
		KeyID:     cfg.TenantConfig.Keys.KeyID,
		PublicKey: pub,
	}, nil
}

// RotateKeys generates a fresh signing key pair and persists it.
func (s *Service) RotateKeys(bits int) (*models.TenantKeys, error) {
	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}
	pair, err := keys.Generate(bits)
	if err != nil {
		return nil, err
	}
	cfg.TenantConfig.Keys = models.KeyPair{KeyID: pair.KeyID, PrivateKey: pair.PrivatePEM}
	if err := s.repo.SaveConfig(cfg); err != nil {
		return nil, err
	}
	return &models.TenantKeys{KeyID: pair.KeyID, PublicKey: pair.PublicPEM}, nil
}

// PrivateKey returns the tenant signing key including the private PEM.
func (s *Service) PrivateKey() (*models.TenantKeys, error) {
	cfg, err := s.GetConfig()
	if err != nil {
		return nil, err
	}
	pub, err := keys.PublicPEM(cfg.TenantConfig.Keys.PrivateKey)
	if err != nil {
		return nil, err
	}
	return &models.TenantKeys{
		KeyID:      cfg.TenantConfig.Keys.KeyID,
		PublicKey:  pub,
		PrivateKey: cfg.TenantConfig.Keys.PrivateKey,
	}, nil
}

// SetLogo records an uploaded logo URL as the every-page logo parameter.
func (s *Service) SetLogo(appID, logoURL string) error {
	cfg, err := s.GetConfig()
	if err != nil {
		return err
	}
	if FindApp(cfg, appID) == nil {
		return errors.New("login app not found")
	}
	saved, err := s.repo.GetPageParameters(appID)
	if err != nil {
		return err
	}
	if saved == nil {
		saved = models.ParamsByPage{}
	}
	if saved[PageTypeEveryPage] == nil {
		saved[PageTypeEveryPage] = map[string]string{}
	}
	saved[PageTypeEveryPage][ParamLogoImageFile] = logoURL
	return s.repo.SavePageParameters(appID, saved)
}
