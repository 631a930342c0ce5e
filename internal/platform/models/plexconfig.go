package models

import "github.com/crewjam/saml"

// TenantPlexConfig is the root aggregate fetched from and saved to
// /api/tenants/{id}/plexconfig. Field names match the wire format exactly.
type TenantPlexConfig struct {
	TenantConfig TenantConfig `json:"tenant_config"`
}

type TenantConfig struct {
	PlexMap             PlexMap       `json:"plex_map"`
	OIDCProviders       OIDCProviders `json:"oidc_providers"`
	ExternalOIDCIssuers []string      `json:"external_oidc_issuers,omitempty"`
	TenantURL           string        `json:"tenant_url"`
	TenantID            string        `json:"tenant_id"`
	VerifyEmails        bool          `json:"verify_emails"`
	DisableSignUps      bool          `json:"disable_sign_ups"`
	Keys                KeyPair       `json:"keys"`
	PageParameters      ParamsByPage  `json:"page_parameters"`
}

type PlexMap struct {
	Providers         []Provider        `json:"providers"`
	Apps              []LoginApp        `json:"apps"`
	Policy            Policy            `json:"policy"`
	EmployeeApp       *LoginApp         `json:"employee_app,omitempty"`
	TelephonyProvider TelephonyProvider `json:"telephony_provider"`
	EmailServer       EmailServer       `json:"email_server"`
}

type Policy struct {
	ActiveProviderID string `json:"active_provider_id"`
}

type ProviderType string

const (
	ProviderTypeAuth0   ProviderType = "auth0"
	ProviderTypeUC      ProviderType = "uc"
	ProviderTypeCognito ProviderType = "cognito"
)

// Provider is discriminated by Type; exactly one of the three payloads is
// populated at a time.
type Provider struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type ProviderType `json:"type"`

	Auth0   *Auth0Provider   `json:"auth0,omitempty"`
	UC      *UCProvider      `json:"uc,omitempty"`
	Cognito *CognitoProvider `json:"cognito,omitempty"`
}

type Auth0Provider struct {
	Domain     string          `json:"domain"`
	Apps       []Auth0App      `json:"apps"`
	Management Auth0Management `json:"management"`
	Redirect   bool            `json:"redirect"`
}

type Auth0App struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type Auth0Management struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Audience     string `json:"audience"`
}

type UCProvider struct {
	IDPURL string  `json:"idp_url"`
	Apps   []UCApp `json:"apps"`
}

type UCApp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CognitoProvider struct {
	AWSRegion  string       `json:"aws_region"`
	UserPoolID string       `json:"user_pool_id"`
	Apps       []CognitoApp `json:"apps"`
}

type CognitoApp struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// ParamsByPage holds raw parameter overrides keyed by page type then
// parameter name.
type ParamsByPage map[string]map[string]string

// ElementsByType holds message element overrides keyed by message type then
// element name.
type ElementsByType map[string]map[string]string

type LoginApp struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	OrganizationID string `json:"organization_id"`

	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`

	RestrictedAccess bool          `json:"restricted_access"`
	TokenValidity    TokenValidity `json:"token_validity"`

	ProviderAppIDs      []string `json:"provider_app_ids"`
	AllowedRedirectURIs []string `json:"allowed_redirect_uris"`
	AllowedLogoutURIs   []string `json:"allowed_logout_uris"`

	MessageElements ElementsByType `json:"message_elements"`
	PageParameters  ParamsByPage   `json:"page_parameters"`

	GrantTypes []string `json:"grant_types"`

	SyncedFromProvider string `json:"synced_from_provider"`

	ImpersonateUserConfig ImpersonateUserConfig `json:"impersonate_user_config"`

	SAMLIDP *SAMLIDP `json:"saml_idp,omitempty"`
}

type TokenValidity struct {
	Access          int64 `json:"access"`
	Refresh         int64 `json:"refresh"`
	ImpersonateUser int64 `json:"impersonate_user"`
}

type ImpersonateUserConfig struct {
	CheckAttribute          string `json:"check_attribute"`
	BypassCompanyAdminCheck bool   `json:"bypass_company_admin_check"`
}

// SAMLIDP describes the per-app SAML identity provider enabled via
// /loginapps/actions/samlidp.
type SAMLIDP struct {
	Certificate             string                  `json:"certificate"`
	PrivateKey              string                  `json:"private_key"`
	MetadataURL             string                  `json:"metadata_url"`
	SSOURL                  string                  `json:"sso_url"`
	TrustedServiceProviders []saml.EntityDescriptor `json:"trusted_service_providers,omitempty"`
}

type OIDCProviders struct {
	Providers []OIDCProvider `json:"providers"`
}

type OIDCProvider struct {
	Type                     string `json:"type"`
	Name                     string `json:"name"`
	Description              string `json:"description"`
	IssuerURL                string `json:"issuer_url"`
	ClientID                 string `json:"client_id"`
	ClientSecret             string `json:"client_secret"`
	CanUseLocalHostRedirect  bool   `json:"can_use_local_host_redirect"`
	UseLocalHostRedirect     bool   `json:"use_local_host_redirect"`
	DefaultScopes            string `json:"default_scopes"`
	AdditionalScopes         string `json:"additional_scopes"`
	IsNative                 bool   `json:"is_native"`
}

type TelephonyProvider struct {
	Type       string            `json:"type"`
	Properties map[string]string `json:"properties"`
}

// Telephony provider property names, keyed per integration.
const (
	TwilioAccountSID = "twilio_account_sid"
	TwilioAPIKeySID  = "twilio_api_key_sid"
	TwilioAPISecret  = "twilio_api_secret"
)

type EmailServer struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	Username   string `json:"username"`
	PasswordUI string `json:"password_ui"`
	Password   string `json:"password"`
}

type KeyPair struct {
	KeyID      string `json:"key_id"`
	PrivateKey string `json:"private_key"`
}

// TenantKeys is the response shape for the /keys endpoints. The private key
// is only populated by /keys/private.
type TenantKeys struct {
	KeyID      string `json:"key_id"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key,omitempty"`
}
