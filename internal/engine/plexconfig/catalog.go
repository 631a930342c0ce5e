package plexconfig

import "plexconsole/internal/platform/models"

// Built-in template catalogs. Fetch responses merge per-app custom values
// saved in the tenant database over these defaults.

var emailMessageTypes = []string{
	models.MessageTypeEmailInvite,
	models.MessageTypeEmailInviteExists,
	models.MessageTypeEmailVerify,
	models.MessageTypeEmailPasswordless,
	models.MessageTypeEmailResetPassword,
	models.MessageTypeEmailMFAChallenge,
	models.MessageTypeEmailMFAVerify,
}

var smsMessageTypes = []string{
	models.MessageTypeSMSMFAChallenge,
	models.MessageTypeSMSMFAVerify,
}

var defaultEmailSubjects = map[string]string{
	models.MessageTypeEmailInvite:        "You have been invited to {{.AppName}}",
	models.MessageTypeEmailInviteExists:  "You have been invited to {{.AppName}}",
	models.MessageTypeEmailVerify:        "Verify your email for {{.AppName}}",
	models.MessageTypeEmailPasswordless:  "Your sign-in link for {{.AppName}}",
	models.MessageTypeEmailResetPassword: "Reset your {{.AppName}} password",
	models.MessageTypeEmailMFAChallenge:  "Your {{.AppName}} verification code",
	models.MessageTypeEmailMFAVerify:     "Confirm your {{.AppName}} email",
}

var defaultEmailBodies = map[string]string{
	models.MessageTypeEmailInvite:        "{{.InviterName}} invited you to {{.AppName}}. Follow {{.Link}} to create an account.",
	models.MessageTypeEmailInviteExists:  "{{.InviterName}} invited you to {{.AppName}}. Follow {{.Link}} to sign in.",
	models.MessageTypeEmailVerify:        "Follow {{.Link}} to verify your email address.",
	models.MessageTypeEmailPasswordless:  "Follow {{.Link}} to sign in to {{.AppName}}.",
	models.MessageTypeEmailResetPassword: "Follow {{.Link}} to reset your password.",
	models.MessageTypeEmailMFAChallenge:  "Your verification code is {{.Code}}.",
	models.MessageTypeEmailMFAVerify:     "Your confirmation code is {{.Code}}.",
}

var defaultSMSBodies = map[string]string{
	models.MessageTypeSMSMFAChallenge: "{{.AppName}} verification code: {{.Code}}",
	models.MessageTypeSMSMFAVerify:    "{{.AppName}} confirmation code: {{.Code}}",
}

var messageParameters = map[string][]models.MessageParameter{
	models.MessageTypeEmailInvite: {
		{Name: "AppName", DefaultValue: "My App"},
		{Name: "InviterName", DefaultValue: "A colleague"},
		{Name: "Link", DefaultValue: "https://example.com/invite"},
	},
	models.MessageTypeEmailInviteExists: {
		{Name: "AppName", DefaultValue: "My App"},
		{Name: "InviterName", DefaultValue: "A colleague"},
		{Name: "Link", DefaultValue: "https://example.com/invite"},
	},
	models.MessageTypeEmailVerify: {
		{Name: "AppName", DefaultValue: "My App"},
		{Name: "Link", DefaultValue: "https://example.com/verify"},
	},
	models.MessageTypeEmailPasswordless: {
		{Name: "AppName", DefaultValue: "My App"},
		{Name: "Link", DefaultValue: "https://example.com/login"},
	},
	models.MessageTypeEmailResetPassword: {
		{Name: "AppName", DefaultValue: "My App"},
		{Name: "Link", DefaultValue: "https://example.com/reset"},
	},
	models.MessageTypeEmailMFAChallenge: {
		{Name: "AppName", DefaultValue: "My App"},
		{Name: "Code", DefaultValue: "123456"},
	},
	models.MessageTypeEmailMFAVerify: {
		{Name: "AppName", DefaultValue: "My App"},
		{Name: "Code", DefaultValue: "123456"},
	},
	models.MessageTypeSMSMFAChallenge: {
		{Name: "AppName", DefaultValue: "My App"},
		{Name: "Code", DefaultValue: "123456"},
	},
	models.MessageTypeSMSMFAVerify: {
		{Name: "AppName", DefaultValue: "My App"},
		{Name: "Code", DefaultValue: "123456"},
	},
}

// ElementSubject and friends name the well-known elements of a message type.
const (
	ElementSender      = "sender"
	ElementSenderName  = "sender_name"
	ElementSubject     = "subject_template"
	ElementHTMLBody    = "html_template"
	ElementTextBody    = "text_template"
	ElementSMSBody     = "sms_body_template"
)

func defaultEmailElements(messageType string) map[string]models.MessageElement {
	return map[string]models.MessageElement{
		ElementSender:     {Type: ElementSender, DefaultValue: "noreply@example.com"},
		ElementSenderName: {Type: ElementSenderName, DefaultValue: "My App"},
		ElementSubject:    {Type: ElementSubject, DefaultValue: defaultEmailSubjects[messageType]},
		ElementHTMLBody:   {Type: ElementHTMLBody, DefaultValue: "<p>" + defaultEmailBodies[messageType] + "</p>"},
		ElementTextBody:   {Type: ElementTextBody, DefaultValue: defaultEmailBodies[messageType]},
	}
}

func defaultSMSElements(messageType string) map[string]models.MessageElement {
	return map[string]models.MessageElement{
		ElementSMSBody: {Type: ElementSMSBody, DefaultValue: defaultSMSBodies[messageType]},
	}
}

// DefaultMessageElements builds the full default element set for one app,
// email or SMS transport.
func DefaultMessageElements(appID string, sms bool) models.AppMessageElement {
	out := models.AppMessageElement{
		AppID:                      appID,
		MessageTypeMessageElements: map[string]models.MessageTypeElements{},
	}
	types := emailMessageTypes
	if sms {
		types = smsMessageTypes
	}
	for _, mt := range types {
		elems := defaultEmailElements(mt)
		if sms {
			elems = defaultSMSElements(mt)
		}
		out.MessageTypeMessageElements[mt] = models.MessageTypeElements{
			Type:              mt,
			MessageElements:   elems,
			MessageParameters: append([]models.MessageParameter(nil), messageParameters[mt]...),
		}
	}
	return out
}

// Page types rendered by the hosted login UI.
const (
	PageTypeLogin               = "plex_login_page"
	PageTypeCreateUser          = "plex_create_user_page"
	PageTypePasswordlessLogin   = "plex_passwordless_login_page"
	PageTypeStartResetPassword  = "plex_start_reset_password_page"
	PageTypeFinishResetPassword = "plex_finish_reset_password_page"
	PageTypeMFACode             = "plex_mfa_code_page"
	PageTypeEveryPage           = "every_page"
)

// Well-known page parameter names.
const (
	ParamAuthenticationMethods = "authenticationMethods"
	ParamOIDCAuthSettings      = "oidcAuthenticationSettings"
	ParamLogoImageFile         = "logoImageFile"
	ParamHeadingText           = "headingText"
	ParamActionButtonColor     = "actionButtonFillColor"
	ParamPageBackgroundColor   = "pageBackgroundColor"
	ParamAllowCreation         = "allowCreation"
)

func defaultPageParams(params map[string]string, types map[string]string) map[string]models.PageParameter {
	out := make(map[string]models.PageParameter, len(params))
	for name, def := range params {
		pt := types[name]
		if pt == "" {
			pt = models.ParamTypeString
		}
		out[name] = models.PageParameter{
			ParameterName: name,
			ParameterType: pt,
			CurrentValue:  def,
			DefaultValue:  def,
		}
	}
	return out
}

// DefaultPageParameters builds the default parameter set for one app.
func DefaultPageParameters(tenantID, appID string) models.PageParametersResponse {
	return models.PageParametersResponse{
		TenantID: tenantID,
		AppID:    appID,
		PageTypeParameters: map[string]map[string]models.PageParameter{
			PageTypeEveryPage: defaultPageParams(map[string]string{
				ParamLogoImageFile:       "",
				ParamActionButtonColor:   "#1090FF",
				ParamPageBackgroundColor: "#FFFFFF",
			}, map[string]string{
				ParamLogoImageFile: models.ParamTypeImage,
			}),
			PageTypeLogin: defaultPageParams(map[string]string{
				ParamHeadingText:           "Sign in",
				ParamAuthenticationMethods: "password",
				ParamOIDCAuthSettings:      "",
				ParamAllowCreation:         "true",
			}, map[string]string{
				ParamAuthenticationMethods: models.ParamTypeArray,
				ParamAllowCreation:         models.ParamTypeBool,
			}),
			PageTypeCreateUser: defaultPageParams(map[string]string{
				ParamHeadingText: "Create your account",
			}, nil),
			PageTypePasswordlessLogin: defaultPageParams(map[string]string{
				ParamHeadingText: "Sign in with a link",
			}, nil),
			PageTypeStartResetPassword: defaultPageParams(map[string]string{
				ParamHeadingText: "Reset your password",
			}, nil),
			PageTypeFinishResetPassword: defaultPageParams(map[string]string{
				ParamHeadingText: "Choose a new password",
			}, nil),
			PageTypeMFACode: defaultPageParams(map[string]string{
				ParamHeadingText: "Enter your verification code",
			}, nil),
		},
	}
}
