package models

// AppMessageElement holds every customizable message template for one login
// app, keyed by message type.
type AppMessageElement struct {
	AppID                      string                          `json:"app_id"`
	MessageTypeMessageElements map[string]MessageTypeElements `json:"message_type_message_elements"`
}

// MessageTypeElements describes one message type: its elements (subject, body,
// sender and friends) and the template parameters the body may reference.
type MessageTypeElements struct {
	Type              string                    `json:"type"`
	MessageElements   map[string]MessageElement `json:"message_elements"`
	MessageParameters []MessageParameter        `json:"message_parameters"`
}

type MessageElement struct {
	Type         string `json:"type"`
	DefaultValue string `json:"default_value"`
	CustomValue  string `json:"custom_value"`
}

type MessageParameter struct {
	Name         string `json:"name"`
	DefaultValue string `json:"default_value"`
}

// TenantAppMessageElements is the fetch response for the email/SMS element
// endpoints: all apps' message elements for one tenant.
type TenantAppMessageElements struct {
	TenantID           string              `json:"tenant_id"`
	AppMessageElements []AppMessageElement `json:"app_message_elements"`
}

// ModifiedMessageTypeMessageElements is the save payload: the full element set
// for a single app + message type.
type ModifiedMessageTypeMessageElements struct {
	TenantID        string                    `json:"tenant_id"`
	AppID           string                    `json:"app_id"`
	MessageType     string                    `json:"message_type"`
	MessageElements map[string]MessageElement `json:"message_elements"`
}

// Message types split by transport. SMS types carry an "sms_" prefix.
const (
	MessageTypeEmailInvite        = "invite_new"
	MessageTypeEmailInviteExists  = "invite_existing"
	MessageTypeEmailVerify        = "verify_email"
	MessageTypeEmailPasswordless  = "passwordless_login"
	MessageTypeEmailResetPassword = "reset_password"
	MessageTypeEmailMFAChallenge  = "email_mfa_challenge"
	MessageTypeEmailMFAVerify     = "email_mfa_verify"

	MessageTypeSMSMFAChallenge = "sms_mfa_challenge"
	MessageTypeSMSMFAVerify    = "sms_mfa_verify"
)

// IsSMSMessageType reports whether a message type is delivered over SMS.
func IsSMSMessageType(messageType string) bool {
	return len(messageType) >= 4 && messageType[:4] == "sms_"
}
