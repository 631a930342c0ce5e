package models

// PageParametersResponse is the GET/PUT shape of the per-app page parameter
// endpoint: every customizable parameter per page type, with its saved current
// value and the platform default.
type PageParametersResponse struct {
	TenantID           string                              `json:"tenant_id"`
	AppID              string                              `json:"app_id"`
	PageTypeParameters map[string]map[string]PageParameter `json:"page_type_parameters"`
}

type PageParameter struct {
	ParameterName string `json:"parameter_name"`
	ParameterType string `json:"parameter_type"`
	CurrentValue  string `json:"current_value"`
	DefaultValue  string `json:"default_value"`
}

// Page parameter types. Array-typed parameters hold a comma-joined value set.
const (
	ParamTypeString = "string"
	ParamTypeBool   = "bool"
	ParamTypeImage  = "image"
	ParamTypeArray  = "array"
)
