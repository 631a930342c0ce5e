package models

// Tenant is the global directory record for a customer tenant. Each tenant
// owns its own sqlite database holding its plex configuration.
type Tenant struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	Name       string `json:"name"`
	TenantURL  string `json:"tenant_url"`
	DBFilePath string `json:"db_file_path"`
	State      string `json:"state"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
	DeletedAt  *int64 `json:"deleted_at,omitempty"`
}

// Operator is a console user. Operators authenticate with email+password and
// act on the tenants of their company.
type Operator struct {
	ID           string `json:"id"`
	CompanyID    string `json:"company_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
	LastLoginAt  *int64 `json:"last_login_at,omitempty"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
	DeletedAt    *int64 `json:"deleted_at,omitempty"`
}

const (
	OperatorRoleAdmin  = "admin"
	OperatorRoleMember = "member"

	TenantStateActive       = "active"
	TenantStateProvisioning = "provisioning"
)
