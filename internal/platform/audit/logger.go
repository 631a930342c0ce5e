package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	apiContext "plexconsole/internal/api/context"
	"plexconsole/internal/platform/auth"
	"plexconsole/internal/platform/database"
)

// Actions recorded by the console.
const (
	ActionConfigSaved  = "config_saved"
	ActionAppCreated   = "app_created"
	ActionAppDeleted   = "app_deleted"
	ActionSAMLEnabled  = "saml_idp_enabled"
	ActionKeysRotated  = "keys_rotated"
	ActionLogoUploaded = "logo_uploaded"
)

type AuditLog struct {
	ID           string                 `json:"id"`
	TenantID     string                 `json:"tenant_id"`
	OperatorID   string                 `json:"operator_id"`
	Action       string                 `json:"action"`
	ResourceType string                 `json:"resource_type"`
	ResourceID   string                 `json:"resource_id"`
	Metadata     map[string]interface{} `json:"metadata"`
	CreatedAt    int64                  `json:"created_at"`
}

type Logger struct {
	globalDB *sql.DB
}

func NewLogger(db *sql.DB) *Logger {
	return &Logger{globalDB: db}
}

// Log records an operator action against a tenant. The insert runs in the
// background; audit failures never fail the request.
func (l *Logger) Log(ctx context.Context, action, resourceType, resourceID string, metadata map[string]interface{}) {
	var tenantID, operatorID string

	if claims, ok := ctx.Value(apiContext.Claims).(*auth.Claims); ok {
		operatorID = claims.OperatorID
	}
	if tenant, ok := ctx.Value(apiContext.Tenant).(*database.TenantContext); ok && tenant.Tenant != nil {
		tenantID = tenant.Tenant.ID
	}

	metaJSON, _ := json.Marshal(metadata)

	entry := &AuditLog{
		ID:           "audit_" + uuid.New().String(),
		TenantID:     tenantID,
		OperatorID:   operatorID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Metadata:     metadata,
		CreatedAt:    time.Now().Unix(),
	}

	go func() {
		query := `
			INSERT INTO audit_logs (id, tenant_id, operator_id, action, resource_type, resource_id, metadata, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`
		l.globalDB.Exec(query, entry.ID, entry.TenantID, entry.OperatorID, entry.Action, entry.ResourceType, entry.ResourceID, string(metaJSON), entry.CreatedAt)
	}()
}

// List returns the most recent audit entries for one tenant.
func (l *Logger) List(tenantID string, limit int) ([]*AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := l.globalDB.Query(`
		SELECT id, tenant_id, operator_id, action, resource_type, resource_id, metadata, created_at
		FROM audit_logs WHERE tenant_id = ? ORDER BY created_at DESC LIMIT ?
	`, tenantID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*AuditLog
	for rows.Next() {
		entry := &AuditLog{}
		var metaJSON string
		if err := rows.Scan(&entry.ID, &entry.TenantID, &entry.OperatorID, &entry.Action, &entry.ResourceType, &entry.ResourceID, &metaJSON, &entry.CreatedAt); err != nil {
			return nil, err
		}
		if metaJSON != "" {
			json.Unmarshal([]byte(metaJSON), &entry.Metadata)
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}
