package plexconfig

import (
	"database/sql"
	"encoding/json"
	"time"

	"plexconsole/internal/platform/models"
)

// Repository persists one tenant's plex configuration, message element
// overrides, and page parameter overrides in the tenant database.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// GetConfig loads the stored configuration. Returns (nil, nil) when the
// tenant has never been configured.
func (r *Repository) GetConfig() (*models.TenantPlexConfig, error) {
	var raw string
	query := "SELECT config FROM plex_config WHERE id = 1"
	err := r.db.QueryRow(query).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg models.TenantPlexConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig stores the configuration, replacing any previous version.
func (r *Repository) SaveConfig(cfg *models.TenantPlexConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO plex_config (id, config, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET config = excluded.config, updated_at = excluded.updated_at
	`
	_, err = r.db.Exec(query, string(raw), time.Now().Unix())
	return err
}

// GetMessageElements loads the saved element override set for one app and
// message type. Returns (nil, nil) when nothing was customized.
func (r *Repository) GetMessageElements(appID, messageType string) (map[string]models.MessageElement, error) {
	var raw string
	query := "SELECT elements FROM message_elements WHERE app_id = ? AND message_type = ?"
	err := r.db.QueryRow(query, appID, messageType).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var elements map[string]models.MessageElement
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return nil, err
	}
	return elements, nil
}

// ListMessageElements loads every saved override set for one app, keyed by
// message type.
func (r *Repository) ListMessageElements(appID string) (map[string]map[string]models.MessageElement, error) {
	query := "SELECT message_type, elements FROM message_elements WHERE app_id = ?"
	rows, err := r.db.Query(query, appID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]map[string]models.MessageElement{}
	for rows.Next() {
		var messageType, raw string
		if err := rows.Scan(&messageType, &raw); err != nil {
			return nil, err
		}
		var elements map[string]models.MessageElement
		if err := json.Unmarshal([]byte(raw), &elements); err != nil {
			return nil, err
		}
		out[messageType] = elements
	}
	return out, rows.Err()
}

// SaveMessageElements stores the element set for one app and message type.
func (r *Repository) SaveMessageElements(appID, messageType string, elements map[string]models.MessageElement) error {
	raw, err := json.Marshal(elements)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO message_elements (app_id, message_type, elements, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(app_id, message_type) DO UPDATE SET elements = excluded.elements, updated_at = excluded.updated_at
	`
	_, err = r.db.Exec(query, appID, messageType, string(raw), time.Now().Unix())
	return err
}

// DeleteMessageElements drops every override for one app. Used when the app
// is deleted.
func (r *Repository) DeleteMessageElements(appID string) error {
	_, err := r.db.Exec("DELETE FROM message_elements WHERE app_id = ?", appID)
	return err
}

// GetPageParameters loads the saved current values for one app, keyed by page
// type then parameter name. Returns (nil, nil) when nothing was customized.
func (r *Repository) GetPageParameters(appID string) (models.ParamsByPage, error) {
	var raw string
	query := "SELECT params FROM page_parameters WHERE app_id = ?"
	err := r.db.QueryRow(query, appID).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var params models.ParamsByPage
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return nil, err
	}
	return params, nil
}

// SavePageParameters stores the current values for one app.
func (r *Repository) SavePageParameters(appID string, params models.ParamsByPage) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO page_parameters (app_id, params, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(app_id) DO UPDATE SET params = excluded.params, updated_at = excluded.updated_at
	`
	_, err = r.db.Exec(query, appID, string(raw), time.Now().Unix())
	return err
}

// DeletePageParameters drops the saved values for one app.
func (r *Repository) DeletePageParameters(appID string) error {
	_, err := r.db.Exec("DELETE FROM page_parameters WHERE app_id = ?", appID)
	return err
}
