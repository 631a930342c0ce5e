package plexconfig

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"plexconsole/internal/platform/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}

	query := `
	CREATE TABLE plex_config (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		config TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE TABLE message_elements (
		app_id TEXT NOT NULL,
		message_type TEXT NOT NULL,
		elements TEXT NOT NULL,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY (app_id, message_type)
	);
	CREATE TABLE page_parameters (
		app_id TEXT PRIMARY KEY,
		params TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	if _, err := db.Exec(query); err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}
	return db
}

func TestRepository_ConfigRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	got, err := repo.GetConfig()
	if err != nil {
		t.Fatalf("GetConfig failed: %v", err)
	}
	if got != nil {
		t.Fatal("Expected nil config before first save")
	}

	cfg := testConfig()
	if err := repo.SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got, err = repo.GetConfig()
	if err != nil {
		t.Fatalf("GetConfig failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected config after save")
	}
	if got.TenantConfig.PlexMap.Policy.ActiveProviderID != "prov1" {
		t.Errorf("Unexpected active provider: %s", got.TenantConfig.PlexMap.Policy.ActiveProviderID)
	}
	if len(got.TenantConfig.PlexMap.Providers) != 2 {
		t.Errorf("Expected 2 providers, got %d", len(got.TenantConfig.PlexMap.Providers))
	}
}

func TestRepository_ConfigUpsert(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	cfg := testConfig()
	if err := repo.SaveConfig(cfg); err != nil {
		t.Fatalf("First save failed: %v", err)
	}

	cfg.TenantConfig.DisableSignUps = true
	if err := repo.SaveConfig(cfg); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	got, err := repo.GetConfig()
	if err != nil {
		t.Fatalf("GetConfig failed: %v", err)
	}
	if !got.TenantConfig.DisableSignUps {
		t.Error("Second save did not overwrite the first")
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM plex_config").Scan(&count); err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected a single config row, got %d", count)
	}
}

func TestRepository_MessageElements(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	got, err := repo.GetMessageElements("app1", models.MessageTypeEmailInvite)
	if err != nil {
		t.Fatalf("GetMessageElements failed: %v", err)
	}
	if got != nil {
		t.Fatal("Expected nil before first save")
	}

	elements := map[string]models.MessageElement{
		ElementSubject: {Type: ElementSubject, DefaultValue: "def", CustomValue: "custom"},
	}
	if err := repo.SaveMessageElements("app1", models.MessageTypeEmailInvite, elements); err != nil {
		t.Fatalf("SaveMessageElements failed: %v", err)
	}
	if err := repo.SaveMessageElements("app1", models.MessageTypeEmailVerify, elements); err != nil {
		t.Fatalf("SaveMessageElements failed: %v", err)
	}

	all, err := repo.ListMessageElements("app1")
	if err != nil {
		t.Fatalf("ListMessageElements failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 message types, got %d", len(all))
	}
	if all[models.MessageTypeEmailInvite][ElementSubject].CustomValue != "custom" {
		t.Error("Custom value lost in round trip")
	}

	if err := repo.DeleteMessageElements("app1"); err != nil {
		t.Fatalf("DeleteMessageElements failed: %v", err)
	}
	all, err = repo.ListMessageElements("app1")
	if err != nil {
		t.Fatalf("ListMessageElements failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("Expected no elements after delete, got %d", len(all))
	}
}

func TestRepository_PageParameters(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)

	got, err := repo.GetPageParameters("app1")
	if err != nil {
		t.Fatalf("GetPageParameters failed: %v", err)
	}
	if got != nil {
		t.Fatal("Expected nil before first save")
	}

	params := models.ParamsByPage{
		PageTypeLogin: {ParamHeadingText: "Welcome"},
	}
	if err := repo.SavePageParameters("app1", params); err != nil {
		t.Fatalf("SavePageParameters failed: %v", err)
	}

	got, err = repo.GetPageParameters("app1")
	if err != nil {
		t.Fatalf("GetPageParameters failed: %v", err)
	}
	if got[PageTypeLogin][ParamHeadingText] != "Welcome" {
		t.Error("Value lost in round trip")
	}

	if err := repo.DeletePageParameters("app1"); err != nil {
		t.Fatalf("DeletePageParameters failed: %v", err)
	}
	got, err = repo.GetPageParameters("app1")
	if err != nil {
		t.Fatalf("GetPageParameters failed: %v", err)
	}
	if got != nil {
		t.Error("Expected nil after delete")
	}
}
