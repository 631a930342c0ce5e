package repositories

import (
	"database/sql"

	"plexconsole/internal/platform/models"
)

type TenantRepository struct {
	db *sql.DB
}

func NewTenantRepository(db *sql.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) Create(tenant *models.Tenant) error {
	_, err := r.db.Exec(`
		INSERT INTO tenants (id, company_id, name, tenant_url, db_file_path, state, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, tenant.ID, tenant.CompanyID, tenant.Name, tenant.TenantURL, tenant.DBFilePath, tenant.State, tenant.CreatedAt, tenant.UpdatedAt)
	return err
}

func (r *TenantRepository) GetByID(id string) (*models.Tenant, error) {
	tenant := &models.Tenant{}
	err := r.db.QueryRow(`
		SELECT id, company_id, name, tenant_url, db_file_path, state, created_at, updated_at, deleted_at
		FROM tenants WHERE id = ? AND deleted_at IS NULL
	`, id).Scan(&tenant.ID, &tenant.CompanyID, &tenant.Name, &tenant.TenantURL, &tenant.DBFilePath, &tenant.State, &tenant.CreatedAt, &tenant.UpdatedAt, &tenant.DeletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return tenant, nil
}

func (r *TenantRepository) ListByCompany(companyID string) ([]*models.Tenant, error) {
	rows, err := r.db.Query(`
		SELECT id, company_id, name, tenant_url, db_file_path, state, created_at, updated_at, deleted_at
		FROM tenants WHERE company_id = ? AND deleted_at IS NULL ORDER BY created_at
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []*models.Tenant
	for rows.Next() {
		tenant := &models.Tenant{}
		if err := rows.Scan(&tenant.ID, &tenant.CompanyID, &tenant.Name, &tenant.TenantURL, &tenant.DBFilePath, &tenant.State, &tenant.CreatedAt, &tenant.UpdatedAt, &tenant.DeletedAt); err != nil {
			return nil, err
		}
		tenants = append(tenants, tenant)
	}
	return tenants, rows.Err()
}

func (r *TenantRepository) UpdateState(id, state string, timestamp int64) error {
	_, err := r.db.Exec(`UPDATE tenants SET state = ?, updated_at = ? WHERE id = ?`, state, timestamp, id)
	return err
}

type OperatorRepository struct {
	db *sql.DB
}

func NewOperatorRepository(db *sql.DB) *OperatorRepository {
	return &OperatorRepository{db: db}
}

func (r *OperatorRepository) Create(op *models.Operator) error {
	_, err := r.db.Exec(`
		INSERT INTO operators (id, company_id, email, password_hash, full_name, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, op.ID, op.CompanyID, op.Email, op.PasswordHash, op.FullName, op.Role, op.CreatedAt, op.UpdatedAt)
	return err
}

func (r *OperatorRepository) GetByID(id string) (*models.Operator, error) {
	op := &models.Operator{}
	err := r.db.QueryRow(`
		SELECT id, company_id, email, password_hash, full_name, role, last_login_at, created_at, updated_at, deleted_at
		FROM operators WHERE id = ? AND deleted_at IS NULL
	`, id).Scan(&op.ID, &op.CompanyID, &op.Email, &op.PasswordHash, &op.FullName, &op.Role, &op.LastLoginAt, &op.CreatedAt, &op.UpdatedAt, &op.DeletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return op, nil
}

func (r *OperatorRepository) GetByEmail(email string) (*models.Operator, error) {
	op := &models.Operator{}
	err := r.db.QueryRow(`
		SELECT id, company_id, email, password_hash, full_name, role, last_login_at, created_at, updated_at, deleted_at
		FROM operators WHERE email = ? AND deleted_at IS NULL
	`, email).Scan(&op.ID, &op.CompanyID, &op.Email, &op.PasswordHash, &op.FullName, &op.Role, &op.LastLoginAt, &op.CreatedAt, &op.UpdatedAt, &op.DeletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return op, nil
}

func (r *OperatorRepository) UpdateLastLogin(operatorID string, timestamp int64) error {
	_, err := r.db.Exec(`UPDATE operators SET last_login_at = ? WHERE id = ?`, timestamp, operatorID)
	return err
}
