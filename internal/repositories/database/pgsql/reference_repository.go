package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agrm/agrm_backend/internal/apperrors"
	"github.com/agrm/agrm_backend/internal/core/domain"
	portsrepo "github.com/agrm/agrm_backend/internal/core/ports/repositories"
	"github.com/agrm/agrm_backend/internal/models"
	"github.com/agrm/agrm_backend/internal/utils/mapping"
)

// PgxReferenceRepository persists the lookup tables backing dropdowns. Small
// entities without a mapping pair are scanned straight into domain structs.
type PgxReferenceRepository struct {
	BaseRepository
}

func newPgxReferenceRepository(pool *pgxpool.Pool) portsrepo.ReferenceRepositoryFacade {
	return &PgxReferenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReferenceRepositoryFacade = (*PgxReferenceRepository)(nil)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// SaveBank inserts or updates a bank.
func (r *PgxReferenceRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)

	query := `
		INSERT INTO banks (bank_id, name, account_number, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (bank_id) DO UPDATE SET
			name = EXCLUDED.name,
			account_number = EXCLUDED.account_number,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		m.BankID, m.Name, m.AccountNumber, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("bank %s already exists: %w", m.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save bank %s: %w", m.BankID, err)
	}
	return nil
}

// DeleteBank removes a bank.
func (r *PgxReferenceRepository) DeleteBank(ctx context.Context, bankID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM banks WHERE bank_id = $1;`, bankID)
	if err != nil {
		return fmt.Errorf("failed to delete bank %s: %w", bankID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListBanks retrieves all banks ordered by name.
func (r *PgxReferenceRepository) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	query := `
		SELECT bank_id, name, account_number, created_at, created_by, last_updated_at, last_updated_by
		FROM banks
		ORDER BY name;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query banks: %w", err)
	}

	modelBanks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Bank, error) {
		var m models.Bank
		err := row.Scan(&m.BankID, &m.Name, &m.AccountNumber, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan banks: %w", err)
	}

	banks := make([]domain.Bank, 0, len(modelBanks))
	for _, m := range modelBanks {
		banks = append(banks, mapping.ToDomainBank(m))
	}
	return banks, nil
}

// SavePaymentMode inserts or updates a payment mode.
func (r *PgxReferenceRepository) SavePaymentMode(ctx context.Context, mode domain.PaymentMode) error {
	query := `
		INSERT INTO payment_modes (code, label, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (code) DO UPDATE SET
			label = EXCLUDED.label,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		mode.Code, mode.Label, mode.CreatedAt, mode.CreatedBy, mode.LastUpdatedAt, mode.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment mode %s: %w", mode.Code, err)
	}
	return nil
}

// ListPaymentModes retrieves all payment modes ordered by code.
func (r *PgxReferenceRepository) ListPaymentModes(ctx context.Context) ([]domain.PaymentMode, error) {
	query := `
		SELECT code, label, created_at, created_by, last_updated_at, last_updated_by
		FROM payment_modes
		ORDER BY code;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment modes: %w", err)
	}

	modes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PaymentMode, error) {
		var d domain.PaymentMode
		err := row.Scan(&d.Code, &d.Label, &d.CreatedAt, &d.CreatedBy, &d.LastUpdatedAt, &d.LastUpdatedBy)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payment modes: %w", err)
	}
	return modes, nil
}

// SaveStore inserts or updates a magasin.
func (r *PgxReferenceRepository) SaveStore(ctx context.Context, store domain.Store) error {
	query := `
		INSERT INTO stores (store_id, name, service, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (store_id) DO UPDATE SET
			name = EXCLUDED.name,
			service = EXCLUDED.service,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		store.StoreID, store.Name, store.Service, store.CreatedAt, store.CreatedBy, store.LastUpdatedAt, store.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save store %s: %w", store.StoreID, err)
	}
	return nil
}

// ListStores retrieves all magasins ordered by name.
func (r *PgxReferenceRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	query := `
		SELECT store_id, name, service, created_at, created_by, last_updated_at, last_updated_by
		FROM stores
		ORDER BY name;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}

	stores, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Store, error) {
		var d domain.Store
		err := row.Scan(&d.StoreID, &d.Name, &d.Service, &d.CreatedAt, &d.CreatedBy, &d.LastUpdatedAt, &d.LastUpdatedBy)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan stores: %w", err)
	}
	return stores, nil
}

// SaveArticle inserts or updates an article.
func (r *PgxReferenceRepository) SaveArticle(ctx context.Context, article domain.Article) error {
	m := mapping.ToModelArticle(article)

	query := `
		INSERT INTO articles (article_id, code, designation, unit, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (article_id) DO UPDATE SET
			code = EXCLUDED.code,
			designation = EXCLUDED.designation,
			unit = EXCLUDED.unit,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		m.ArticleID, m.Code, m.Designation, m.Unit, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("article code %s already used: %w", m.Code, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save article %s: %w", m.ArticleID, err)
	}
	return nil
}

// FindArticleByID retrieves one article.
func (r *PgxReferenceRepository) FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	query := `
		SELECT article_id, code, designation, unit, created_at, created_by, last_updated_at, last_updated_by
		FROM articles
		WHERE article_id = $1;
	`

	var m models.Article
	err := r.Pool.QueryRow(ctx, query, articleID).Scan(
		&m.ArticleID, &m.Code, &m.Designation, &m.Unit, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find article %s: %w", articleID, err)
	}

	d := mapping.ToDomainArticle(m)
	return &d, nil
}

// ListArticles retrieves all articles ordered by code.
func (r *PgxReferenceRepository) ListArticles(ctx context.Context) ([]domain.Article, error) {
	query := `
		SELECT article_id, code, designation, unit, created_at, created_by, last_updated_at, last_updated_by
		FROM articles
		ORDER BY code;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	modelArticles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Article, error) {
		var m models.Article
		err := row.Scan(&m.ArticleID, &m.Code, &m.Designation, &m.Unit, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan articles: %w", err)
	}

	articles := make([]domain.Article, 0, len(modelArticles))
	for _, m := range modelArticles {
		articles = append(articles, mapping.ToDomainArticle(m))
	}
	return articles, nil
}

// SaveClient inserts or updates a client.
func (r *PgxReferenceRepository) SaveClient(ctx context.Context, client domain.Client) error {
	query := `
		INSERT INTO clients (client_id, code, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (client_id) DO UPDATE SET
			code = EXCLUDED.code,
			name = EXCLUDED.name,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		client.ClientID, client.Code, client.Name, client.CreatedAt, client.CreatedBy, client.LastUpdatedAt, client.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("client code %s already used: %w", client.Code, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save client %s: %w", client.ClientID, err)
	}
	return nil
}

// ListClients retrieves all clients ordered by name.
func (r *PgxReferenceRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := `
		SELECT client_id, code, name, created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		ORDER BY name;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}

	clients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Client, error) {
		var d domain.Client
		err := row.Scan(&d.ClientID, &d.Code, &d.Name, &d.CreatedAt, &d.CreatedBy, &d.LastUpdatedAt, &d.LastUpdatedBy)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clients: %w", err)
	}
	return clients, nil
}

// SaveEmployee inserts or updates an employee.
func (r *PgxReferenceRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)

	query := `
		INSERT INTO employees (employee_id, code, first_name, last_name, service, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (employee_id) DO UPDATE SET
			code = EXCLUDED.code,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			service = EXCLUDED.service,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.Code, m.FirstName, m.LastName, m.Service, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("employee matricule %s already used: %w", m.Code, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save employee %s: %w", m.EmployeeID, err)
	}
	return nil
}

// FindEmployeeByCode looks up an employee by matricule.
func (r *PgxReferenceRepository) FindEmployeeByCode(ctx context.Context, code string) (*domain.Employee, error) {
	query := `
		SELECT employee_id, code, first_name, last_name, service, created_at, created_by, last_updated_at, last_updated_by
		FROM employees
		WHERE code = $1;
	`

	var m models.Employee
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&m.EmployeeID, &m.Code, &m.FirstName, &m.LastName, &m.Service, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by code %s: %w", code, err)
	}

	d := mapping.ToDomainEmployee(m)
	return &d, nil
}

// ListEmployees retrieves all employees ordered by matricule.
func (r *PgxReferenceRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `
		SELECT employee_id, code, first_name, last_name, service, created_at, created_by, last_updated_at, last_updated_by
		FROM employees
		ORDER BY code;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}

	modelEmployees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Employee, error) {
		var m models.Employee
		err := row.Scan(&m.EmployeeID, &m.Code, &m.FirstName, &m.LastName, &m.Service, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}

	employees := make([]domain.Employee, 0, len(modelEmployees))
	for _, m := range modelEmployees {
		employees = append(employees, mapping.ToDomainEmployee(m))
	}
	return employees, nil
}

// SaveVehicle inserts or updates an engin.
func (r *PgxReferenceRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (vehicle_id, plate, designation, meter_type, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (vehicle_id) DO UPDATE SET
			plate = EXCLUDED.plate,
			designation = EXCLUDED.designation,
			meter_type = EXCLUDED.meter_type,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		vehicle.VehicleID, vehicle.Plate, vehicle.Designation, vehicle.MeterType,
		vehicle.CreatedAt, vehicle.CreatedBy, vehicle.LastUpdatedAt, vehicle.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("vehicle plate %s already used: %w", vehicle.Plate, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save vehicle %s: %w", vehicle.VehicleID, err)
	}
	return nil
}

// ListVehicles retrieves all engins ordered by plate.
func (r *PgxReferenceRepository) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	query := `
		SELECT vehicle_id, plate, designation, meter_type, created_at, created_by, last_updated_at, last_updated_by
		FROM vehicles
		ORDER BY plate;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}

	vehicles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Vehicle, error) {
		var d domain.Vehicle
		err := row.Scan(&d.VehicleID, &d.Plate, &d.Designation, &d.MeterType, &d.CreatedAt, &d.CreatedBy, &d.LastUpdatedAt, &d.LastUpdatedBy)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan vehicles: %w", err)
	}
	return vehicles, nil
}
