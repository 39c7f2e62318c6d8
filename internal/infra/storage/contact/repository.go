package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-DentalBooking/internal/domain"
	"github.com/m04kA/SMC-DentalBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-DentalBooking/pkg/psqlbuilder"
)

var contactColumns = []string{"id", "name", "email", "phone", "message", "status", "created_at"}

// Repository репозиторий обращений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория обращений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет обращение и присваивает ему ID
func (r *Repository) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	id := uuid.NewString()

	query, args, err := psqlbuilder.Insert("contacts").
		Columns("id", "name", "email", "phone", "message", "status").
		Values(id, contact.Name, contact.Email, contact.Phone, contact.Message, contact.Status).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	contact.ID = id
	contact.CreatedAt = createdAt.Time

	return contact, nil
}

// GetByID получает обращение по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrContactNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(contactColumns...).
		From("contacts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	contact, err := scanContact(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrContactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan contact: %v", ErrScanRow, err)
	}

	return contact, nil
}

// GetAll получает обращения, новые первыми. status == nil - все статусы
func (r *Repository) GetAll(ctx context.Context, status *domain.ContactStatus) ([]*domain.Contact, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(contactColumns...).
		From("contacts")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return contacts, nil
}

// UpdateStatus помечает обращение прочитанным/непрочитанным
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrContactNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("contacts").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// Delete удаляет обращение безвозвратно
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrContactNotFound
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("contacts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrContactNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var contact domain.Contact
	var createdAt sql.NullTime

	err := row.Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&contact.Phone,
		&contact.Message,
		&contact.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	contact.CreatedAt = createdAt.Time
	return &contact, nil
}
