package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/northbeamhq/portal/internal/portal/domain"
	"github.com/northbeamhq/portal/internal/portal/store"
	"github.com/northbeamhq/portal/internal/portal/store/drivers/sqlite/gen"
	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	// Execute the function
	if err := fn(tx); err != nil {
		return err // rollback happens in defer
	}

	// Commit on success
	return tx.Commit()
}

func (s *Store) Invitations() store.Invitations     { return &invitationsRepo{q: s.q} }
func (s *Store) Organizations() store.Organizations { return &organizationsRepo{q: s.q} }
func (s *Store) Projects() store.Projects           { return &projectsRepo{q: s.q} }
func (s *Store) Users() store.Users                 { return &usersRepo{q: s.q} }
func (s *Store) Accounts() store.Accounts           { return &accountsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapAlreadyExists translates sqlite unique constraint failures into
// store.ErrAlreadyExists. modernc.org/sqlite doesn't export a typed error for
// this, so we match the message.
func mapAlreadyExists(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapNullStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

func mapOptionalString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

func mapOptionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func mapInvitation(row gen.Invitation) (domain.Invitation, error) {
	var setup *domain.OrganizationSetupData
	if row.Setup.Valid {
		setup = &domain.OrganizationSetupData{}
		if err := json.Unmarshal([]byte(row.Setup.String), setup); err != nil {
			return domain.Invitation{}, err
		}
	}

	return domain.Invitation{
		ID:                 row.ID,
		Email:              row.Email,
		Name:               row.Name,
		TokenHash:          row.TokenHash,
		OrganizationID:     mapNullStringPtr(row.OrganizationID),
		ProjectID:          mapNullStringPtr(row.ProjectID),
		Setup:              setup,
		Role:               domain.Role(row.Role),
		AccountType:        domain.AccountType(row.AccountType),
		Status:             domain.InvitationStatus(row.Status),
		Demo:               row.Demo,
		InvitedBy:          row.InvitedBy,
		Message:            row.Message,
		SkipDefaultProject: row.SkipDefaultProject,
		ExpiresAt:          row.ExpiresAt,
		AcceptedAt:         mapNullTimePtr(row.AcceptedAt),
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}, nil
}

func mapSetupNull(setup *domain.OrganizationSetupData) (sql.NullString, error) {
	if setup == nil {
		return sql.NullString{Valid: false}, nil
	}
	raw, err := json.Marshal(setup)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}

func mapOrganization(row gen.Organization) (domain.Organization, error) {
	var settings domain.OrganizationSettings
	if row.Settings != "" {
		if err := json.Unmarshal([]byte(row.Settings), &settings); err != nil {
			return domain.Organization{}, err
		}
	}

	return domain.Organization{
		ID:           row.ID,
		Name:         row.Name,
		Slug:         row.Slug,
		BusinessType: row.BusinessType,
		ContactName:  row.ContactName,
		ContactEmail: row.ContactEmail,
		Status:       domain.OrganizationStatus(row.Status),
		Settings:     settings,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}

func mapProject(row gen.Project) domain.Project {
	return domain.Project{
		ID:             row.ID,
		OrganizationID: mapNullStringPtr(row.OrganizationID),
		Name:           row.Name,
		ClientName:     row.ClientName,
		Status:         domain.ProjectStatus(row.Status),
		StartDate:      mapNullTimePtr(row.StartDate),
		EndDate:        mapNullTimePtr(row.EndDate),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:             row.ID,
		Email:          row.Email,
		Name:           row.Name,
		Role:           domain.Role(row.Role),
		AccountType:    domain.AccountType(row.AccountType),
		OrganizationID: mapNullStringPtr(row.OrganizationID),
		EmailVerified:  row.EmailVerified,
		Demo:           row.Demo,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
