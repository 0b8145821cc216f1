// store/demands.go - Demand and service type operations
package store

import (
	"database/sql"
	"strings"

	"github.com/lucasmtn/obratrack/internal/models"
)

// demandScanner for DRY row scanning
type demandScanner struct {
	dest *models.Demand
}

func (s demandScanner) fields() []any {
	return []any{
		&s.dest.ID, &s.dest.Block, &s.dest.Apartment, &s.dest.ServiceTypeID,
		&s.dest.Description, &s.dest.Status, &s.dest.PhotoPath, &s.dest.CreatedAt,
	}
}

func (s demandScanner) Scan(rows *sql.Rows) error {
	var resolved sql.NullTime
	if err := rows.Scan(append(s.fields(), &resolved)...); err != nil {
		return err
	}
	s.setResolved(resolved)
	return nil
}

func (s demandScanner) ScanRow(row *sql.Row) error {
	var resolved sql.NullTime
	if err := row.Scan(append(s.fields(), &resolved)...); err != nil {
		return err
	}
	s.setResolved(resolved)
	return nil
}

func (s demandScanner) setResolved(resolved sql.NullTime) {
	if resolved.Valid {
		t := resolved.Time
		s.dest.ResolvedAt = &t
	}
}

// SeedServiceTypes inserts any missing service type names
func (db *DB) SeedServiceTypes(names []string) error {
	for _, name := range names {
		if _, err := db.Exec(qServiceTypeSeed, name); err != nil {
			return err
		}
	}
	return nil
}

// ListServiceTypes returns all service types ordered by name
func (db *DB) ListServiceTypes() ([]models.ServiceType, error) {
	rows, err := db.Query(qServiceTypeAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []models.ServiceType
	for rows.Next() {
		var st models.ServiceType
		if err := rows.Scan(&st.ID, &st.Name); err != nil {
			return nil, err
		}
		types = append(types, st)
	}
	return types, rows.Err()
}

// GetServiceType fetches one service type by ID
func (db *DB) GetServiceType(id int64) (*models.ServiceType, error) {
	st := &models.ServiceType{}
	err := db.QueryRow(qServiceTypeByID, id).Scan(&st.ID, &st.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return st, err
}

// CreateDemand inserts a new punch-list item
func (db *DB) CreateDemand(d *models.Demand) error {
	return db.QueryRow(qDemandInsert, d.Block, d.Apartment, d.ServiceTypeID,
		d.Description, d.PhotoPath).Scan(&d.ID, &d.Status, &d.CreatedAt)
}

// GetDemand fetches a demand by ID
func (db *DB) GetDemand(id int64) (*models.Demand, error) {
	d := &models.Demand{}
	err := demandScanner{d}.ScanRow(db.QueryRow(qDemandByID, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return d, err
}

// ListDemands returns demands matching the filter, newest first.
// Zero-valued filter fields are ignored.
func (db *DB) ListDemands(f models.DemandFilter) ([]models.Demand, error) {
	query := qDemandsBase
	var conds []string
	var args []any

	if f.Block != "" {
		conds = append(conds, "block = ?")
		args = append(args, f.Block)
	}
	if f.Apartment != "" {
		conds = append(conds, "apartment = ?")
		args = append(args, f.Apartment)
	}
	if f.ServiceTypeID != 0 {
		conds = append(conds, "service_type_id = ?")
		args = append(args, f.ServiceTypeID)
	}
	if f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, f.Status)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAll(rows, func() *models.Demand { return &models.Demand{} },
		func(d *models.Demand) scanner { return demandScanner{d} })
}

// ResolveDemand marks a pending demand resolved, stamping resolved_at
func (db *DB) ResolveDemand(id int64) error {
	_, err := db.Exec(qDemandResolve, id)
	return err
}

// ReopenDemand puts a resolved demand back to pending
func (db *DB) ReopenDemand(id int64) error {
	_, err := db.Exec(qDemandReopen, id)
	return err
}

// SetDemandPhoto records the stored photo path for a demand
func (db *DB) SetDemandPhoto(id int64, path string) error {
	_, err := db.Exec(qDemandSetPhoto, path, id)
	return err
}

// DeleteDemand removes a demand
func (db *DB) DeleteDemand(id int64) error {
	_, err := db.Exec(qDemandDelete, id)
	return err
}
