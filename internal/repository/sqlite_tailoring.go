package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/scaptail/scaptail/internal/db"
	"github.com/scaptail/scaptail/internal/xccdf"
)

// ErrNotFound is returned when a requested profile is not stored.
var ErrNotFound = errors.New("tailoring profile not found")

// SQLiteTailoringRepo implements TailoringRepo on the local SQLite store.
type SQLiteTailoringRepo struct {
	db  *sql.DB
	uow db.UnitOfWork
	now func() time.Time
}

// NewSQLiteTailoringRepo creates a repository over database.
func NewSQLiteTailoringRepo(database *sql.DB) *SQLiteTailoringRepo {
	return &SQLiteTailoringRepo{
		db:  database,
		uow: db.NewSQLiteUnitOfWork(database),
		now: time.Now,
	}
}

func (r *SQLiteTailoringRepo) Save(ctx context.Context, benchmarkID string, profile *xccdf.Profile) error {
	now := r.now().UTC().Format(time.RFC3339)

	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO tailoring_profiles (id, benchmark_id, title, description, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
				benchmark_id = excluded.benchmark_id,
				title        = excluded.title,
				description  = excluded.description,
				updated_at   = excluded.updated_at`,
			profile.ID, benchmarkID, profile.Title(), profile.Description(), now, now)
		if err != nil {
			return fmt.Errorf("upserting profile: %w", err)
		}

		// Override rows are replaced wholesale: the in-memory overlay
		// lists are append-only with last-wins lookup, so only the
		// effective entry per id is persisted.
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM profile_selects WHERE profile_id = ?`, profile.ID); err != nil {
			return fmt.Errorf("clearing selects: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM profile_setvalues WHERE profile_id = ?`, profile.ID); err != nil {
			return fmt.Errorf("clearing setvalues: %w", err)
		}

		for _, itemID := range selectOrder(profile) {
			sel, _ := profile.SelectByID(itemID)
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO profile_selects (profile_id, item_id, selected) VALUES (?, ?, ?)`,
				profile.ID, itemID, boolToInt(sel.Selected)); err != nil {
				return fmt.Errorf("inserting select for %s: %w", itemID, err)
			}
		}

		for _, valueID := range setValueOrder(profile) {
			sv, _ := profile.SetValueByID(valueID)
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO profile_setvalues (profile_id, value_id, value) VALUES (?, ?, ?)`,
				profile.ID, valueID, sv.Value); err != nil {
				return fmt.Errorf("inserting setvalue for %s: %w", valueID, err)
			}
		}

		return nil
	})
}

func (r *SQLiteTailoringRepo) Load(ctx context.Context, id string) (*xccdf.Profile, error) {
	var title, description string
	err := r.db.QueryRowContext(ctx,
		`SELECT title, description FROM tailoring_profiles WHERE id = ?`, id,
	).Scan(&title, &description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile %s: %w", id, err)
	}

	profile := &xccdf.Profile{
		ID:           id,
		Titles:       []xccdf.TextEntry{{Lang: xccdf.DefaultLang, Text: title}},
		Descriptions: []xccdf.TextEntry{{Lang: xccdf.DefaultLang, Text: description}},
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT item_id, selected FROM profile_selects WHERE profile_id = ? ORDER BY item_id`, id)
	if err != nil {
		return nil, fmt.Errorf("loading selects: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var itemID string
		var selected int
		if err := rows.Scan(&itemID, &selected); err != nil {
			return nil, fmt.Errorf("scanning select: %w", err)
		}
		profile.AddSelect(itemID, selected != 0)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating selects: %w", err)
	}

	svRows, err := r.db.QueryContext(ctx,
		`SELECT value_id, value FROM profile_setvalues WHERE profile_id = ? ORDER BY value_id`, id)
	if err != nil {
		return nil, fmt.Errorf("loading setvalues: %w", err)
	}
	defer svRows.Close()
	for svRows.Next() {
		var valueID, value string
		if err := svRows.Scan(&valueID, &value); err != nil {
			return nil, fmt.Errorf("scanning setvalue: %w", err)
		}
		profile.AddSetValue(valueID, value)
	}
	if err := svRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating setvalues: %w", err)
	}

	return profile, nil
}

func (r *SQLiteTailoringRepo) List(ctx context.Context) ([]StoredProfile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, benchmark_id, title, description, created_at, updated_at
		 FROM tailoring_profiles ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []StoredProfile
	for rows.Next() {
		var p StoredProfile
		var created, updated string
		if err := rows.Scan(&p.ID, &p.BenchmarkID, &p.Title, &p.Description, &created, &updated); err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339, created)
		p.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}
	return profiles, nil
}

func (r *SQLiteTailoringRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM tailoring_profiles WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting profile %s: %w", id, err)
	}
	return nil
}

func (r *SQLiteTailoringRepo) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM tailoring_profiles WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking profile %s: %w", id, err)
	}
	return true, nil
}

// selectOrder returns each overridden item id once, in first-seen order.
func selectOrder(profile *xccdf.Profile) []string {
	seen := make(map[string]bool)
	var order []string
	for _, sel := range profile.Selects {
		if !seen[sel.ItemID] {
			seen[sel.ItemID] = true
			order = append(order, sel.ItemID)
		}
	}
	return order
}

// setValueOrder returns each overridden value id once, in first-seen order.
func setValueOrder(profile *xccdf.Profile) []string {
	seen := make(map[string]bool)
	var order []string
	for _, sv := range profile.SetValues {
		if !seen[sv.ValueID] {
			seen[sv.ValueID] = true
			order = append(order, sv.ValueID)
		}
	}
	return order
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
