package repository

import (
	"context"

	"cleanspace/internal/domain/schedule"
	"cleanspace/internal/domain/workspace"
	"cleanspace/internal/infra"
	"cleanspace/internal/infra/db"
	"cleanspace/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertWorkspace = `
INSERT INTO workspaces (name, opens_at, closes_at, capacity)
VALUES ($1, $2, $3, $4)
RETURNING id`

	insertWorkspaceProperties = `
INSERT INTO workspace_properties (workspace_id, position, key, value)
SELECT $1, p.position, p.key, p.value
FROM unnest($2::int[], $3::text[], $4::text[]) AS p(position, key, value)`

	selectWorkspaceColumns = `SELECT id, name, opens_at, closes_at, capacity FROM workspaces`

	selectWorkspaceByName = selectWorkspaceColumns + ` WHERE lower(name) = lower($1)`

	selectAllWorkspaces = selectWorkspaceColumns + ` ORDER BY seq`

	selectPropertiesByWorkspace = `
SELECT workspace_id, key, value FROM workspace_properties
WHERE workspace_id = ANY($1::uuid[])
ORDER BY workspace_id, position`
)

type WorkspaceRepository struct {
	db db.DBTX
}

func NewWorkspaceRepository(dbtx db.DBTX) *WorkspaceRepository {
	return &WorkspaceRepository{db: dbtx}
}

func (r *WorkspaceRepository) Save(ctx context.Context, w *workspace.Workspace) (*workspace.Workspace, error) {
	hours := w.OpeningHours()

	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertWorkspace,
		w.Name(),
		pgconv.TimeOfDayToPgtype(hours.Open()),
		pgconv.TimeOfDayToPgtype(hours.Close()),
		w.Capacity(),
	).Scan(&id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create workspace", err)
	}

	props := w.Properties()
	if len(props) > 0 {
		positions := make([]int32, len(props))
		keys := make([]string, len(props))
		values := make([]string, len(props))
		for i, p := range props {
			positions[i] = int32(i) // #nosec G115 -- property lists are small
			keys[i] = p.Key
			values[i] = p.Value
		}
		if _, err := r.db.Exec(ctx, insertWorkspaceProperties, id, positions, keys, values); err != nil {
			return nil, infra.WrapRepoErr("failed to create workspace properties", err)
		}
	}

	return w.WithID(id), nil
}

func (r *WorkspaceRepository) FindByName(ctx context.Context, name string) (*workspace.Workspace, error) {
	ws, err := r.query(ctx, selectWorkspaceByName, name)
	if err != nil {
		return nil, err
	}
	if len(ws) == 0 {
		return nil, infra.NotFound("workspace not found")
	}
	return ws[0], nil
}

func (r *WorkspaceRepository) FindAll(ctx context.Context) ([]*workspace.Workspace, error) {
	return r.query(ctx, selectAllWorkspaces)
}

type workspaceRow struct {
	ID       uuid.UUID
	Name     string
	OpensAt  pgtype.Time
	ClosesAt pgtype.Time
	Capacity int32
}

func (r *WorkspaceRepository) query(ctx context.Context, sql string, args ...any) ([]*workspace.Workspace, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query workspaces", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByPos[workspaceRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan workspaces", err)
	}
	if len(records) == 0 {
		return []*workspace.Workspace{}, nil
	}

	ids := make([]uuid.UUID, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}
	props, err := r.properties(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*workspace.Workspace, 0, len(records))
	for _, rec := range records {
		w, err := toWorkspace(rec, props[rec.ID])
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert workspace row", err)
		}
		out = append(out, w)
	}
	return out, nil
}

func (r *WorkspaceRepository) properties(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]workspace.Properties, error) {
	rows, err := r.db.Query(ctx, selectPropertiesByWorkspace, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query workspace properties", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]workspace.Properties, len(ids))
	for rows.Next() {
		var (
			id         uuid.UUID
			key, value string
		)
		if err := rows.Scan(&id, &key, &value); err != nil {
			return nil, infra.WrapRepoErr("failed to scan workspace property", err)
		}
		out[id] = append(out[id], workspace.Property{Key: key, Value: value})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate workspace properties", err)
	}
	return out, nil
}

func toWorkspace(rec workspaceRow, props workspace.Properties) (*workspace.Workspace, error) {
	opensAt, err := pgconv.TimeOfDayFromPgtype(rec.OpensAt)
	if err != nil {
		return nil, err
	}
	closesAt, err := pgconv.TimeOfDayFromPgtype(rec.ClosesAt)
	if err != nil {
		return nil, err
	}
	return workspace.Reconstruct(
		rec.ID,
		rec.Name,
		schedule.NewOpeningHours(opensAt, closesAt),
		int(rec.Capacity),
		props,
	), nil
}
