package readstore

import (
	"context"

	"roomstay/internal/infra"
	"roomstay/internal/infra/db"
	"roomstay/internal/usecase/queries"
)

type DiscountReadStore struct {
	dbtx db.DBTX
}

func NewDiscountReadStore(dbtx db.DBTX) *DiscountReadStore {
	return &DiscountReadStore{dbtx: dbtx}
}

func (r *DiscountReadStore) FindAll(ctx context.Context) ([]*queries.DiscountView, error) {
	const query = `
		SELECT id, title, percent_off, description, valid_until
		FROM discounts
		ORDER BY percent_off DESC, id
	`
	rows, err := r.dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discounts", err)
	}
	defer rows.Close()

	views := []*queries.DiscountView{}
	for rows.Next() {
		var view queries.DiscountView
		if err := rows.Scan(&view.ID, &view.Title, &view.PercentOff, &view.Description, &view.ValidUntil); err != nil {
			return nil, infra.WrapRepoErr("failed to scan discount row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list discounts", err)
	}
	return views, nil
}
