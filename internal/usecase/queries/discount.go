package queries

import (
	"context"
)

type DiscountQueries interface {
	List(ctx context.Context) ([]*DiscountView, error)
}

type DiscountReadStore interface {
	FindAll(ctx context.Context) ([]*DiscountView, error)
}

type discountQueriesImpl struct {
	readStore DiscountReadStore
}

func NewDiscountQueries(readStore DiscountReadStore) DiscountQueries {
	return &discountQueriesImpl{readStore: readStore}
}

func (q *discountQueriesImpl) List(ctx context.Context) ([]*DiscountView, error) {
	return q.readStore.FindAll(ctx)
}
