package items

import "context"

type StoreAPI interface {
	List(ctx context.Context, filter ListFilter) ([]Item, error)
	Get(ctx context.Context, id int64) (Item, error)
	Create(ctx context.Context, itemName string, stock int, unit string) (Item, error)
	Update(ctx context.Context, id int64, itemName string, stock int, unit string) (Item, error)
	Delete(ctx context.Context, id int64) error
	Sync(ctx context.Context, feed []SyncItem) (int, error)
}
