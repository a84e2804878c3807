package leave

import "context"

type StoreAPI interface {
	List(ctx context.Context, filter Filter) ([]Leave, error)
	Get(ctx context.Context, id int64) (Leave, error)
	Create(ctx context.Context, input CreateInput) (Leave, error)
	Decide(ctx context.Context, id int64, status string, approverID int64) (Leave, error)
	Update(ctx context.Context, id int64, input UpdateInput) (Leave, error)
	Delete(ctx context.Context, id int64) error
}
