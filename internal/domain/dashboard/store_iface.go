package dashboard

import (
	"context"
	"time"
)

type StoreAPI interface {
	Stats(ctx context.Context, now time.Time) (Stats, error)
}
