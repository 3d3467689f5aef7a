package staff

import "context"

type Repository interface {
	Create(ctx context.Context, m Member) error
	GetByID(ctx context.Context, id string) (Member, error)
	AppendTask(ctx context.Context, id, task string) error
}
