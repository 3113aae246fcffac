package taskqueue

import "context"

//go:generate mockgen -source=task_queue.go -destination=mock.go -package=taskqueue

type TaskQueue interface {
	RegisterRedrive(ctx context.Context, task *RedriveTask) (*TaskResponse, error)
}
