package audit

import "context"

type RequestLogger interface {
	LogRequest(ctx context.Context, path string, status *int, quote *string) error
}

type LogStorage interface {
	Insert(ctx context.Context, path string, status *int, quote *string) error
}
