// Package audit records every served API request in storage, with the
// quote currency when the request named one.
package audit

import (
	"context"
	"fmt"
	"strings"
)

type DBRequestLogger struct {
	storage LogStorage
}

func New(storage LogStorage) *DBRequestLogger {
	return &DBRequestLogger{storage: storage}
}

func (l *DBRequestLogger) LogRequest(ctx context.Context, path string, status *int, quote *string) error {
	p := strings.TrimSpace(path)
	p = strings.Trim(p, "/")
	if p == "" {
		p = "unknown"
	}

	if err := l.storage.Insert(ctx, p, status, quote); err != nil {
		return fmt.Errorf("log request %s: %w", p, err)
	}
	return nil
}
