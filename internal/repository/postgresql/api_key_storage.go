package postgresql

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// APIKeyStorage checks client keys against their HMAC-SHA256 hashes, so
// the table never holds a key in clear text.
type APIKeyStorage struct {
	pgpool      *pgxpool.Pool
	encodingKey string
}

func NewAPIKeyStorage(pgpool *pgxpool.Pool, encodingKey string) *APIKeyStorage {
	return &APIKeyStorage{
		pgpool:      pgpool,
		encodingKey: strings.TrimSpace(encodingKey),
	}
}

func (s *APIKeyStorage) Validate(ctx context.Context, rawKey string) (exists bool, isActive bool, err error) {
	rawKey = strings.TrimSpace(rawKey)
	if rawKey == "" {
		return false, false, nil
	}

	err = s.pgpool.QueryRow(ctx, `
select is_active
from api_keys
where key_hash = $1;
`, hashKey(rawKey, s.encodingKey)).Scan(&isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("select api_keys: %w", err)
	}

	return true, isActive, nil
}

func hashKey(rawKey, encodingKey string) string {
	mac := hmac.New(sha256.New, []byte(encodingKey))
	_, _ = mac.Write([]byte(rawKey))
	return hex.EncodeToString(mac.Sum(nil))
}
