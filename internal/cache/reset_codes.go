package cache

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/HenriqueMND/agendamento-app/internal/config"
)

// ResetCodes guarda códigos de redefinição de senha no Redis, um por
// usuário, com expiração. O código vale uma única vez: a consulta remove.
type ResetCodes struct {
	rdb *redis.Client
	ttl time.Duration
}

const resetCodeTTL = 15 * time.Minute

var ErrCodeNotFound = errors.New("reset code not found or expired")

func NewRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}

func NewResetCodes(rdb *redis.Client) *ResetCodes {
	return &ResetCodes{
		rdb: rdb,
		ttl: resetCodeTTL,
	}
}

func (r *ResetCodes) Issue(ctx context.Context, userID string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	code := hex.EncodeToString(buf)

	if err := r.rdb.Set(ctx, key(code), userID, r.ttl).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// Consume devolve o dono do código e o invalida.
func (r *ResetCodes) Consume(ctx context.Context, code string) (string, error) {
	userID, err := r.rdb.GetDel(ctx, key(code)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCodeNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func key(code string) string {
	return "pwreset:" + code
}
