// Package redisseq numera facturas con un contador atómico en Redis (INCR).
// El contador de cada año se inicializa con el mayor consecutivo ya guardado en la base.
package redisseq

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Horas-api/internal/application/billing"
)

// Seeder devuelve el mayor consecutivo ya emitido para prefix/year.
type Seeder interface {
	Current(ctx context.Context, prefix string, year int) (int, error)
}

// Sequence implementa billing.NumberSequence sobre Redis.
type Sequence struct {
	rdb  redis.Cmdable
	seed Seeder
}

// New construye la secuencia. seed se consulta solo cuando la clave del año no existe.
func New(rdb redis.Cmdable, seed Seeder) *Sequence {
	return &Sequence{rdb: rdb, seed: seed}
}

// Key "invoice_seq:INV:2026".
func Key(prefix string, year int) string {
	return fmt.Sprintf("invoice_seq:%s:%d", prefix, year)
}

// Next siguiente consecutivo del año.
func (s *Sequence) Next(ctx context.Context, prefix string, year int) (int, error) {
	key := Key(prefix, year)

	exists, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redisseq: exists %s: %w", key, err)
	}
	if exists == 0 {
		cur, err := s.seed.Current(ctx, prefix, year)
		if err != nil {
			return 0, fmt.Errorf("redisseq: seed %s: %w", key, err)
		}
		// SETNX: si otra instancia inicializó primero, se respeta su valor.
		if err := s.rdb.SetNX(ctx, key, cur, 0).Err(); err != nil {
			return 0, fmt.Errorf("redisseq: setnx %s: %w", key, err)
		}
	}

	n, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redisseq: incr %s: %w", key, err)
	}
	return int(n), nil
}

// Ping verifica la conexión al arrancar.
func Ping(ctx context.Context, rdb *redis.Client) error {
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redisseq: ping: %w", err)
	}
	return nil
}

var _ billing.NumberSequence = (*Sequence)(nil)
