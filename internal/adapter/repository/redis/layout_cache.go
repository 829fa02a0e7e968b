package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/srgjo27/seats_suggestions/internal/core/domain"
	"github.com/srgjo27/seats_suggestions/internal/core/ports"
)

const DefaultLayoutTTL = 10 * time.Minute

// LayoutCache is a read-through cache in front of another LayoutProvider.
// Layouts change rarely, so entries live for ttl. Cache failures are logged
// and the request falls through to the underlying provider.
type LayoutCache struct {
	next   ports.LayoutProvider
	client goredis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.LayoutProvider = (*LayoutCache)(nil)

func NewLayoutCache(next ports.LayoutProvider, client goredis.Cmdable, ttl time.Duration, logger *slog.Logger) *LayoutCache {
	if ttl <= 0 {
		ttl = DefaultLayoutTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LayoutCache{next: next, client: client, ttl: ttl, logger: logger}
}

func layoutKey(auditoriumID uuid.UUID) string {
	return fmt.Sprintf("layout:%s", auditoriumID)
}

func (c *LayoutCache) GetLayout(ctx context.Context, auditoriumID uuid.UUID) (domain.AuditoriumLayout, error) {
	key := layoutKey(auditoriumID)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedLayout
		if err := json.Unmarshal(raw, &cached); err != nil {
			c.logger.Warn("discarding corrupt cached layout", "key", key, "error", err)
			c.evict(ctx, auditoriumID)
			break
		}
		layout := cached.toDomain()
		if err := layout.Validate(); err != nil {
			c.logger.Warn("discarding invalid cached layout", "key", key, "error", err)
			c.evict(ctx, auditoriumID)
			break
		}
		return layout, nil
	case errors.Is(err, goredis.Nil):
	default:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.AuditoriumLayout{}, ctxErr
		}
		c.logger.Warn("layout cache read failed", "key", key, "error", err)
	}

	layout, err := c.next.GetLayout(ctx, auditoriumID)
	if err != nil {
		return domain.AuditoriumLayout{}, err
	}

	payload, err := json.Marshal(fromDomain(layout))
	if err != nil {
		c.logger.Warn("layout cache encode failed", "key", key, "error", err)
		return layout, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("layout cache write failed", "key", key, "error", err)
	}

	return layout, nil
}

// Invalidate drops the cached layout so the next read goes to the source.
func (c *LayoutCache) Invalidate(ctx context.Context, auditoriumID uuid.UUID) error {
	return c.client.Del(ctx, layoutKey(auditoriumID)).Err()
}

// evict removes an unusable entry so it is not served again if the reload
// below fails.
func (c *LayoutCache) evict(ctx context.Context, auditoriumID uuid.UUID) {
	if err := c.Invalidate(ctx, auditoriumID); err != nil {
		c.logger.Warn("layout cache evict failed", "key", layoutKey(auditoriumID), "error", err)
	}
}

type cachedSeat struct {
	Position int    `json:"position"`
	Physical bool   `json:"physical"`
	Category string `json:"category,omitempty"`
}

type cachedRow struct {
	Name  string       `json:"name"`
	Seats []cachedSeat `json:"seats"`
}

type cachedLayout struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	ReferenceRow string      `json:"reference_row,omitempty"`
	Rows         []cachedRow `json:"rows"`
}

func fromDomain(layout domain.AuditoriumLayout) cachedLayout {
	out := cachedLayout{
		ID:           layout.ID,
		Name:         layout.Name,
		ReferenceRow: layout.ReferenceRow,
		Rows:         make([]cachedRow, 0, len(layout.Rows)),
	}
	for _, row := range layout.Rows {
		cr := cachedRow{Name: row.Name, Seats: make([]cachedSeat, 0, len(row.Seats))}
		for _, seat := range row.Seats {
			cr.Seats = append(cr.Seats, cachedSeat{
				Position: seat.Position,
				Physical: seat.Physical,
				Category: string(seat.Category),
			})
		}
		out.Rows = append(out.Rows, cr)
	}
	return out
}

func (c cachedLayout) toDomain() domain.AuditoriumLayout {
	layout := domain.AuditoriumLayout{
		ID:           c.ID,
		Name:         c.Name,
		ReferenceRow: c.ReferenceRow,
	}
	for _, cr := range c.Rows {
		row := domain.Row{Name: cr.Name}
		for _, cs := range cr.Seats {
			row.Seats = append(row.Seats, domain.Seat{
				Row:      cr.Name,
				Position: cs.Position,
				Physical: cs.Physical,
				Category: domain.SeatCategory(cs.Category),
			})
		}
		layout.Rows = append(layout.Rows, row)
	}
	return layout
}
