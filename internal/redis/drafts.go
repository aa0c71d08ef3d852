package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyKozhin/crm-calendar/internal/model"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

const draftKeyPrefix = "draft:"

type connPool interface {
	GetContext(ctx context.Context) (redis.Conn, error)
}

// DraftRepository stores session drafts as JSON values that expire after ttl.
type DraftRepository struct {
	pool   connPool
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewDraftRepository(pool connPool, ttl time.Duration, logger *zap.SugaredLogger) *DraftRepository {
	return &DraftRepository{
		pool:   pool,
		ttl:    ttl,
		logger: logger,
	}
}

type draftDTO struct {
	EditingID   string `json:"editing_id,omitempty"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Email       string `json:"email"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

func (r *DraftRepository) GetDraft(ctx context.Context, session string) (*model.Draft, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get connection: %w", err)
	}
	defer r.closeConn(conn)

	data, err := redis.Bytes(conn.Do("GET", draftKeyPrefix+session))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}

	dto := &draftDTO{}
	if err := json.Unmarshal(data, dto); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}

	return &model.Draft{
		EditingID: dto.EditingID,
		EventCreate: model.EventCreate{
			Title:       dto.Title,
			Date:        dto.Date,
			Time:        dto.Time,
			Email:       dto.Email,
			Color:       model.Color(dto.Color),
			Description: dto.Description,
		},
	}, nil
}

func (r *DraftRepository) SaveDraft(ctx context.Context, session string, draft *model.Draft) error {
	data, err := json.Marshal(&draftDTO{
		EditingID:   draft.EditingID,
		Title:       draft.Title,
		Date:        draft.Date,
		Time:        draft.Time,
		Email:       draft.Email,
		Color:       string(draft.Color),
		Description: draft.Description,
	})
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}

	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer r.closeConn(conn)

	args := []interface{}{draftKeyPrefix + session, data}
	if seconds := int64(r.ttl / time.Second); seconds > 0 {
		args = append(args, "EX", seconds)
	}

	if _, err := conn.Do("SET", args...); err != nil {
		return fmt.Errorf("set draft: %w", err)
	}

	return nil
}

func (r *DraftRepository) DeleteDraft(ctx context.Context, session string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer r.closeConn(conn)

	if _, err := conn.Do("DEL", draftKeyPrefix+session); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}

	return nil
}

func (r *DraftRepository) closeConn(conn redis.Conn) {
	if err := conn.Close(); err != nil {
		r.logger.Errorw("Failed closing redis connection", "err", err)
	}
}
