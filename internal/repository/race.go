package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/pkg/xcontext"
	"github.com/tavernsheet/backend/pkg/xredis"
)

type RaceRepository interface {
	Create(ctx context.Context, data *entity.Race) error
	GetByID(ctx context.Context, id string) (*entity.Race, error)
	GetByName(ctx context.Context, name string) (*entity.Race, error)
	GetAll(ctx context.Context) ([]entity.Race, error)
}

type raceRepository struct {
	redisClient xredis.Client
}

func NewRaceRepository(redisClient xredis.Client) *raceRepository {
	return &raceRepository{redisClient: redisClient}
}

func (r *raceRepository) cacheKeyByID(id string) string {
	return fmt.Sprintf("cache:race:%s", id)
}

func (r *raceRepository) cache(ctx context.Context, races ...entity.Race) {
	redisKV := map[string]any{}
	for _, record := range races {
		b, err := json.Marshal(record)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot marshal race object: %v", err)
			continue
		}

		redisKV[r.cacheKeyByID(record.ID)] = string(b)
	}

	if err := r.redisClient.MSet(ctx, redisKV); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot multiple set for race redis: %v", err)
	}
}

func (r *raceRepository) fromCacheByID(ctx context.Context, id string) *entity.Race {
	value, err := r.redisClient.Get(ctx, r.cacheKeyByID(id))
	if err != nil {
		if err != redis.Nil {
			xcontext.Logger(ctx).Warnf("Cannot get race from redis: %v", err)
		}
		return nil
	}

	var result entity.Race
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot unmarshal race object: %v", err)
		return nil
	}

	return &result
}

func (r *raceRepository) Create(ctx context.Context, data *entity.Race) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *raceRepository) GetByID(ctx context.Context, id string) (*entity.Race, error) {
	if record := r.fromCacheByID(ctx, id); record != nil {
		return record, nil
	}

	var record entity.Race
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	r.cache(ctx, record)
	return &record, nil
}

func (r *raceRepository) GetByName(ctx context.Context, name string) (*entity.Race, error) {
	var record entity.Race
	if err := xcontext.DB(ctx).Where("name=?", name).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *raceRepository) GetAll(ctx context.Context) ([]entity.Race, error) {
	result := []entity.Race{}
	if err := xcontext.DB(ctx).Order("name ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
