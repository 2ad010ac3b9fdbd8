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

type ClassRepository interface {
	Create(ctx context.Context, data *entity.Class) error
	GetByID(ctx context.Context, id string) (*entity.Class, error)
	GetByName(ctx context.Context, name string) (*entity.Class, error)
	GetAll(ctx context.Context) ([]entity.Class, error)
}

type classRepository struct {
	redisClient xredis.Client
}

func NewClassRepository(redisClient xredis.Client) *classRepository {
	return &classRepository{redisClient: redisClient}
}

func (r *classRepository) cacheKeyByID(id string) string {
	return fmt.Sprintf("cache:class:%s", id)
}

func (r *classRepository) cache(ctx context.Context, classes ...entity.Class) {
	redisKV := map[string]any{}
	for _, record := range classes {
		b, err := json.Marshal(record)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot marshal class object: %v", err)
			continue
		}

		redisKV[r.cacheKeyByID(record.ID)] = string(b)
	}

	if err := r.redisClient.MSet(ctx, redisKV); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot multiple set for class redis: %v", err)
	}
}

func (r *classRepository) fromCacheByID(ctx context.Context, id string) *entity.Class {
	value, err := r.redisClient.Get(ctx, r.cacheKeyByID(id))
	if err != nil {
		if err != redis.Nil {
			xcontext.Logger(ctx).Warnf("Cannot get class from redis: %v", err)
		}
		return nil
	}

	var result entity.Class
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot unmarshal class object: %v", err)
		return nil
	}

	return &result
}

func (r *classRepository) Create(ctx context.Context, data *entity.Class) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *classRepository) GetByID(ctx context.Context, id string) (*entity.Class, error) {
	if record := r.fromCacheByID(ctx, id); record != nil {
		return record, nil
	}

	var record entity.Class
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	r.cache(ctx, record)
	return &record, nil
}

func (r *classRepository) GetByName(ctx context.Context, name string) (*entity.Class, error) {
	var record entity.Class
	if err := xcontext.DB(ctx).Where("name=?", name).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *classRepository) GetAll(ctx context.Context) ([]entity.Class, error) {
	result := []entity.Class{}
	if err := xcontext.DB(ctx).Order("name ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
