package lookup

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	lookuperrors "go-hrfine/internal/lookup/errors"
	"go-hrfine/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=lookup_service.go -destination=mock/lookup_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, kind Kind) ([]Item, error)
	Create(ctx context.Context, kind Kind, req CreateRequest) (Item, error)
	UpdatePosition(ctx context.Context, id uint, req UpdatePositionRequest) (Item, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("lookup.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lookup.service")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		ttl:    ttl,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) List(ctx context.Context, kind Kind) ([]Item, error) {
	if _, ok := ParseKind(string(kind)); !ok {
		return nil, lookuperrors.ErrUnknownKind
	}
	cacheKey := kind.CacheKey()

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var items []Item
			if json.Unmarshal([]byte(cached), &items) == nil {
				return items, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		items, err := s.repo.List(ctx, kind)
		if err != nil {
			return nil, mapRepositoryError(kind, err)
		}

		if s.rdb != nil {
			if data, err := json.Marshal(items); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, s.ttl).Err(); err != nil {
					s.logger.Warn("cache lookup list failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return items, nil
	})
	if err != nil {
		s.logger.Error("list lookups failed", zap.String("kind", string(kind)), zap.Error(err))
		return nil, err
	}

	return v.([]Item), nil
}

func (s *service) Create(ctx context.Context, kind Kind, req CreateRequest) (Item, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if _, ok := ParseKind(string(kind)); !ok {
		return Item{}, lookuperrors.ErrUnknownKind
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))

	switch kind {
	case KindPositions:
		if req.DepartmentID == 0 {
			return Item{}, lookuperrors.ErrDepartmentRequired
		}
	case KindProjectTypes:
		if req.Code == "" {
			return Item{}, lookuperrors.ErrCodeRequired
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("create lookup begin tx failed", zap.Error(err))
		return Item{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.checkCreate(ctx, qtx, kind, req); err != nil {
		return Item{}, err
	}

	item, err := qtx.Create(ctx, kind, req)
	if err != nil {
		l.Error("create lookup failed", zap.String("kind", string(kind)), zap.Error(err))
		return Item{}, mapRepositoryError(kind, err)
	}

	if err := tx.Commit(); err != nil {
		l.Error("create lookup commit failed", zap.Error(err))
		return Item{}, err
	}

	s.invalidate(ctx, kind)
	l.Info("lookup created", zap.String("kind", string(kind)), zap.Uint("id", item.ID))
	return item, nil
}

func (s *service) checkCreate(ctx context.Context, qtx Repository, kind Kind, req CreateRequest) error {
	if kind == KindPositions {
		ok, err := qtx.Exists(ctx, KindDepartments, req.DepartmentID)
		if err != nil {
			return err
		}
		if !ok {
			return lookuperrors.ErrDepartmentNotFound
		}
		taken, err := qtx.ExistsPositionName(ctx, req.DepartmentID, req.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return lookuperrors.ErrPositionNameTaken
		}
		return nil
	}

	taken, err := qtx.ExistsByName(ctx, kind, req.Name)
	if err != nil {
		return err
	}
	if taken {
		return lookuperrors.ErrAlreadyExists.Withf("%s already exists", kind.Label())
	}

	if kind == KindProjectTypes {
		taken, err := qtx.ExistsProjectTypeCode(ctx, req.Code)
		if err != nil {
			return err
		}
		if taken {
			return lookuperrors.ErrAlreadyExists.Withf("Project type code '%s' already exists", req.Code)
		}
	}
	return nil
}

func (s *service) UpdatePosition(ctx context.Context, id uint, req UpdatePositionRequest) (Item, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	req.Name = strings.TrimSpace(req.Name)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("update position begin tx failed", zap.Error(err))
		return Item{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	pos, err := qtx.FindPosition(ctx, id)
	if err != nil {
		return Item{}, mapRepositoryError(KindPositions, err)
	}

	ok, err := qtx.Exists(ctx, KindDepartments, req.DepartmentID)
	if err != nil {
		return Item{}, err
	}
	if !ok {
		return Item{}, lookuperrors.ErrDepartmentNotFound
	}

	taken, err := qtx.ExistsPositionName(ctx, req.DepartmentID, req.Name, id)
	if err != nil {
		return Item{}, err
	}
	if taken {
		return Item{}, lookuperrors.ErrPositionNameTaken
	}

	pos.Name = req.Name
	pos.DepartmentID = req.DepartmentID
	if err := qtx.UpdatePosition(ctx, pos); err != nil {
		l.Error("update position failed", zap.Uint("id", id), zap.Error(err))
		return Item{}, mapRepositoryError(KindPositions, err)
	}

	if err := tx.Commit(); err != nil {
		l.Error("update position commit failed", zap.Error(err))
		return Item{}, err
	}

	s.invalidate(ctx, KindPositions)
	return pos.toItem(), nil
}

// invalidate drops the cached list for kind. Departments embed their
// positions, so a position write clears both.
func (s *service) invalidate(ctx context.Context, kind Kind) {
	if s.rdb == nil {
		return
	}
	keys := []string{kind.CacheKey()}
	if kind == KindPositions {
		keys = append(keys, KindDepartments.CacheKey())
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Error("failed to invalidate lookup cache", zap.Strings("keys", keys), zap.Error(err))
	}
}
