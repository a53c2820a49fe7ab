package service

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"strings"

	"github.com/Dr-Min/Scheduler/internal/cache"
	dom "github.com/Dr-Min/Scheduler/internal/domain"
	"github.com/Dr-Min/Scheduler/internal/repo"

	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound     = errors.New("schedule not found")
	ErrMissingField = errors.New("date and user are required")
)

type ScheduleService struct {
	repo  repo.ScheduleRepo
	cache *cache.ScheduleCache
	sf    singleflight.Group
}

// NewScheduleService creates a ScheduleService. If c is nil, caching is disabled.
func NewScheduleService(r repo.ScheduleRepo, c *cache.ScheduleCache) *ScheduleService {
	return &ScheduleService{repo: r, cache: c}
}

func (s *ScheduleService) Create(ctx context.Context, date, user string, checkInTime *string, exercised bool, reflection *string) (dom.Schedule, error) {
	date = strings.TrimSpace(date)
	user = strings.TrimSpace(user)
	if date == "" || user == "" {
		return dom.Schedule{}, ErrMissingField
	}

	rec, err := s.repo.Create(ctx, dom.Schedule{
		Date:        date,
		User:        user,
		CheckInTime: checkInTime,
		Exercised:   exercised,
		Reflection:  reflection,
	})
	if err != nil {
		return dom.Schedule{}, err
	}
	s.invalidateCache(ctx)
	return rec, nil
}

func (s *ScheduleService) List(ctx context.Context) ([]dom.Schedule, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Schedule), nil
	}
	return s.repo.List(ctx)
}

// ScheduleUpdate is a three-state patch: a false Set* leaves the stored
// value alone, a true one overwrites it with the carried value, nil included
// (that is how a field is cleared).
type ScheduleUpdate struct {
	CheckInTime    *string
	SetCheckInTime bool
	Exercised      bool
	SetExercised   bool
	Reflection     *string
	SetReflection  bool
}

// Update merges the provided fields over the stored record.
func (s *ScheduleService) Update(ctx context.Context, id int64, upd ScheduleUpdate) (dom.Schedule, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dom.Schedule{}, ErrNotFound
		}
		return dom.Schedule{}, err
	}
	patch := existing
	if upd.SetCheckInTime {
		patch.CheckInTime = upd.CheckInTime
	}
	if upd.SetExercised {
		patch.Exercised = upd.Exercised
	}
	if upd.SetReflection {
		patch.Reflection = upd.Reflection
	}
	rec, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return dom.Schedule{}, ErrNotFound
		}
		return dom.Schedule{}, err
	}
	s.invalidateCache(ctx)
	return rec, nil
}

// FindOne returns the first entry for the user/date pair, or nil (no error)
// when there is none.
func (s *ScheduleService) FindOne(ctx context.Context, user, date string) (*dom.Schedule, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do(findOneKey(user, date), func() (interface{}, error) {
			if rec, err := s.cache.GetOne(ctx, user, date); err == nil && rec != nil {
				return rec, nil
			}
			rec, err := s.findOne(ctx, user, date)
			if err != nil {
				return nil, err
			}
			if rec != nil {
				_ = s.cache.SetOne(ctx, user, date, *rec)
			}
			return rec, nil
		})
		if err != nil {
			return nil, err
		}
		return v.(*dom.Schedule), nil
	}
	return s.findOne(ctx, user, date)
}

// findOneKey escapes both parts so a ":" inside a user name cannot collide
// with another pair's flight key.
func findOneKey(user, date string) string {
	return "one:" + url.QueryEscape(user) + ":" + url.QueryEscape(date)
}

func (s *ScheduleService) findOne(ctx context.Context, user, date string) (*dom.Schedule, error) {
	rec, err := s.repo.FindOne(ctx, user, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			var none *dom.Schedule
			return none, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (s *ScheduleService) ListByUser(ctx context.Context, user string) ([]dom.Schedule, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("user:"+user, func() (interface{}, error) {
			if list, err := s.cache.GetUser(ctx, user); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.ListByUser(ctx, user)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetUser(ctx, user, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Schedule), nil
	}
	return s.repo.ListByUser(ctx, user)
}

func (s *ScheduleService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx)
	}
}
