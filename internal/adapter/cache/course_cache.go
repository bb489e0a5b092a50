package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

const defaultCourseTTL = 5 * time.Minute

// CourseCache is a Redis-backed read-through cache for course lookups.
type CourseCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewCourseCache constructs a course cache with the default TTL.
func NewCourseCache(client *goredis.Client) *CourseCache {
	return &CourseCache{client: client, ttl: defaultCourseTTL}
}

var _ core.CourseCache = (*CourseCache)(nil)

// Get returns the cached course or ErrNotFound on a miss.
func (c *CourseCache) Get(ctx context.Context, id uuid.UUID) (*core.Course, error) {
	raw, err := c.client.Get(ctx, courseKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}

	var course core.Course
	if err := json.Unmarshal(raw, &course); err != nil {
		// A corrupt entry behaves like a miss; the next Set repairs it.
		return nil, core.ErrNotFound
	}
	return &course, nil
}

// Set stores the course under its id with the cache TTL.
func (c *CourseCache) Set(ctx context.Context, course *core.Course) error {
	if course == nil {
		return nil
	}
	raw, err := json.Marshal(course)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, courseKey(course.ID), raw, c.ttl).Err()
}

// Invalidate drops the cached course.
func (c *CourseCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, courseKey(id)).Err()
}

func courseKey(id uuid.UUID) string {
	return "course:" + id.String()
}
