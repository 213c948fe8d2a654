package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tugas-go/internal/models"

	"github.com/go-redis/redis/v8"
)

// TaskCache menyimpan task per-id di Redis dengan TTL satu jam.
// Client nil berarti cache dimatikan dan semua operasi menjadi no-op,
// sehingga pemanggil tidak perlu membedakan keduanya.
type TaskCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTaskCache(client *redis.Client) *TaskCache {
	return &TaskCache{client: client, ttl: time.Hour}
}

func taskKey(id int) string {
	return fmt.Sprintf("task:%d", id)
}

// Get mengambil task dari cache. Kegagalan Redis diperlakukan
// sebagai cache miss.
func (c *TaskCache) Get(ctx context.Context, id int) (models.Task, bool) {
	if c == nil || c.client == nil {
		return models.Task{}, false
	}
	cached, err := c.client.Get(ctx, taskKey(id)).Result()
	if err != nil {
		return models.Task{}, false
	}
	var task models.Task
	if err := json.Unmarshal([]byte(cached), &task); err != nil {
		return models.Task{}, false
	}
	return task, true
}

// Set menyimpan task ke cache, best-effort.
func (c *TaskCache) Set(ctx context.Context, task models.Task) {
	if c == nil || c.client == nil {
		return
	}
	jsonData, err := json.Marshal(task)
	if err != nil {
		return
	}
	c.client.SetEX(ctx, taskKey(task.ID), jsonData, c.ttl)
}

// Invalidate membuang entri cache setelah task berubah atau dihapus.
func (c *TaskCache) Invalidate(ctx context.Context, id int) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, taskKey(id))
}
