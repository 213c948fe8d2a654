package database

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis membuat client Redis. Alamat kosong berarti cache dimatikan,
// fungsi mengembalikan nil dan pemanggil harus menanganinya.
func ConnectRedis(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	return client
}
