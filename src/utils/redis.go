package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	DB "Backend-Aavishkar/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// อายุของ key verified ต่อ event ครอบคลุมวันงานหนึ่งวัน
const verifiedTTL = 12 * time.Hour

// ensureClient returns the shared Redis client managed by the database package.
// If the database package didn't initialize Redis, this will return nil and
// callers should handle that case (they already do).
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// MarkEventVerified จดว่า event นี้ผ่านการตรวจรหัสผ่านแล้ว
// Returns nil if Redis is not available (development mode)
func MarkEventVerified(eventName string) error {
	client := ensureClient()
	if client == nil {
		// ไม่มี Redis ใน dev mode - ข้าม
		return nil
	}

	key := fmt.Sprintf("verified:%s", strings.ToLower(eventName))
	if err := client.Set(Ctx, key, "1", verifiedTTL).Err(); err != nil {
		return fmt.Errorf("failed to mark event verified: %v", err)
	}
	return nil
}

// IsEventVerified ตรวจว่า event นี้เคยผ่านรหัสผ่านใน 12 ชั่วโมงนี้หรือไม่
// Returns true if Redis is not available (development mode - skip validation)
func IsEventVerified(eventName string) (bool, error) {
	client := ensureClient()
	if client == nil {
		// ไม่มี Redis ใน dev mode - ข้ามการตรวจสอบ
		return true, nil
	}

	key := fmt.Sprintf("verified:%s", strings.ToLower(eventName))
	_, err := client.Get(Ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
