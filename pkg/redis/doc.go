// Package redis connects to Redis with retries and exposes a healthcheck
// probe. The client backs sitepref.RedisStore.
//
//	client, err := redis.Connect(ctx, cfg.Redis)
//	if err != nil {
//	    return err
//	}
//	store, err := sitepref.NewRedisStore(client, cookies)
package redis
