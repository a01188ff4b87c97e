package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/zygggggg/blog/internal/config"
	"github.com/zygggggg/blog/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.ips.Range(func(key, value interface{}) bool {
			client := value.(*client)
			if time.Since(client.lastSeen) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// allowRedis 多实例部署时用 Redis 固定窗口计数限流；返回第二个值表示 Redis 是否可用。
func allowRedis(c *gin.Context, ip string, limit int) (bool, bool) {
	rdb := service.GetRedisClient()
	if rdb == nil {
		return false, false
	}

	key := service.RedisKey("rate", ip, strconv.FormatInt(time.Now().Unix(), 10))
	count, err := rdb.Incr(c.Request.Context(), key).Result()
	if err != nil {
		return false, false
	}
	if count == 1 {
		// 窗口为 1 秒，多留 1 秒余量避免边界抖动
		_ = rdb.Expire(c.Request.Context(), key, 2*time.Second).Err()
	}
	return count <= int64(limit), true
}

// RateLimitMiddleware 创建一个按 IP 限流的中间件，用于写接口（上传、留言）。
// 启用 Redis 时走共享计数器，否则使用进程内 token bucket。
func RateLimitMiddleware() gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		cfg := config.Get().RateLimit
		if !cfg.Enabled {
			c.Next()
			return
		}

		ip := c.ClientIP()

		// 每秒允许的请求数取 rps 和 burst 的较大者作为窗口上限
		windowLimit := int(cfg.RPS)
		if cfg.Burst > windowLimit {
			windowLimit = cfg.Burst
		}
		if allowed, ok := allowRedis(c, ip, windowLimit); ok {
			if !allowed {
				c.JSON(http.StatusTooManyRequests, gin.H{"code": http.StatusTooManyRequests, "message": "请求过于频繁，请稍后再试", "data": nil})
				c.Abort()
				return
			}
			c.Next()
			return
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(cfg.RPS), cfg.Burst)
		})

		l := limiter.getLimiter(ip)

		// 动态更新 limit 和 burst (如果配置发生变更)
		if l.Limit() != rate.Limit(cfg.RPS) {
			l.SetLimit(rate.Limit(cfg.RPS))
		}
		if l.Burst() != cfg.Burst {
			l.SetBurst(cfg.Burst)
		}

		if !l.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"code": http.StatusTooManyRequests, "message": "请求过于频繁，请稍后再试", "data": nil})
			c.Abort()
			return
		}
		c.Next()
	}
}
