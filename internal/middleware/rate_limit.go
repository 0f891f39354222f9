package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Eduardo-brito329/Menu-Web/internal/database"
)

const (
	// Limites por endpoint
	LoginMaxAttempts    = 5
	SignupMaxAttempts   = 3
	CheckoutMaxRequests = 10 // por minuto, por IP — anti-spam de pedidos

	// Cooldowns
	LoginCooldown  = 15 * time.Minute
	SignupCooldown = 30 * time.Minute
)

// LoginRateLimit limita as tentativas de login por email
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Ler o body sem consumir
		bodyBytes, _ := io.ReadAll(c.Request.Body)

		var input struct {
			Email string `json:"email"`
		}

		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			c.Next()
			return
		}

		// Devolver o body para os próximos handlers
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		ctx := context.Background()
		key := "login_attempts:" + input.Email

		// Em cooldown?
		cooldownKey := "login_cooldown:" + input.Email
		if database.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.Redis.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Muitas tentativas. Tente de novo em %d minutos", int(ttl.Minutes())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		attempts, _ := database.Redis.Get(ctx, key).Int()
		if attempts >= LoginMaxAttempts {
			database.Redis.Set(ctx, cooldownKey, "1", LoginCooldown)
			database.Redis.Del(ctx, key)

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Muitas tentativas. Bloqueado por %d minutos", int(LoginCooldown.Minutes())),
				"retry_after": int(LoginCooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		// Login falhou (401) → incrementa; sucesso → zera
		if c.Writer.Status() == http.StatusUnauthorized {
			database.Redis.Incr(ctx, key)
			database.Redis.Expire(ctx, key, LoginCooldown)
		} else if c.Writer.Status() == http.StatusOK {
			database.Redis.Del(ctx, key)
			database.Redis.Del(ctx, cooldownKey)
		}
	}
}

// SignupRateLimit limita cadastros por IP
func SignupRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		ip := c.ClientIP()
		key := "signup_attempts:" + ip

		cooldownKey := "signup_cooldown:" + ip
		if database.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.Redis.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Muitos cadastros. Tente de novo em %d minutos", int(ttl.Minutes())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		attempts, _ := database.Redis.Get(ctx, key).Int()
		if attempts >= SignupMaxAttempts {
			database.Redis.Set(ctx, cooldownKey, "1", SignupCooldown)
			database.Redis.Del(ctx, key)

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Muitos cadastros. Tente de novo em %d minutos", int(SignupCooldown.Minutes())),
				"retry_after": int(SignupCooldown.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()

		if c.Writer.Status() == http.StatusCreated {
			database.Redis.Incr(ctx, key)
			database.Redis.Expire(ctx, key, SignupCooldown)
		}
	}
}

// CheckoutRateLimit limita envios de pedido por IP (anti-spam)
func CheckoutRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		ip := c.ClientIP()
		key := "checkout_requests:" + ip

		requests, _ := database.Redis.Get(ctx, key).Int()
		if requests >= CheckoutMaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Muitos pedidos seguidos. Aguarde um minuto",
				"retry_after": 60,
			})
			c.Abort()
			return
		}

		pipe := database.Redis.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, 1*time.Minute)
		pipe.Exec(ctx)

		c.Next()
	}
}
