package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	"giveaway-radar-backend/internal/config"
)

const userContextKey = "telegram_user"

// InitData validates the Telegram Mini App init data carried in the
// init_data header and stores the authenticated user in the request
// context. Requests without valid init data are rejected.
func InitData(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("init_data")
		if raw == "" {
			raw = c.Query("init_data")
		}
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "init_data is required"})
			return
		}

		if err := initdata.Validate(raw, cfg.Telegram.BotToken, cfg.InitDataTTL()); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "failed to validate init data"})
			return
		}

		parsed, err := initdata.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "failed to parse init data"})
			return
		}

		c.Set(userContextKey, parsed.User)
		c.Next()
	}
}

// GetUser returns the authenticated Telegram user stored by InitData.
func GetUser(c *gin.Context) (initdata.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return initdata.User{}, false
	}
	u, ok := v.(initdata.User)
	return u, ok
}
