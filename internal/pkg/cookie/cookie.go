package cookie

import (
	"net/http"
	"strings"
	"time"

	"cleanspace/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AccessTokenCookieName = "access_token"

// SetAccessToken stores the token in an HttpOnly cookie that lives as long as the token.
func SetAccessToken(c *gin.Context, cfg config.CookieConfig, accessToken string, ttl time.Duration) {
	http.SetCookie(c.Writer, accessTokenCookie(cfg, accessToken, int(ttl.Seconds())))
}

func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	http.SetCookie(c.Writer, accessTokenCookie(cfg, "", -1))
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}

func accessTokenCookie(cfg config.CookieConfig, value string, maxAge int) *http.Cookie {
	sameSite := parseSameSite(cfg.SameSite)
	return &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    value,
		Path:     "/",
		Domain:   cfg.Domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		// browsers drop SameSite=None cookies that are not Secure
		Secure:   cfg.Secure || sameSite == http.SameSiteNoneMode,
		SameSite: sameSite,
	}
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
