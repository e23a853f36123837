package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"membership-gateway/internal/config"
	"membership-gateway/internal/infrastructure/session"
	"membership-gateway/pkg/jwt"
)

const (
	sessionIDKey    = "session_id"
	sessionStateKey = "session_state"
)

// Sessions gắn mỗi browser với một session state trong store.
// Cookie chỉ chứa signed session id; token admin và page state nằm server-side.
type Sessions struct {
	store        session.Store
	jwtManager   *jwt.Manager
	cfg          config.SessionConfig
	cookieSecure bool
}

func NewSessions(store session.Store, jwtManager *jwt.Manager, cfg config.SessionConfig, env string) *Sessions {
	return &Sessions{
		store:        store,
		jwtManager:   jwtManager,
		cfg:          cfg,
		cookieSecure: env == "production",
	}
}

// Middleware đảm bảo request nào cũng có session id hợp lệ và state đã load
func (s *Sessions) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := s.sessionID(c)

		state, err := s.store.Load(c.Request.Context(), sessionID)
		if err != nil {
			log.Error().Err(err).Msg("Session load failed")
			state = &session.State{}
		}

		c.Set(sessionIDKey, sessionID)
		c.Set(sessionStateKey, state)

		c.Next()
	}
}

// sessionID lấy session id từ cookie, phát hành id mới khi cookie
// thiếu hoặc không verify được
func (s *Sessions) sessionID(c *gin.Context) string {
	if cookie, err := c.Cookie(s.cfg.CookieName); err == nil {
		if id, err := s.jwtManager.ValidateSessionToken(cookie); err == nil {
			return id
		}
	}

	id := uuid.NewString()
	signed, err := s.jwtManager.GenerateSessionToken(id)
	if err != nil {
		log.Error().Err(err).Msg("Session cookie signing failed")
		return id
	}

	c.SetCookie(
		s.cfg.CookieName,
		signed,
		int(s.cfg.TTL.Seconds()),
		"/",
		"",
		s.cookieSecure,
		true, // HttpOnly
	)
	return id
}

// State trả về session state đã load cho request này
func (s *Sessions) State(c *gin.Context) *session.State {
	if v, ok := c.Get(sessionStateKey); ok {
		if state, ok := v.(*session.State); ok {
			return state
		}
	}
	return &session.State{}
}

// Save persists the (possibly mutated) state. Handlers gọi sau mỗi dispatch.
func (s *Sessions) Save(c *gin.Context) {
	state := s.State(c)
	if err := s.store.Save(c.Request.Context(), c.GetString(sessionIDKey), state); err != nil {
		log.Error().Err(err).Msg("Session save failed")
	}
}

// RequireAdmin chặn privileged pages khi session chưa có admin token.
// Token là opaque - chỉ check presence, backend mới là nơi verify.
func (s *Sessions) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.State(c).LoggedIn() {
			c.Redirect(http.StatusSeeOther, "/admin")
			c.Abort()
			return
		}
		c.Next()
	}
}
