package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/alimgiray/gexplore/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookieName = "session"
	SessionTTL        = 24 * time.Hour

	sessionContextKey = "session"
	codecContextKey   = "session_codec"
)

var ErrNoSession = errors.New("no session in context")

// SessionData is the signed content of the session cookie.
type SessionData struct {
	ID        string         `json:"id"`
	State     models.UIState `json:"state"`
	ExpiresAt time.Time      `json:"expires_at"`
}

type sessionCodec struct {
	secret []byte
	now    func() time.Time
}

// SessionMiddleware loads the UI state from the session cookie. A missing,
// tampered, malformed or expired cookie yields a fresh default session.
func SessionMiddleware(secret string) gin.HandlerFunc {
	codec := &sessionCodec{secret: []byte(secret), now: time.Now}

	return func(c *gin.Context) {
		session := codec.decode(c)
		if session == nil {
			session = &SessionData{
				ID:    uuid.New().String(),
				State: models.DefaultUIState(),
			}
		}

		c.Set(codecContextKey, codec)
		c.Set(sessionContextKey, session)

		c.Next()
	}
}

func (s *sessionCodec) decode(c *gin.Context) *SessionData {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}

	// Split cookie value (signature.data)
	parts := strings.Split(cookie, ".")
	if len(parts) != 2 {
		return nil
	}

	signature, data := parts[0], parts[1]
	if !s.verify(data, signature) {
		return nil
	}

	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		return nil
	}

	var session SessionData
	if err := json.Unmarshal(decoded, &session); err != nil {
		return nil
	}

	if s.now().After(session.ExpiresAt) {
		return nil
	}

	return &session
}

func (s *sessionCodec) encode(session SessionData) (string, error) {
	data, err := json.Marshal(session)
	if err != nil {
		return "", err
	}
	encoded := base64.URLEncoding.EncodeToString(data)
	return s.sign(encoded) + "." + encoded, nil
}

func (s *sessionCodec) sign(data string) string {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(data))
	return base64.URLEncoding.EncodeToString(h.Sum(nil))
}

func (s *sessionCodec) verify(data, signature string) bool {
	return hmac.Equal([]byte(signature), []byte(s.sign(data)))
}

// GetSession retrieves session data from context
func GetSession(c *gin.Context) *SessionData {
	session, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}

	if data, ok := session.(*SessionData); ok {
		return data
	}

	return nil
}

// GetState returns the session's UI state, the default state outside a session
func GetState(c *gin.Context) models.UIState {
	if session := GetSession(c); session != nil {
		return session.State
	}
	return models.DefaultUIState()
}

// SaveState replaces the session's UI state and writes the cookie
func SaveState(c *gin.Context, state models.UIState) error {
	session := GetSession(c)
	value, exists := c.Get(codecContextKey)
	codec, ok := value.(*sessionCodec)
	if session == nil || !exists || !ok {
		return ErrNoSession
	}

	session.State = state
	session.ExpiresAt = codec.now().Add(SessionTTL)

	cookie, err := codec.encode(*session)
	if err != nil {
		return err
	}

	c.SetCookie(SessionCookieName, cookie, int(SessionTTL.Seconds()), "/", "", false, true)
	return nil
}

// ClearSession removes the session cookie and resets the request's session
// to the default state
func ClearSession(c *gin.Context) {
	c.Set(sessionContextKey, &SessionData{
		ID:    uuid.New().String(),
		State: models.DefaultUIState(),
	})
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
