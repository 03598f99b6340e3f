package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	repo "Annulus/internal/repo"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

const (
	cookieName = "session_token"
	tokenTTL   = 12 * time.Hour
)

var ErrInvalidCredentials = errors.New("invalid login or password")

type contextKey string

const (
	userIDKey    contextKey = "userID"
	userLoginKey contextKey = "userLogin"
)

type Authenv struct {
	JWTkey []byte
	Repo   repo.Repository
	Logger *slog.Logger
	// Secure marks the session cookie HTTPS-only.
	Secure bool
}

type Loginrequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// limiterIdleTTL is how long a client's limiter is kept after its last request.
const limiterIdleTTL = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type IPRateLimiter struct {
	ips       map[string]*ipLimiter
	mu        sync.Mutex
	r         rate.Limit
	b         int
	now       func() time.Time
	lastSweep time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*ipLimiter),
		r:   r,
		b:   b,
		now: time.Now,
	}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	if now.Sub(i.lastSweep) >= limiterIdleTTL {
		i.sweep(now)
	}

	entry, exists := i.ips[ip]
	if !exists {
		entry = &ipLimiter{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// sweep drops limiters idle for longer than limiterIdleTTL. Caller holds mu.
func (i *IPRateLimiter) sweep(now time.Time) {
	for ip, entry := range i.ips {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(i.ips, ip)
		}
	}
	i.lastSweep = now
}

func (i *IPRateLimiter) LimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !i.getLimiter(ClientIP(r)).Allow() {
			http.Error(w, "Too Many Requests. Try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP is the host part of RemoteAddr.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// Authenticate checks a login against the repository.
func (env *Authenv) Authenticate(ctx context.Context, login, password string) (int, error) {
	id, storedHash, err := env.Repo.GetByLogin(ctx, login)
	if err != nil {
		return 0, fmt.Errorf("lookup %q: %w", login, err)
	}
	if id == 0 {
		return 0, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)); err != nil {
		return 0, ErrInvalidCredentials
	}
	return id, nil
}

func (env *Authenv) IssueToken(userID int, login string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"login":   login,
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	})
	return token.SignedString(env.JWTkey)
}

func (env *Authenv) parse(tokenString string) (int, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return env.JWTkey, nil
	})
	if err != nil {
		return 0, "", err
	}
	if !token.Valid {
		return 0, "", jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", jwt.ErrTokenInvalidClaims
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, "", jwt.ErrTokenInvalidClaims
	}
	login, ok := claims["login"].(string)
	if !ok || login == "" {
		return 0, "", jwt.ErrTokenInvalidClaims
	}
	return int(userIDFloat), login, nil
}

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := r.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// AuthMiddleware accepts a token from the session cookie or a Bearer header.
func (env *Authenv) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := tokenFromRequest(r)
		if tokenString == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		userID, login, err := env.parse(tokenString)
		if err != nil {
			env.logger().Warn("access denied", "event", "access_denied", "reason", err.Error(),
				"path", r.URL.Path, "ip", ClientIP(r))
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), userID, login)))
	})
}

// WithUser returns a copy of ctx carrying the authenticated account.
func WithUser(ctx context.Context, userID int, login string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userLoginKey, login)
}

// UserFromContext returns the account set by AuthMiddleware.
func UserFromContext(ctx context.Context) (int, string, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	if !ok {
		return 0, "", false
	}
	login, _ := ctx.Value(userLoginKey).(string)
	return id, login, true
}

func (env *Authenv) AuthHandler(w http.ResponseWriter, r *http.Request) {
	var req Loginrequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Login = strings.TrimSpace(req.Login)
	if req.Login == "" || req.Password == "" {
		http.Error(w, "Login and password required", http.StatusBadRequest)
		return
	}

	id, err := env.Authenticate(r.Context(), req.Login, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		http.Error(w, "Invalid login or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		env.logger().Error("authenticate", "error", err)
		http.Error(w, "Authentication error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	tokenString, err := env.IssueToken(id, req.Login, now)
	if err != nil {
		env.logger().Error("sign token", "error", err)
		http.Error(w, "Authentication error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    tokenString,
		Expires:  now.Add(tokenTTL),
		Path:     "/",
		HttpOnly: true,
		Secure:   env.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": tokenString})
}

func (env *Authenv) logger() *slog.Logger {
	if env.Logger == nil {
		return slog.Default()
	}
	return env.Logger
}
