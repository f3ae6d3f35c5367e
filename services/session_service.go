package services

import (
	"context"
	"encoding/json"
	"fmt"
	"plantstore_server/lib"
	"plantstore_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionService keeps authenticated identity (user_id, user_role) and the
// pending order pointer in Redis, expiring after a fixed inactivity window.
// Every successful load pushes the expiry out again.
type SessionService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	cacheService *CacheService
}

func NewSessionService(logger *gecho.Logger, cfg *structs.Config, cacheService *CacheService) *SessionService {
	return &SessionService{
		logger:       logger,
		cfg:          cfg,
		cacheService: cacheService,
	}
}

func sessionKey(id string) string {
	return "session:" + id
}

// Create stores a fresh session and returns the signed cookie value.
func (ss *SessionService) Create(ctx context.Context, userID int64, role string) (string, error) {
	sess := &structs.Session{
		ID:       uuid.NewString(),
		UserID:   userID,
		UserRole: role,
	}

	if err := ss.save(ctx, sess); err != nil {
		return "", err
	}

	token, err := lib.SignSessionID(sess.ID, ss.cfg.Session.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session id: %w", err)
	}

	ss.logger.Debug("Session created",
		gecho.Field("user_id", userID),
		gecho.Field("role", role),
	)

	return token, nil
}

// Load resolves the cookie value to a live session and refreshes the
// inactivity window. Returns lib.ErrInvalidSession for anything that should
// be treated as "not logged in": bad signature, unknown or expired session.
func (ss *SessionService) Load(ctx context.Context, token string) (*structs.Session, error) {
	sid, err := lib.ParseSessionToken(token, ss.cfg.Session.Secret)
	if err != nil {
		return nil, lib.ErrInvalidSession
	}

	raw, err := ss.cacheService.Client().Get(ctx, sessionKey(sid)).Result()
	if err == redis.Nil {
		return nil, lib.ErrInvalidSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	sess := &structs.Session{}
	if err := json.Unmarshal([]byte(raw), sess); err != nil {
		ss.logger.Error("Corrupt session payload", gecho.Field("error", err), gecho.Field("sid", sid))
		return nil, lib.ErrInvalidSession
	}
	sess.ID = sid

	// Sliding expiry: touching the session restarts the inactivity window.
	if err := ss.cacheService.Client().Expire(ctx, sessionKey(sid), ss.cfg.Session.InactivityWindow).Err(); err != nil {
		ss.logger.Warn("Failed to refresh session expiry", gecho.Field("error", err), gecho.Field("sid", sid))
	}

	return sess, nil
}

// SetPendingOrder records the cart's order ID on the session.
func (ss *SessionService) SetPendingOrder(ctx context.Context, sess *structs.Session, orderID int64) error {
	sess.PendingOrderID = &orderID
	return ss.save(ctx, sess)
}

// Destroy removes the session, dropping identity and cart pointer together.
func (ss *SessionService) Destroy(ctx context.Context, sess *structs.Session) error {
	if err := ss.cacheService.Client().Del(ctx, sessionKey(sess.ID)).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

func (ss *SessionService) save(ctx context.Context, sess *structs.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	err = ss.cacheService.Client().Set(ctx, sessionKey(sess.ID), payload, ss.cfg.Session.InactivityWindow).Err()
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}
