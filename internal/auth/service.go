package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymsplit/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL     = 48 * time.Hour
	tokenLength    = 40
	tokenKeyPrefix = "gymsplit-token||"
	tokensSetKey   = "gymsplit-tokens"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues opaque bearer tokens and maps them to user ids in redis.
type TokenService struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewTokenService(ttl time.Duration, redisClient *redis.Client) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TokenService{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	if err := s.redisClient.Set(ctx, tokenKeyPrefix+token, userID.String(), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}

	// add token to the set of issued tokens, used by ScanAndClean
	if err := s.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", fmt.Errorf("register token: %w", err)
	}

	return token, nil
}

func (s *TokenService) UserID(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrInvalidToken
	}

	val, err := s.redisClient.Get(ctx, tokenKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrInvalidToken
		}
		return uuid.Nil, fmt.Errorf("get token: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token user id [%s]: %w", val, err)
	}

	return userID, nil
}

func (s *TokenService) Revoke(ctx context.Context, token string) error {
	if err := s.redisClient.Del(ctx, tokenKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return fmt.Errorf("unregister token: %w", err)
	}
	return nil
}

// ScanAndClean drops tokens whose keys already expired from the tokens set.
func (s *TokenService) ScanAndClean(ctx context.Context) {
	tokens, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("!!! token service, scan and clean, get tokens: %s", err)
		return
	}

	if len(tokens) == 0 {
		log.Debugln("=> token service, scan and clean abort, no tokens")
		return
	}

	log.Debugf("=> token service, scan and clean [%d tokens] start ...", len(tokens))
	var toRemove []any
	for _, token := range tokens {
		exists, err := s.redisClient.Exists(ctx, tokenKeyPrefix+token).Result()
		if err != nil {
			log.Errorf("=> token service, scan and clean token %s: %s", token, err)
			continue
		}
		if exists == 0 {
			toRemove = append(toRemove, token)
		}
	}

	if len(toRemove) == 0 {
		return
	}

	if err := s.redisClient.SRem(ctx, tokensSetKey, toRemove...).Err(); err != nil {
		log.Errorf("=> token service, clean %d tokens: %s", len(toRemove), err)
		return
	}
	log.Debugf("=> token service, cleaned %d expired tokens", len(toRemove))
}
