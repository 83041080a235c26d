package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Kirizan/kitt-sub000/ent"
	"github.com/Kirizan/kitt-sub000/ent/agent"
	"github.com/Kirizan/kitt-sub000/pkg/models"
	"github.com/google/uuid"
)

const (
	// DefaultHeartbeatTimeout is how long after the last heartbeat an
	// online agent is considered stale and swept offline.
	DefaultHeartbeatTimeout = 90 * time.Second

	tokenBytes     = 32
	tokenPrefixLen = 8

	// Failed token verifications per agent are limited to slow down
	// brute forcing: 1 attempt/sec sustained, burst of 5.
	authFailureRate  = rate.Limit(1)
	authFailureBurst = 5
)

// AgentService manages agent registration, token auth, and liveness.
type AgentService struct {
	client           *ent.Client
	logger           *slog.Logger
	heartbeatTimeout time.Duration

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client, logger *slog.Logger) *AgentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AgentService{
		client:           client,
		logger:           logger,
		heartbeatTimeout: DefaultHeartbeatTimeout,
		limiters:         make(map[string]*rate.Limiter),
	}
}

// SetHeartbeatTimeout overrides the staleness window (for tests and
// configuration).
func (s *AgentService) SetHeartbeatTimeout(d time.Duration) {
	if d > 0 {
		s.heartbeatTimeout = d
	}
}

// Provision registers a new agent and returns the raw token exactly once.
// Only the SHA-256 of the token is stored; the prefix survives for
// operator-facing identification.
func (s *AgentService) Provision(ctx context.Context, req models.ProvisionRequest) (*models.ProvisionResponse, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	token, hash, prefix, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	builder := s.client.Agent.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetStatus(agent.StatusOffline).
		SetTokenHash(hash).
		SetTokenPrefix(prefix)
	if req.Port > 0 {
		builder.SetPort(req.Port)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to provision agent: %w", err)
	}

	s.logger.Info("agent provisioned",
		slog.String("agent_id", a.ID),
		slog.String("name", a.Name),
		slog.String("token_prefix", prefix))

	return &models.ProvisionResponse{
		AgentID:     a.ID,
		Token:       token,
		TokenPrefix: prefix,
	}, nil
}

// RotateToken replaces an agent's token. The old token stops verifying
// immediately; the new raw token is returned once.
func (s *AgentService) RotateToken(ctx context.Context, name string) (*models.RotateTokenResponse, error) {
	a, err := s.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	token, hash, prefix, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if _, err := a.Update().SetTokenHash(hash).SetTokenPrefix(prefix).Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to rotate token: %w", err)
	}

	s.logger.Info("agent token rotated",
		slog.String("agent_id", a.ID),
		slog.String("name", a.Name),
		slog.String("token_prefix", prefix))

	return &models.RotateTokenResponse{Token: token, TokenPrefix: prefix}, nil
}

// VerifyToken checks a presented token against the stored hash in
// constant time. Repeated failures for the same agent are rate limited:
// once the failure budget is spent, verification rejects without touching
// the database until the limiter refills.
func (s *AgentService) VerifyToken(ctx context.Context, name, token string) (*ent.Agent, error) {
	if s.AuthThrottled(name) {
		return nil, ErrUnauthorized
	}

	a, err := s.client.Agent.Query().Where(agent.NameEQ(name)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Burn a fake comparison so unknown names cost the same as
			// known names with a bad token.
			fakeHash := sha256.Sum256([]byte(token))
			subtle.ConstantTimeCompare(fakeHash[:], fakeHash[:])
			s.failureLimiter(name).Allow()
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up agent: %w", err)
	}

	presented := sha256.Sum256([]byte(token))
	presentedHex := hex.EncodeToString(presented[:])
	if subtle.ConstantTimeCompare([]byte(presentedHex), []byte(a.TokenHash)) != 1 {
		s.failureLimiter(name).Allow() // spend one failure token
		s.logger.Warn("token verification failed",
			slog.String("name", name),
			slog.String("token_prefix", a.TokenPrefix))
		return nil, ErrUnauthorized
	}
	return a, nil
}

// AuthThrottled reports whether the agent has exhausted its failed-auth
// budget; callers should reject without touching the database.
func (s *AgentService) AuthThrottled(name string) bool {
	return s.failureLimiter(name).Tokens() <= 0
}

func (s *AgentService) failureLimiter(name string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.limiters[name]
	if !ok {
		l = rate.NewLimiter(authFailureRate, authFailureBurst)
		s.limiters[name] = l
	}
	return l
}

// Heartbeat records a heartbeat: refreshes last_heartbeat, flips the
// agent online, and absorbs the capability snapshot.
func (s *AgentService) Heartbeat(ctx context.Context, name string, req models.HeartbeatRequest) (*ent.Agent, error) {
	a, err := s.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	upd := a.Update().
		SetStatus(agent.StatusOnline).
		SetLastHeartbeat(time.Now())

	caps := req.Capabilities
	if caps.Hostname != "" {
		upd.SetHostname(caps.Hostname)
	}
	if caps.CPUArch != "" {
		upd.SetCPUArch(caps.CPUArch)
	}
	if caps.CPUInfo != "" {
		upd.SetCPUInfo(caps.CPUInfo)
	}
	if caps.GPUInfo != "" {
		upd.SetGpuInfo(caps.GPUInfo)
	}
	if caps.GPUCount > 0 {
		upd.SetGpuCount(caps.GPUCount)
	}
	if caps.RAMGB > 0 {
		upd.SetRAMGB(caps.RAMGB)
	}
	if caps.KittVersion != "" {
		upd.SetKittVersion(caps.KittVersion)
	}
	if caps.Details != nil {
		upd.SetHardwareDetails(caps.Details)
	}

	a, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record heartbeat: %w", err)
	}
	return a, nil
}

// GetByName retrieves an agent by its unique name.
func (s *AgentService) GetByName(ctx context.Context, name string) (*ent.Agent, error) {
	a, err := s.client.Agent.Query().Where(agent.NameEQ(name)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

// Get retrieves an agent by id.
func (s *AgentService) Get(ctx context.Context, id string) (*ent.Agent, error) {
	a, err := s.client.Agent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

// List returns all agents ordered by name.
func (s *AgentService) List(ctx context.Context) ([]*ent.Agent, error) {
	agents, err := s.client.Agent.Query().Order(ent.Asc(agent.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

// Unregister deletes an agent. The caller is responsible for making sure
// no campaign still targets it.
func (s *AgentService) Unregister(ctx context.Context, name string) error {
	n, err := s.client.Agent.Delete().Where(agent.NameEQ(name)).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to unregister agent: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	s.logger.Info("agent unregistered", slog.String("name", name))
	return nil
}

// MarkStaleOffline flips online agents whose last heartbeat is older than
// the timeout to offline. Returns the number of agents swept.
func (s *AgentService) MarkStaleOffline(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.heartbeatTimeout)
	n, err := s.client.Agent.Update().
		Where(
			agent.StatusEQ(agent.StatusOnline),
			agent.Or(
				agent.LastHeartbeatLT(cutoff),
				agent.LastHeartbeatIsNil(),
			),
		).
		SetStatus(agent.StatusOffline).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep stale agents: %w", err)
	}
	if n > 0 {
		s.logger.Info("stale agents marked offline", slog.Int("count", n))
	}
	return n, nil
}

// RunLivenessSweeper periodically sweeps stale agents until the context
// is cancelled. Intended to run as a background goroutine in the server.
func (s *AgentService) RunLivenessSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("liveness sweeper started", slog.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("liveness sweeper stopped")
			return
		case <-ticker.C:
			if _, err := s.MarkStaleOffline(ctx); err != nil {
				s.logger.Error("liveness sweep failed", slog.Any("error", err))
			}
		}
	}
}

// IsOnline reports liveness from the stored status and heartbeat window.
func (s *AgentService) IsOnline(a *ent.Agent) bool {
	if a.Status != agent.StatusOnline || a.LastHeartbeat == nil {
		return false
	}
	return time.Since(*a.LastHeartbeat) <= s.heartbeatTimeout
}

func newToken() (token, hash, prefix string, err error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", "", err
	}
	token = base64.RawURLEncoding.EncodeToString(buf)
	sum := sha256.Sum256([]byte(token))
	return token, hex.EncodeToString(sum[:]), token[:tokenPrefixLen], nil
}
