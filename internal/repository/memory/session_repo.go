package memory

import (
	"context"
	"fmt"
	"sync"

	"fractional-quest-backend/internal/domain"
)

// sessionRepo keeps onboarding sessions in process memory.
// Sessions are lost on restart.
type sessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]domain.OnboardingSession
}

func NewSessionRepository() domain.SessionRepository {
	return &sessionRepo{sessions: make(map[string]domain.OnboardingSession)}
}

func (r *sessionRepo) Create(ctx context.Context, session *domain.OnboardingSession) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("failed to create session: missing id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return fmt.Errorf("failed to create session: %s already exists", session.ID)
	}
	r.sessions[session.ID] = cloneSession(*session)

	return nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*domain.OnboardingSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("failed to get session %s: %w", id, domain.ErrSessionNotFound)
	}

	out := cloneSession(session)
	return &out, nil
}

func (r *sessionRepo) Update(ctx context.Context, session *domain.OnboardingSession) error {
	if session == nil {
		return fmt.Errorf("failed to update session: nil session")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; !ok {
		return fmt.Errorf("failed to update session %s: %w", session.ID, domain.ErrSessionNotFound)
	}
	r.sessions[session.ID] = cloneSession(*session)

	return nil
}

// cloneSession copies the slice and pointer fields so callers cannot mutate stored state
func cloneSession(s domain.OnboardingSession) domain.OnboardingSession {
	if s.Onboarding.Industries != nil {
		s.Onboarding.Industries = append([]string{}, s.Onboarding.Industries...)
	}
	if s.Onboarding.YearsExperience != nil {
		years := *s.Onboarding.YearsExperience
		s.Onboarding.YearsExperience = &years
	}
	if s.Onboarding.TargetCompensation != nil {
		comp := *s.Onboarding.TargetCompensation
		s.Onboarding.TargetCompensation = &comp
	}
	return s
}
