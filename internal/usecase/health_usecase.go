package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]interface{}
}

type healthUsecase struct {
	agentName    string
	googleKeySet bool
}

func NewHealthUsecase(agentName, googleAPIKey string) HealthUsecase {
	return &healthUsecase{
		agentName:    agentName,
		googleKeySet: googleAPIKey != "",
	}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]interface{} {
	return map[string]interface{}{
		"status":             "healthy",
		"agent":              u.agentName,
		"google_api_key_set": u.googleKeySet,
	}
}
