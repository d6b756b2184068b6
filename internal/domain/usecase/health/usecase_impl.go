package health

import (
	"weather-checker/internal/domain/model"
)

type healthUseCase struct {
	upstream   Indicator
	animations Indicator
}

func NewHealthUseCase(upstream Indicator, animations Indicator) UseCase {
	return &healthUseCase{
		upstream:   upstream,
		animations: animations,
	}
}

// CheckHealth is DOWN only when the upstream is. Missing animations degrade the page, not the lookup.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	upstreamHealth := useCase.upstream.Health()
	animationsHealth := useCase.animations.Health()

	overallStatus := model.StatusUp
	if upstreamHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:     overallStatus,
		Upstream:   upstreamHealth,
		Animations: animationsHealth,
	}
}
