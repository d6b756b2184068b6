package health

import "weather-checker/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}

// Indicator reports the health of one application component
type Indicator interface {
	Health() model.ComponentHealthStatus
}
