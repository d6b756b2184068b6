package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"weather-checker/internal/domain/entity"
	"weather-checker/internal/domain/model"
	"weather-checker/pkg/log"
	"weather-checker/pkg/msg"
)

// ErrAssetMissing is returned for a category whose animation could not be loaded.
var ErrAssetMissing = errors.New("animation asset missing")

// AnimationStore holds the Lottie documents loaded once at startup. It is read-only afterwards.
type AnimationStore struct {
	animations map[entity.ConditionCategory]json.RawMessage
	missing    map[entity.ConditionCategory]string
}

// LoadAnimations reads one file per category. Missing or invalid files are logged and skipped.
func LoadAnimations(paths map[string]string) *AnimationStore {
	store := &AnimationStore{
		animations: make(map[entity.ConditionCategory]json.RawMessage),
		missing:    make(map[entity.ConditionCategory]string),
	}

	for _, category := range entity.ConditionCategories {
		path := paths[string(category)]
		document, err := readAnimation(path)
		if err != nil {
			store.missing[category] = path
			log.Errorw(msg.GetMessage("animation.missing", path), "category", category, "error", err)
			continue
		}
		store.animations[category] = document
		log.Info(msg.GetMessage("animation.loaded", category, path))
	}

	return store
}

func readAnimation(path string) (json.RawMessage, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no path configured", ErrAssetMissing)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetMissing, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid json", ErrAssetMissing, path)
	}
	return json.RawMessage(data), nil
}

// Get returns the animation document of a category.
func (s *AnimationStore) Get(category entity.ConditionCategory) (json.RawMessage, error) {
	document, ok := s.animations[category]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAssetMissing, category)
	}
	return document, nil
}

// Has reports whether the category animation was loaded.
func (s *AnimationStore) Has(category entity.ConditionCategory) bool {
	_, ok := s.animations[category]
	return ok
}

// Health is DOWN when any animation is missing, with the missing paths as details
func (s *AnimationStore) Health() model.ComponentHealthStatus {
	details := make(map[string]string, len(s.missing))
	categories := make([]string, 0, len(s.missing))
	for category := range s.missing {
		categories = append(categories, string(category))
	}
	sort.Strings(categories)
	for _, category := range categories {
		details[category] = s.missing[entity.ConditionCategory(category)]
	}

	if len(details) > 0 {
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: map[string]string{"loaded": fmt.Sprint(len(s.animations))}}
}
