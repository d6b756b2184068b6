package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-checker/internal/application/presenter"
	"weather-checker/internal/application/view"
	"weather-checker/internal/domain/entity"
	"weather-checker/internal/domain/model"
	"weather-checker/internal/domain/usecase/weather"
	"weather-checker/pkg/log"
	"weather-checker/pkg/msg"
)

// AnimationSource serves the preloaded animation documents
type AnimationSource interface {
	Get(category entity.ConditionCategory) (json.RawMessage, error)
	Has(category entity.ConditionCategory) bool
}

type WeatherController struct {
	api         *echo.Group
	contextPath string
	useCase     weather.UseCase
	animations  AnimationSource
}

func NewWeatherController(api *echo.Group, contextPath string, useCase weather.UseCase, animations AnimationSource) *WeatherController {
	return &WeatherController{api: api, contextPath: contextPath, useCase: useCase, animations: animations}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("", controller.Page)
	controller.api.GET("/", controller.Page)
	controller.api.GET("/places", controller.ListPlaces)
	controller.api.GET("/weather", controller.Lookup)
	controller.api.GET("/animations/:category", controller.Animation)
}

// Page godoc
// @Summary Weather checker page
// @Description Renders the place selector and, when a place is given, its weather card
// @Tags weather
// @Produce html
// @Param place query string false "Place to look up"
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (controller *WeatherController) Page(c echo.Context) error {
	place := c.QueryParam("place")
	data := view.PageData{
		Title:       msg.GetMessage("weather.title"),
		Subtitle:    msg.GetMessage("weather.subtitle"),
		SelectLabel: msg.GetMessage("weather.select-label"),
		ButtonLabel: msg.GetMessage("weather.button"),
		ContextPath: controller.contextPath,
		Places:      controller.useCase.ListPlaces(),
		Selected:    place,
	}

	if place == "" {
		return c.Render(http.StatusOK, "index.html", data)
	}

	report, err := controller.lookup(c, place)
	if err != nil {
		status, body := lookupErrorResponse(err)
		data.Error = body.Error
		return c.Render(status, "index.html", data)
	}

	card := presenter.NewWeatherCard(report, controller.animationBase())
	data.Card = &card
	data.ShowAnimation = controller.animations.Has(card.Category)
	return c.Render(http.StatusOK, "index.html", data)
}

// ListPlaces godoc
// @Summary List supported places
// @Tags weather
// @Produce json
// @Success 200 {array} string "Sorted place names"
// @Router /places [get]
func (controller *WeatherController) ListPlaces(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.ListPlaces())
}

// Lookup godoc
// @Summary Get current weather for a place
// @Description Fetches the current conditions of a supported place
// @Tags weather
// @Produce json
// @Param place query string true "Place name"
// @Success 200 {object} model.WeatherLookupResponseDTO "Weather report and card"
// @Failure 400 {object} model.ErrorResponseDTO "Missing or unsupported place"
// @Failure 404 {object} model.ErrorResponseDTO "City not found"
// @Failure 502 {object} model.ErrorResponseDTO "Weather provider unreachable"
// @Router /weather [get]
func (controller *WeatherController) Lookup(c echo.Context) error {
	report, err := controller.lookup(c, c.QueryParam("place"))
	if err != nil {
		status, body := lookupErrorResponse(err)
		return c.JSON(status, body)
	}
	return c.JSON(http.StatusOK, presenter.NewLookupResponse(report, controller.animationBase()))
}

// Animation godoc
// @Summary Get a condition animation
// @Tags weather
// @Produce json
// @Param category path string true "sunny, rainy or cloudy"
// @Success 200 {object} map[string]interface{} "Lottie document"
// @Failure 404 {object} model.ErrorResponseDTO "Unknown category or missing file"
// @Router /animations/{category} [get]
func (controller *WeatherController) Animation(c echo.Context) error {
	category, ok := entity.ParseConditionCategory(c.Param("category"))
	if !ok {
		return c.JSON(http.StatusNotFound, model.ErrorResponseDTO{Error: "unknown animation category"})
	}

	document, err := controller.animations.Get(category)
	if err != nil {
		return c.JSON(http.StatusNotFound, model.ErrorResponseDTO{Error: err.Error()})
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, document)
}

func (controller *WeatherController) lookup(c echo.Context, place string) (entity.WeatherReport, error) {
	report, err := controller.useCase.Lookup(c.Request().Context(), place)
	if err == nil {
		return report, nil
	}

	if errors.Is(err, entity.ErrPlaceRequired) || errors.Is(err, entity.ErrUnsupportedPlace) {
		return report, err
	}

	var upstreamErr *entity.UpstreamStatusError
	if errors.As(err, &upstreamErr) {
		log.Warnw(msg.GetMessage("weather.lookup.not-found", place, upstreamErr.StatusCode),
			"place", place, "status", upstreamErr.StatusCode)
	} else {
		log.Errorw(msg.GetMessage("weather.lookup.transport", place, err.Error()), "place", place, "error", err)
	}
	return report, err
}

func (controller *WeatherController) animationBase() string {
	return controller.contextPath + "/animations"
}

// lookupErrorResponse keeps one user-facing message for NotFound and TransportError while the status and reason tell them apart
func lookupErrorResponse(err error) (int, model.ErrorResponseDTO) {
	switch {
	case errors.Is(err, entity.ErrPlaceRequired):
		return http.StatusBadRequest, model.ErrorResponseDTO{Error: msg.GetMessage("weather.error.place-required"), Reason: "PLACE_REQUIRED"}
	case errors.Is(err, entity.ErrUnsupportedPlace):
		return http.StatusBadRequest, model.ErrorResponseDTO{Error: msg.GetMessage("weather.error.place-unsupported"), Reason: "UNSUPPORTED_PLACE"}
	}

	outcome := entity.OutcomeOf(entity.WeatherReport{}, err)
	status := http.StatusBadGateway
	if outcome.Kind == entity.OutcomeNotFound {
		status = http.StatusNotFound
	}
	return status, model.ErrorResponseDTO{Error: msg.GetMessage("weather.error.not-found"), Reason: string(outcome.Kind)}
}
