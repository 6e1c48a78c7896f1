package http

import (
	"encoding/json"
	"net/http"

	"driver-buddy/internal/app/service"
	"driver-buddy/internal/delivery/http/middleware"
	"driver-buddy/internal/delivery/http/response"
	"driver-buddy/internal/model"
)

type SettingsHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	driverService   *service.DriverService
	settingsService *service.SettingsService
}

func NewSettingsHandler(drivers *service.DriverService, settings *service.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{driverService: drivers, settingsService: settings}
}

type meResponse struct {
	Driver   model.Driver   `json:"driver"`
	Settings model.Settings `json:"settings"`
}

// Me registers the caller on first use and returns their profile.
func (h *settingsHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	driver, err := h.driverService.Ensure(r.Context(), model.Driver{ID: userID, Name: r.Header.Get("X-User-Name")})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	settings, err := h.settingsService.Load(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, meResponse{Driver: driver, Settings: settings})
}

func (h *settingsHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.Load(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settingsHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req model.Settings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.settingsService.Save(r.Context(), middleware.UserID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings saved", result)
}
