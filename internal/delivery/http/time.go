package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"driver-buddy/internal/app/service"
	"driver-buddy/internal/delivery/http/middleware"
	"driver-buddy/internal/delivery/http/response"
	"driver-buddy/pkg/period"
)

type TimeHandler interface {
	ListEntries(w http.ResponseWriter, r *http.Request)
	AddEntry(w http.ResponseWriter, r *http.Request)
	DeleteEntry(w http.ResponseWriter, r *http.Request)
	SubmitDay(w http.ResponseWriter, r *http.Request)
	ListSubmissions(w http.ResponseWriter, r *http.Request)
	Compliance(w http.ResponseWriter, r *http.Request)
}

type timeHandlerImpl struct {
	timeService *service.TimeService
}

func NewTimeHandler(timeService *service.TimeService) TimeHandler {
	return &timeHandlerImpl{timeService: timeService}
}

type addEntryRequest struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type submitDayRequest struct {
	Date string `json:"date"`
}

func (h *timeHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeService.ListEntries(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timeHandlerImpl) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.timeService.AddEntry(r.Context(), middleware.UserID(r.Context()), req.StartTime, req.EndTime)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Entry added", result)
}

func (h *timeHandlerImpl) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Entry ID must be a number")
		return
	}

	if err := h.timeService.DeleteEntry(r.Context(), middleware.UserID(r.Context()), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Entry deleted", nil)
}

// SubmitDay snapshots the working set. The body is optional and defaults the
// date to today.
func (h *timeHandlerImpl) SubmitDay(w http.ResponseWriter, r *http.Request) {
	var req submitDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request body")
		return
	}

	date := h.timeService.Now()
	if req.Date != "" {
		d, err := period.ParseDate(req.Date)
		if err != nil {
			response.BadRequest(w, err.Error())
			return
		}
		date = d
	}

	result, err := h.timeService.SubmitDay(r.Context(), middleware.UserID(r.Context()), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Day submitted", result)
}

func (h *timeHandlerImpl) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeService.ListSubmissions(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timeHandlerImpl) Compliance(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeService.Compliance(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
