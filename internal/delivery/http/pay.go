package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"driver-buddy/internal/app/service"
	"driver-buddy/internal/delivery/http/middleware"
	"driver-buddy/internal/delivery/http/response"
	"driver-buddy/pkg/payroll"
	"driver-buddy/pkg/period"
)

type PayHandler interface {
	History(w http.ResponseWriter, r *http.Request)
	CreatePay(w http.ResponseWriter, r *http.Request)
	UpdatePay(w http.ResponseWriter, r *http.Request)
	DeletePay(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type payHandlerImpl struct {
	payService    *service.PayService
	exportService *service.ExportService
}

func NewPayHandler(pay *service.PayService, export *service.ExportService) PayHandler {
	return &payHandlerImpl{payService: pay, exportService: export}
}

// periodQuery reads ?period=week|month|all&date=YYYY-MM-DD, defaulting to the
// current week.
func (h *payHandlerImpl) periodQuery(r *http.Request) (period.Kind, time.Time, error) {
	kind := period.ParseKind(r.URL.Query().Get("period"))
	ref := h.payService.Now()
	if s := r.URL.Query().Get("date"); s != "" {
		d, err := period.ParseDate(s)
		if err != nil {
			return kind, ref, err
		}
		ref = d
	}
	return kind, ref, nil
}

func (h *payHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	kind, ref, err := h.periodQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.payService.History(r.Context(), middleware.UserID(r.Context()), kind, ref)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payHandlerImpl) CreatePay(w http.ResponseWriter, r *http.Request) {
	var req payroll.PayInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.payService.Save(r.Context(), middleware.UserID(r.Context()), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pay saved", result)
}

func (h *payHandlerImpl) UpdatePay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req payroll.PayInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.payService.Edit(r.Context(), middleware.UserID(r.Context()), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay updated", result)
}

func (h *payHandlerImpl) DeletePay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.payService.Delete(r.Context(), middleware.UserID(r.Context()), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay deleted", nil)
}

func (h *payHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	kind, ref, err := h.periodQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	// Buffer so a storage error can still become a JSON error response.
	var buf bytes.Buffer
	if err := h.exportService.WriteCSV(r.Context(), &buf, middleware.UserID(r.Context()), kind, ref); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "pay-"+string(kind)+"-"+ref.Format(period.DateLayout)+".csv"))
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("Failed to write export", "error", err)
	}
}
