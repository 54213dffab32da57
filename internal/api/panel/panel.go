package panel

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	dto "roulette_tracker/internal/api/dto/panel"
	"roulette_tracker/internal/converter"
	"roulette_tracker/internal/roulette"
	"roulette_tracker/internal/service"
	"roulette_tracker/pkg/req"
	"roulette_tracker/pkg/resp"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

type HandlerDeps struct {
	Serv service.PanelService
}

type Handler struct {
	serv service.PanelService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// writeServiceError Ошибки сервиса в HTTP статусы
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, roulette.ErrInvalidPocket),
		errors.Is(err, service.ErrEmptyCroupierName),
		errors.Is(err, service.ErrInvalidPage):
		resp.WriteError(w, http.StatusBadRequest, err)
	case errors.Is(err, service.ErrCroupierNotFound),
		errors.Is(err, service.ErrSpinNotFound):
		resp.WriteError(w, http.StatusNotFound, err)
	case errors.Is(err, service.ErrNoActiveCroupier):
		resp.WriteError(w, http.StatusConflict, err)
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
		resp.WriteError(w, http.StatusInternalServerError, errors.New("internal error"))
	}
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) RecordSpin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	spin, err := h.serv.RecordSpin(r.Context(), payload.Pocket)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToSpinResponse(*spin))
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			resp.WriteError(w, http.StatusBadRequest, service.ErrInvalidPage)
			return
		}
		page = parsed
	}

	history, err := h.serv.History(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(*history))
}

func (h *Handler) DeleteSpin(w http.ResponseWriter, r *http.Request) {
	ts, err := strconv.ParseInt(chi.URLParam(r, "timestamp"), 10, 64)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, errors.New("invalid spin timestamp"))
		return
	}

	if err := h.serv.DeleteSpin(r.Context(), time.UnixMilli(ts)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.ClearHistory(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Croupiers(w http.ResponseWriter, r *http.Request) {
	list, err := h.serv.Croupiers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCroupierListResponse(*list))
}

func (h *Handler) AddCroupier(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CroupierRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	croupier, err := h.serv.AddCroupier(r.Context(), payload.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToCroupierResponse(*croupier))
}

func (h *Handler) SwitchCroupier(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SwitchCroupierRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	croupier, err := h.serv.SwitchCroupier(r.Context(), payload.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCroupierResponse(*croupier))
}

func (h *Handler) Analysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.serv.Analysis(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAnalysisResponse(*analysis))
}

func (h *Handler) PayoutTable(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPayoutTable(h.serv.PayoutTable()))
}

// Routes Маршруты панели
func (h *Handler) Routes(r chi.Router) {
	r.Get("/health", h.Health)

	r.Route("/croupiers", func(rr chi.Router) {
		rr.Get("/", h.Croupiers)
		rr.Post("/", h.AddCroupier)
		rr.Put("/active", h.SwitchCroupier)
	})

	r.Route("/spins", func(rr chi.Router) {
		rr.Get("/", h.History)
		rr.Post("/", h.RecordSpin)
		rr.Delete("/", h.ClearHistory)
		rr.Delete("/{timestamp}", h.DeleteSpin)
	})

	r.Get("/analysis", h.Analysis)
	r.Get("/payouts", h.PayoutTable)
}
