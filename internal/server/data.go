package server

import (
	"net/http"
	"time"

	"github.com/nvalerio/wearsync/internal/domain"
	"github.com/nvalerio/wearsync/internal/xerrors"
	"github.com/nvalerio/wearsync/internal/xhttp"
	"github.com/nvalerio/wearsync/internal/xsync"
)

// defaultDataWindowDays is the range served when the query omits
// start_date and end_date.
const defaultDataWindowDays = 30

func (h *Handler) HandleData(w http.ResponseWriter, r *http.Request) {
	dataType, err := xsync.ParseDataType(r.PathValue("type"))
	if err != nil {
		xerrors.WriteError(r.Context(), w, xerrors.BadRequest(xerrors.WithMessage(err.Error())))
		return
	}
	userID, err := queryUserID(r)
	if err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}

	query := r.URL.Query()
	end := domain.Day(time.Now().UTC())
	start := end.AddDate(0, 0, -defaultDataWindowDays)
	if raw := query.Get("start_date"); raw != "" {
		if start, err = domain.ParseDay(raw); err != nil {
			xerrors.WriteError(r.Context(), w, xerrors.BadRequest(xerrors.WithMessage("invalid start_date")))
			return
		}
	}
	if raw := query.Get("end_date"); raw != "" {
		if end, err = domain.ParseDay(raw); err != nil {
			xerrors.WriteError(r.Context(), w, xerrors.BadRequest(xerrors.WithMessage("invalid end_date")))
			return
		}
	}

	var records any
	switch dataType {
	case xsync.DataTypeActivity:
		records, err = h.data.Activities(r.Context(), userID, start, end)
	case xsync.DataTypeHeartRate:
		records, err = h.data.HeartRates(r.Context(), userID, start, end)
	case xsync.DataTypeSleep:
		records, err = h.data.Sleeps(r.Context(), userID, start, end)
	case xsync.DataTypeWeight:
		records, err = h.data.Weights(r.Context(), userID, start, end)
	}
	if err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}

	xhttp.WriteOK(w, map[string]any{"data": records})
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	xhttp.WriteOK(w, map[string]string{"status": "ok"})
}
