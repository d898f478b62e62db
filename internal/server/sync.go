package server

import (
	"net/http"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/nvalerio/wearsync/internal/domain"
	"github.com/nvalerio/wearsync/internal/xerrors"
	"github.com/nvalerio/wearsync/internal/xhttp"
	"github.com/nvalerio/wearsync/internal/xsync"
)

type syncRequest struct {
	UserID    uuid.UUID `json:"user_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	DataTypes []string  `json:"data_types,omitempty"`
	Days      int       `json:"days,omitempty"`
}

func decodeSyncRequest(r *http.Request) (*syncRequest, []xsync.DataType, error) {
	var req syncRequest
	if err := go_json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, nil, xerrors.BadRequest(xerrors.WithMessage("invalid request body"), xerrors.WithCause(err))
	}
	if req.UserID == uuid.Nil {
		return nil, nil, xerrors.BadRequest(xerrors.WithMessage("missing user_id"))
	}

	var dataTypes []xsync.DataType
	for _, raw := range req.DataTypes {
		dataType, err := xsync.ParseDataType(raw)
		if err != nil {
			return nil, nil, xerrors.BadRequest(xerrors.WithMessage(err.Error()))
		}
		dataTypes = append(dataTypes, dataType)
	}
	return &req, dataTypes, nil
}

func (h *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	req, dataTypes, err := decodeSyncRequest(r)
	if err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}

	start, err := domain.ParseDay(req.StartDate)
	if err != nil {
		xerrors.WriteError(r.Context(), w, xerrors.BadRequest(xerrors.WithMessage("invalid start_date")))
		return
	}
	end, err := domain.ParseDay(req.EndDate)
	if err != nil {
		xerrors.WriteError(r.Context(), w, xerrors.BadRequest(xerrors.WithMessage("invalid end_date")))
		return
	}

	result, err := h.sync.Sync(r.Context(), xsync.Request{
		UserID:    req.UserID,
		Start:     start,
		End:       end,
		DataTypes: dataTypes,
	})
	if err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}
	xhttp.WriteOK(w, result)
}

func (h *Handler) HandleSyncToday(w http.ResponseWriter, r *http.Request) {
	req, dataTypes, err := decodeSyncRequest(r)
	if err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}

	result, err := h.sync.SyncToday(r.Context(), req.UserID, dataTypes)
	if err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}
	xhttp.WriteOK(w, result)
}

func (h *Handler) HandleSyncHistorical(w http.ResponseWriter, r *http.Request) {
	req, dataTypes, err := decodeSyncRequest(r)
	if err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}

	result, err := h.sync.SyncHistorical(r.Context(), req.UserID, req.Days, dataTypes)
	if err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}
	xhttp.WriteOK(w, result)
}
