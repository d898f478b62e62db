package server

import (
	"net/http"
	"net/url"

	"github.com/nvalerio/wearsync/internal/xerrors"
	"github.com/nvalerio/wearsync/internal/xhttp"
	"github.com/nvalerio/wearsync/internal/xslog"
)

func (h *Handler) HandleAuthURL(w http.ResponseWriter, r *http.Request) {
	provider, err := pathProvider(r)
	if err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}
	userID, err := queryUserID(r)
	if err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}

	authURL, state, err := h.auth.AuthURL(provider, userID)
	if err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}

	xhttp.WriteOK(w, map[string]string{"auth_url": authURL, "state": state})
}

// HandleCallback is the provider's redirect target. It never answers
// with an error payload: the browser always ends up back on the
// frontend, on the success or error page.
func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	provider, err := pathProvider(r)
	if err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}

	query := r.URL.Query()
	if reason := query.Get("error"); reason != "" {
		h.frontendRedirect(w, r, provider, "/error", url.Values{"message": {reason}})
		return
	}

	code := query.Get("code")
	if code == "" {
		h.frontendRedirect(w, r, provider, "/error", url.Values{"message": {"missing authorization code"}})
		return
	}

	userID, err := h.auth.Exchange(r.Context(), provider, code, query.Get("state"))
	if err != nil {
		h.logger.WarnContext(r.Context(), "oauth exchange failed",
			xslog.Provider(provider.String()), xslog.Error(err))
		h.frontendRedirect(w, r, provider, "/error", url.Values{"message": {"connection failed"}})
		return
	}

	h.logger.InfoContext(r.Context(), "oauth callback completed",
		xslog.UserID(userID), xslog.Provider(provider.String()))
	h.frontendRedirect(w, r, provider, "/success", nil)
}

func (h *Handler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	provider, err := pathProvider(r)
	if err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}
	userID, err := queryUserID(r)
	if err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}

	if err := h.auth.Disconnect(r.Context(), userID, provider); err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}

	xhttp.WriteNoContent(w)
}

type statusResponse struct {
	Connected bool   `json:"connected"`
	Provider  string `json:"provider,omitempty"`
}

func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUserID(r)
	if err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		xerrors.WriteError(r.Context(), w, err)
		return
	}

	resp := statusResponse{}
	if user.ConnectedProvider != nil {
		resp.Connected = true
		resp.Provider = user.ConnectedProvider.String()
	}
	xhttp.WriteOK(w, resp)
}
