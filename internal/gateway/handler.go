// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package gateway

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "storage_gateway_http",
	Name:      "requests_total",
	Help:      "number of gateway requests by action and status code",
}, []string{"action", "code"})

const notAcceptableBody = "acceptable representations: " +
	mediaTypeBinary + ", " + mediaTypeText + ", " + mediaTypeBase58

// NewHandler returns the HTTP handler serving the gateway routes:
// GET /health, GET /meta and GET /{module}/{item}?k=...&k2=...
// Other methods on these routes are answered with 405.
func NewHandler(gateway *Gateway) http.Handler {
	h := &handler{gateway: gateway}

	router := mux.NewRouter()
	router.HandleFunc("/health", h.health).Methods(http.MethodGet)
	router.HandleFunc("/meta", h.meta).Methods(http.MethodGet)
	router.HandleFunc("/{module}/{item}", h.storage).Methods(http.MethodGet)
	return router
}

type handler struct {
	gateway *Gateway
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", mediaTypeText+"; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (h *handler) meta(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, Request{Action: ActionMeta})
}

func (h *handler) storage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()
	h.serve(w, r, Request{
		Action: ActionStorage,
		Module: vars["module"],
		Item:   vars["item"],
		Key1:   query.Get("k"),
		Key2:   query.Get("k2"),
	})
}

func (h *handler) serve(w http.ResponseWriter, r *http.Request, request Request) {
	format, ok := negotiate(r.Header.Get("Accept"))
	if !ok {
		requestsCounter.WithLabelValues(request.Action.String(),
			strconv.Itoa(http.StatusNotAcceptable)).Inc()
		writeText(w, http.StatusNotAcceptable, []byte(notAcceptableBody))
		return
	}

	response := h.gateway.Handle(r.Context(), request)
	requestsCounter.WithLabelValues(request.Action.String(),
		strconv.Itoa(response.Status)).Inc()

	if response.Err != nil {
		if response.Status >= http.StatusInternalServerError {
			logger.Warnf("%s %s: %d: %s", r.Method, r.URL.RequestURI(), response.Status, response.Err)
		} else {
			logger.Debugf("%s %s: %d: %s", r.Method, r.URL.RequestURI(), response.Status, response.Err)
		}
		writeText(w, response.Status, response.Body)
		return
	}

	w.Header().Set("Content-Type", format.contentType())
	w.WriteHeader(response.Status)
	_, _ = w.Write(format.encode(response.Body))
}

func writeText(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", mediaTypeText+"; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
