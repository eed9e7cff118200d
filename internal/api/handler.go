package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mrz1836/addrgen/internal/service/address"
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

// Response bodies that must not echo caller input.
const (
	msgInternal       = "internal server error"
	msgSegwitRejected = "segwit address generation failed, please check if seed phrase and path are valid"
	msgP2SHRejected   = "p2sh address generation failed, please check if public keys are valid"
)

type handlers struct {
	svc *address.Service
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// fail maps a service error onto a status code. Rejected derivations get a
// fixed message; failures never leak their cause.
func (h *handlers) fail(w http.ResponseWriter, err error, rejected string) {
	switch {
	case addrerr.Is(err, addrerr.ErrDerivationRejected):
		writeText(w, http.StatusBadRequest, rejected)
	case addrerr.KindOf(err) == addrerr.KindValidation, addrerr.KindOf(err) == addrerr.KindInput:
		writeText(w, http.StatusPreconditionFailed, err.Error())
	default:
		writeText(w, http.StatusInternalServerError, msgInternal)
	}
}

func invalidInput(w http.ResponseWriter) {
	writeText(w, http.StatusPreconditionFailed, addrerr.ErrInvalidInput.Message)
}

func decodeBody(r *http.Request, w http.ResponseWriter, v any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = body.Close() }()
	return json.NewDecoder(body).Decode(v) == nil
}

func (h *handlers) index(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "index~")
}

func (h *handlers) healthcheck(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "Hello")
}

func (h *handlers) segwitFromPath(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.segwit(w, vars["seed_phrase"], vars["path"])
}

func (h *handlers) segwitFromBody(w http.ResponseWriter, r *http.Request) {
	var req segwitRequest
	if !decodeBody(r, w, &req) {
		invalidInput(w)
		return
	}
	h.segwit(w, req.phrase(), req.Path)
}

func (h *handlers) segwit(w http.ResponseWriter, phrase, path string) {
	if result := h.svc.ValidateMnemonic(phrase).Merge(h.svc.ValidatePath(path)); !result.OK() {
		writeText(w, http.StatusPreconditionFailed, result.Message())
		return
	}

	addr, err := h.svc.DeriveSegwitAddress(phrase, path)
	if err != nil {
		h.fail(w, err, msgSegwitRejected)
		return
	}
	writeText(w, http.StatusOK, addr)
}

func (h *handlers) p2shFromPath(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	n, errN := strconv.Atoi(vars["n"])
	m, errM := strconv.Atoi(vars["m"])
	if errN != nil || errM != nil {
		invalidInput(w)
		return
	}

	keys := strings.Split(vars["public_keys"], ",")
	for i := range keys {
		keys[i] = strings.TrimSpace(keys[i])
	}
	h.p2sh(w, n, m, keys)
}

func (h *handlers) p2shFromBody(w http.ResponseWriter, r *http.Request) {
	var req p2shRequest
	if !decodeBody(r, w, &req) {
		invalidInput(w)
		return
	}
	h.p2sh(w, req.N, req.M, req.PublicKeys)
}

func (h *handlers) p2sh(w http.ResponseWriter, n, m int, keys []string) {
	if result := h.svc.ValidateMultisigPolicy(n, m, keys); !result.OK() {
		writeText(w, http.StatusPreconditionFailed, result.Message())
		return
	}

	addr, err := h.svc.DeriveMultisigAddress(n, m, keys)
	if err != nil {
		h.fail(w, err, msgP2SHRejected)
		return
	}
	writeText(w, http.StatusOK, addr)
}
