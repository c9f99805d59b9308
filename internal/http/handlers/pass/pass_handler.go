package pass

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"google.golang.org/api/walletobjects/v1"

	"github.com/diagnosis/wallet-pass/internal/domain"
	"github.com/diagnosis/wallet-pass/internal/http/response"
	"github.com/diagnosis/wallet-pass/internal/platform/auth"
	"github.com/diagnosis/wallet-pass/pkg/logger"
)

const maxBodyBytes = 64 << 10

type ObjectBuilder interface {
	Build(in domain.GuestInput) *walletobjects.GenericObject
}

type TokenIssuer interface {
	Issue(payload auth.Payload) (string, error)
}

type Handler struct {
	Objects ObjectBuilder
	Tokens  TokenIssuer
}

func NewHandler(objects ObjectBuilder, tokens TokenIssuer) *Handler {
	return &Handler{Objects: objects, Tokens: tokens}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)
	r.Options("/", Preflight)
	r.Post("/", h.create)
	return r
}

type createOut struct {
	Success bool                         `json:"success"`
	SaveURL string                       `json:"saveUrl"`
	Object  *walletobjects.GenericObject `json:"object"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	in, err := decodeGuest(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err == nil {
		err = in.Validate()
	}
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			logger.WarnContext(r.Context(), "Rejected pass request", "error", vErr.Error(), "fields", vErr.Fields)
			response.BadRequest(w, vErr.Error())
			return
		}
		response.InternalError(w, "Failed to read request")
		return
	}

	obj := h.Objects.Build(in)
	token, err := h.Tokens.Issue(auth.Payload{GenericObjects: []*walletobjects.GenericObject{obj}})
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to sign pass token", "error", err, "object_id", obj.Id)
		var sErr *auth.SigningError
		if errors.As(err, &sErr) {
			response.WriteError(w, http.StatusInternalServerError, "Failed to create JWT token: "+sErr.Err.Error(), response.CodeSigningFailed)
			return
		}
		response.InternalError(w, "Failed to create pass")
		return
	}

	logger.InfoContext(r.Context(), "Pass created", "object_id", obj.Id, "class_id", obj.ClassId)
	response.WriteJSON(w, http.StatusOK, createOut{
		Success: true,
		SaveURL: auth.SaveURL(token),
		Object:  obj,
	})
}

// decodeGuest accepts only a JSON object body.
func decodeGuest(body io.Reader) (domain.GuestInput, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return domain.GuestInput{}, domain.ErrInvalidBody
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return domain.GuestInput{}, domain.ErrInvalidBody
	}
	return domain.GuestInputFromMap(obj), nil
}

// Preflight answers OPTIONS with an empty 200. CORS headers come from the
// router's cors middleware.
func Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "POST, OPTIONS")
	response.MethodNotAllowed(w, "Method not allowed. Use POST.")
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	response.NotFound(w, "Not found")
}
