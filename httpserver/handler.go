package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
	"github.com/tuanngo/vehicle-registration-backend/metrics"
	"github.com/tuanngo/vehicle-registration-backend/review"
	"github.com/tuanngo/vehicle-registration-backend/submission"
)

// Header constants used in HTTP requests.
const (
	// WalletAddressHeader carries the caller's wallet address. The header
	// only selects the identity a request acts as; the registry itself
	// enforces what that identity is allowed to do.
	WalletAddressHeader = "X-Wallet-Address"

	// maxSubmitBodySize bounds a multipart submission: two photos, one
	// document, and form fields.
	maxSubmitBodySize = 2*submission.MaxImageSize + submission.MaxDocumentSize + 1<<20
)

// Handler processes HTTP requests for the vehicle registration service. It
// integrates the submission flow, the review flow, and the attachment store.
type Handler struct {
	registry  interfaces.Registry
	store     interfaces.AttachmentStore
	submitter *submission.Submitter
	reviewer  *review.Reviewer
	metrics   *metrics.Metrics
	gateway   string
	log       *slog.Logger
}

// HandlerConfig collects the dependencies of a Handler.
type HandlerConfig struct {
	Registry interfaces.Registry
	Store    interfaces.AttachmentStore
	Metrics  *metrics.Metrics

	// GatewayURL is the public IPFS gateway used to render attachment
	// links in responses.
	GatewayURL string

	Log *slog.Logger
}

// NewHandler creates a new HTTP request handler with the specified dependencies.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		registry:  cfg.Registry,
		store:     cfg.Store,
		submitter: submission.NewSubmitter(cfg.Registry, cfg.Store, cfg.Log),
		reviewer:  review.NewReviewer(cfg.Registry, cfg.Log),
		metrics:   cfg.Metrics,
		gateway:   cfg.GatewayURL,
		log:       cfg.Log,
	}
}

// recordResponse is a registration record enriched with attachment links.
type recordResponse struct {
	interfaces.Record
	StatusLabel string           `json:"status_label"`
	Attachments *attachmentLinks `json:"attachments,omitempty"`
}

type attachmentLinks struct {
	FrontImageURL string `json:"front_image_url"`
	BackImageURL  string `json:"back_image_url"`
	DocumentURL   string `json:"document_url"`
}

func (h *Handler) recordResponse(record interfaces.Record) recordResponse {
	resp := recordResponse{Record: record, StatusLabel: record.Status.String()}

	front, back, document, err := record.AttachmentRef.Parts()
	if err != nil {
		h.log.Warn("Record carries malformed attachment reference",
			slog.Uint64("record_id", uint64(record.ID)),
			"err", err)
		return resp
	}

	resp.Attachments = &attachmentLinks{
		FrontImageURL: front.GatewayURL(h.gateway),
		BackImageURL:  back.GatewayURL(h.gateway),
		DocumentURL:   document.GatewayURL(h.gateway),
	}
	return resp
}

// HandleSubmit processes a new registration application.
//
// URL format: POST /api/registrations
// Required headers:
//   - X-Wallet-Address: the submitter's wallet address
//
// Request body: multipart form with fields full_name, national_id, address,
// phone, plate, brand, model, color, manufacture_year and files front_image,
// back_image, document.
//
// Response: 201 with the created record as JSON.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	caller, err := callerAddress(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxSubmitBodySize)
	req, err := parseSubmitForm(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.submitter.Submit(r.Context(), caller, req)
	if err != nil {
		h.metrics.SubmissionsRejected.Inc()
		h.writeError(w, err)
		return
	}
	h.metrics.SubmissionsTotal.Inc()

	h.writeJSON(w, http.StatusCreated, h.recordResponse(record))
}

// HandleList returns every registration record, in creation order.
//
// URL format: GET /api/registrations
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ids, err := h.registry.AllRecordIDs(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	records := make([]recordResponse, 0, len(ids))
	for _, id := range ids {
		record, err := h.registry.Record(r.Context(), id)
		if err != nil {
			h.writeError(w, err)
			return
		}
		records = append(records, h.recordResponse(record))
	}

	h.writeJSON(w, http.StatusOK, records)
}

// HandleGet returns a single registration record.
//
// URL format: GET /api/registrations/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := recordIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.registry.Record(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, h.recordResponse(record))
}

// HandlePlateCheck reports whether a plate is already registered.
//
// URL format: GET /api/plates/{plate}
func (h *Handler) HandlePlateCheck(w http.ResponseWriter, r *http.Request) {
	plate := interfaces.NormalizePlate(chi.URLParam(r, "plate"))
	if plate == "" {
		http.Error(w, "missing plate", http.StatusBadRequest)
		return
	}

	used, err := h.registry.IsPlateUsed(r.Context(), plate)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"plate": plate,
		"used":  used,
	})
}

// HandleAttachment streams attachment bytes by content identifier.
//
// URL format: GET /api/attachments/{cid}
func (h *Handler) HandleAttachment(w http.ResponseWriter, r *http.Request) {
	cid := chi.URLParam(r, "cid")
	if cid == "" {
		http.Error(w, "missing content id", http.StatusBadRequest)
		return
	}

	data, err := h.store.Get(r.Context(), interfaces.ContentID(cid))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.metrics.AttachmentFetches.Inc()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// HandleAdminInfo returns the admin address so clients can tell whether the
// connected wallet is the reviewer.
//
// URL format: GET /api/admin/info
func (h *Handler) HandleAdminInfo(w http.ResponseWriter, r *http.Request) {
	admin, err := h.registry.AdminAddress(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"admin_address":    admin.String(),
		"registration_fee": interfaces.RegistrationFeeWei().String(),
	})
}

// HandlePending returns all records awaiting review.
//
// URL format: GET /api/admin/pending
func (h *Handler) HandlePending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.reviewer.Pending(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	records := make([]recordResponse, 0, len(pending))
	for _, record := range pending {
		records = append(records, h.recordResponse(record))
	}
	h.writeJSON(w, http.StatusOK, records)
}

// reviewRequest is the JSON body of a review call.
type reviewRequest struct {
	Decision string `json:"decision"`
}

// HandleReview resolves a pending record.
//
// URL format: POST /api/admin/registrations/{id}/review
// Required headers:
//   - X-Wallet-Address: the admin's wallet address
//
// Request body: {"decision": "approve"} or {"decision": "reject"}
//
// Response: the updated record as JSON.
func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	caller, err := callerAddress(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := recordIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	var req reviewRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	var decision interfaces.ReviewDecision
	switch req.Decision {
	case "approve":
		decision = interfaces.DecisionApprove
	case "reject":
		decision = interfaces.DecisionReject
	default:
		http.Error(w, `decision must be "approve" or "reject"`, http.StatusBadRequest)
		return
	}

	record, err := h.reviewer.Review(r.Context(), caller, id, decision)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.metrics.ReviewsTotal.WithLabelValues(record.Status.String()).Inc()

	h.writeJSON(w, http.StatusOK, h.recordResponse(record))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("Failed to encode response", "err", err)
	}
}

// writeError maps domain errors onto HTTP status codes.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verrs submission.ValidationErrors
	if errors.As(err, &verrs) {
		h.writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "invalid submission",
			"fields": verrs,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, interfaces.ErrWrongFee):
		status = http.StatusPaymentRequired
	case errors.Is(err, interfaces.ErrNotAdmin):
		status = http.StatusForbidden
	case errors.Is(err, interfaces.ErrRecordNotFound), errors.Is(err, interfaces.ErrContentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, interfaces.ErrPlateAlreadyRegistered), errors.Is(err, interfaces.ErrAlreadyReviewed):
		status = http.StatusConflict
	case errors.Is(err, interfaces.ErrInvalidDecision):
		status = http.StatusBadRequest
	case errors.Is(err, interfaces.ErrBackendUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		h.log.Error("Request failed", "err", err)
	}

	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func callerAddress(r *http.Request) (interfaces.Address, error) {
	raw := r.Header.Get(WalletAddressHeader)
	if raw == "" {
		return interfaces.Address{}, fmt.Errorf("missing %s header", WalletAddressHeader)
	}

	addr, err := interfaces.NewAddressFromHex(raw)
	if err != nil {
		return interfaces.Address{}, fmt.Errorf("invalid %s header: %w", WalletAddressHeader, err)
	}
	return addr, nil
}

func recordIDParam(r *http.Request) (interfaces.RecordID, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid record id %q", raw)
	}
	return interfaces.RecordID(id), nil
}

func parseSubmitForm(r *http.Request) (submission.RegistrationRequest, error) {
	var req submission.RegistrationRequest

	if err := r.ParseMultipartForm(maxSubmitBodySize); err != nil {
		return req, fmt.Errorf("invalid multipart form: %w", err)
	}

	req.Owner = interfaces.OwnerInfo{
		FullName:   r.FormValue("full_name"),
		NationalID: r.FormValue("national_id"),
		Address:    r.FormValue("address"),
		Phone:      r.FormValue("phone"),
	}

	year, _ := strconv.ParseUint(r.FormValue("manufacture_year"), 10, 16)
	req.Vehicle = interfaces.VehicleInfo{
		Plate:           r.FormValue("plate"),
		Brand:           r.FormValue("brand"),
		Model:           r.FormValue("model"),
		Color:           r.FormValue("color"),
		ManufactureYear: uint16(year),
	}

	var err error
	if req.FrontImage, err = formFile(r, "front_image"); err != nil {
		return req, err
	}
	if req.BackImage, err = formFile(r, "back_image"); err != nil {
		return req, err
	}
	if req.Document, err = formFile(r, "document"); err != nil {
		return req, err
	}

	return req, nil
}

func formFile(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			// Validation reports the missing attachment with the rest of
			// the field errors.
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", field, err)
	}
	return data, nil
}
