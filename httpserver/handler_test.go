package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tuanngo/vehicle-registration-backend/interfaces"
	"github.com/tuanngo/vehicle-registration-backend/metrics"
	"github.com/tuanngo/vehicle-registration-backend/registry"
	"github.com/tuanngo/vehicle-registration-backend/storage"
)

const (
	adminHex     = "0x1111111111111111111111111111111111111111"
	submitterHex = "0x2222222222222222222222222222222222222222"
)

type testServer struct {
	router   http.Handler
	registry *registry.MemoryRegistry
	store    *storage.MockAttachmentStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	admin, err := interfaces.NewAddressFromHex(adminHex)
	require.NoError(t, err)

	reg := registry.NewMemoryRegistry(admin)

	store := new(storage.MockAttachmentStore)
	store.On("Put", mock.Anything, mock.Anything).Return(interfaces.ContentID("QmAttachment"), nil).Maybe()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewHandler(HandlerConfig{
		Registry:   reg,
		Store:      store,
		Metrics:    metrics.NewWith("test", prometheus.NewRegistry()),
		GatewayURL: "https://ipfs.io",
		Log:        log,
	})

	srv, err := New(&HTTPServerConfig{
		ListenAddr:               "127.0.0.1:0",
		Log:                      log,
		DrainDuration:            10 * time.Millisecond,
		GracefulShutdownDuration: time.Second,
	}, handler)
	require.NoError(t, err)

	return &testServer{
		router:   srv.getRouter(),
		registry: reg,
		store:    store,
	}
}

func (ts *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}

func submitForm(t *testing.T, plate string, overrides map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	fields := map[string]string{
		"full_name":        "Nguyen Van A",
		"national_id":      "012345678901",
		"address":          "123 Tran Hung Dao, Hoan Kiem, Ha Noi",
		"phone":            "0912345678",
		"plate":            plate,
		"brand":            "Honda",
		"model":            "Wave Alpha",
		"color":            "Red",
		"manufacture_year": "2021",
	}
	for k, v := range overrides {
		fields[k] = v
	}

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	for _, file := range []string{"front_image", "back_image", "document"} {
		part, err := writer.CreateFormFile(file, file+".jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte(file + " bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func (ts *testServer) submit(t *testing.T, plate string) recordResponse {
	t.Helper()

	body, contentType := submitForm(t, plate, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/registrations", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(WalletAddressHeader, submitterHex)

	rr := ts.do(t, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var record recordResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &record))
	return record
}

func TestHandleSubmit(t *testing.T) {
	ts := newTestServer(t)

	record := ts.submit(t, "29A-12345")
	assert.Equal(t, interfaces.RecordID(1), record.ID)
	assert.Equal(t, "pending", record.StatusLabel)
	assert.Equal(t, "29A-12345", record.Vehicle.Plate)
	require.NotNil(t, record.Attachments)
	assert.Equal(t, "https://ipfs.io/ipfs/QmAttachment", record.Attachments.FrontImageURL)
}

func TestHandleSubmitRequiresWalletHeader(t *testing.T) {
	ts := newTestServer(t)

	body, contentType := submitForm(t, "29A-12345", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/registrations", body)
	req.Header.Set("Content-Type", contentType)

	rr := ts.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), WalletAddressHeader)
}

func TestHandleSubmitValidation(t *testing.T) {
	ts := newTestServer(t)

	body, contentType := submitForm(t, "29A-12345", map[string]string{"phone": "123"})
	req := httptest.NewRequest(http.MethodPost, "/api/registrations", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(WalletAddressHeader, submitterHex)

	rr := ts.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp struct {
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Fields)
	assert.Equal(t, "owner.phone", resp.Fields[0].Field)
}

func TestHandleSubmitDuplicatePlate(t *testing.T) {
	ts := newTestServer(t)
	ts.submit(t, "29A-12345")

	body, contentType := submitForm(t, "29a-12345", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/registrations", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(WalletAddressHeader, submitterHex)

	rr := ts.do(t, req)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestHandleListAndGet(t *testing.T) {
	ts := newTestServer(t)
	ts.submit(t, "29A-12345")
	ts.submit(t, "30K1-1234")

	rr := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/registrations", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var records []recordResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, interfaces.RecordID(1), records[0].ID)
	assert.Equal(t, interfaces.RecordID(2), records[1].ID)

	rr = ts.do(t, httptest.NewRequest(http.MethodGet, "/api/registrations/2", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var record recordResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &record))
	assert.Equal(t, "30K1-1234", record.Vehicle.Plate)

	rr = ts.do(t, httptest.NewRequest(http.MethodGet, "/api/registrations/99", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = ts.do(t, httptest.NewRequest(http.MethodGet, "/api/registrations/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandlePlateCheck(t *testing.T) {
	ts := newTestServer(t)
	ts.submit(t, "29A-12345")

	rr := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/plates/29a-12345", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"used":true`)

	rr = ts.do(t, httptest.NewRequest(http.MethodGet, "/api/plates/51F-00001", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"used":false`)
}

func reviewBody(decision string) *strings.Reader {
	return strings.NewReader(fmt.Sprintf(`{"decision":%q}`, decision))
}

func TestHandleReview(t *testing.T) {
	ts := newTestServer(t)
	record := ts.submit(t, "29A-12345")

	url := fmt.Sprintf("/api/admin/registrations/%d/review", record.ID)

	// Non-admin callers are refused.
	req := httptest.NewRequest(http.MethodPost, url, reviewBody("approve"))
	req.Header.Set(WalletAddressHeader, submitterHex)
	rr := ts.do(t, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	// Unknown decisions are refused.
	req = httptest.NewRequest(http.MethodPost, url, reviewBody("maybe"))
	req.Header.Set(WalletAddressHeader, adminHex)
	rr = ts.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// The admin approves.
	req = httptest.NewRequest(http.MethodPost, url, reviewBody("approve"))
	req.Header.Set(WalletAddressHeader, adminHex)
	rr = ts.do(t, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var updated recordResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "approved", updated.StatusLabel)

	// Terminal records cannot be reviewed again.
	req = httptest.NewRequest(http.MethodPost, url, reviewBody("reject"))
	req.Header.Set(WalletAddressHeader, adminHex)
	rr = ts.do(t, req)
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Unknown records yield 404.
	req = httptest.NewRequest(http.MethodPost, "/api/admin/registrations/99/review", reviewBody("approve"))
	req.Header.Set(WalletAddressHeader, adminHex)
	rr = ts.do(t, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandlePending(t *testing.T) {
	ts := newTestServer(t)
	first := ts.submit(t, "29A-12345")
	ts.submit(t, "30K1-1234")

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/admin/registrations/%d/review", first.ID), reviewBody("reject"))
	req.Header.Set(WalletAddressHeader, adminHex)
	require.Equal(t, http.StatusOK, ts.do(t, req).Code)

	rr := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/admin/pending", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var pending []recordResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, interfaces.RecordID(2), pending[0].ID)
}

func TestHandleAdminInfo(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/admin/info", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), adminHex)
	assert.Contains(t, rr.Body.String(), "10000000000000000")
}

func TestHandleAttachment(t *testing.T) {
	ts := newTestServer(t)
	ts.store.On("Get", mock.Anything, interfaces.ContentID("QmAttachment")).Return([]byte("attachment bytes"), nil)
	ts.store.On("Get", mock.Anything, interfaces.ContentID("QmMissing")).Return(nil, interfaces.ErrContentNotFound)

	rr := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/attachments/QmAttachment", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "attachment bytes", rr.Body.String())

	rr = ts.do(t, httptest.NewRequest(http.MethodGet, "/api/attachments/QmMissing", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, httptest.NewRequest(http.MethodGet, "/livez", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.do(t, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.do(t, httptest.NewRequest(http.MethodGet, "/drain", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.do(t, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = ts.do(t, httptest.NewRequest(http.MethodGet, "/undrain", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.do(t, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
