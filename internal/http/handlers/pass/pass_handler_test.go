package pass_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/walletobjects/v1"

	"github.com/diagnosis/wallet-pass/internal/domain"
	"github.com/diagnosis/wallet-pass/internal/http/handlers/pass"
	"github.com/diagnosis/wallet-pass/internal/platform/auth"
)

// ---------- Fakes ----------

type fakeBuilder struct {
	calls int
	last  domain.GuestInput
}

func (f *fakeBuilder) Build(in domain.GuestInput) *walletobjects.GenericObject {
	f.calls++
	f.last = in
	return &walletobjects.GenericObject{Id: "issuer.fixed", ClassId: "issuer.digital_door_pass"}
}

type fakeIssuer struct {
	calls   int
	payload auth.Payload
	err     error
}

func (f *fakeIssuer) Issue(p auth.Payload) (string, error) {
	f.calls++
	f.payload = p
	if f.err != nil {
		return "", f.err
	}
	return "header.claims.sig", nil
}

func setup() (*httptest.Server, *fakeBuilder, *fakeIssuer) {
	b, i := &fakeBuilder{}, &fakeIssuer{}
	r := chi.NewRouter()
	r.Mount("/create-pass", pass.NewHandler(b, i).Routes())
	return httptest.NewServer(r), b, i
}

func post(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

// ---------- Tests ----------

func TestCreate_Success(t *testing.T) {
	server, b, i := setup()
	defer server.Close()

	resp, out := post(t, server.URL+"/create-pass", `{"guestName":"Jane Doe","room":"204","unit":"12B"}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "https://pay.google.com/gp/v/save/header.claims.sig", out["saveUrl"])
	obj, ok := out["object"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "issuer.fixed", obj["id"])

	assert.Equal(t, 1, b.calls)
	assert.Equal(t, "12B", b.last.Unit)
	require.Equal(t, 1, i.calls)
	require.Len(t, i.payload.GenericObjects, 1)
	assert.Equal(t, "issuer.fixed", i.payload.GenericObjects[0].Id)
}

func TestCreate_MissingRequiredFields_NeverSigns(t *testing.T) {
	server, b, i := setup()
	defer server.Close()

	tests := []struct {
		name    string
		body    string
		missing []string
	}{
		{"no name", `{"room":"204"}`, []string{"guestName"}},
		{"no room", `{"guestName":"Jane"}`, []string{"room"}},
		{"empty strings", `{"guestName":"","room":""}`, []string{"guestName", "room"}},
		{"empty object", `{}`, []string{"guestName", "room"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, out := post(t, server.URL+"/create-pass", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, false, out["success"])
			assert.NotEmpty(t, out["timestamp"])
			for _, f := range tt.missing {
				assert.Contains(t, out["error"], f)
			}
		})
	}

	assert.Zero(t, b.calls)
	assert.Zero(t, i.calls)
}

func TestCreate_InvalidBody(t *testing.T) {
	server, _, i := setup()
	defer server.Close()

	for _, body := range []string{``, `not json`, `["guestName"]`, `"Jane"`, `null`, `42`} {
		t.Run(body, func(t *testing.T) {
			resp, out := post(t, server.URL+"/create-pass", body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, false, out["success"])
			assert.Equal(t, domain.ErrInvalidBody.Error(), out["error"])
		})
	}
	assert.Zero(t, i.calls)
}

func TestCreate_SigningFailure(t *testing.T) {
	server, _, i := setup()
	defer server.Close()
	i.err = &auth.SigningError{Op: "sign", Err: errors.New("crypto/rsa: message too long")}

	resp, out := post(t, server.URL+"/create-pass", `{"guestName":"Jane","room":"1"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, out["success"])
	assert.Contains(t, out["error"], "Failed to create JWT token")
	assert.NotEmpty(t, out["timestamp"])
	assert.Nil(t, out["saveUrl"])
}

func TestCreate_UnexpectedIssuerError(t *testing.T) {
	server, _, i := setup()
	defer server.Close()
	i.err = errors.New("something else")

	resp, out := post(t, server.URL+"/create-pass", `{"guestName":"Jane","room":"1"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to create pass", out["error"])
}

func TestCreate_WrongMethod(t *testing.T) {
	server, b, _ := setup()
	defer server.Close()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			req, _ := http.NewRequest(method, server.URL+"/create-pass", strings.NewReader(`{}`))
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
			var out map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.Equal(t, false, out["success"])
			assert.Equal(t, "Method not allowed. Use POST.", out["error"])
		})
	}
	assert.Zero(t, b.calls)
}

func TestCreate_Options(t *testing.T) {
	server, _, _ := setup()
	defer server.Close()

	req, _ := http.NewRequest(http.MethodOptions, server.URL+"/create-pass", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, resp.ContentLength)
}
