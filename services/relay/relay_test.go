package relay

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendSuccess(t *testing.T) {
	var gotBody string
	var gotContentType, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	payload := url.Values{}
	payload.Set("formType", "booking")
	payload.Set("name", "Riley")

	err := NewClient().Send(context.Background(), srv.URL, payload)
	require.NoError(t, err)

	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, payload.Encode(), gotBody)
}

func TestSendAccepts2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	assert.NoError(t, NewClient().Send(context.Background(), srv.URL, url.Values{}))
}

func TestSendUsesRelayErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors": [{"message": "Email address not confirmed"}]}`))
	}))
	defer srv.Close()

	err := NewClient().Send(context.Background(), srv.URL, url.Values{})
	require.Error(t, err)
	assert.Equal(t, "Email address not confirmed", err.Error())
}

func TestSendFallsBackToRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("  something went sideways  "))
	}))
	defer srv.Close()

	err := NewClient().Send(context.Background(), srv.URL, url.Values{})
	require.Error(t, err)
	assert.Equal(t, "something went sideways", err.Error())
}

func TestSendGenericMessageForEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient().Send(context.Background(), srv.URL, url.Values{})
	require.Error(t, err)
	assert.Equal(t, "Form submit failed (502)", err.Error())
}

func TestSendIgnoresEmptyJSONErrors(t *testing.T) {
	// A JSON body whose errors array is empty falls through to the raw
	// body, not a blank message.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"errors": []}`))
	}))
	defer srv.Close()

	err := NewClient().Send(context.Background(), srv.URL, url.Values{})
	require.Error(t, err)
	assert.Equal(t, `{"errors": []}`, err.Error())
}
