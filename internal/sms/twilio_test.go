package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *TwilioClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewTwilioClient("AC123", "token", "+15550009999")
	require.NoError(t, err)
	client.baseURL = server.URL
	return client
}

func TestNewTwilioClient_MissingCredentials(t *testing.T) {
	tests := []struct {
		name       string
		sid, token string
		from       string
	}{
		{"missing sid", "", "token", "+1555"},
		{"missing token", "AC123", "", "+1555"},
		{"missing from", "AC123", "token", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTwilioClient(tt.sid, tt.token, tt.from)
			assert.Error(t, err)
		})
	}
}

func TestTwilioClient_Send(t *testing.T) {
	var gotPath, gotTo, gotFrom, gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "token", pass)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM1"}`))
	})

	err := client.Send(context.Background(), "+15550100001", "Join our contest!")
	require.NoError(t, err)
	assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", gotPath)
	assert.Equal(t, "+15550100001", gotTo)
	assert.Equal(t, "+15550009999", gotFrom)
	assert.Equal(t, "Join our contest!", gotBody)
}

func TestTwilioClient_SendRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":21211,"message":"Invalid 'To' phone number"}`))
	})

	err := client.Send(context.Background(), "+0", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "21211")
	assert.Contains(t, err.Error(), "Invalid 'To' phone number")
}

func TestTwilioClient_SendValidation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	assert.Error(t, client.Send(context.Background(), "", "hi"))
	assert.Error(t, client.Send(context.Background(), "+1555", ""))
}

func TestTwilioClient_ContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusCreated)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := client.Send(ctx, "+15550100001", "hi")
	assert.Error(t, err)
}
