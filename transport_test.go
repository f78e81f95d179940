package wbs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTransport returns a Transport pointed at a fake server running handler.
func testTransport(t *testing.T, handler http.HandlerFunc, opts ...TransportOption) *Transport {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	opts = append([]TransportOption{WithHost(strings.TrimPrefix(ts.URL, "http://"))}, opts...)
	return NewTransport(opts...)
}

func TestCall_BuildsRequestURL(t *testing.T) {
	var gotPath string
	var gotQuery url.Values

	tr := testTransport(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status":0,"body":{}}`))
	})

	params := url.Values{}
	params.Set("email", "stfn+test@example.com")
	params.Set("hash", "abc")

	_, err := tr.Call(context.Background(), "account", "getuserslist", params)
	require.NoError(t, err)

	assert.Equal(t, "/account", gotPath)
	assert.Equal(t, "getuserslist", gotQuery.Get("action"))
	// the "+" must survive the round trip, i.e. values are URL-encoded
	assert.Equal(t, "stfn+test@example.com", gotQuery.Get("email"))
	assert.Equal(t, "abc", gotQuery.Get("hash"))
}

func TestCall_ReturnsBody(t *testing.T) {
	tr := testTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":0,"body":{"once":"abc123"}}`))
	})

	body, err := tr.Call(context.Background(), "once", "get", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"once":"abc123"}`, string(body))
}

func TestCall_MissingBodyIsNil(t *testing.T) {
	tr := testTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":0}`))
	})

	body, err := tr.Call(context.Background(), "user", "update", nil)
	require.NoError(t, err)
	assert.Nil(t, body)
}

func TestCall_NotJSONObject(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>boom</html>"},
		{"json array", `[1,2,3]`},
		{"json scalar", `42`},
		{"json string", `"ok"`},
		{"empty body", ``},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := testTransport(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			})
			_, err := tr.Call(context.Background(), "once", "probe", nil)
			require.ErrorIs(t, err, ErrTransport)
		})
	}
}

func TestCall_NoStatus(t *testing.T) {
	tr := testTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"body":{}}`))
	})
	_, err := tr.Call(context.Background(), "once", "probe", nil)
	require.ErrorIs(t, err, ErrProtocol)
}

func TestCall_StatusNotANumber(t *testing.T) {
	tr := testTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})
	_, err := tr.Call(context.Background(), "once", "probe", nil)
	require.ErrorIs(t, err, ErrProtocol)
}

func TestCall_KnownRemoteError(t *testing.T) {
	tr := testTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":247}`))
	})

	_, err := tr.Call(context.Background(), "getmeas", "getmeas", nil)
	require.Error(t, err)

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "getmeas", remoteErr.Service)
	assert.Equal(t, 247, remoteErr.Code)
	assert.Equal(t, "The userid provided is absent, or incorrect", remoteErr.Message)
}

func TestCall_UnknownRemoteError(t *testing.T) {
	tr := testTransport(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":999}`))
	})

	_, err := tr.Call(context.Background(), "account", "getuserslist", nil)

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "Remote service returned error code: 999", remoteErr.Error())
}

func TestCall_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	tr := NewTransport(WithHost(strings.TrimPrefix(ts.URL, "http://")))
	_, err := tr.Call(context.Background(), "once", "probe", nil)
	require.ErrorIs(t, err, ErrTransport)
}

func TestCall_ContextCancelled(t *testing.T) {
	tr := testTransport(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(`{"status":0}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := tr.Call(ctx, "once", "probe", nil)
	require.ErrorIs(t, err, ErrTransport)
}

func TestResponseCodes_Table(t *testing.T) {
	want := map[string]string{
		"account-2555": "An unknown error occurred",
		"account-264":  "The email address provided is either unknown or invalid",
		"account-100":  "The hash is missing, invalid, or does not match the provided email",
		"getmeas-2555": "An unknown error occurred",
		"getmeas-250":  "The userid and publickey provided do not match, or the user does not share its data",
		"getmeas-247":  "The userid provided is absent, or incorrect",
	}
	assert.Equal(t, want, responseCodes)
}
