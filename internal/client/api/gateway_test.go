package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanzas-network/fincli/internal/client/session"
	"github.com/finanzas-network/fincli/internal/common"
	"github.com/finanzas-network/fincli/internal/logging"
)

func newGateway(t *testing.T, handler http.HandlerFunc) (*Gateway, *session.MemStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewMemStore()
	return New(srv.URL, 5*time.Second, store, logging.NewNop()), store
}

func TestDispatch_AttachesBearerWhenTokenStored(t *testing.T) {
	var gotAuth string
	gw, store := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	})
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "T1"))

	resp, err := gw.Dispatch(ctx, http.MethodGet, "/users/me", "", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer T1", gotAuth)
}

func TestDispatch_NoHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	var hadHeader bool
	gw, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadHeader = r.Header["Authorization"]
	})

	resp, err := gw.Dispatch(context.Background(), http.MethodGet, "/mercado/dolar", "", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, gotAuth)
	assert.False(t, hadHeader)
}

func TestDispatch_ReadsStoreBeforeEveryRequest(t *testing.T) {
	var seen []string
	gw, store := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
	})
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "T1"))
	resp, err := gw.Dispatch(ctx, http.MethodGet, "/a", "", nil)
	require.NoError(t, err)
	resp.Body.Close()

	// Logout between requests: the evicted token must not reappear.
	require.NoError(t, store.Clear(ctx))
	resp, err = gw.Dispatch(ctx, http.MethodGet, "/b", "", nil)
	require.NoError(t, err)
	resp.Body.Close()

	require.Len(t, seen, 2)
	assert.Equal(t, "Bearer T1", seen[0])
	assert.Empty(t, seen[1])
}

func TestDispatch_StampsRequestID(t *testing.T) {
	var ids []string
	gw, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get("X-Request-Id"))
	})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		resp, err := gw.Dispatch(ctx, http.MethodGet, "/", "", nil)
		require.NoError(t, err)
		resp.Body.Close()
	}

	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.NotEmpty(t, ids[1])
	assert.NotEqual(t, ids[0], ids[1])
}

func TestDispatch_TransportFailureIsEndpointUnavailable(t *testing.T) {
	store := session.NewMemStore()
	// Nothing listens here.
	gw := New("http://127.0.0.1:1", time.Second, store, logging.NewNop())

	_, err := gw.Dispatch(context.Background(), http.MethodGet, "/users/me", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEndpointUnavailable)
}

func TestDispatch_DoesNotRetry(t *testing.T) {
	var calls int
	gw, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	resp, err := gw.Dispatch(context.Background(), http.MethodGet, "/", "", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 1, calls)
}

func TestGetJSON_DecodesBody(t *testing.T) {
	gw, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7, "email": "a@b.com"}`))
	})

	var out struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, gw.GetJSON(context.Background(), "/users/me", &out))
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, "a@b.com", out.Email)
}

func TestGetJSON_NonSuccessBecomesStatusError(t *testing.T) {
	gw, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Could not validate credentials"}`))
	})

	err := gw.GetJSON(context.Background(), "/users/me", &struct{}{})
	require.Error(t, err)

	var st *StatusError
	require.True(t, errors.As(err, &st))
	assert.Equal(t, http.StatusUnauthorized, st.Code)
	assert.Equal(t, "Could not validate credentials", st.Detail)
}

func TestGetJSON_MalformedBodyIsError(t *testing.T) {
	gw, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	err := gw.GetJSON(context.Background(), "/users/me", &struct{}{})
	require.Error(t, err)
}

func TestPostForm_SendsEncodedBody(t *testing.T) {
	var gotContentType, gotUser, gotPass string
	gw, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseForm())
		gotUser = r.PostFormValue("username")
		gotPass = r.PostFormValue("password")
		w.Write([]byte(`{}`))
	})

	form := url.Values{}
	form.Set("username", "u@x.com")
	form.Set("password", "p")
	require.NoError(t, gw.PostForm(context.Background(), "/auth/login", form, nil))

	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "u@x.com", gotUser)
	assert.Equal(t, "p", gotPass)
}

func TestPostJSON_SendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody struct {
		Email string `json:"email"`
	}
	gw, _ := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{}`))
	})

	in := map[string]string{"email": "a@b.com"}
	require.NoError(t, gw.PostJSON(context.Background(), "/register", in, nil))

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "a@b.com", gotBody.Email)
}

func TestStatusError_Error(t *testing.T) {
	assert.Equal(t, "backend returned 404", (&StatusError{Code: 404}).Error())
	assert.Equal(t, "backend returned 409: Email ya registrado",
		(&StatusError{Code: 409, Detail: "Email ya registrado"}).Error())
}
