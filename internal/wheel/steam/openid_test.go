package steam

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthURL(t *testing.T) {
	t.Parallel()

	v := NewOpenIDVerifier()
	raw := v.AuthURL("https://wheel.example/api/auth/steam/callback", "https://wheel.example")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "steamcommunity.com", u.Host)

	q := u.Query()
	require.Equal(t, "checkid_setup", q.Get("openid.mode"))
	require.Equal(t, "https://wheel.example/api/auth/steam/callback", q.Get("openid.return_to"))
	require.Equal(t, "https://wheel.example", q.Get("openid.realm"))
	require.Equal(t, "http://specs.openid.net/auth/2.0/identifier_select", q.Get("openid.identity"))
}

func TestVerify(t *testing.T) {
	t.Parallel()

	newVerifier := func(t *testing.T, handler http.HandlerFunc) *OpenIDVerifier {
		t.Helper()
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		v := NewOpenIDVerifier()
		v.Endpoint = srv.URL
		return v
	}

	callbackParams := func(claimedID string) url.Values {
		p := url.Values{}
		p.Set("openid.mode", "id_res")
		p.Set("openid.claimed_id", claimedID)
		p.Set("openid.sig", "sig-from-steam")
		return p
	}

	t.Run("valid assertion yields the steam id", func(t *testing.T) {
		var seenMode string
		v := newVerifier(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			seenMode = r.PostFormValue("openid.mode")
			_, _ = w.Write([]byte("ns:http://specs.openid.net/auth/2.0\nis_valid:true\n"))
		})

		id, ok, err := v.Verify(context.Background(),
			callbackParams("https://steamcommunity.com/openid/id/76561197960287930"))
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "76561197960287930", id)
		require.Equal(t, "check_authentication", seenMode)
	})

	t.Run("is_valid:false is rejected", func(t *testing.T) {
		v := newVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("ns:http://specs.openid.net/auth/2.0\nis_valid:false\n"))
		})

		_, ok, err := v.Verify(context.Background(),
			callbackParams("https://steamcommunity.com/openid/id/76561197960287930"))
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("identity field is used when claimed_id is absent", func(t *testing.T) {
		v := newVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("is_valid:true\n"))
		})

		p := url.Values{}
		p.Set("openid.mode", "id_res")
		p.Set("openid.identity", "https://steamcommunity.com/openid/id/76561197960287931")

		id, ok, err := v.Verify(context.Background(), p)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "76561197960287931", id)
	})

	t.Run("unparseable claimed id is rejected even when valid", func(t *testing.T) {
		v := newVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("is_valid:true\n"))
		})

		_, ok, err := v.Verify(context.Background(), callbackParams("https://example.com/not-steam"))
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestExtractSteamID(t *testing.T) {
	t.Parallel()

	require.Equal(t, "76561197960287930",
		extractSteamID("https://steamcommunity.com/openid/id/76561197960287930"))

	// Loose fallback catches odd but numeric claimed ids.
	require.Equal(t, "76561197960287930",
		extractSteamID("https://steamcommunity.com/profile?id=76561197960287930"))

	require.Empty(t, extractSteamID("https://example.com/alice"))
	require.Empty(t, extractSteamID(""))
}
