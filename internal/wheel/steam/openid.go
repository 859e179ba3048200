// Package steam talks to the two Steam surfaces the service needs: the
// OpenID 2.0 login endpoint used as the one-shot identity assertion, and the
// Web API used to read libraries, friends and store metadata.
package steam

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// DefaultOpenIDEndpoint is Steam's production OpenID 2.0 endpoint.
const DefaultOpenIDEndpoint = "https://steamcommunity.com/openid/login"

var (
	claimedIDPattern = regexp.MustCompile(`openid/id/(\d+)`)

	// looseIDPattern tolerates claimed_id shapes Steam has used over the
	// years: any long run of digits in the URL.
	looseIDPattern = regexp.MustCompile(`(\d{6,})`)
)

// OpenIDVerifier builds login redirects and verifies the signed assertion
// Steam sends back. Endpoint and HTTPClient are swappable so tests can point
// at a local server.
type OpenIDVerifier struct {
	Endpoint   string
	HTTPClient *http.Client
}

func NewOpenIDVerifier() *OpenIDVerifier {
	return &OpenIDVerifier{
		Endpoint:   DefaultOpenIDEndpoint,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthURL returns the checkid_setup redirect that sends the browser to the
// Steam login page. returnTo is where Steam sends the assertion; realm is the
// trust root shown to the user.
func (v *OpenIDVerifier) AuthURL(returnTo, realm string) string {
	params := url.Values{}
	params.Set("openid.ns", "http://specs.openid.net/auth/2.0")
	params.Set("openid.mode", "checkid_setup")
	params.Set("openid.return_to", returnTo)
	params.Set("openid.realm", realm)
	params.Set("openid.identity", "http://specs.openid.net/auth/2.0/identifier_select")
	params.Set("openid.claimed_id", "http://specs.openid.net/auth/2.0/identifier_select")
	return v.Endpoint + "?" + params.Encode()
}

// Verify replays the callback parameters to Steam with mode switched to
// check_authentication. The assertion is good only when Steam answers
// is_valid:true; the SteamID is then pulled out of the claimed id. Every
// failure mode reports valid=false; the assertion is one-shot, so there is
// nothing for the caller to retry.
func (v *OpenIDVerifier) Verify(ctx context.Context, params url.Values) (steamID string, valid bool, err error) {
	verify := url.Values{}
	for k, vals := range params {
		for _, val := range vals {
			verify.Add(k, val)
		}
	}
	verify.Set("openid.mode", "check_authentication")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.Endpoint,
		strings.NewReader(verify.Encode()))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/plain, */*")

	resp, err := v.HTTPClient.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", false, err
	}

	if !strings.Contains(string(body), "is_valid:true") {
		return "", false, nil
	}

	claimed := params.Get("openid.claimed_id")
	if claimed == "" {
		claimed = params.Get("openid.identity")
	}

	id := extractSteamID(claimed)
	if id == "" {
		return "", false, nil
	}
	return id, true, nil
}

func extractSteamID(claimedID string) string {
	if m := claimedIDPattern.FindStringSubmatch(claimedID); m != nil {
		return m[1]
	}
	if m := looseIDPattern.FindStringSubmatch(claimedID); m != nil {
		return m[1]
	}
	return ""
}
