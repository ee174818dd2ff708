package gcalendar_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wardrobe-planner/pkg/gcalendar"
)

func installedCreds(tokenURI string) []byte {
	return []byte(fmt.Sprintf(`{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"client_secret": "test-secret",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": %q,
			"redirect_uris": ["http://localhost"]
		}
	}`, tokenURI))
}

func TestAuthorizer(t *testing.T) {
	var gotCode string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotCode = r.Form.Get("code")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-123",
			"refresh_token": "refresh-456",
			"token_type":    "Bearer",
			"expires_in":    3600,
		})
	}))
	defer ts.Close()

	creds := installedCreds(ts.URL)
	auth, err := gcalendar.NewAuthorizer(creds)
	if err != nil {
		t.Fatalf("NewAuthorizer: %v", err)
	}

	u, err := url.Parse(auth.AuthURL("state-1"))
	if err != nil {
		t.Fatalf("parse auth url: %v", err)
	}
	q := u.Query()
	if q.Get("access_type") != "offline" || q.Get("state") != "state-1" || !strings.Contains(q.Get("scope"), "calendar.events") {
		t.Errorf("unexpected auth url: %s", u)
	}

	tokenPath := filepath.Join(t.TempDir(), "nested", "token.json")
	if err := auth.Exchange(context.Background(), "code-789", tokenPath); err != nil {
		t.Fatalf("Exchange: %v", err)
	}
	if gotCode != "code-789" {
		t.Errorf("code not sent, got %q", gotCode)
	}

	info, err := os.Stat(tokenPath)
	if err != nil {
		t.Fatalf("token not saved: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("token file mode = %v", info.Mode().Perm())
	}
	if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), creds, tokenPath); err != nil {
		t.Errorf("saved token should be loadable: %v", err)
	}
}

func TestNewAuthorizerRejectsBrokenCredentials(t *testing.T) {
	if _, err := gcalendar.NewAuthorizer([]byte(`{"broken":true}`)); err == nil {
		t.Error("expected error")
	}
}
