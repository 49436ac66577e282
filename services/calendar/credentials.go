package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
)

// CredentialProvider yields an OAuth token source for the calendar provider.
// The refresh lifecycle is the implementation's concern; callers only see a
// TokenSource.
type CredentialProvider interface {
	TokenSource(ctx context.Context) (oauth2.TokenSource, error)
}

// FileCredentialProvider reads an OAuth client-secrets file plus a cached
// token file from disk. Refresh happens transparently through the returned
// token source using the stored refresh token.
type FileCredentialProvider struct {
	CredentialsFile string
	TokenFile       string
}

func (p *FileCredentialProvider) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	secrets, err := os.ReadFile(p.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: read client secrets: %v", ErrProviderAuth, err)
	}

	conf, err := google.ConfigFromJSON(secrets, gcal.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("%w: parse client secrets: %v", ErrProviderAuth, err)
	}

	raw, err := os.ReadFile(p.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("%w: read cached token: %v", ErrProviderAuth, err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("%w: parse cached token: %v", ErrProviderAuth, err)
	}

	return conf.TokenSource(ctx, &tok), nil
}
