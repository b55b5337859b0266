package resources

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterSchemes(t *testing.T) {
	tests := []struct {
		name    string
		schemes []string
		uri     string
		wantErr bool
	}{
		{
			name:    "scheme in set",
			schemes: []string{"file"},
			uri:     "file:///tmp/x.png",
			wantErr: false,
		},
		{
			name:    "scheme in larger set",
			schemes: []string{"file", "data"},
			uri:     "data:,hello",
			wantErr: false,
		},
		{
			name:    "scheme not in set",
			schemes: []string{"file", "data"},
			uri:     "https://example.com/x.png",
			wantErr: true,
		},
		{
			name:    "empty set rejects everything",
			schemes: nil,
			uri:     "file:///tmp/x.png",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.uri)
			require.NoError(t, err)

			got, err := FilterSchemes(tt.schemes, u)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsUnsupported(err))
				assert.Contains(t, err.Error(), tt.uri)

				return
			}

			require.NoError(t, err)
			assert.Same(t, u, got, "URL must be returned unchanged")
		})
	}
}
