package api

import (
	"testing"
	"time"

	"github.com/diogo/mindmate/internal/models"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name         string
		opts         []ClientOption
		wantErr      bool
		wantEndpoint string
		wantTimeout  time.Duration
	}{
		{
			name:         "defaults",
			wantEndpoint: models.DefaultEndpoint,
			wantTimeout:  300 * time.Second,
		},
		{
			name:         "custom endpoint and timeout",
			opts:         []ClientOption{WithEndpoint("https://support.example"), WithTimeout(5 * time.Second)},
			wantEndpoint: "https://support.example",
			wantTimeout:  5 * time.Second,
		},
		{
			name:    "empty endpoint",
			opts:    []ClientOption{WithEndpoint("  ")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]ClientOption{WithHTTPClient(NewMockHttpClient(nil, 200))}, tt.opts...)
			client, err := NewClient(opts...)

			if tt.wantErr {
				if err == nil {
					t.Error("NewClient() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewClient() unexpected error: %v", err)
			}

			if client.Endpoint() != tt.wantEndpoint {
				t.Errorf("Endpoint() = %s, want %s", client.Endpoint(), tt.wantEndpoint)
			}
			if client.Timeout() != tt.wantTimeout {
				t.Errorf("Timeout() = %v, want %v", client.Timeout(), tt.wantTimeout)
			}
		})
	}
}

func TestNewClient_BuildsTLSClient(t *testing.T) {
	client, err := NewClient(WithEndpoint("http://localhost:3000"))
	if err != nil {
		t.Fatalf("NewClient() unexpected error: %v", err)
	}
	if client.httpClient == nil {
		t.Error("Expected a TLS HTTP client to be created")
	}
}

func TestClient_ChatURL(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{"http://localhost:3000", "http://localhost:3000/chat"},
		{"http://localhost:3000/", "http://localhost:3000/chat"},
		{"https://host/base", "https://host/base/chat"},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			client, err := NewClient(WithEndpoint(tt.endpoint), WithHTTPClient(NewMockHttpClient(nil, 200)))
			if err != nil {
				t.Fatal(err)
			}
			if got := client.ChatURL(); got != tt.want {
				t.Errorf("ChatURL() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClient_Close(t *testing.T) {
	mock := NewMockHttpClient(nil, 200)
	client, err := NewClient(WithHTTPClient(mock))
	if err != nil {
		t.Fatal(err)
	}

	if client.IsClosed() {
		t.Error("New client should not be closed")
	}

	client.Close()
	client.Close() // second close is a no-op

	if !client.IsClosed() {
		t.Error("Client should be closed after Close()")
	}
	if !mock.IdleClosed {
		t.Error("Close() should release idle connections")
	}
}
