package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		prefix   string
		suffix   string
		expected string
	}{
		{"bus arrivals", "smartmirror://bus/N1/arrivals", "bus/", "/arrivals", "N1"},
		{"subway schedule", "smartmirror://subway/S-2/schedule", "subway/", "/schedule", "S-2"},
		{"wrong scheme", "file://bus/N1/arrivals", "bus/", "/arrivals", ""},
		{"missing suffix", "smartmirror://bus/N1", "bus/", "/arrivals", ""},
		{"empty id", "smartmirror://bus/arrivals", "bus/", "/arrivals", ""},
		{"nested id", "smartmirror://bus/a/b/arrivals", "bus/", "/arrivals", ""},
		{"empty URI", "", "bus/", "/arrivals", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractID(tt.uri, tt.prefix, tt.suffix))
		})
	}
}

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestServer_handleBusResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, &mockLookup{
		arrivalsFunc: func(_ context.Context, s domain.BusStop) (domain.BusPanel, error) {
			assert.Equal(t, "N1", s.NodeID)
			return domain.BusPanel{StopName: "정류장", Empty: "도착 예정 버스 없음"}, nil
		},
	})

	res, err := server.handleBusResource(ctx, readRequest("smartmirror://bus/N1/arrivals"))

	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, "application/json", res.Contents[0].MIMEType)
	assert.Contains(t, res.Contents[0].Text, "도착 예정 버스 없음")
}

func TestServer_handleBusResource_NotFound(t *testing.T) {
	server := newTestServer(t, &mockLookup{})

	_, err := server.handleBusResource(context.Background(), readRequest("smartmirror://bus/"))

	assert.Error(t, err)
}

func TestServer_handleSubwayResource(t *testing.T) {
	ctx := context.Background()

	t.Run("renders schedule", func(t *testing.T) {
		server := newTestServer(t, &mockLookup{
			scheduleFunc: func(_ context.Context, st domain.SubwayStation) (domain.SubwayPanel, error) {
				return domain.SubwayPanel{Station: st.ID, NextTrain: "4분"}, nil
			},
		})

		res, err := server.handleSubwayResource(ctx, readRequest("smartmirror://subway/S1/schedule"))

		require.NoError(t, err)
		assert.Contains(t, res.Contents[0].Text, "4분")
	})

	t.Run("lookup error is wrapped", func(t *testing.T) {
		server := newTestServer(t, &mockLookup{
			scheduleFunc: func(context.Context, domain.SubwayStation) (domain.SubwayPanel, error) {
				return domain.SubwayPanel{}, errors.New("boom")
			},
		})

		_, err := server.handleSubwayResource(ctx, readRequest("smartmirror://subway/S1/schedule"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading schedule")
	})
}
