package places

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchTextMapsPlacesToLeads(t *testing.T) {
	var gotRequest searchTextRequest
	var gotFieldMask, gotAPIKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/places:searchText", r.URL.Path)
		gotFieldMask = r.Header.Get("X-Goog-FieldMask")
		gotAPIKey = r.Header.Get("X-Goog-Api-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"places":[
			{"id":"place-1","displayName":{"text":"Cafe A"},"formattedAddress":"1 Main St","nationalPhoneNumber":"(555) 010-0000","websiteUri":"https://cafea.example","rating":4.5,"userRatingCount":120},
			{"id":"place-2","formattedAddress":"2 Main St"}
		]}`))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.baseURL = server.URL

	leads, err := client.SearchText(context.Background(), "coffee shop", "Austin, TX")
	require.NoError(t, err)

	assert.Equal(t, "coffee shop in Austin, TX", gotRequest.TextQuery)
	assert.Equal(t, 20, gotRequest.PageSize)
	assert.Equal(t, "test-key", gotAPIKey)
	assert.Contains(t, gotFieldMask, "places.displayName")

	require.Len(t, leads, 2)

	first := leads[0]
	assert.Equal(t, "place-1", first.PlaceID)
	assert.Equal(t, "Cafe A", first.Name)
	require.NotNil(t, first.Phone)
	assert.Equal(t, "(555) 010-0000", *first.Phone)
	require.NotNil(t, first.Rating)
	assert.InDelta(t, 4.5, *first.Rating, 0.001)
	require.NotNil(t, first.ReviewCount)
	assert.Equal(t, 120, *first.ReviewCount)
	assert.Equal(t, "https://www.google.com/maps/place/?q=place_id:place-1", first.MapsURL)
	assert.Nil(t, first.IsOpen, "open state is unknown from the search response")

	second := leads[1]
	assert.Equal(t, "Unknown", second.Name)
	assert.Nil(t, second.Phone)
	assert.Nil(t, second.Website)
	assert.Nil(t, second.Rating)
}

func TestSearchTextUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"quota"}`))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.baseURL = server.URL

	_, err := client.SearchText(context.Background(), "coffee shop", "Austin, TX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestSearchTextMissingAPIKey(t *testing.T) {
	client := NewClient("")
	_, err := client.SearchText(context.Background(), "coffee shop", "Austin, TX")
	assert.Error(t, err)
}
