package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSlug(t *testing.T) {
	assert.Equal(t, "summer-sale", NormalizeSlug("  Summer Sale! "))
	assert.Equal(t, "cafe-creme", NormalizeSlug("Café Crème"))
	assert.Equal(t, "", NormalizeSlug("!!!"))
}

func TestCreatePageRequest_Validate(t *testing.T) {
	t.Run("slug from name", func(t *testing.T) {
		req := &CreatePageRequest{StoreID: "store-1", Name: " Landing Page "}
		slug, err := req.Validate()
		require.NoError(t, err)
		assert.Equal(t, "landing-page", slug)
		assert.Equal(t, "Landing Page", req.Name)
	})

	t.Run("explicit slug is normalized", func(t *testing.T) {
		req := &CreatePageRequest{StoreID: "store-1", Name: "Home", Slug: "My Home"}
		slug, err := req.Validate()
		require.NoError(t, err)
		assert.Equal(t, "my-home", slug)
	})

	tests := map[string]CreatePageRequest{
		"missing store": {Name: "Home"},
		"missing name":  {StoreID: "store-1", Name: "  "},
		"no slug chars": {StoreID: "store-1", Name: "!!!"},
	}
	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := req.Validate()
			assert.Error(t, err)
		})
	}
}

func TestGetPageRequest_FromURLParams(t *testing.T) {
	var req GetPageRequest
	require.NoError(t, req.FromURLParams(url.Values{"store_id": {"s"}, "id": {"p"}}))
	assert.Equal(t, "p", req.ID)

	assert.Error(t, (&GetPageRequest{}).FromURLParams(url.Values{"id": {"p"}}))
	assert.Error(t, (&GetPageRequest{}).FromURLParams(url.Values{"store_id": {"s"}}))
}

func TestListPagesRequest_FromURLParams(t *testing.T) {
	var req ListPagesRequest
	require.NoError(t, req.FromURLParams(url.Values{"store_id": {"s"}}))
	assert.Equal(t, 20, req.Limit)

	req = ListPagesRequest{}
	require.NoError(t, req.FromURLParams(url.Values{"store_id": {"s"}, "limit": {"500"}, "offset": {"10"}}))
	assert.Equal(t, 100, req.Limit)
	assert.Equal(t, 10, req.Offset)

	assert.Error(t, (&ListPagesRequest{}).FromURLParams(url.Values{"store_id": {"s"}, "limit": {"x"}}))
	assert.Error(t, (&ListPagesRequest{}).FromURLParams(url.Values{"store_id": {"s"}, "offset": {"-1"}}))
	assert.Error(t, (&ListPagesRequest{}).FromURLParams(url.Values{}))
}
