package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beaconscope/pkg/api"
	"beaconscope/pkg/model"
)

func TestService_Parse(t *testing.T) {
	t.Parallel()

	svc := api.NewService(nil)

	res := svc.Parse(model.RequestInput{URL: "https://www.googletagmanager.com/gtm.js?id=GTM-XYZ"})
	assert.Equal(t, "GOOGLETAGMANAGER", res.Provider.Key)

	res = svc.Parse(model.RequestInput{URL: "https://example.com/app.js"})
	assert.Empty(t, res.Provider.Key)

	assert.True(t, svc.Matches("https://www.facebook.com/tr?id=1"))
	assert.False(t, svc.Matches("https://example.com/"))
}

func TestService_UnknownSession(t *testing.T) {
	t.Parallel()

	svc := api.NewService(nil)

	_, err := svc.Results("missing")
	require.ErrorContains(t, err, "not found")

	_, err = svc.Stats("missing")
	require.ErrorContains(t, err, "not found")

	err = svc.StopCapture("missing")
	assert.ErrorContains(t, err, "not found")
}
