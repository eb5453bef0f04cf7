package capture_test

import (
	"encoding/base64"
	"testing"

	"github.com/mafredri/cdp/protocol/network"
	"github.com/stretchr/testify/assert"

	"beaconscope/internal/capture"
)

func TestToRequestInput_InlinePostData(t *testing.T) {
	t.Parallel()

	body := "a=1&b=2"
	ev := &network.RequestWillBeSentReply{
		RequestID: network.RequestID("req-1"),
		Request: network.Request{
			URL:      "https://www.facebook.com/tr?id=1",
			Method:   "POST",
			PostData: &body,
		},
	}

	in := capture.ToRequestInput(ev)
	assert.Equal(t, "req-1", in.ID)
	assert.Equal(t, "https://www.facebook.com/tr?id=1", in.URL)
	assert.Equal(t, "POST", in.Method)
	assert.Equal(t, "a=1&b=2", in.PostData)
}

func TestToRequestInput_DecodesPostDataEntries(t *testing.T) {
	t.Parallel()

	part1 := base64.StdEncoding.EncodeToString([]byte(`{"events":`))
	part2 := base64.StdEncoding.EncodeToString([]byte(`[]}`))
	ev := &network.RequestWillBeSentReply{
		RequestID: network.RequestID("req-2"),
		Request: network.Request{
			URL:    "https://edge.adobedc.net/ee/v2/interact",
			Method: "POST",
			PostDataEntries: []network.PostDataEntry{
				{Bytes: &part1},
				{Bytes: &part2},
			},
		},
	}

	in := capture.ToRequestInput(ev)
	assert.Equal(t, `{"events":[]}`, in.PostData)
}

func TestToRequestInput_FormatsWallTime(t *testing.T) {
	t.Parallel()

	ev := &network.RequestWillBeSentReply{
		RequestID: network.RequestID("req-4"),
		Request: network.Request{
			URL:    "https://www.google-analytics.com/collect?v=1",
			Method: "GET",
		},
		WallTime: network.TimeSinceEpoch(1700000000),
	}

	in := capture.ToRequestInput(ev)
	assert.Equal(t, "2023-11-14T22:13:20.000Z", in.Timestamp)
}

func TestToRequestInput_NoBody(t *testing.T) {
	t.Parallel()

	ev := &network.RequestWillBeSentReply{
		RequestID: network.RequestID("req-3"),
		Request: network.Request{
			URL:    "https://www.googletagmanager.com/gtm.js?id=GTM-A",
			Method: "GET",
		},
	}

	in := capture.ToRequestInput(ev)
	assert.Empty(t, in.PostData)
	assert.Empty(t, in.Timestamp)
}
