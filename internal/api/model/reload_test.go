// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build unit

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"google.golang.org/protobuf/encoding/protowire"
	"pgregory.net/rapid"
)

func TestReload_MarshalDefaultResource(t *testing.T) {
	reload := &Reload{Resources: []string{DefaultResource}}

	data, err := reload.Marshal()
	require.NoError(t, err)

	expected := append([]byte{0x0a, byte(len(DefaultResource))}, DefaultResource...)
	assert.Equal(t, expected, data)
}

func TestReload_MarshalEmptyProducesEmptyBody(t *testing.T) {
	data, err := (&Reload{}).Marshal()
	require.NoError(t, err)
	assert.Empty(t, data)

	decoded, err := UnmarshalReload(nil)
	require.NoError(t, err)
	assert.Empty(t, decoded.Resources)
}

func TestReload_WireLayoutMatchesRepeatedStringField(t *testing.T) {
	reload := &Reload{Resources: []string{"/main/main.collectionc", "/main/player.goc", ""}}

	data, err := reload.Marshal()
	require.NoError(t, err)

	var seen []string
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		require.GreaterOrEqual(t, n, 0)
		assert.Equal(t, protowire.Number(1), num)
		assert.Equal(t, protowire.BytesType, typ)
		data = data[n:]

		value, m := protowire.ConsumeString(data)
		require.GreaterOrEqual(t, m, 0)
		seen = append(seen, value)
		data = data[m:]
	}

	assert.Equal(t, reload.Resources, seen)
}

func TestReload_RoundTripPreservesOrder(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		resources := rapid.SliceOf(rapid.String()).Draw(rt, "resources")

		data, err := (&Reload{Resources: resources}).Marshal()
		if err != nil {
			rt.Fatalf("marshal: %v", err)
		}

		decoded, err := UnmarshalReload(data)
		if err != nil {
			rt.Fatalf("unmarshal: %v", err)
		}

		if len(decoded.Resources) != len(resources) {
			rt.Fatalf("expected %d resources, got %d", len(resources), len(decoded.Resources))
		}
		for i := range resources {
			if decoded.Resources[i] != resources[i] {
				rt.Fatalf("resource %d: expected %q, got %q", i, resources[i], decoded.Resources[i])
			}
		}
	})
}

func TestUnmarshalReload_RejectsMalformedPayloads(t *testing.T) {
	t.Run("truncated length-delimited field", func(t *testing.T) {
		_, err := UnmarshalReload([]byte{0x0a, 0x05, '/'})
		assert.Error(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := UnmarshalReload([]byte{0x10, 0x01})
		assert.ErrorContains(t, err, "unknown fields")
	})

	t.Run("wrong wire type for resources", func(t *testing.T) {
		_, err := UnmarshalReload([]byte{0x08, 0x01})
		assert.Error(t, err)
	})
}

func TestReload_JSON(t *testing.T) {
	data, err := (&Reload{Resources: []string{"/a.collectionc", "/b.goc"}}).JSON()
	require.NoError(t, err)

	resources := gjson.GetBytes(data, "resources").Array()
	require.Len(t, resources, 2)
	assert.Equal(t, "/a.collectionc", resources[0].String())
	assert.Equal(t, "/b.goc", resources[1].String())

	empty, err := (&Reload{}).JSON()
	require.NoError(t, err)
	assert.True(t, gjson.GetBytes(empty, "resources").IsArray())
}
