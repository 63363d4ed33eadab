package styleset

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		for _, in := range []string{"", "   ", "null", "[]", `"x"`, "42"} {
			s, err := Decode([]byte(in))
			require.NoError(t, err, in)
			assert.True(t, s.IsEmpty(), in)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Decode([]byte(`{"color": `))
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("nulls are tolerated", func(t *testing.T) {
		s := mustDecode(t, `{
			"color": null,
			"responsive": {"desktop": null, "mobile": {"fontSize": null, "color": "red"}},
			"marginByDevice": null,
			"paddingByDevice": {"desktop": {"top": null, "left": "8px"}},
			"titleStyles": {"responsive": null}
		}`)

		assert.Empty(t, s.Flat)
		_, hasDesktop := s.Responsive[DeviceDesktop]
		assert.False(t, hasDesktop)
		assert.Equal(t, Properties{"color": String("red")}, s.Responsive[DeviceMobile])
		assert.Nil(t, s.MarginByDevice)
		assert.Equal(t, SpacingBox{Left: 8}, s.PaddingByDevice[DeviceDesktop])
		require.NotNil(t, s.Group("titleStyles"))
		assert.Nil(t, s.Group("titleStyles").Responsive)
	})

	t.Run("explicit flat key", func(t *testing.T) {
		s := mustDecode(t, `{"flat": {"fontSize": "14px"}, "responsive": {}}`)

		assert.Equal(t, Properties{"fontSize": String("14px")}, s.Flat)
		assert.Empty(t, s.Groups)
		assert.NotNil(t, s.Responsive)
	})

	t.Run("unknown device keys are kept", func(t *testing.T) {
		s := mustDecode(t, `{"responsive": {"watch": {"fontSize": "8px"}}}`)

		assert.Equal(t, Properties{"fontSize": String("8px")}, s.Responsive[Device("watch")])
		assert.True(t, Resolve(s, DeviceMobile, Prop("fontSize"), Value{}).IsZero())
	})
}

func TestStyleSet_RoundTrip(t *testing.T) {
	docs := map[string]string{
		"legacy flat":   `{"fontSize": "14px", "lineHeight": 1.50, "hidden": false}`,
		"explicit flat": `{"flat": {"color": "red"}, "responsive": {"desktop": {"color": "blue"}}}`,
		"groups": `{
			"titleStyles": {"responsive": {"desktop": {"fontSize": "24px"}, "mobile": {}}},
			"descriptionStyles": {"color": "#333"}
		}`,
		"spacing": `{
			"marginTop": "16px",
			"marginByDevice": {
				"desktop": {"top": 16, "right": 0, "bottom": 0, "left": 0},
				"tablet": {"top": 0, "right": 0, "bottom": 0, "left": 0},
				"mobile": {"top": 0, "right": 0, "bottom": 0, "left": 10}
			}
		}`,
		"arrays": `{"fontFamilies": ["Inter", "sans-serif"]}`,
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			s := mustDecode(t, doc)

			data, err := json.Marshal(s)
			require.NoError(t, err)
			assert.JSONEq(t, doc, string(data))

			again := mustDecode(t, string(data))
			if diff := cmp.Diff(s, again, styleSetOpts); diff != "" {
				t.Errorf("reload differs (-first +second):\n%s", diff)
			}
		})
	}
}

func TestStyleSet_MixedFlatLayout(t *testing.T) {
	doc := `{"color": "red", "flat": {"fontSize": "14px"}, "responsive": {"mobile": {"fontSize": "12px"}}}`
	s := mustDecode(t, doc)

	assert.Equal(t, Properties{"color": String("red"), "fontSize": String("14px")}, s.Flat)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(data))

	t.Run("new flat properties go under flat", func(t *testing.T) {
		updated := Mutate(s, DeviceDesktop, FlatProp("lineHeight"), Number(1.5))

		data, err := json.Marshal(updated)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"color": "red",
			"flat": {"fontSize": "14px", "lineHeight": 1.5},
			"responsive": {"mobile": {"fontSize": "12px"}}
		}`, string(data))
	})

	t.Run("a key in both places keeps the later position", func(t *testing.T) {
		s := mustDecode(t, `{"color": "red", "flat": {"color": "blue"}}`)

		data, err := json.Marshal(s)
		require.NoError(t, err)
		assert.JSONEq(t, `{"flat": {"color": "blue"}}`, string(data))
	})
}

func TestStyleSet_PartialSpacingBoxIsCompleted(t *testing.T) {
	s := mustDecode(t, `{"paddingByDevice": {"mobile": {"top": "4"}}}`)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"paddingByDevice": {"mobile": {"top": 4, "right": 0, "bottom": 0, "left": 0}}}`, string(data))
}

func TestStyleSet_MutateThenReload(t *testing.T) {
	s := mustDecode(t, `{"fontSize": "14px"}`)
	s = Mutate(s, DeviceMobile, Prop("fontSize"), String("12px"))
	s = SetSpacing(s, SpacingMargin, DeviceDesktop, SideTop, 8)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	reloaded := mustDecode(t, string(data))

	for _, d := range Devices {
		assert.True(t, Resolve(s, d, Prop("fontSize"), Value{}).Equal(Resolve(reloaded, d, Prop("fontSize"), Value{})))
		assert.Equal(t, GetSpacing(s, SpacingMargin, d), GetSpacing(reloaded, SpacingMargin, d))
	}
}

func TestStyleSet_SQL(t *testing.T) {
	s := mustDecode(t, `{"color": "red"}`)

	v, err := s.Value()
	require.NoError(t, err)

	var scanned StyleSet
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, Properties{"color": String("red")}, scanned.Flat)

	require.NoError(t, scanned.Scan(`{"color": "blue"}`))
	assert.Equal(t, Properties{"color": String("blue")}, scanned.Flat)

	require.NoError(t, scanned.Scan(nil))
	assert.True(t, scanned.IsEmpty())

	assert.Error(t, scanned.Scan(42))
	assert.ErrorIs(t, scanned.Scan([]byte("{")), ErrInvalidDocument)
}

func TestValue_JSON(t *testing.T) {
	var props map[string]Value
	require.NoError(t, json.Unmarshal([]byte(`{"a": "x", "b": 1.25, "c": true, "d": null, "e": [1]}`), &props))

	assert.Equal(t, KindString, props["a"].Kind())
	assert.Equal(t, KindNumber, props["b"].Kind())
	assert.Equal(t, KindRaw, props["c"].Kind())
	assert.True(t, props["d"].IsZero())
	assert.Equal(t, "[1]", props["e"].Text())

	var v Value
	assert.Error(t, json.Unmarshal([]byte(`{"x": 1}`), &v))

	assert.True(t, Number(1).Equal(numberLiteral("1.0")))
	assert.False(t, Number(1).Equal(String("1")))
	assert.True(t, Number(1.0/zero()).IsZero())
}

func zero() float64 { return 0 }
