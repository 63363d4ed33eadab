package styleset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// styleSetOpts compares StyleSets structurally, including the layout flag.
var styleSetOpts = cmp.Options{
	cmp.AllowUnexported(StyleSet{}),
	cmp.Comparer(func(a, b Value) bool { return a.Equal(b) }),
}

func mustDecode(t *testing.T, doc string) *StyleSet {
	t.Helper()
	s, err := Decode([]byte(doc))
	require.NoError(t, err)
	return s
}

func TestResolve(t *testing.T) {
	s := mustDecode(t, `{
		"fontSize": "14px",
		"color": "#111",
		"responsive": {
			"desktop": {"fontSize": "20px", "textAlign": "left"},
			"mobile": {"textAlign": "center", "letterSpacing": "2px"}
		},
		"titleStyles": {
			"fontWeight": "400",
			"responsive": {
				"desktop": {"fontSize": "24px"},
				"mobile": {"color": "#ff0000"}
			}
		}
	}`)
	def := String("16px")

	tests := []struct {
		name   string
		device Device
		path   PropertyPath
		want   Value
	}{
		{"desktop override", DeviceDesktop, Prop("fontSize"), String("20px")},
		{"mobile inherits desktop over flat", DeviceMobile, Prop("fontSize"), String("20px")},
		{"tablet inherits desktop", DeviceTablet, Prop("textAlign"), String("left")},
		{"tablet never falls back to mobile", DeviceTablet, Prop("letterSpacing"), def},
		{"mobile override wins", DeviceMobile, Prop("textAlign"), String("center")},
		{"flat fallback", DeviceMobile, Prop("color"), String("#111")},
		{"default when absent everywhere", DeviceTablet, Prop("lineHeight"), def},
		{"flat path ignores device", DeviceMobile, FlatProp("fontSize"), String("14px")},
		{"group desktop", DeviceDesktop, GroupProp("fontSize", "titleStyles"), String("24px")},
		{"group mobile does not inherit desktop", DeviceMobile, GroupProp("fontSize", "titleStyles"), def},
		{"group mobile override", DeviceMobile, GroupProp("color", "titleStyles"), String("#ff0000")},
		{"group flat fallback", DeviceTablet, GroupProp("fontWeight", "titleStyles"), String("400")},
		{"missing group", DeviceDesktop, GroupProp("fontSize", "answerStyles"), def},
		{"missing nested group", DeviceDesktop, GroupProp("fontSize", "answerStyles", "inner"), def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(s, tt.device, tt.path, def)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestResolve_FallbackOrder(t *testing.T) {
	s := &StyleSet{Flat: Properties{"fontSize": String("14px")}}
	def := String("16px")

	assert.Equal(t, "14px", Resolve(s, DeviceMobile, Prop("fontSize"), def).Text())

	s2 := Mutate(s, DeviceDesktop, Prop("fontSize"), String("20px"))
	assert.Equal(t, "20px", Resolve(s2, DeviceMobile, Prop("fontSize"), def).Text())
	// the original is untouched
	assert.Equal(t, "14px", Resolve(s, DeviceMobile, Prop("fontSize"), def).Text())
}

func TestResolve_EmptyYieldsDefault(t *testing.T) {
	defaults := []Value{String("16px"), Number(1.4), {}}
	paths := []PropertyPath{Prop("fontSize"), FlatProp("color"), GroupProp("x", "a", "b")}
	sets := []*StyleSet{nil, New(), mustDecode(t, `null`), mustDecode(t, `{"responsive": null}`)}

	for _, s := range sets {
		for _, d := range Devices {
			for _, p := range paths {
				for _, def := range defaults {
					first := Resolve(s, d, p, def)
					second := Resolve(s, d, p, def)
					assert.True(t, def.Equal(first))
					assert.True(t, first.Equal(second))
				}
			}
		}
	}
}

func TestResolve_DoesNotMutate(t *testing.T) {
	s := mustDecode(t, `{"color": "red", "titleStyles": {"color": "blue"}}`)
	before := s.Clone()

	Resolve(s, DeviceMobile, Prop("color"), Value{})
	Resolve(s, DeviceMobile, GroupProp("color", "titleStyles"), Value{})
	ResolveAll(s, DeviceTablet)
	ResolveGroup(s, DeviceMobile, "titleStyles")

	if diff := cmp.Diff(before, s, styleSetOpts); diff != "" {
		t.Errorf("resolve mutated the style set (-before +after):\n%s", diff)
	}
}

func TestResolveAll(t *testing.T) {
	s := mustDecode(t, `{
		"fontSize": "14px",
		"color": "#111",
		"responsive": {
			"desktop": {"fontSize": "20px"},
			"tablet": {"color": "#222"},
			"mobile": {"fontSize": "12px"}
		}
	}`)

	t.Run("desktop", func(t *testing.T) {
		got := ResolveAll(s, DeviceDesktop)
		assert.Equal(t, "20px", got["fontSize"].Text())
		assert.Equal(t, "#111", got["color"].Text())
	})

	t.Run("tablet", func(t *testing.T) {
		got := ResolveAll(s, DeviceTablet)
		assert.Equal(t, "20px", got["fontSize"].Text())
		assert.Equal(t, "#222", got["color"].Text())
	})

	t.Run("mobile", func(t *testing.T) {
		got := ResolveAll(s, DeviceMobile)
		assert.Equal(t, "12px", got["fontSize"].Text())
		assert.Equal(t, "#111", got["color"].Text())
	})

	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, ResolveAll(nil, DeviceMobile))
	})

	t.Run("agrees with Resolve", func(t *testing.T) {
		for _, d := range Devices {
			all := ResolveAll(s, d)
			for name, v := range all {
				assert.True(t, v.Equal(Resolve(s, d, Prop(name), Value{})), "%s/%s", d, name)
			}
		}
	})
}

func TestResolveGroup(t *testing.T) {
	s := mustDecode(t, `{
		"questionStyles": {
			"color": "#000",
			"responsive": {"desktop": {"fontSize": "18px"}, "mobile": {"color": "#333"}}
		}
	}`)

	desktop := ResolveGroup(s, DeviceDesktop, "questionStyles")
	assert.Equal(t, "18px", desktop["fontSize"].Text())
	assert.Equal(t, "#000", desktop["color"].Text())

	mobile := ResolveGroup(s, DeviceMobile, "questionStyles")
	_, hasSize := mobile["fontSize"]
	assert.False(t, hasSize)
	assert.Equal(t, "#333", mobile["color"].Text())

	assert.Empty(t, ResolveGroup(s, DeviceDesktop, "answerStyles"))
}
