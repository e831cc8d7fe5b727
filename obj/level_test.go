package obj

import (
	"strings"
	"testing"

	"github.com/milk9111/platformer/motion"
)

func TestLoadEmbeddedLevel(t *testing.T) {
	lvl, err := LoadLevel("plain")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if lvl.Name != "plain" {
		t.Fatalf("got name %q, want plain", lvl.Name)
	}
	hasFloor := false
	for _, s := range lvl.Surfaces {
		tag, err := s.Surface()
		if err != nil {
			t.Fatalf("surface tag: %v", err)
		}
		if tag == motion.SurfaceFloor {
			hasFloor = true
		}
	}
	if !hasFloor {
		t.Fatalf("embedded level has no floor surface")
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			"valid",
			`
name: t
width: 100
height: 100
spawn: {x: 10, y: 50}
surfaces:
  - {tag: floor, x: 0, y: 0, w: 100, h: 10}
`,
			"",
		},
		{
			"bad_tag",
			`
name: t
width: 100
height: 100
surfaces:
  - {tag: slope, x: 0, y: 0, w: 100, h: 10}
`,
			"unknown surface tag",
		},
		{
			"no_surfaces",
			`
name: t
width: 100
height: 100
`,
			"no surfaces",
		},
		{
			"zero_size_surface",
			`
name: t
width: 100
height: 100
surfaces:
  - {tag: floor, x: 0, y: 0, w: 0, h: 10}
`,
			"invalid size",
		},
		{
			"bad_dimensions",
			`
name: t
width: 0
height: 100
surfaces:
  - {tag: floor, x: 0, y: 0, w: 100, h: 10}
`,
			"invalid dimensions",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseLevel([]byte(c.yaml))
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("ParseLevel: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("got error %v, want containing %q", err, c.wantErr)
			}
		})
	}
}
