package scenarios

import (
	"testing"

	"github.com/vovakirdan/tui-popover/internal/geometry"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"tooltip", "dropdown", "contextmenu"} {
		if !Exists(id) {
			t.Errorf("scenario %q not registered", id)
		}
	}
}

func TestListSorted(t *testing.T) {
	infos := List()
	if len(infos) < 3 {
		t.Fatalf("List() returned %d scenarios, expected at least 3", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("List() not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil {
		t.Error("Create with unknown ID should fail")
	}
}

func TestScenarioGeometry(t *testing.T) {
	viewport := geometry.Size{Width: 80, Height: 24}

	for _, info := range List() {
		s, err := Create(info.ID)
		if err != nil {
			t.Fatalf("Create(%q): %v", info.ID, err)
		}

		t.Run(info.ID, func(t *testing.T) {
			anchor := s.Anchor(viewport)
			if anchor.W <= 0 || anchor.H <= 0 {
				t.Errorf("anchor has no area: %+v", anchor)
			}
			if anchor.X < 0 || anchor.Y < 0 {
				t.Errorf("anchor out of viewport: %+v", anchor)
			}
			if len(s.Content()) == 0 {
				t.Error("scenario has no content")
			}
			if s.Position() == "" {
				t.Error("scenario has no preferred position")
			}
		})
	}
}
