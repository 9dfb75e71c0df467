package emoji

import "testing"

func TestSearchRanksByName(t *testing.T) {
	pool := []Symbol{
		{Text: "😀", Name: "grinning face"},
		{Text: "🐻", Name: "bear"},
		{Text: "😁", Name: "beaming face with smiling eyes"},
		{Text: "🍇", Name: "grapes"},
	}
	got := Search("grin", pool)
	if len(got) != 1 || got[0].Text != "😀" {
		t.Fatalf("unexpected results %#v", got)
	}
	faces := Search("face", pool)
	if len(faces) != 2 || faces[0].Text != "😀" {
		t.Fatalf("expected closest face first, got %#v", faces)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	if got := Search("  ", []Symbol{{Name: "bear"}}); got != nil {
		t.Fatalf("expected nil for blank query, got %#v", got)
	}
	if got := Search("zzz", []Symbol{{Name: "bear"}}); got != nil {
		t.Fatalf("expected nil when nothing matches, got %#v", got)
	}
}

func TestPaletteSearchSkipsHiddenCategories(t *testing.T) {
	source := newFakeSource(map[Category][]Symbol{
		AnimalsNature: {{Text: "🐻", Code: 0x1F43B, Name: "bear"}},
		Flags:         {{Text: "🇧🇪", Code: 0x1F1E7, Name: "flag: belgium"}},
	})
	p := New(Options{Source: source, Grids: &fakeFactory{cellWidth: 4}, Probe: staticProbe(false), Width: 12})
	p.Initialize()

	if got := p.Search("belgium"); len(got) != 0 {
		t.Fatalf("expected hidden flags to be skipped, got %#v", got)
	}
	got := p.Search("bear")
	if len(got) != 1 || got[0].Text != "🐻" {
		t.Fatalf("expected bear, got %#v", got)
	}
}
