package emoji

import "testing"

var allShown = []Category{Recents, SmileysEmotion, PeopleBody, AnimalsNature, Objects}

func counts(n int) func(Category) int {
	return func(Category) int { return n }
}

func TestInitializeFallsBackWhenRecentsEmpty(t *testing.T) {
	prefs := newMemPrefs(map[string]int{PrefLastCategory: int(Recents)})
	s := NewSession(prefs)
	s.Initialize(allShown, SmileysEmotion, func() bool { return true }, counts(1))
	if s.Category() != SmileysEmotion {
		t.Fatalf("expected fallback to default, got %s", s.Category())
	}
}

func TestInitializeKeepsPopulatedRecents(t *testing.T) {
	prefs := newMemPrefs(map[string]int{PrefLastCategory: int(Recents)})
	s := NewSession(prefs)
	s.Initialize(allShown, SmileysEmotion, func() bool { return false }, counts(1))
	if s.Category() != Recents {
		t.Fatalf("expected recents to be kept, got %s", s.Category())
	}
}

func TestInitializeFallsBackForHiddenCategory(t *testing.T) {
	prefs := newMemPrefs(map[string]int{PrefLastCategory: int(Flags), PrefLastPage: 1})
	s := NewSession(prefs)
	s.Initialize(allShown, PeopleBody, nil, counts(4))
	if s.Category() != PeopleBody {
		t.Fatalf("expected default for hidden category, got %s", s.Category())
	}
	if s.Page() != 1 {
		t.Fatalf("expected page 1 to survive, got %d", s.Page())
	}
}

func TestInitializeClampsPageBeyondCount(t *testing.T) {
	prefs := newMemPrefs(map[string]int{PrefLastCategory: int(AnimalsNature), PrefLastPage: 7})
	s := NewSession(prefs)
	s.Initialize(allShown, SmileysEmotion, nil, counts(3))
	if s.Category() != AnimalsNature {
		t.Fatalf("expected persisted category, got %s", s.Category())
	}
	if s.Page() != 0 {
		t.Fatalf("expected page clamped to 0, got %d", s.Page())
	}
}

func TestInitializeClampsNegativePage(t *testing.T) {
	prefs := newMemPrefs(map[string]int{PrefLastCategory: int(Objects), PrefLastPage: -2})
	s := NewSession(prefs)
	s.Initialize(allShown, SmileysEmotion, nil, counts(3))
	if s.Page() != 0 {
		t.Fatalf("expected negative page reset, got %d", s.Page())
	}
}

func TestInitializeWithoutPersistedValuesUsesDefault(t *testing.T) {
	s := NewSession(newMemPrefs(nil))
	s.Initialize(allShown, PeopleBody, nil, counts(2))
	if s.Category() != PeopleBody || s.Page() != 0 {
		t.Fatalf("expected default state, got %s/%d", s.Category(), s.Page())
	}
}

func TestSettersWriteThrough(t *testing.T) {
	prefs := newMemPrefs(nil)
	s := NewSession(prefs)
	s.SetCategory(Objects)
	s.SetPage(2)
	if prefs.GetInt(PrefLastCategory, -1) != int(Objects) {
		t.Fatalf("expected category persisted")
	}
	if prefs.GetInt(PrefLastPage, -1) != 2 {
		t.Fatalf("expected page persisted")
	}
}

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	prefs := newMemPrefs(nil)
	prefs.failSet = true
	s := NewSession(prefs)
	s.SetCategory(FoodDrink)
	s.SetPage(3)
	if s.Category() != FoodDrink || s.Page() != 3 {
		t.Fatalf("expected in-memory state to win, got %s/%d", s.Category(), s.Page())
	}
	if _, ok := prefs.values[PrefLastCategory]; ok {
		t.Fatalf("expected nothing persisted")
	}
}
