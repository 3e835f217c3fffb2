package ui

import "testing"

func TestLocalization_DefaultLanguage(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language 'en', got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyAppTitle); got != "SoundCloud Playlist Downloader" {
		t.Errorf("Unexpected app title %q", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected 'ru', got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyCancel); got != "Отмена" {
		t.Errorf("Unexpected translation %q", got)
	}
	if got := l.GetText(KeySave); got != "Сохранить" {
		t.Errorf("Unexpected translation %q", got)
	}

	// Unknown language keeps the current one
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language unchanged for unknown code, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_SystemMapsToEnglish(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("system")

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected 'system' to resolve to 'en', got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_FallbackToKey(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key itself as fallback, got %q", got)
	}
}
