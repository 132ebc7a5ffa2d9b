package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PRIMARY_CALENDAR_ID", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("WORK_START", "")
	t.Setenv("WORK_END", "")
	t.Setenv("SLOT_MINUTES", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	cfg := Load()
	if cfg.Port != "3000" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.CalendarID != "primary" {
		t.Fatalf("expected default calendar id, got %s", cfg.CalendarID)
	}
	if cfg.Timezone != "Europe/Madrid" {
		t.Fatalf("expected default timezone, got %s", cfg.Timezone)
	}
	if cfg.WorkStart != "09:00" || cfg.WorkEnd != "18:00" {
		t.Fatalf("expected default working window, got %s-%s", cfg.WorkStart, cfg.WorkEnd)
	}
	if cfg.SlotMinutes != 30 {
		t.Fatalf("expected default slot minutes, got %d", cfg.SlotMinutes)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Fatalf("expected no default CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("PRIMARY_CALENDAR_ID", "clinic@example.com")
	t.Setenv("TIMEZONE", "America/New_York")
	t.Setenv("WORK_START", "08:30")
	t.Setenv("WORK_END", "17:00")
	t.Setenv("SLOT_MINUTES", "45")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.CalendarID != "clinic@example.com" {
		t.Fatalf("expected calendar id override, got %s", cfg.CalendarID)
	}
	if cfg.Timezone != "America/New_York" {
		t.Fatalf("expected timezone override, got %s", cfg.Timezone)
	}
	if cfg.WorkStart != "08:30" || cfg.WorkEnd != "17:00" {
		t.Fatalf("expected window override, got %s-%s", cfg.WorkStart, cfg.WorkEnd)
	}
	if cfg.SlotMinutes != 45 {
		t.Fatalf("expected slot minutes override, got %d", cfg.SlotMinutes)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[0] != "https://a.example" {
		t.Fatalf("expected parsed CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadBadSlotMinutesFallsBack(t *testing.T) {
	t.Setenv("SLOT_MINUTES", "not-a-number")
	cfg := Load()
	if cfg.SlotMinutes != 30 {
		t.Fatalf("expected fallback slot minutes, got %d", cfg.SlotMinutes)
	}
}
