package config

import "testing"

func TestGetSearchLimit(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want int
	}{
		{"empty", "", 10},
		{"invalid", "foo", 10},
		{"zero", "0", 10},
		{"negative", "-10", 10},
		{"min", "1", 1},
		{"mid", "15", 15},
		{"max", "25", 25},
		{"over", "26", 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SEARCH_LIMIT", tt.env)
			if got := getSearchLimit(); got != tt.want {
				t.Errorf("getSearchLimit() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestGetStorefront(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{"empty defaults to us", "", "us"},
		{"explicit", "jp", "jp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APPLE_MUSIC_STOREFRONT", tt.env)
			if got := getStorefront(); got != tt.want {
				t.Errorf("getStorefront() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestNewConfig(t *testing.T) {
	t.Setenv("APPLE_MUSIC_DEVELOPER_TOKEN", "dev-token")
	t.Setenv("APPLE_MUSIC_MEDIA_USER_TOKEN", "user-token")
	t.Setenv("APPLE_MUSIC_STOREFRONT", "de")
	t.Setenv("APPLE_MUSIC_LOCALIZATION", "de-DE")
	t.Setenv("PORT", "9090")
	t.Setenv("RELEASE", "staging")

	NewConfig()

	if Config.AppleMusic.DeveloperToken != "dev-token" {
		t.Errorf("DeveloperToken = %q", Config.AppleMusic.DeveloperToken)
	}
	if !Config.AppleMusic.HasUserToken() {
		t.Error("HasUserToken() = false")
	}
	if Config.AppleMusic.Storefront != "de" {
		t.Errorf("Storefront = %q", Config.AppleMusic.Storefront)
	}
	if Config.AppleMusic.Localization != "de-DE" {
		t.Errorf("Localization = %q", Config.AppleMusic.Localization)
	}
	if Config.Options.Port != "9090" {
		t.Errorf("Port = %q", Config.Options.Port)
	}
	if Config.Options.ReleaseStage != "staging" {
		t.Errorf("ReleaseStage = %q", Config.Options.ReleaseStage)
	}
}
