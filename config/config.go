package config

import (
	"os"
	"strconv"
)

type ConfigStruct struct {
	AppleMusic AppleMusicConfig
	Options    Options
}

type AppleMusicConfig struct {
	DeveloperToken string
	MediaUserToken string
	Storefront     string
	Localization   string
}

type Options struct {
	Port         string
	LogLevel     string
	SearchLimit  int
	ReleaseStage string
}

func (a *AppleMusicConfig) HasUserToken() bool {
	return a.MediaUserToken != ""
}

var Config *ConfigStruct

func NewConfig() {
	config := &ConfigStruct{
		AppleMusic: AppleMusicConfig{
			DeveloperToken: os.Getenv("APPLE_MUSIC_DEVELOPER_TOKEN"),
			MediaUserToken: os.Getenv("APPLE_MUSIC_MEDIA_USER_TOKEN"),
			Storefront:     getStorefront(),
			Localization:   os.Getenv("APPLE_MUSIC_LOCALIZATION"),
		},
		Options: Options{
			Port:         os.Getenv("PORT"),
			LogLevel:     os.Getenv("LOG_LEVEL"),
			SearchLimit:  getSearchLimit(),
			ReleaseStage: os.Getenv("RELEASE"),
		},
	}

	Config = config
}

func getStorefront() string {
	storefront := os.Getenv("APPLE_MUSIC_STOREFRONT")
	if storefront == "" {
		return "us"
	}
	return storefront
}

func getSearchLimit() int {
	limitStr := os.Getenv("SEARCH_LIMIT")
	if limitStr == "" {
		return 10
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return 10
	}
	if limit > 25 {
		return 25 // API maximum per search type
	}
	return limit
}
