package main

import (
	"context"
	"net/http"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"musickit"
	"musickit/catalog"
	appConfig "musickit/config"
	appSentry "musickit/sentry"
	"musickit/weburl"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warnf("Error loading .env file: %v", err)
	}
	appConfig.NewConfig()

	log.SetFormatter(&nested.Formatter{
		HideKeys:        true,
		TimestampFormat: "15:04:05",
	})
	if level, err := log.ParseLevel(appConfig.Config.Options.LogLevel); err == nil {
		log.SetLevel(level)
	}

	appSentry.Init()
	if stage := appConfig.Config.Options.ReleaseStage; stage != "" {
		appSentry.SetContext("app", map[string]interface{}{
			"release_stage": stage,
		})
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := appConfig.Config

	var opts []musickit.Option
	if cfg.AppleMusic.Localization != "" {
		opts = append(opts, musickit.WithLocalization(cfg.AppleMusic.Localization))
	}
	client, err := musickit.NewClient(
		cfg.AppleMusic.DeveloperToken,
		cfg.AppleMusic.MediaUserToken,
		cfg.AppleMusic.Storefront,
		opts...,
	)
	if err != nil {
		return err
	}

	router := gin.Default()
	router.Use(appSentry.GetSentryGin())

	router.GET("/catalog/albums/:id", func(c *gin.Context) {
		album, err := catalog.Albums().
			Include(catalog.AlbumArtists, catalog.AlbumTracks).
			One(c.Request.Context(), client, c.Param("id"))
		if err != nil {
			appSentry.ReportError(err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		if album == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
			return
		}
		c.JSON(http.StatusOK, album)
	})

	router.GET("/catalog/songs/:id", func(c *gin.Context) {
		song, err := catalog.Songs().
			Include(catalog.SongArtists, catalog.SongAlbums).
			One(c.Request.Context(), client, c.Param("id"))
		if err != nil {
			appSentry.ReportError(err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		if song == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "song not found"})
			return
		}
		c.JSON(http.StatusOK, song)
	})

	router.GET("/catalog/search", func(c *gin.Context) {
		term := c.Query("term")
		if term == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "term is required"})
			return
		}
		results, err := catalog.Search(catalog.SearchAlbums, catalog.SearchArtists, catalog.SearchSongs).
			Limit(cfg.Options.SearchLimit).
			Do(c.Request.Context(), client, term)
		if err != nil {
			appSentry.ReportError(err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, results)
	})

	router.GET("/resolve", func(c *gin.Context) {
		rawURL := c.Query("url")
		if rawURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
			return
		}
		link, err := weburl.Resolve(c.Request.Context(), rawURL)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resolveResponse(c.Request.Context(), client, link))
	})

	port := cfg.Options.Port
	if port == "" {
		port = "8080"
	}
	log.Infof("Starting server on :%s", port)
	return http.ListenAndServe(":"+port, router)
}

// resolveResponse looks up the catalog resource a share link points at.
func resolveResponse(ctx context.Context, client *musickit.Client, link weburl.ShareLink) gin.H {
	resp := gin.H{"link": link}

	storefront := link.Storefront

	switch {
	case link.TrackID != "":
		song, err := catalog.Songs().Storefront(storefront).One(ctx, client, link.TrackID)
		if err == nil && song != nil {
			resp["song"] = song
		}
	case link.AlbumID != "":
		album, err := catalog.Albums().Storefront(storefront).One(ctx, client, link.AlbumID)
		if err == nil && album != nil {
			resp["album"] = album
		}
	case link.PlaylistID != "":
		playlist, err := catalog.Playlists().Storefront(storefront).One(ctx, client, link.PlaylistID)
		if err == nil && playlist != nil {
			resp["playlist"] = playlist
		}
	case link.ArtistID != "":
		artist, err := catalog.Artists().Storefront(storefront).One(ctx, client, link.ArtistID)
		if err == nil && artist != nil {
			resp["artist"] = artist
		}
	case link.StationID != "":
		station, err := catalog.Stations().Storefront(storefront).One(ctx, client, link.StationID)
		if err == nil && station != nil {
			resp["station"] = station
		}
	}

	return resp
}
