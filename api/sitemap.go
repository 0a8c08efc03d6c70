package api

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"notedapp/noted/model"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap renders the crawler sitemap: public notes, tags and profiles
func (a *API) Sitemap(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	scheme := "http"
	if viper.GetBool("host.ssl.enabled") {
		scheme = "https"
	}
	base := scheme + "://" + viper.GetString("host.domain")

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: base + "/"}},
	}

	var notes []model.Note

	err := a.DB.
		Select("slug", "updated_at").
		Where("draft = ?", false).
		Order("created_at DESC").
		Limit(5000).
		Find(&notes).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to build sitemap", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	for _, n := range notes {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/notes/%s", base, n.Slug),
			LastMod: n.UpdatedAt.Format(time.DateOnly),
		})
	}

	var tagSlugs []string
	a.DB.Table("tags").Pluck("slug", &tagSlugs)

	for _, s := range tagSlugs {
		set.URLs = append(set.URLs, sitemapURL{Loc: fmt.Sprintf("%s/tags/%s", base, s)})
	}

	var usernames []string
	a.DB.Table("users").Pluck("username", &usernames)

	for _, u := range usernames {
		set.URLs = append(set.URLs, sitemapURL{
			Loc: fmt.Sprintf("%s/users/%s", base, strings.TrimPrefix(u, "@")),
		})
	}

	out, err := xml.Marshal(set)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to render sitemap", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}
