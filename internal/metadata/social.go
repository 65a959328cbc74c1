package metadata

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/yfedoseev/meta-oxide/internal/urls"
	"github.com/yfedoseev/meta-oxide/types"
)

// metaPairs yields the (key, content) pairs of every meta element whose
// property or name starts with one of the prefixes. Keys are lowercased.
func metaPairs(doc *html.Node, prefixes ...string) [][2]string {
	var res [][2]string
	goquery.NewDocumentFromNode(doc).Find("meta[content]").Each(func(_ int, s *goquery.Selection) {
		key := s.AttrOr("property", "")
		if key == "" {
			key = s.AttrOr("name", "")
		}
		key = strings.ToLower(strings.TrimSpace(key))
		for _, p := range prefixes {
			if strings.HasPrefix(key, p) {
				res = append(res, [2]string{key, strings.TrimSpace(s.AttrOr("content", ""))})
				return
			}
		}
	})
	return res
}

// ParseOpenGraph extracts og:*, article:*, book:*, profile:* and fb:*
// properties. Structured image, video and audio properties attach to the
// last declared media of their kind.
func ParseOpenGraph(doc *html.Node, baseURL string) *types.OpenGraph {
	og := &types.OpenGraph{}
	if doc == nil {
		return og
	}
	r := urls.NewResolver(baseURL)

	for _, kv := range metaPairs(doc, "og:", "article:", "book:", "profile:", "fb:") {
		key, v := kv[0], kv[1]
		if v == "" {
			continue
		}

		switch key {
		case "og:title":
			setFirst(&og.Title, v)
		case "og:type":
			setFirst(&og.Type, v)
		case "og:url":
			setFirst(&og.URL, r.Resolve(v))
		case "og:description":
			setFirst(&og.Description, v)
		case "og:site_name":
			setFirst(&og.SiteName, v)
		case "og:locale":
			setFirst(&og.Locale, v)
		case "og:locale:alternate":
			og.LocaleAlternate = append(og.LocaleAlternate, v)

		case "og:image", "og:image:url":
			og.Images = append(og.Images, types.OgImage{URL: r.Resolve(v)})
		case "og:image:secure_url", "og:image:type", "og:image:width", "og:image:height", "og:image:alt":
			if n := len(og.Images); n > 0 {
				setImage(&og.Images[n-1], strings.TrimPrefix(key, "og:image:"), v, r)
			}
		case "og:video", "og:video:url":
			og.Videos = append(og.Videos, types.OgVideo{URL: r.Resolve(v)})
		case "og:video:secure_url", "og:video:type", "og:video:width", "og:video:height":
			if n := len(og.Videos); n > 0 {
				setVideo(&og.Videos[n-1], strings.TrimPrefix(key, "og:video:"), v, r)
			}
		case "og:audio", "og:audio:url":
			og.Audios = append(og.Audios, types.OgAudio{URL: r.Resolve(v)})
		case "og:audio:secure_url":
			if n := len(og.Audios); n > 0 {
				og.Audios[n-1].SecureURL = r.Resolve(v)
			}
		case "og:audio:type":
			if n := len(og.Audios); n > 0 {
				og.Audios[n-1].Type = v
			}

		case "article:published_time", "article:modified_time", "article:expiration_time",
			"article:author", "article:section", "article:tag":
			if og.Article == nil {
				og.Article = &types.OgArticle{}
			}
			setArticle(og.Article, strings.TrimPrefix(key, "article:"), v)
		case "book:author", "book:isbn", "book:release_date", "book:tag":
			if og.Book == nil {
				og.Book = &types.OgBook{}
			}
			setBook(og.Book, strings.TrimPrefix(key, "book:"), v)
		case "profile:first_name", "profile:last_name", "profile:username", "profile:gender":
			if og.Profile == nil {
				og.Profile = &types.OgProfile{}
			}
			setProfile(og.Profile, strings.TrimPrefix(key, "profile:"), v)

		case "fb:app_id":
			setFirst(&og.FacebookAppID, v)
		case "fb:admins":
			setFirst(&og.FacebookAdmins, v)
		}
	}

	if len(og.Images) > 0 {
		og.Image = og.Images[0].URL
	}
	return og
}

func setImage(img *types.OgImage, key, v string, r *urls.Resolver) {
	switch key {
	case "secure_url":
		img.SecureURL = r.Resolve(v)
	case "type":
		img.Type = v
	case "width":
		img.Width = atoi(v)
	case "height":
		img.Height = atoi(v)
	case "alt":
		img.Alt = v
	}
}

func setVideo(vid *types.OgVideo, key, v string, r *urls.Resolver) {
	switch key {
	case "secure_url":
		vid.SecureURL = r.Resolve(v)
	case "type":
		vid.Type = v
	case "width":
		vid.Width = atoi(v)
	case "height":
		vid.Height = atoi(v)
	}
}

func setArticle(a *types.OgArticle, key, v string) {
	switch key {
	case "published_time":
		a.PublishedTime = v
	case "modified_time":
		a.ModifiedTime = v
	case "expiration_time":
		a.ExpirationTime = v
	case "author":
		a.Author = append(a.Author, v)
	case "section":
		a.Section = v
	case "tag":
		a.Tag = append(a.Tag, v)
	}
}

func setBook(b *types.OgBook, key, v string) {
	switch key {
	case "author":
		b.Author = append(b.Author, v)
	case "isbn":
		b.ISBN = v
	case "release_date":
		b.ReleaseDate = v
	case "tag":
		b.Tag = append(b.Tag, v)
	}
}

func setProfile(p *types.OgProfile, key, v string) {
	switch key {
	case "first_name":
		p.FirstName = v
	case "last_name":
		p.LastName = v
	case "username":
		p.Username = v
	case "gender":
		p.Gender = v
	}
}

// ParseTwitter extracts twitter:* card properties.
func ParseTwitter(doc *html.Node, baseURL string) *types.TwitterCard {
	tw := &types.TwitterCard{}
	if doc == nil {
		return tw
	}
	r := urls.NewResolver(baseURL)

	for _, kv := range metaPairs(doc, "twitter:") {
		key, v := strings.TrimPrefix(kv[0], "twitter:"), kv[1]
		if v == "" {
			continue
		}

		switch {
		case key == "card":
			setFirst(&tw.Card, v)
		case key == "title":
			setFirst(&tw.Title, v)
		case key == "description":
			setFirst(&tw.Description, v)
		case key == "image" || key == "image:src":
			if tw.Image == "" {
				tw.Image = r.Resolve(v)
			}
		case key == "image:alt":
			setFirst(&tw.ImageAlt, v)
		case key == "site":
			setFirst(&tw.Site, v)
		case key == "site:id":
			setFirst(&tw.SiteID, v)
		case key == "creator":
			setFirst(&tw.Creator, v)
		case key == "creator:id":
			setFirst(&tw.CreatorID, v)
		case key == "player" || strings.HasPrefix(key, "player:"):
			if tw.Player == nil {
				tw.Player = &types.TwitterPlayer{}
			}
			setPlayer(tw.Player, key, v, r)
		case strings.HasPrefix(key, "app:"):
			if tw.App == nil {
				tw.App = &types.TwitterApp{}
			}
			setApp(tw.App, strings.TrimPrefix(key, "app:"), v)
		}
	}
	return tw
}

func setPlayer(p *types.TwitterPlayer, key, v string, r *urls.Resolver) {
	switch key {
	case "player":
		p.URL = r.Resolve(v)
	case "player:width":
		p.Width = atoi(v)
	case "player:height":
		p.Height = atoi(v)
	case "player:stream":
		p.Stream = r.Resolve(v)
	}
}

func setApp(a *types.TwitterApp, key, v string) {
	fields := map[string]*string{
		"name:iphone":     &a.NameIPhone,
		"id:iphone":       &a.IDIPhone,
		"url:iphone":      &a.URLIPhone,
		"name:ipad":       &a.NameIPad,
		"id:ipad":         &a.IDIPad,
		"url:ipad":        &a.URLIPad,
		"name:googleplay": &a.NameGooglePlay,
		"id:googleplay":   &a.IDGooglePlay,
		"url:googleplay":  &a.URLGooglePlay,
		"country":         &a.Country,
	}
	if dst, ok := fields[key]; ok {
		*dst = v
	}
}

// TwitterWithFallback fills the title, description and image a card
// leaves empty from Open Graph, the way Twitter itself renders cards.
func TwitterWithFallback(tw *types.TwitterCard, og *types.OpenGraph) *types.TwitterCard {
	if tw == nil {
		tw = &types.TwitterCard{}
	}
	if og == nil {
		return tw
	}
	res := *tw
	if res.Title == "" {
		res.Title = og.Title
	}
	if res.Description == "" {
		res.Description = og.Description
	}
	if res.Image == "" {
		res.Image = og.Image
	}
	return &res
}

func setFirst(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
