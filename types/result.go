package types

// Result is the aggregate returned by an "extract everything" call.
// Meta, OpenGraph and Twitter are always present; the other formats are
// omitted when the document carries none of them.
type Result struct {
	Meta         *MetaTags           `json:"meta"`
	OpenGraph    *OpenGraph          `json:"opengraph"`
	Twitter      *TwitterCard        `json:"twitter"`
	JSONLD       []map[string]any    `json:"jsonld,omitempty"`
	Microdata    []*Item             `json:"microdata,omitempty"`
	Microformats map[string][]*Item  `json:"microformats,omitempty"`
	OEmbed       *OEmbedDiscovery    `json:"oembed,omitempty"`
	DublinCore   *DublinCore         `json:"dublin_core,omitempty"`
	RelLinks     map[string][]string `json:"rel_links,omitempty"`
	RDFa         []*Item             `json:"rdfa,omitempty"`
	Manifest     *ManifestDiscovery  `json:"manifest,omitempty"`
}

// MetaTags holds standard HTML head metadata.
type MetaTags struct {
	Title           string           `json:"title,omitempty"`
	Description     string           `json:"description,omitempty"`
	Keywords        []string         `json:"keywords,omitempty"`
	Author          string           `json:"author,omitempty"`
	Generator       string           `json:"generator,omitempty"`
	Canonical       string           `json:"canonical,omitempty"`
	Alternate       []AlternateLink  `json:"alternate,omitempty"`
	Feeds           []FeedLink       `json:"feeds,omitempty"`
	Shortlink       string           `json:"shortlink,omitempty"`
	Icon            string           `json:"icon,omitempty"`
	AppleTouchIcon  string           `json:"apple_touch_icon,omitempty"`
	Manifest        string           `json:"manifest,omitempty"`
	Prev            string           `json:"prev,omitempty"`
	Next            string           `json:"next,omitempty"`
	Robots          *RobotsDirective `json:"robots,omitempty"`
	Googlebot       *RobotsDirective `json:"googlebot,omitempty"`
	Viewport        string           `json:"viewport,omitempty"`
	ThemeColor      string           `json:"theme_color,omitempty"`
	Charset         string           `json:"charset,omitempty"`
	Language        string           `json:"language,omitempty"`
	ApplicationName string           `json:"application_name,omitempty"`
	Referrer        string           `json:"referrer,omitempty"`

	// Site verification and platform ids
	GoogleSiteVerification     string `json:"google_site_verification,omitempty"`
	MSValidate                 string `json:"msvalidate_01,omitempty"`
	YandexVerification         string `json:"yandex_verification,omitempty"`
	PinterestVerification      string `json:"p_domain_verify,omitempty"`
	FacebookDomainVerification string `json:"facebook_domain_verification,omitempty"`
	FacebookAppID              string `json:"fb_app_id,omitempty"`
	FacebookPages              string `json:"fb_pages,omitempty"`
}

// AlternateLink is a <link rel="alternate"> that is not a feed.
type AlternateLink struct {
	Href     string `json:"href"`
	Hreflang string `json:"hreflang,omitempty"`
	Media    string `json:"media,omitempty"`
	Type     string `json:"type,omitempty"`
}

// FeedLink is an RSS or Atom feed advertised in the document head.
type FeedLink struct {
	Href  string `json:"href"`
	Title string `json:"title,omitempty"`
	Type  string `json:"type"`
}

// RobotsDirective is a parsed robots (or googlebot) meta value.
// A nil field means the directive was not mentioned.
type RobotsDirective struct {
	Index      *bool  `json:"index,omitempty"`
	Follow     *bool  `json:"follow,omitempty"`
	Archive    *bool  `json:"archive,omitempty"`
	Snippet    *bool  `json:"snippet,omitempty"`
	Translate  *bool  `json:"translate,omitempty"`
	ImageIndex *bool  `json:"imageindex,omitempty"`
	Raw        string `json:"raw"`
}

// OpenGraph holds Open Graph protocol metadata.
type OpenGraph struct {
	Title           string      `json:"title,omitempty"`
	Type            string      `json:"type,omitempty"`
	URL             string      `json:"url,omitempty"`
	Image           string      `json:"image,omitempty"`
	Description     string      `json:"description,omitempty"`
	SiteName        string      `json:"site_name,omitempty"`
	Locale          string      `json:"locale,omitempty"`
	LocaleAlternate []string    `json:"locale_alternate,omitempty"`
	Images          []OgImage   `json:"images,omitempty"`
	Videos          []OgVideo   `json:"videos,omitempty"`
	Audios          []OgAudio   `json:"audios,omitempty"`
	Article         *OgArticle  `json:"article,omitempty"`
	Book            *OgBook     `json:"book,omitempty"`
	Profile         *OgProfile  `json:"profile,omitempty"`
	FacebookAppID   string      `json:"fb_app_id,omitempty"`
	FacebookAdmins  string      `json:"fb_admins,omitempty"`
}

// OgImage is one og:image with its structured properties.
type OgImage struct {
	URL       string `json:"url"`
	SecureURL string `json:"secure_url,omitempty"`
	Type      string `json:"type,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Alt       string `json:"alt,omitempty"`
}

// OgVideo is one og:video with its structured properties.
type OgVideo struct {
	URL       string `json:"url"`
	SecureURL string `json:"secure_url,omitempty"`
	Type      string `json:"type,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}

// OgAudio is one og:audio with its structured properties.
type OgAudio struct {
	URL       string `json:"url"`
	SecureURL string `json:"secure_url,omitempty"`
	Type      string `json:"type,omitempty"`
}

// OgArticle holds article:* properties.
type OgArticle struct {
	PublishedTime  string   `json:"published_time,omitempty"`
	ModifiedTime   string   `json:"modified_time,omitempty"`
	ExpirationTime string   `json:"expiration_time,omitempty"`
	Author         []string `json:"author,omitempty"`
	Section        string   `json:"section,omitempty"`
	Tag            []string `json:"tag,omitempty"`
}

// OgBook holds book:* properties.
type OgBook struct {
	Author      []string `json:"author,omitempty"`
	ISBN        string   `json:"isbn,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Tag         []string `json:"tag,omitempty"`
}

// OgProfile holds profile:* properties.
type OgProfile struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
	Gender    string `json:"gender,omitempty"`
}

// TwitterCard holds twitter:* metadata.
type TwitterCard struct {
	Card        string         `json:"card,omitempty"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Image       string         `json:"image,omitempty"`
	ImageAlt    string         `json:"image_alt,omitempty"`
	Site        string         `json:"site,omitempty"`
	SiteID      string         `json:"site_id,omitempty"`
	Creator     string         `json:"creator,omitempty"`
	CreatorID   string         `json:"creator_id,omitempty"`
	App         *TwitterApp    `json:"app,omitempty"`
	Player      *TwitterPlayer `json:"player,omitempty"`
}

// TwitterApp holds twitter:app:* properties.
type TwitterApp struct {
	NameIPhone     string `json:"name_iphone,omitempty"`
	IDIPhone       string `json:"id_iphone,omitempty"`
	URLIPhone      string `json:"url_iphone,omitempty"`
	NameIPad       string `json:"name_ipad,omitempty"`
	IDIPad         string `json:"id_ipad,omitempty"`
	URLIPad        string `json:"url_ipad,omitempty"`
	NameGooglePlay string `json:"name_googleplay,omitempty"`
	IDGooglePlay   string `json:"id_googleplay,omitempty"`
	URLGooglePlay  string `json:"url_googleplay,omitempty"`
	Country        string `json:"country,omitempty"`
}

// TwitterPlayer holds twitter:player properties.
type TwitterPlayer struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Stream string `json:"stream,omitempty"`
}

// DublinCore holds DC.* and dcterms.* metadata.
type DublinCore struct {
	Title       string   `json:"title,omitempty"`
	Creator     string   `json:"creator,omitempty"`
	Subject     []string `json:"subject,omitempty"`
	Description string   `json:"description,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	Contributor []string `json:"contributor,omitempty"`
	Date        string   `json:"date,omitempty"`
	Type        string   `json:"type,omitempty"`
	Format      string   `json:"format,omitempty"`
	Identifier  string   `json:"identifier,omitempty"`
	Source      string   `json:"source,omitempty"`
	Language    string   `json:"language,omitempty"`
	Relation    string   `json:"relation,omitempty"`
	Coverage    string   `json:"coverage,omitempty"`
	Rights      string   `json:"rights,omitempty"`
}

// IsEmpty reports whether no Dublin Core element was found.
func (dc *DublinCore) IsEmpty() bool {
	return dc == nil ||
		(dc.Title == "" && dc.Creator == "" && len(dc.Subject) == 0 && dc.Description == "" &&
			dc.Publisher == "" && len(dc.Contributor) == 0 && dc.Date == "" && dc.Type == "" &&
			dc.Format == "" && dc.Identifier == "" && dc.Source == "" && dc.Language == "" &&
			dc.Relation == "" && dc.Coverage == "" && dc.Rights == "")
}

// OEmbedFormat is the serialization an oEmbed endpoint answers with.
type OEmbedFormat string

// oEmbed formats.
const (
	OEmbedJSON OEmbedFormat = "json"
	OEmbedXML  OEmbedFormat = "xml"
)

// OEmbedEndpoint is a discovered oEmbed link.
type OEmbedEndpoint struct {
	Href   string       `json:"href"`
	Format OEmbedFormat `json:"format"`
	Title  string       `json:"title,omitempty"`
}

// OEmbedDiscovery lists oEmbed endpoints found in a document.
type OEmbedDiscovery struct {
	JSONEndpoints []OEmbedEndpoint `json:"json_endpoints"`
	XMLEndpoints  []OEmbedEndpoint `json:"xml_endpoints"`
}

// HasEndpoints reports whether any endpoint was discovered.
func (d *OEmbedDiscovery) HasEndpoints() bool {
	return d != nil && (len(d.JSONEndpoints) > 0 || len(d.XMLEndpoints) > 0)
}

// OEmbedResponse is a parsed oEmbed provider response.
type OEmbedResponse struct {
	Type            string `json:"type"`
	Version         string `json:"version"`
	Title           string `json:"title,omitempty"`
	AuthorName      string `json:"author_name,omitempty"`
	AuthorURL       string `json:"author_url,omitempty"`
	ProviderName    string `json:"provider_name,omitempty"`
	ProviderURL     string `json:"provider_url,omitempty"`
	CacheAge        int    `json:"cache_age,omitempty"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
	ThumbnailWidth  int    `json:"thumbnail_width,omitempty"`
	ThumbnailHeight int    `json:"thumbnail_height,omitempty"`
	URL             string `json:"url,omitempty"`
	HTML            string `json:"html,omitempty"`
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
}

// ManifestDiscovery is the result of looking for a web app manifest link.
// Manifest is only filled when the caller supplies the manifest content.
type ManifestDiscovery struct {
	Href     string          `json:"href,omitempty"`
	Manifest *WebAppManifest `json:"manifest,omitempty"`
}

// WebAppManifest is a parsed web app manifest.
type WebAppManifest struct {
	Name                      string               `json:"name,omitempty"`
	ShortName                 string               `json:"short_name,omitempty"`
	Description               string               `json:"description,omitempty"`
	StartURL                  string               `json:"start_url,omitempty"`
	Display                   string               `json:"display,omitempty"`
	Orientation               string               `json:"orientation,omitempty"`
	ThemeColor                string               `json:"theme_color,omitempty"`
	BackgroundColor           string               `json:"background_color,omitempty"`
	Scope                     string               `json:"scope,omitempty"`
	Lang                      string               `json:"lang,omitempty"`
	Dir                       string               `json:"dir,omitempty"`
	ID                        string               `json:"id,omitempty"`
	Icons                     []ManifestIcon       `json:"icons,omitempty"`
	Screenshots               []ManifestImage      `json:"screenshots,omitempty"`
	Shortcuts                 []ManifestShortcut   `json:"shortcuts,omitempty"`
	RelatedApplications       []RelatedApplication `json:"related_applications,omitempty"`
	PreferRelatedApplications *bool                `json:"prefer_related_applications,omitempty"`
	Categories                []string             `json:"categories,omitempty"`
}

// ManifestIcon is an entry of the manifest "icons" list.
type ManifestIcon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes,omitempty"`
	Type    string `json:"type,omitempty"`
	Purpose string `json:"purpose,omitempty"`
}

// ManifestImage is an entry of the manifest "screenshots" list.
type ManifestImage struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes,omitempty"`
	Type  string `json:"type,omitempty"`
	Label string `json:"label,omitempty"`
}

// ManifestShortcut is an entry of the manifest "shortcuts" list.
type ManifestShortcut struct {
	Name        string         `json:"name"`
	URL         string         `json:"url"`
	ShortName   string         `json:"short_name,omitempty"`
	Description string         `json:"description,omitempty"`
	Icons       []ManifestIcon `json:"icons,omitempty"`
}

// RelatedApplication is an entry of the manifest "related_applications" list.
type RelatedApplication struct {
	Platform string `json:"platform"`
	URL      string `json:"url,omitempty"`
	ID       string `json:"id,omitempty"`
}
