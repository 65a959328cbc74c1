package metaoxide

import (
	"github.com/yfedoseev/meta-oxide/internal/errs"
	"github.com/yfedoseev/meta-oxide/types"
)

// Version information for the meta-oxide library.
const (
	Version = types.Version
	Name    = types.Name
)

// Item model.
type (
	Item          = types.Item
	Properties    = types.Properties
	PropertyValue = types.PropertyValue
	Kind          = types.Kind
)

// Property value kinds.
const (
	KindText     = types.KindText
	KindURL      = types.KindURL
	KindDateTime = types.KindDateTime
	KindItem     = types.KindItem
)

// Aggregate result and flat metadata records.
type (
	ExtractionOptions = types.ExtractionOptions
	Result            = types.Result
	MetaTags          = types.MetaTags
	AlternateLink     = types.AlternateLink
	FeedLink          = types.FeedLink
	RobotsDirective   = types.RobotsDirective
	OpenGraph         = types.OpenGraph
	TwitterCard       = types.TwitterCard
	DublinCore        = types.DublinCore
	OEmbedFormat      = types.OEmbedFormat
	OEmbedEndpoint    = types.OEmbedEndpoint
	OEmbedDiscovery   = types.OEmbedDiscovery
	OEmbedResponse    = types.OEmbedResponse
	ManifestDiscovery = types.ManifestDiscovery
	WebAppManifest    = types.WebAppManifest
)

// oEmbed formats.
const (
	OEmbedJSON = types.OEmbedJSON
	OEmbedXML  = types.OEmbedXML
)

// Typed Microformats2 views.
type (
	HCard    = types.HCard
	HEntry   = types.HEntry
	HEvent   = types.HEvent
	HReview  = types.HReview
	HRecipe  = types.HRecipe
	HProduct = types.HProduct
	HFeed    = types.HFeed
	HAdr     = types.HAdr
	HGeo     = types.HGeo
)

// Typed view constructors.
var (
	NewHCard    = types.NewHCard
	NewHEntry   = types.NewHEntry
	NewHEvent   = types.NewHEvent
	NewHReview  = types.NewHReview
	NewHRecipe  = types.NewHRecipe
	NewHProduct = types.NewHProduct
	NewHFeed    = types.NewHFeed
	NewHAdr     = types.NewHAdr
	NewHGeo     = types.NewHGeo
)

// Errors returned for rejected input and exhausted time budgets.
// Use errors.Is to test for them.
var (
	ErrNoDocument      = errs.ErrNoDocument
	ErrInvalidUTF8     = errs.ErrInvalidUTF8
	ErrDocumentLarge   = errs.ErrDocumentLarge
	ErrTimeout         = errs.ErrTimeout
	ErrInvalidManifest = errs.ErrInvalidManifest
	ErrInvalidOEmbed   = errs.ErrInvalidOEmbed
	ErrUnknownFormat   = errs.ErrUnknownFormat
)

// DefaultOptions returns the default extraction options.
func DefaultOptions() ExtractionOptions {
	return types.DefaultOptions()
}
