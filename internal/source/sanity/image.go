package sanity

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

const (
	// PlaceholderImage is served when an image field cannot be resolved.
	PlaceholderImage = "/placeholder.svg"

	cdnHost = "cdn.sanity.io"
)

// ImageKind names the shape an image field was recognised as.
type ImageKind int

const (
	ImageUnknown ImageKind = iota
	ImageDirectURL
	ImageAssetRef
	ImageCDNString
	ImageLocalPath
)

func (k ImageKind) String() string {
	switch k {
	case ImageDirectURL:
		return "direct_url"
	case ImageAssetRef:
		return "asset_ref"
	case ImageCDNString:
		return "cdn_string"
	case ImageLocalPath:
		return "local_path"
	default:
		return "unknown"
	}
}

// image-<id>-<width>x<height>-<format>
var assetRefPattern = regexp.MustCompile(`^image-([A-Za-z0-9]+)-(\d+x\d+)-([a-z0-9]+)$`)

type imageStrategy struct {
	kind    ImageKind
	resolve func(r *ImageResolver, img *Image) (string, bool)
}

var imageStrategies = []imageStrategy{
	{ImageDirectURL, func(_ *ImageResolver, img *Image) (string, bool) {
		if img.Asset != nil && img.Asset.URL != "" {
			return img.Asset.URL, true
		}
		return "", false
	}},
	{ImageAssetRef, func(r *ImageResolver, img *Image) (string, bool) {
		if img.Asset == nil || img.Asset.Ref == "" || r.ProjectID == "" {
			return "", false
		}
		m := assetRefPattern.FindStringSubmatch(img.Asset.Ref)
		if m == nil {
			return "", false
		}
		return fmt.Sprintf("https://%s/images/%s/%s/%s-%s.%s",
			cdnHost, r.ProjectID, r.dataset(), m[1], m[2], m[3]), true
	}},
	{ImageCDNString, func(_ *ImageResolver, img *Image) (string, bool) {
		return img.Raw, strings.Contains(img.Raw, cdnHost)
	}},
	{ImageLocalPath, func(_ *ImageResolver, img *Image) (string, bool) {
		return img.Raw, strings.HasPrefix(img.Raw, "/")
	}},
}

// ImageResolver turns CMS image fields into URLs. ProjectID and Dataset are
// only needed to rebuild CDN URLs from asset references.
type ImageResolver struct {
	ProjectID string
	Dataset   string
	Logger    *slog.Logger
}

func (r *ImageResolver) dataset() string {
	if r.Dataset == "" {
		return "production"
	}
	return r.Dataset
}

// Resolve never fails: anything it cannot recognise becomes PlaceholderImage.
func (r *ImageResolver) Resolve(img *Image) string {
	url, kind := r.resolve(img)
	if r.Logger != nil {
		r.Logger.Debug("resolved image", "kind", kind.String(), "url", url)
	}
	return url
}

// Classify reports which strategy Resolve would use for img.
func (r *ImageResolver) Classify(img *Image) ImageKind {
	_, kind := r.resolve(img)
	return kind
}

// ResolveString resolves a bare string the same way as a decoded string field.
func (r *ImageResolver) ResolveString(s string) string {
	return r.Resolve(&Image{Raw: s})
}

func (r *ImageResolver) resolve(img *Image) (string, ImageKind) {
	if img == nil {
		return PlaceholderImage, ImageUnknown
	}
	for _, s := range imageStrategies {
		if url, ok := s.resolve(r, img); ok && url != "" {
			return url, s.kind
		}
	}
	return PlaceholderImage, ImageUnknown
}
