package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/domain"
	"github.com/ecoiahq/Disability-Sports-Channel--sub000/internal/source/sanity"
)

const (
	defaultFeaturedLimit = 3
	maxFeaturedLimit     = 50
)

// Content is what the handlers need from the content service.
type Content interface {
	FetchArticles(ctx context.Context) domain.Result[domain.Article]
	FetchArticlesBySport(ctx context.Context, tag string) domain.Result[domain.Article]
	FetchFeaturedArticles(ctx context.Context, n int) domain.Result[domain.Article]
	FetchVideos(ctx context.Context) domain.Result[domain.VideoContent]
	FetchPodcasts(ctx context.Context) domain.Result[domain.PodcastEpisode]
	LiveEvents() []domain.LiveEvent
	UpcomingEvents() []domain.LiveEvent
	Sports() []domain.Sport
	Sport(slug string) (domain.Sport, bool)
}

// ListResponse wraps every list endpoint.
type ListResponse[T any] struct {
	Items  []T           `json:"items"`
	Origin domain.Origin `json:"origin"`
	Count  int           `json:"count"`
}

type ImageResponse struct {
	URL  string `json:"url"`
	Kind string `json:"kind"`
}

type Handler struct {
	content Content
	images  *sanity.ImageResolver
	logger  *slog.Logger
}

func NewHandler(content Content, images *sanity.ImageResolver, logger *slog.Logger) *Handler {
	if images == nil {
		images = &sanity.ImageResolver{}
	}
	return &Handler{content: content, images: images, logger: logger}
}

// Routes registers every endpoint on r.
func (h *Handler) Routes(r *mux.Router) {
	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/articles", h.GetArticles).Methods(http.MethodGet)
	v1.HandleFunc("/articles/featured", h.GetFeaturedArticles).Methods(http.MethodGet)
	v1.HandleFunc("/videos", h.GetVideos).Methods(http.MethodGet)
	v1.HandleFunc("/podcasts", h.GetPodcasts).Methods(http.MethodGet)
	v1.HandleFunc("/events/live", h.GetLiveEvents).Methods(http.MethodGet)
	v1.HandleFunc("/events/upcoming", h.GetUpcomingEvents).Methods(http.MethodGet)
	v1.HandleFunc("/sports", h.GetSports).Methods(http.MethodGet)
	v1.HandleFunc("/sports/{slug}", h.GetSport).Methods(http.MethodGet)
	v1.HandleFunc("/images/resolve", h.ResolveImage).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
}

func (h *Handler) GetArticles(w http.ResponseWriter, r *http.Request) {
	var res domain.Result[domain.Article]
	if sport := r.URL.Query().Get("sport"); sport != "" {
		res = h.content.FetchArticlesBySport(r.Context(), sport)
	} else {
		res = h.content.FetchArticles(r.Context())
	}
	writeResult(w, h.logger, res)
}

func (h *Handler) GetFeaturedArticles(w http.ResponseWriter, r *http.Request) {
	limit := defaultFeaturedLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 || n > maxFeaturedLimit {
			h.logger.Warn("invalid limit parameter", "limit", s)
			http.Error(w, "Invalid 'limit' parameter: must be between 1 and "+strconv.Itoa(maxFeaturedLimit), http.StatusBadRequest)
			return
		}
		limit = n
	}
	writeResult(w, h.logger, h.content.FetchFeaturedArticles(r.Context(), limit))
}

func (h *Handler) GetVideos(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.logger, h.content.FetchVideos(r.Context()))
}

func (h *Handler) GetPodcasts(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.logger, h.content.FetchPodcasts(r.Context()))
}

func (h *Handler) GetLiveEvents(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.logger, domain.Result[domain.LiveEvent]{Items: h.content.LiveEvents(), Origin: domain.OriginFallback})
}

func (h *Handler) GetUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.logger, domain.Result[domain.LiveEvent]{Items: h.content.UpcomingEvents(), Origin: domain.OriginFallback})
}

func (h *Handler) GetSports(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.logger, domain.Result[domain.Sport]{Items: h.content.Sports(), Origin: domain.OriginFallback})
}

func (h *Handler) GetSport(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	sport, ok := h.content.Sport(slug)
	if !ok {
		http.Error(w, "Sport not found", http.StatusNotFound)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, sport)
}

// ResolveImage exposes the resolver for asset references and raw strings.
// ?ref= is treated as an asset reference, ?src= as a plain string field.
func (h *Handler) ResolveImage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var img *sanity.Image
	switch {
	case q.Get("ref") != "":
		img = &sanity.Image{Asset: &sanity.ImageAsset{Ref: q.Get("ref")}}
	case q.Get("src") != "":
		img = &sanity.Image{Raw: q.Get("src")}
	default:
		http.Error(w, "Missing required parameter: 'ref' or 'src'", http.StatusBadRequest)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, ImageResponse{
		URL:  h.images.Resolve(img),
		Kind: h.images.Classify(img).String(),
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func writeResult[T any](w http.ResponseWriter, logger *slog.Logger, res domain.Result[T]) {
	items := res.Items
	if items == nil {
		items = []T{}
	}
	writeJSON(w, logger, http.StatusOK, ListResponse[T]{
		Items:  items,
		Origin: res.Origin,
		Count:  len(items),
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Error("failed to marshal response", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Error("failed to write response", "error", err)
	}
}
