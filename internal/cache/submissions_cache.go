package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/profefranko/profefranko-api/internal/models"
	"github.com/profefranko/profefranko-api/pkg/metrics"
)

const (
	contactPageKeyPrefix = "submissions:contacts:"
	quotePageKeyPrefix   = "submissions:quotes:"
	cacheCheckPeriod     = 10 * time.Second
)

// SubmissionsCache is a short-TTL cache over the back-office listings. The
// admin UI polls the listing endpoints; a fresh submission only has to show
// up within the TTL, so pages are cached per limit/offset and flushed on any
// write.
type SubmissionsCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewSubmissionsCache creates a listing cache with the given TTL in seconds.
func NewSubmissionsCache(ttlSeconds int) *SubmissionsCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	return &SubmissionsCache{
		cache: gocache.New(ttl, cacheCheckPeriod),
		ttl:   ttl,
	}
}

// GetContactPage returns a cached contact listing page, if present.
func (sc *SubmissionsCache) GetContactPage(limit, offset int) ([]*models.ContactInquiry, bool) {
	data, found := sc.cache.Get(contactPageKey(limit, offset))
	if !found {
		metrics.CacheMisses.WithLabelValues("contact_inquiries").Inc()
		return nil, false
	}

	page, ok := data.([]*models.ContactInquiry)
	if !ok {
		sc.cache.Delete(contactPageKey(limit, offset))
		metrics.CacheMisses.WithLabelValues("contact_inquiries").Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues("contact_inquiries").Inc()
	return page, true
}

// SetContactPage stores a contact listing page.
func (sc *SubmissionsCache) SetContactPage(limit, offset int, page []*models.ContactInquiry) {
	sc.cache.Set(contactPageKey(limit, offset), page, sc.ttl)
}

// GetQuotePage returns a cached quote listing page, if present.
func (sc *SubmissionsCache) GetQuotePage(limit, offset int) ([]*models.EventQuote, bool) {
	data, found := sc.cache.Get(quotePageKey(limit, offset))
	if !found {
		metrics.CacheMisses.WithLabelValues("event_quotes").Inc()
		return nil, false
	}

	page, ok := data.([]*models.EventQuote)
	if !ok {
		sc.cache.Delete(quotePageKey(limit, offset))
		metrics.CacheMisses.WithLabelValues("event_quotes").Inc()
		return nil, false
	}

	metrics.CacheHits.WithLabelValues("event_quotes").Inc()
	return page, true
}

// SetQuotePage stores a quote listing page.
func (sc *SubmissionsCache) SetQuotePage(limit, offset int, page []*models.EventQuote) {
	sc.cache.Set(quotePageKey(limit, offset), page, sc.ttl)
}

// Invalidate flushes every cached page. Called after any submission write so
// the admin UI never serves a stale status longer than one request.
func (sc *SubmissionsCache) Invalidate() {
	sc.cache.Flush()
}

func contactPageKey(limit, offset int) string {
	return fmt.Sprintf("%s%d:%d", contactPageKeyPrefix, limit, offset)
}

func quotePageKey(limit, offset int) string {
	return fmt.Sprintf("%s%d:%d", quotePageKeyPrefix, limit, offset)
}
