package knowledge

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// Library serves expert coaching guidelines from markdown files on disk.
// Files are keyed by training goal ("muscle_gain.md", "fat_loss.md", ...)
// with "general.md" as the fallback. Reads are cached in-process since the
// files only change on deploy.
type Library struct {
	dir   string
	cache *cache.Cache
}

const fallbackDoc = "general"

func NewLibrary(dir string) *Library {
	return &Library{
		dir:   dir,
		cache: cache.New(10*time.Minute, 30*time.Minute),
	}
}

// GuidelinesFor returns the guideline document for the goal, falling back to
// the general document and finally to an empty string.
func (l *Library) GuidelinesFor(goal string) string {
	key := strings.ToLower(strings.TrimSpace(goal))
	if key == "" {
		key = fallbackDoc
	}

	if doc := l.load(key); doc != "" {
		return doc
	}
	if key != fallbackDoc {
		return l.load(fallbackDoc)
	}
	return ""
}

// Documents returns every guideline document in the library, for ingestion.
func (l *Library) Documents() (map[string]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, err
	}

	docs := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".md")
		if doc := l.load(name); doc != "" {
			docs[name] = doc
		}
	}
	return docs, nil
}

func (l *Library) load(name string) string {
	if cached, found := l.cache.Get(name); found {
		return cached.(string)
	}

	raw, err := os.ReadFile(filepath.Join(l.dir, name+".md"))
	if err != nil {
		return ""
	}

	doc := string(raw)
	l.cache.Set(name, doc, cache.DefaultExpiration)
	return doc
}
