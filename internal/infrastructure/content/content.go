// Package content loads the entries displayed by the layout from feeds and
// local directories.
package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	domain "github.com/tesso57/flank/internal/domain/content"
)

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

// DefaultTimeout bounds remote feed fetches.
const DefaultTimeout = 10 * time.Second

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParseURLFunc is exposed for testing.
var ParseURLFunc = defaultParseURL

func defaultParseURL(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "flank/1.0"
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(url, ctx)
}

var feedExts = map[string]bool{".xml": true, ".rss": true, ".atom": true, ".json": true}

var docExts = map[string]bool{".md": true, ".markdown": true, ".txt": true}

var markdownExts = map[string]bool{".md": true, ".markdown": true}

// Load reads a collection from origin: a feed URL, a feed file, or a
// directory of text documents. An empty origin yields the welcome pages.
func Load(ctx context.Context, origin string) (*domain.Collection, error) {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return Welcome(), nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if strings.HasPrefix(origin, "http://") || strings.HasPrefix(origin, "https://") {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
			defer cancel()
		}
		parsed, err := ParseURLFunc(ctx, origin)
		if err != nil {
			return nil, fmt.Errorf("fetching feed %s: %w", origin, err)
		}
		return fromFeed(parsed, origin), nil
	}

	info, err := os.Stat(origin)
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}
	if info.IsDir() {
		return loadDir(origin)
	}
	if feedExts[strings.ToLower(filepath.Ext(origin))] {
		return loadFeedFile(origin)
	}
	return nil, fmt.Errorf("unsupported source %q", origin)
}

func loadFeedFile(path string) (*domain.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening feed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	parsed, err := gofeed.NewParser().Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing feed file %s: %w", path, err)
	}
	return fromFeed(parsed, path), nil
}

func fromFeed(parsed *gofeed.Feed, origin string) *domain.Collection {
	c := &domain.Collection{
		Title:   strings.TrimSpace(parsed.Title),
		Origin:  origin,
		Entries: make([]domain.Entry, 0, len(parsed.Items)),
	}
	if c.Title == "" {
		c.Title = origin
	}

	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		var date time.Time
		if item.PublishedParsed != nil {
			date = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			date = *item.UpdatedParsed
		}
		id := item.GUID
		if id == "" {
			id = item.Link
		}
		body := item.Content
		if strings.TrimSpace(body) == "" {
			body = item.Description
		}
		c.Entries = append(c.Entries, domain.Entry{
			ID:        id,
			Title:     item.Title,
			Link:      item.Link,
			Published: date,
			Summary:   PlainText(item.Description),
			Body:      PlainText(body),
			Source:    c.Title,
		})
	}

	sort.SliceStable(c.Entries, func(i, j int) bool {
		return c.Entries[i].Published.After(c.Entries[j].Published)
	})
	return c
}

func loadDir(dir string) (*domain.Collection, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading source dir: %w", err)
	}

	c := &domain.Collection{Title: filepath.Base(dir), Origin: dir}
	var errs []error
	for _, e := range entries {
		if e.IsDir() || !docExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		var modTime time.Time
		if info, err := e.Info(); err == nil {
			modTime = info.ModTime()
		}
		title, body := splitTitle(string(data), e.Name())
		c.Entries = append(c.Entries, domain.Entry{
			ID:        path,
			Title:     title,
			Link:      path,
			Published: modTime,
			Summary:   firstLine(body),
			Body:      body,
			Source:    c.Title,
			Markdown:  markdownExts[strings.ToLower(filepath.Ext(e.Name()))],
		})
	}
	sort.SliceStable(c.Entries, func(i, j int) bool {
		return c.Entries[i].ID < c.Entries[j].ID
	})
	if len(c.Entries) == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// splitTitle uses a leading markdown heading as the title, falling back to
// the file name.
func splitTitle(text, name string) (string, string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	first, rest, _ := strings.Cut(strings.TrimLeft(text, "\n"), "\n")
	if strings.HasPrefix(first, "#") {
		return strings.TrimSpace(strings.TrimLeft(first, "#")), strings.TrimSpace(rest)
	}
	return strings.TrimSuffix(name, filepath.Ext(name)), strings.TrimSpace(text)
}

func firstLine(text string) string {
	for line := range strings.SplitSeq(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
