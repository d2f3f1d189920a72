package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmcdole/gofeed"
)

const sampleRSS = `<?xml version="1.0"?>
<rss version="2.0">
<channel>
  <title>Sample</title>
  <item>
    <title>Older</title>
    <link>https://example.com/old</link>
    <guid>old</guid>
    <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
    <description>&lt;p&gt;Old &lt;b&gt;news&lt;/b&gt;&lt;/p&gt;</description>
  </item>
  <item>
    <title>Newer</title>
    <link>https://example.com/new</link>
    <pubDate>Tue, 03 Jan 2006 15:04:05 GMT</pubDate>
    <description>Fresh</description>
  </item>
</channel>
</rss>`

func TestLoad_EmptyOriginIsWelcome(t *testing.T) {
	c, err := Load(context.Background(), "  ")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() == 0 || c.Entries[0].ID != "welcome" {
		t.Fatalf("expected welcome collection, got %+v", c)
	}
}

func TestLoad_FeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.rss")
	if err := os.WriteFile(path, []byte(sampleRSS), 0600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Title != "Sample" {
		t.Errorf("Title = %q", c.Title)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if c.Entries[0].Title != "Newer" {
		t.Errorf("entries should be newest first, got %q", c.Entries[0].Title)
	}
	if c.Entries[0].ID != "https://example.com/new" {
		t.Errorf("ID should fall back to link, got %q", c.Entries[0].ID)
	}
	if c.Entries[1].Body != "Old news" {
		t.Errorf("Body = %q, want HTML stripped", c.Entries[1].Body)
	}
	if c.Entries[1].Source != "Sample" {
		t.Errorf("Source = %q", c.Entries[1].Source)
	}
}

func TestLoad_URLUsesParser(t *testing.T) {
	orig := ParseURLFunc
	defer func() { ParseURLFunc = orig }()

	var gotURL string
	ParseURLFunc = func(ctx context.Context, url string) (*gofeed.Feed, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("remote fetch should carry a deadline")
		}
		gotURL = url
		return &gofeed.Feed{
			Title: "Remote",
			Items: []*gofeed.Item{{Title: "One", GUID: "1", Content: "<p>Hello</p>"}},
		}, nil
	}

	c, err := Load(context.Background(), "https://example.com/feed.xml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if gotURL != "https://example.com/feed.xml" {
		t.Errorf("parser got %q", gotURL)
	}
	if c.Len() != 1 || c.Entries[0].Body != "Hello" {
		t.Fatalf("unexpected collection: %+v", c)
	}
}

func TestLoad_URLError(t *testing.T) {
	orig := ParseURLFunc
	defer func() { ParseURLFunc = orig }()
	ParseURLFunc = func(context.Context, string) (*gofeed.Feed, error) {
		return nil, errors.New("boom")
	}

	if _, err := Load(context.Background(), "http://example.com"); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.md":     "# Second Page\n\nbody two\n",
		"a.txt":    "plain text\nmore\n",
		"skip.bin": "nope",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.md"), 0750); err != nil {
		t.Fatal(err)
	}

	c, err := Load(context.Background(), dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if c.Entries[0].Title != "a" || c.Entries[0].Summary != "plain text" {
		t.Errorf("first entry = %+v", c.Entries[0])
	}
	if c.Entries[1].Title != "Second Page" || c.Entries[1].Body != "body two" {
		t.Errorf("second entry = %+v", c.Entries[1])
	}
	if c.Entries[0].Markdown || !c.Entries[1].Markdown {
		t.Errorf("only .md files should be markdown, got %v/%v", c.Entries[0].Markdown, c.Entries[1].Markdown)
	}
}

func TestLoad_Unsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(context.Background(), path); err == nil {
		t.Fatal("expected error for unsupported file")
	}
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "NotHTML", in: "  just text ", want: "just text"},
		{name: "Paragraphs", in: "<p>One</p><p>Two</p>", want: "One\nTwo"},
		{name: "LineBreak", in: "a<br>b", want: "a\nb"},
		{name: "List", in: "<ul><li>x</li><li>y</li></ul>", want: "• x\n• y"},
		{name: "DropsScript", in: "<p>ok</p><script>alert(1)</script>", want: "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.in); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
