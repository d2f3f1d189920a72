package content

import domain "github.com/tesso57/flank/internal/domain/content"

// Welcome returns the pages shown when no source is configured.
func Welcome() *domain.Collection {
	return &domain.Collection{
		Title:  "flank",
		Origin: "",
		Entries: []domain.Entry{
			{
				ID:      "welcome",
				Title:   "Welcome",
				Summary: "Three panes, one breakpoint.",
				Body: "# Welcome\n\n" +
					"flank shows a list on the left, the selected page here, and its details on the right.\n\n" +
					"Press `[` to toggle the left sidebar and `]` to toggle the right one. " +
					"When the terminal is narrower than the theme's breakpoint only one sidebar can stay open: " +
					"opening one closes the other, and shrinking the window closes the right sidebar first.",
				Source:   "flank",
				Markdown: true,
			},
			{
				ID:      "keys",
				Title:   "Keys",
				Summary: "Navigation and toggles.",
				Body: "# Keys\n\n" +
					"| key | action |\n" +
					"| --- | --- |\n" +
					"| `[` | toggle left sidebar |\n" +
					"| `]` | toggle right sidebar |\n" +
					"| `j` / `k` | move through the list |\n" +
					"| `/` | filter the list |\n" +
					"| `enter` | open the selected page |\n" +
					"| `o` | open the link in a browser |\n" +
					"| `r` | reload the source |\n" +
					"| `?` | help |\n" +
					"| `q` | quit |\n\n" +
					"Clicking a sidebar's title or its collapsed rail toggles it too.",
				Source:   "flank",
				Markdown: true,
			},
			{
				ID:      "sources",
				Title:   "Sources",
				Summary: "Feeds, feed files and folders.",
				Body: "# Sources\n\n" +
					"Start flank with `--source` pointing at:\n\n" +
					"- an RSS, Atom or JSON feed URL\n" +
					"- a feed file (`.xml`, `.rss`, `.atom`, `.json`)\n" +
					"- a directory of `.md` and `.txt` files\n\n" +
					"The source can also be set in `config.yaml`. Local sources are reloaded when they change.",
				Source:   "flank",
				Markdown: true,
			},
		},
	}
}
