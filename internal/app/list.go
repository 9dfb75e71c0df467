package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/atomicstack/emoji-palette/internal/emoji"
	"github.com/atomicstack/emoji-palette/internal/format/table"
)

// List writes one row per shown category with its symbol and page counts at
// width.
func List(cfg Config, width int, w io.Writer) error {
	palette, err := Build(cfg, width)
	if err != nil {
		return err
	}
	defer palette.Close()

	rows := [][]string{{"tab", "category", "symbols", "pages"}}
	for _, c := range palette.ShownCategories() {
		size := palette.Symbols.Len(c)
		if c == emoji.Recents {
			size = palette.Recents.Len()
		}
		rows = append(rows, []string{
			palette.Icon(c),
			palette.Name(c),
			strconv.Itoa(size),
			strconv.Itoa(palette.PageCount(c)),
		})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight, table.AlignRight}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write listing: %w", err)
		}
	}
	return nil
}
