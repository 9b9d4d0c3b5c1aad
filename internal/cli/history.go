package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mindful-ai-dude/multilingo/internal/dataset"
	"github.com/mindful-ai-dude/multilingo/internal/repositories/history"
)

// history lists recent translations. Usage: history [fav] [search terms...]
func (a *App) history(ctx context.Context, args []string) {
	f := history.Filter{Limit: 20}
	if len(args) > 0 && args[0] == "fav" {
		f.FavoritesOnly = true
		args = args[1:]
	}
	if len(args) > 0 {
		f.Search = strings.Join(args, " ")
	}

	rows, err := a.store.History.List(ctx, f)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	if len(rows) == 0 {
		printlnFn("No history yet.")
		return
	}

	for _, r := range rows {
		star := " "
		if r.IsFavorite {
			star = "*"
		}
		fmt.Printf("%4d %s %s %s → %s: %q → %q\n",
			r.ID, star, methodBadge(r.Method), r.From.Code(), r.To.Code(), r.SourceText, r.TranslatedText)
	}
}

func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (a *App) toggleFavorite(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		printlnFn("Usage: fav <id>")
		return
	}
	if err := a.store.History.ToggleFavorite(ctx, id); err != nil {
		printlnFn(err.Error())
		return
	}
	printlnFn("Toggled.")
}

func (a *App) deleteEntry(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		printlnFn("Usage: del <id>")
		return
	}
	if err := a.store.History.Delete(ctx, id); err != nil {
		printlnFn(err.Error())
		return
	}
	printlnFn("Deleted.")
}

func (a *App) clearHistory(ctx context.Context) {
	answer, err := GetSimpleText(a.reader, "Delete ALL history? (yes/no)", os.Stdout)
	if err != nil || answer != "yes" {
		printlnFn("Cancelled.")
		return
	}
	if err := a.store.History.Clear(ctx); err != nil {
		printlnFn(err.Error())
		return
	}
	printlnFn("History cleared.")
}

func (a *App) stats(ctx context.Context) {
	s, err := a.store.History.Stats(ctx)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	fmt.Printf("History: %d total, %d favorites, %d online, %d offline\n",
		s.Total, s.Favorites, s.Online, s.Offline)

	ds := dataset.Statistics()
	fmt.Printf("Bundled dataset: %d phrases\n", ds.Total)
	for _, pair := range sortedKeys(ds.PairCounts) {
		fmt.Printf("  %-40s %d\n", pair, ds.PairCounts[pair])
	}
}

func (a *App) importDataset(ctx context.Context) {
	report, err := dataset.BulkLoadInto(ctx, a.store.History)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	fmt.Printf("Imported %d of %d dataset phrases into history.\n", report.Imported, report.Total)
}
