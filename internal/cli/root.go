package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	return fmt.Sprintf("(%s)", a.Mode)
}

// Root runs the interactive loop until EOF or exit.
func (a *App) Root(ctx context.Context) {
	printlnFn("MultiLingo CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("mlg %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Translation: (t)ranslate, history [fav] [terms], search <terms>, fav <id>, del <id>, clear, stats, import")
			printlnFn("Community:   verify <id>, phrases [category], record")
			printlnFn("Emergency:   broadcast, broadcasts, ack <id>")
			printlnFn("Other:       prefs, sync, configure, exit")

		case "t", "translate":
			a.translate(ctx)
		case "history":
			a.history(ctx, args)
		case "search":
			a.history(ctx, args)
		case "fav":
			a.toggleFavorite(ctx, args)
		case "del":
			a.deleteEntry(ctx, args)
		case "clear":
			a.clearHistory(ctx)
		case "stats":
			a.stats(ctx)
		case "import":
			a.importDataset(ctx)
		case "verify":
			a.verify(ctx, args)
		case "phrases":
			a.phrases(ctx, args)
		case "broadcast":
			a.broadcast(ctx)
		case "broadcasts":
			a.broadcasts(ctx)
		case "ack":
			a.acknowledge(ctx, args)
		case "record":
			a.record(ctx)
		case "prefs":
			a.prefs(ctx, args)
		case "sync":
			a.sync(ctx)
		case "configure":
			a.configure(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
