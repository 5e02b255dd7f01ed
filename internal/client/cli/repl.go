package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Dashboard(ctx context.Context) error
	Use(ctx context.Context, page string) error
	List(ctx context.Context) error
	Letters(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Share(ctx context.Context, id string) error
	Open(ctx context.Context, link string) error
	Search(ctx context.Context, text string) error
	Filter(ctx context.Context, field, value string) error
	Sort(ctx context.Context, key string) error
	ClearFilters(ctx context.Context) error
	Categories(ctx context.Context) error
	AddCategory(ctx context.Context) error
	EditCategory(ctx context.Context, id string) error
	DeleteCategory(ctx context.Context, id string) error
	Moments(ctx context.Context, language string) error
	RenameMoment(ctx context.Context) error
	ClearMoment(ctx context.Context) error
	Export(ctx context.Context) error
	Refresh(ctx context.Context) error
}

const helpText = `Available commands:
  dash                      overview and recent entries
  use vocab|notes           switch the current list
  list | l                  list entries with the active filters
  letters                   list entries grouped by first letter
  show <id>                 show one entry
  add                       add an entry
  edit <id>                 edit an entry
  delete <id>               delete an entry
  share <id>                print a share link and card
  open <link|token>         show a shared entry
  search [text]             filter by text (no text clears it)
  filter lang|date|cat [v]  filter by language, date or category id
  sort created|date|title   sort by key; same key again flips direction
  clear                     reset filters and sort order
  cats                      list categories with statistics
  addcat | editcat <id> | delcat <id>
  moments [language]        moments of memory per language
  rename-moment             rename a moment on every entry
  clear-moment              remove a moment from every entry
  export                    upload a snapshot (service key needed)
  refresh                   reload everything
  exit | quit`

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are printed and the loop continues;
// handlers log details themselves.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		if p := promptFn(); p != "" {
			fmt.Print(p)
		}
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		rest := strings.Join(args, " ")
		arg := func(i int) string {
			if i < len(args) {
				return args[i]
			}
			return ""
		}

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)
		case "dash":
			cmdErr = a.Dashboard(ctx)
		case "use":
			cmdErr = a.Use(ctx, arg(0))
		case "l", "list":
			cmdErr = a.List(ctx)
		case "letters":
			cmdErr = a.Letters(ctx)
		case "show":
			cmdErr = a.Show(ctx, arg(0))
		case "add":
			cmdErr = a.Add(ctx)
		case "edit":
			cmdErr = a.Edit(ctx, arg(0))
		case "delete":
			cmdErr = a.Delete(ctx, arg(0))
		case "share":
			cmdErr = a.Share(ctx, arg(0))
		case "open":
			cmdErr = a.Open(ctx, arg(0))
		case "search":
			cmdErr = a.Search(ctx, rest)
		case "filter":
			cmdErr = a.Filter(ctx, arg(0), strings.Join(args[min(1, len(args)):], " "))
		case "sort":
			cmdErr = a.Sort(ctx, arg(0))
		case "clear":
			cmdErr = a.ClearFilters(ctx)
		case "cats":
			cmdErr = a.Categories(ctx)
		case "addcat":
			cmdErr = a.AddCategory(ctx)
		case "editcat":
			cmdErr = a.EditCategory(ctx, arg(0))
		case "delcat":
			cmdErr = a.DeleteCategory(ctx, arg(0))
		case "moments":
			cmdErr = a.Moments(ctx, rest)
		case "rename-moment":
			cmdErr = a.RenameMoment(ctx)
		case "clear-moment":
			cmdErr = a.ClearMoment(ctx)
		case "export":
			cmdErr = a.Export(ctx)
		case "refresh":
			cmdErr = a.Refresh(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
