package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/CODE-SECX/English-Sikho/internal/client/client"
	"github.com/CODE-SECX/English-Sikho/internal/client/collections"
	"github.com/CODE-SECX/English-Sikho/internal/client/config"
	"github.com/CODE-SECX/English-Sikho/internal/client/views"
	"github.com/CODE-SECX/English-Sikho/internal/logging"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// Page names accepted by "use".
const (
	PageVocabulary = "vocab"
	PageNotes      = "notes"
)

type App struct {
	config *config.Config
	client client.Client
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer

	vocabulary *views.VocabularyPage
	notes      *views.NotesPage
	categories *views.CategoriesPage
	moments    *views.MomentsPage
	dashboard  *views.Dashboard

	current     string
	interactive bool
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewText(os.Stderr, logging.ParseLevel(c.LogLevel))

	apiClient, err := client.NewRecordStoreClient(c.ServerEndpointAddr, c.APIKey)
	if err != nil {
		return nil, err
	}

	a := newApp(c, apiClient, logger, os.Stdin, os.Stdout)
	a.interactive = isTerminal(int(os.Stdin.Fd()))
	return a, nil
}

// newApp wires collections and pages around an existing client.
func newApp(c *config.Config, apiClient client.Client, l logging.Logger, in io.Reader, out io.Writer) *App {
	categories := collections.NewCategories(apiClient, l)
	vocabulary := collections.NewVocabulary(apiClient, l)
	notes := collections.NewNotes(apiClient, l)

	return &App{
		config:     c,
		client:     apiClient,
		logger:     l,
		reader:     bufio.NewReader(in),
		out:        out,
		vocabulary: views.NewVocabularyPage(vocabulary, c.ShareBaseURL, l),
		notes:      views.NewNotesPage(notes, categories, c.ShareBaseURL, l),
		categories: views.NewCategoriesPage(categories, vocabulary, notes, l),
		moments:    views.NewMomentsPage(vocabulary, notes, l),
		dashboard:  views.NewDashboard(categories, vocabulary, notes),
		current:    PageVocabulary,
	}
}

// Run checks the store is reachable, loads everything and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	if err := a.client.Ping(ctx); err != nil {
		a.printf("Record store unreachable at %s: %v\n", a.config.ServerEndpointAddr, err)
	}

	a.printf("English Sikho (type 'help' for commands)\n")
	_ = a.Refresh(ctx)

	runREPL(ctx, a, a.prompt, a.reader)
}

// prompt is shown before each command when stdin is a terminal.
func (a *App) prompt() string {
	if !a.interactive {
		return ""
	}
	return "sikho [" + a.current + "]> "
}

// requestContext bounds a single store round trip.
func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := a.config.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

// Refresh reloads every table.
func (a *App) Refresh(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()
	a.dashboard.Load(ctx)
	return nil
}
