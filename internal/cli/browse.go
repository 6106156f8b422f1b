package cli

import (
	"context"
	"fmt"
	"strings"

	liteapp "github.com/alexanderramin/lite/internal/app"
	"github.com/alexanderramin/lite/internal/cli/formatter"
	"github.com/alexanderramin/lite/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactive ranked list with live search",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("browse needs an interactive terminal")
			}
			m := newBrowseModel(cmd.Context(), app)
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

type browseKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Search    key.Binding
	NextGenre key.Binding
	PrevGenre key.Binding
	Seed      key.Binding
	Wishlist  key.Binding
	Day       key.Binding
	Night     key.Binding
	Quit      key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		NextGenre: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "genre")),
		PrevGenre: key.NewBinding(key.WithKeys("shift+tab")),
		Seed:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "more like this")),
		Wishlist:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wishlist")),
		Day:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "day")),
		Night:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "night")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Search, k.NextGenre, k.Seed, k.Wishlist, k.Day, k.Night, k.Quit}
}

type browseLoadedMsg struct {
	resp *liteapp.RecommendResponse
	err  error
}

type browseMutatedMsg struct {
	status string
	err    error
}

// browseModel is a ranked list that re-ranks on every change to the
// search, genre, seed or profile.
type browseModel struct {
	ctx  context.Context
	app  *App
	keys browseKeyMap

	search    textinput.Model
	searching bool
	genres    []string
	genreIdx  int
	seed      string

	resp   *liteapp.RecommendResponse
	cursor int
	status string
	err    error

	width    int
	quitting bool
}

func newBrowseModel(ctx context.Context, app *App) browseModel {
	ti := textinput.New()
	ti.Placeholder = "title, genre or keyword"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	genres := append([]string{domain.AllGenres}, app.Catalog.Genres()...)

	return browseModel{
		ctx:    ctx,
		app:    app,
		keys:   defaultBrowseKeys(),
		search: ti,
		genres: genres,
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.load()
}

func (m browseModel) request() liteapp.RecommendRequest {
	req := liteapp.NewRecommendRequest()
	req.SeedID = m.seed
	req.Genre = m.genres[m.genreIdx]
	req.Search = m.search.Value()
	return req
}

func (m browseModel) load() tea.Cmd {
	req := m.request()
	ctx, rec := m.ctx, m.app.Recommend
	return func() tea.Msg {
		resp, err := rec.Recommend(ctx, req)
		return browseLoadedMsg{resp: resp, err: err}
	}
}

func (m browseModel) selected() (liteapp.RankedMovie, bool) {
	if m.resp == nil || m.cursor < 0 || m.cursor >= len(m.resp.Items) {
		return liteapp.RankedMovie{}, false
	}
	return m.resp.Items[m.cursor], true
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case browseLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.resp = msg.resp
			if m.cursor >= len(m.resp.Items) {
				m.cursor = max(len(m.resp.Items)-1, 0)
			}
		}
		return m, nil

	case browseMutatedMsg:
		m.err = msg.err
		m.status = msg.status
		return m, m.load()

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m browseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc, tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	m.cursor = 0
	return m, tea.Batch(cmd, m.load())
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.resp != nil && m.cursor < len(m.resp.Items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.NextGenre):
		m.genreIdx = (m.genreIdx + 1) % len(m.genres)
		m.cursor = 0
		return m, m.load()
	case key.Matches(msg, m.keys.PrevGenre):
		m.genreIdx = (m.genreIdx + len(m.genres) - 1) % len(m.genres)
		m.cursor = 0
		return m, m.load()

	case key.Matches(msg, m.keys.Seed):
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		if m.seed == item.Item.ID {
			m.seed = ""
		} else {
			m.seed = item.Item.ID
		}
		m.cursor = 0
		return m, m.load()

	case key.Matches(msg, m.keys.Wishlist):
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.mutate(func(ctx context.Context) (*liteapp.MutationResult, error) {
			return m.app.Profile.ToggleWishlist(ctx, item.Item.ID)
		}, wishlistStatus(item))

	case key.Matches(msg, m.keys.Day):
		return m, m.toggleBucket(domain.BucketDay)
	case key.Matches(msg, m.keys.Night):
		return m, m.toggleBucket(domain.BucketNight)
	}
	return m, nil
}

// toggleBucket files the selected item under b, or clears it when it is
// already there.
func (m browseModel) toggleBucket(b domain.Bucket) tea.Cmd {
	item, ok := m.selected()
	if !ok {
		return nil
	}
	id := item.Item.ID
	if item.Bucket == b {
		return m.mutate(func(ctx context.Context) (*liteapp.MutationResult, error) {
			return m.app.Profile.ClearBucket(ctx, id)
		}, fmt.Sprintf("%s removed from %s", item.Item.Title, b))
	}
	return m.mutate(func(ctx context.Context) (*liteapp.MutationResult, error) {
		return m.app.Profile.SetBucket(ctx, id, b)
	}, fmt.Sprintf("%s moved to %s", item.Item.Title, b))
}

func (m browseModel) mutate(fn func(context.Context) (*liteapp.MutationResult, error), status string) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		if _, err := fn(ctx); err != nil {
			return browseMutatedMsg{err: err}
		}
		return browseMutatedMsg{status: status}
	}
}

func wishlistStatus(item liteapp.RankedMovie) string {
	if item.Wishlisted {
		return item.Item.Title + " removed from wishlist"
	}
	return item.Item.Title + " added to wishlist"
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	if m.resp != nil {
		b.WriteString(formatter.ContextLabel(m.resp.Context) + "  ")
	}
	b.WriteString(formatter.Dim("genre: ") + formatter.Bold(m.genres[m.genreIdx]))
	if m.seed != "" {
		title := m.seed
		if item, ok := m.app.Catalog.Lookup(m.seed); ok {
			title = item.Title
		}
		b.WriteString(formatter.Dim("  like: ") + formatter.StyleYellow.Render(title))
	}
	b.WriteString("\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.resp == nil:
		b.WriteString(formatter.Dim("Loading...") + "\n")
	case len(m.resp.Items) == 0:
		b.WriteString(formatter.Dim("Nothing matches.") + "\n")
	default:
		for i, it := range m.resp.Items {
			b.WriteString(m.renderRow(i, it))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(formatter.StyleGreen.Render(m.status) + "\n")
	}
	b.WriteString(m.helpLine())
	return b.String()
}

func (m browseModel) renderRow(i int, it liteapp.RankedMovie) string {
	cursor := "  "
	title := formatter.StyleFg.Render(it.Item.Title)
	if i == m.cursor {
		cursor = formatter.StyleHeader.Render("▸ ")
		title = formatter.Bold(it.Item.Title)
	}
	row := fmt.Sprintf("%s%s %s  %s", cursor, formatter.RenderMatch(it.Probability, 8), title, formatter.StatusBadge(it.Status))
	if badge := formatter.BucketBadge(it.Bucket); badge != "" {
		row += "  " + badge
	}
	if it.Wishlisted {
		row += "  " + formatter.StyleRed.Render("♥")
	}
	return row
}

func (m browseModel) helpLine() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, k := range m.keys.ShortHelp() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return formatter.Dim(strings.Join(parts, " • "))
}
