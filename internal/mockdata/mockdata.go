// Package mockdata serves the static users and notes shown by the web service.
//
// The catalog is read from an embedded YAML document once and never mutated,
// so it can be shared across requests without locking.
package mockdata

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/teamboost/gratitudewall/internal/notecard"
)

// Role is a user's role on the team.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Status is a note's publication status.
type Status string

const (
	StatusPublished Status = "published"
	StatusDraft     Status = "draft"
	StatusArchived  Status = "archived"
)

// User is a team member.
type User struct {
	ID        string
	Name      string
	Email     string
	AvatarURL string
	Role      Role
}

// Note is a recognition note from one user to another.
type Note struct {
	ID          string
	AuthorID    string
	RecipientID string
	Content     string
	Status      Status
	// Age is how long before "now" the note was created.
	Age time.Duration
}

// NoteWithRelations is a note with its author and recipient resolved.
// Author or Recipient is nil when the referenced user is unknown.
type NoteWithRelations struct {
	Note
	CreatedAt time.Time
	Author    *User
	Recipient *User
}

// Quote is an anonymous-ish note shown on marketing pages.
type Quote struct {
	Content string
	Author  string
	Color   string
}

// Card returns the read-only card drawn for q.
func (q Quote) Card() notecard.ReadOnly {
	return notecard.ReadOnly{
		Content: q.Content,
		Author:  q.Author,
		Color:   notecard.Color(q.Color),
	}
}

// Cards converts quotes to read-only cards, keeping order.
func Cards(quotes []Quote) []notecard.ReadOnly {
	out := make([]notecard.ReadOnly, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, q.Card())
	}
	return out
}

// Catalog holds the loaded data.
type Catalog struct {
	users        []User
	usersByID    map[string]User
	notes        []Note
	publicNotes  []Quote
	storyNotes   []Quote
	previewNotes []Quote
}

//go:embed seed.yaml
var embeddedSeed []byte

var defaultCatalog = mustLoadEmbedded()

// Default returns the process-wide embedded catalog.
func Default() *Catalog {
	return defaultCatalog
}

type seedFile struct {
	Users []struct {
		ID        string `yaml:"id"`
		Name      string `yaml:"name"`
		Email     string `yaml:"email"`
		AvatarURL string `yaml:"avatar_url"`
		Role      string `yaml:"role"`
	} `yaml:"users"`
	Notes []struct {
		ID          string `yaml:"id"`
		AuthorID    string `yaml:"author_id"`
		RecipientID string `yaml:"recipient_id"`
		Content     string `yaml:"content"`
		Status      string `yaml:"status"`
		Age         string `yaml:"age"`
	} `yaml:"notes"`
	PublicNotes  []seedQuote `yaml:"public_notes"`
	StoryNotes   []seedQuote `yaml:"story_notes"`
	PreviewNotes []seedQuote `yaml:"preview_notes"`
}

type seedQuote struct {
	Content string `yaml:"content"`
	Author  string `yaml:"author"`
	Color   string `yaml:"color"`
}

// Load parses a catalog document.
func Load(data []byte) (*Catalog, error) {
	var raw seedFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{usersByID: make(map[string]User, len(raw.Users))}
	for i, u := range raw.Users {
		id := strings.TrimSpace(u.ID)
		if id == "" {
			return nil, fmt.Errorf("user %d: id is required", i)
		}
		if _, exists := c.usersByID[id]; exists {
			return nil, fmt.Errorf("user %q: duplicate id", id)
		}
		role := Role(strings.TrimSpace(u.Role))
		switch role {
		case RoleAdmin, RoleUser:
		case "":
			role = RoleUser
		default:
			return nil, fmt.Errorf("user %q: unknown role %q", id, u.Role)
		}
		user := User{
			ID:        id,
			Name:      strings.TrimSpace(u.Name),
			Email:     strings.ToLower(strings.TrimSpace(u.Email)),
			AvatarURL: strings.TrimSpace(u.AvatarURL),
			Role:      role,
		}
		c.users = append(c.users, user)
		c.usersByID[id] = user
	}

	seenNotes := make(map[string]struct{}, len(raw.Notes))
	for i, n := range raw.Notes {
		id := strings.TrimSpace(n.ID)
		if id == "" {
			return nil, fmt.Errorf("note %d: id is required", i)
		}
		if _, exists := seenNotes[id]; exists {
			return nil, fmt.Errorf("note %q: duplicate id", id)
		}
		seenNotes[id] = struct{}{}
		if _, ok := c.usersByID[n.AuthorID]; !ok {
			return nil, fmt.Errorf("note %q: unknown author %q", id, n.AuthorID)
		}
		if _, ok := c.usersByID[n.RecipientID]; !ok {
			return nil, fmt.Errorf("note %q: unknown recipient %q", id, n.RecipientID)
		}
		status := Status(strings.TrimSpace(n.Status))
		switch status {
		case StatusPublished, StatusDraft, StatusArchived:
		default:
			return nil, fmt.Errorf("note %q: unknown status %q", id, n.Status)
		}
		var age time.Duration
		if strings.TrimSpace(n.Age) != "" {
			parsed, err := time.ParseDuration(strings.TrimSpace(n.Age))
			if err != nil {
				return nil, fmt.Errorf("note %q: parse age: %w", id, err)
			}
			if parsed < 0 {
				return nil, fmt.Errorf("note %q: age must not be negative", id)
			}
			age = parsed
		}
		c.notes = append(c.notes, Note{
			ID:          id,
			AuthorID:    n.AuthorID,
			RecipientID: n.RecipientID,
			Content:     strings.TrimSpace(n.Content),
			Status:      status,
			Age:         age,
		})
	}

	c.publicNotes = quotes(raw.PublicNotes)
	c.storyNotes = quotes(raw.StoryNotes)
	c.previewNotes = quotes(raw.PreviewNotes)
	return c, nil
}

func quotes(raw []seedQuote) []Quote {
	out := make([]Quote, 0, len(raw))
	for _, q := range raw {
		content := strings.TrimSpace(q.Content)
		if content == "" {
			continue
		}
		out = append(out, Quote{
			Content: content,
			Author:  strings.TrimSpace(q.Author),
			Color:   strings.TrimSpace(q.Color),
		})
	}
	return out
}

func mustLoadEmbedded() *Catalog {
	c, err := Load(embeddedSeed)
	if err != nil {
		panic(err)
	}
	return c
}

// Users returns all users in catalog order.
func (c *Catalog) Users() []User {
	if c == nil {
		return nil
	}
	return append([]User(nil), c.users...)
}

// UserByID returns the user with id.
func (c *Catalog) UserByID(id string) (User, bool) {
	if c == nil {
		return User{}, false
	}
	u, ok := c.usersByID[strings.TrimSpace(id)]
	return u, ok
}

// UserByEmail returns the user with a case-insensitive email match.
func (c *Catalog) UserByEmail(email string) (User, bool) {
	if c == nil {
		return User{}, false
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return User{}, false
	}
	for _, u := range c.users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

// Notes returns all notes in catalog order.
func (c *Catalog) Notes() []Note {
	if c == nil {
		return nil
	}
	return append([]Note(nil), c.notes...)
}

// NotesWithRelations resolves authors and recipients and stamps creation
// times relative to now. Results keep catalog order.
func (c *Catalog) NotesWithRelations(now time.Time) []NoteWithRelations {
	if c == nil {
		return nil
	}
	out := make([]NoteWithRelations, 0, len(c.notes))
	for _, n := range c.notes {
		rel := NoteWithRelations{Note: n, CreatedAt: now.Add(-n.Age)}
		if author, ok := c.usersByID[n.AuthorID]; ok {
			rel.Author = &author
		}
		if recipient, ok := c.usersByID[n.RecipientID]; ok {
			rel.Recipient = &recipient
		}
		out = append(out, rel)
	}
	return out
}

// NewestFirst returns notes ordered by creation time, newest first.
func NewestFirst(notes []NoteWithRelations) []NoteWithRelations {
	out := append([]NoteWithRelations(nil), notes...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// PublicNotes returns the public wall quotes.
func (c *Catalog) PublicNotes() []Quote {
	if c == nil {
		return nil
	}
	return append([]Quote(nil), c.publicNotes...)
}

// StoryNotes returns the landing story quotes.
func (c *Catalog) StoryNotes() []Quote {
	if c == nil {
		return nil
	}
	return append([]Quote(nil), c.storyNotes...)
}

// PreviewNotes returns the landing preview quotes.
func (c *Catalog) PreviewNotes() []Quote {
	if c == nil {
		return nil
	}
	return append([]Quote(nil), c.previewNotes...)
}
