package icons

// ID identifies one UI icon.
type ID string

const (
	Overview      ID = "overview"
	Notes         ID = "notes"
	Team          ID = "team"
	Settings      ID = "settings"
	SignOut       ID = "sign_out"
	ToggleSidebar ID = "toggle_sidebar"
	TotalNotes    ID = "total_notes"
	Published     ID = "published"
	Members       ID = "members"
	ActiveSenders ID = "active_senders"
	Note          ID = "note"
	Create        ID = "create"
	PublicWall    ID = "public_wall"
	Search        ID = "search"
	Forward       ID = "forward"
)

// Definition describes a catalog icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: Overview, Name: "Overview", Description: "Dashboard overview navigation."},
	{ID: Notes, Name: "Notes", Description: "The viewer's notes wall."},
	{ID: Team, Name: "Team", Description: "Team member directory."},
	{ID: Settings, Name: "Settings", Description: "Profile and appearance settings."},
	{ID: SignOut, Name: "Sign out", Description: "Ends the session."},
	{ID: ToggleSidebar, Name: "Toggle sidebar", Description: "Collapses or expands the app sidebar."},
	{ID: TotalNotes, Name: "Total notes", Description: "Note count statistic."},
	{ID: Published, Name: "Published", Description: "Published note statistic."},
	{ID: Members, Name: "Members", Description: "Team size statistic."},
	{ID: ActiveSenders, Name: "Active senders", Description: "Members who sent at least one note."},
	{ID: Note, Name: "Note", Description: "Header mark on a note card."},
	{ID: Create, Name: "Create", Description: "Write a new note."},
	{ID: PublicWall, Name: "Public wall", Description: "Link to the public feed."},
	{ID: Search, Name: "Search", Description: "Public feed search field."},
	{ID: Forward, Name: "Forward", Description: "Call to action arrow."},
}

// Catalog returns a copy of the icon catalog.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}
