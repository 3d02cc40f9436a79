package admin

import "github.com/liborpaciorek/tjhlavnice/internal/infrastructure/media"

// Resources returns every administration screen in display order. The
// configuration mirrors what operators actually edit: list columns,
// search, filters and per-type image handling.
func Resources() []Resource {
	return []Resource{
		{
			Name:      "club-info",
			Table:     "club_info",
			Label:     "Informace o klubu",
			Singleton: true,
			Fields: []Field{
				{Column: "name", Kind: FieldText, Required: true},
				{Column: "founded_year", Kind: FieldInt, Validate: "omitempty,min=1850,max=2100"},
				{Column: "history", Kind: FieldRichText},
				{Column: "logo", Kind: FieldImage, Image: media.KindClubLogo},
				{Column: "address", Kind: FieldText},
				{Column: "contact_email", Kind: FieldText, Validate: "omitempty,email"},
				{Column: "contact_phone", Kind: FieldText},
			},
			ListColumns: []string{"name", "founded_year"},
		},
		{
			Name:  "leagues",
			Table: "leagues",
			Label: "Soutěže",
			Fields: []Field{
				{Column: "name", Kind: FieldText, Required: true},
				{Column: "season", Kind: FieldText, Required: true},
				{Column: "description", Kind: FieldText},
			},
			ListColumns:   []string{"id", "name", "season"},
			SearchColumns: []string{"name", "season"},
			FilterColumns: []string{"season"},
			DefaultOrder:  []string{"season DESC", "name ASC"},
		},
		{
			Name:  "teams",
			Table: "teams",
			Label: "Týmy",
			Fields: []Field{
				{Column: "name", Kind: FieldText, Required: true},
				{Column: "city", Kind: FieldText},
				{Column: "founded_year", Kind: FieldInt, Nullable: true, Validate: "omitempty,min=1850,max=2100"},
				{Column: "league_id", Kind: FieldRef, Nullable: true},
				{Column: "flag", Kind: FieldImage, Image: media.KindTeamFlag},
				{Column: "is_club_team", Kind: FieldBool},
			},
			ListColumns:         []string{"id", "name", "city", "league_id", "is_club_team"},
			SearchColumns:       []string{"name", "city"},
			FilterColumns:       []string{"league_id", "is_club_team"},
			DefaultOrder:        []string{"name ASC"},
			ExclusiveBoolColumn: "is_club_team",
		},
		{
			Name:  "players",
			Table: "players",
			Label: "Hráči",
			Fields: []Field{
				{Column: "team_id", Kind: FieldRef, Required: true},
				{Column: "jersey_number", Kind: FieldInt, Required: true, Validate: "min=1,max=99"},
				{Column: "first_name", Kind: FieldText, Required: true},
				{Column: "last_name", Kind: FieldText, Required: true},
				{Column: "position", Kind: FieldText, Required: true, Validate: "oneof=GK DEF MID FWD"},
				{Column: "birth_date", Kind: FieldDateTime, Nullable: true},
				{Column: "photo", Kind: FieldImage, Image: media.KindPlayerPhoto},
				{Column: "goals", Kind: FieldInt, Validate: "omitempty,min=0"},
				{Column: "yellow_cards", Kind: FieldInt, Validate: "omitempty,min=0"},
				{Column: "red_cards", Kind: FieldInt, Validate: "omitempty,min=0"},
			},
			ListColumns:   []string{"id", "jersey_number", "first_name", "last_name", "position", "team_id", "goals"},
			SearchColumns: []string{"first_name", "last_name"},
			FilterColumns: []string{"team_id", "position"},
			DefaultOrder:  []string{"jersey_number ASC"},
		},
		{
			Name:  "management-members",
			Table: "management_members",
			Label: "Vedení klubu",
			Fields: []Field{
				{Column: "first_name", Kind: FieldText, Required: true},
				{Column: "last_name", Kind: FieldText, Required: true},
				{Column: "role", Kind: FieldText, Required: true, Validate: "oneof=PRESIDENT COACH ASSISTANT TREASURER SECRETARY MANAGER OTHER"},
				{Column: "bio", Kind: FieldRichText},
				{Column: "phone", Kind: FieldText},
				{Column: "email", Kind: FieldText, Validate: "omitempty,email"},
				{Column: "photo", Kind: FieldImage, Image: media.KindManagementPhoto},
				{Column: "display_order", Kind: FieldInt, Validate: "omitempty,min=0"},
			},
			ListColumns:   []string{"id", "display_order", "last_name", "first_name", "role"},
			SearchColumns: []string{"first_name", "last_name"},
			FilterColumns: []string{"role"},
			DefaultOrder:  []string{"display_order ASC", "role ASC", "last_name ASC"},
		},
		{
			Name:  "news-articles",
			Table: "news_articles",
			Label: "Aktuality",
			Fields: []Field{
				{Column: "title", Kind: FieldText, Required: true},
				{Column: "content", Kind: FieldRichText, Required: true},
				{Column: "image", Kind: FieldImage, Image: media.KindNewsImage},
				{Column: "author", Kind: FieldText},
				{Column: "is_featured", Kind: FieldBool},
				{Column: "published", Kind: FieldBool},
			},
			ListColumns:     []string{"id", "title", "author", "published", "is_featured", "created_at"},
			SearchColumns:   []string{"title", "content"},
			FilterColumns:   []string{"published", "is_featured"},
			DefaultOrder:    []string{"created_at DESC"},
			CreatedAtColumn: "created_at",
			UpdatedAtColumn: "updated_at",
		},
		{
			Name:  "matches",
			Table: "matches",
			Label: "Zápasy",
			Fields: []Field{
				{Column: "league_id", Kind: FieldRef, Required: true},
				{Column: "home_team_id", Kind: FieldRef, Required: true},
				{Column: "away_team_id", Kind: FieldRef, Required: true},
				{Column: "match_date", Kind: FieldDateTime, Required: true},
				{Column: "home_score", Kind: FieldInt, Nullable: true, Validate: "omitempty,min=0"},
				{Column: "away_score", Kind: FieldInt, Nullable: true, Validate: "omitempty,min=0"},
				{Column: "location", Kind: FieldText},
				{Column: "referee", Kind: FieldText},
				{Column: "notes", Kind: FieldText},
			},
			ListColumns:   []string{"id", "match_date", "home_team_id", "away_team_id", "home_score", "away_score", "league_id"},
			SearchColumns: []string{"location", "referee"},
			FilterColumns: []string{"league_id", "home_team_id", "away_team_id"},
			DefaultOrder:  []string{"match_date DESC"},
		},
		{
			Name:  "standings",
			Table: "standings",
			Label: "Tabulky",
			Fields: []Field{
				{Column: "league_id", Kind: FieldRef, Required: true},
				{Column: "team_id", Kind: FieldRef, Required: true},
				{Column: "position", Kind: FieldInt, Required: true, Validate: "min=1"},
				{Column: "played", Kind: FieldInt, Validate: "omitempty,min=0"},
				{Column: "won", Kind: FieldInt, Validate: "omitempty,min=0"},
				{Column: "drawn", Kind: FieldInt, Validate: "omitempty,min=0"},
				{Column: "lost", Kind: FieldInt, Validate: "omitempty,min=0"},
				{Column: "goals_for", Kind: FieldInt, Validate: "omitempty,min=0"},
				{Column: "goals_against", Kind: FieldInt, Validate: "omitempty,min=0"},
				{Column: "points", Kind: FieldInt, Validate: "omitempty,min=0"},
			},
			ListColumns:   []string{"id", "league_id", "position", "team_id", "played", "points"},
			FilterColumns: []string{"league_id"},
			DefaultOrder:  []string{"league_id ASC", "position ASC"},
		},
		{
			Name:  "events",
			Table: "events",
			Label: "Události",
			Fields: []Field{
				{Column: "title", Kind: FieldText, Required: true},
				{Column: "description", Kind: FieldText},
				{Column: "event_date", Kind: FieldDateTime, Required: true},
				{Column: "location", Kind: FieldText},
				{Column: "match_id", Kind: FieldRef, Nullable: true},
			},
			ListColumns:   []string{"id", "event_date", "title", "location"},
			SearchColumns: []string{"title", "location"},
			DefaultOrder:  []string{"event_date DESC"},
		},
		{
			Name:  "gallery-albums",
			Table: "gallery_albums",
			Label: "Fotoalba",
			Fields: []Field{
				{Column: "title", Kind: FieldText, Required: true},
				{Column: "description", Kind: FieldText},
			},
			ListColumns:     []string{"id", "title", "created_at"},
			SearchColumns:   []string{"title"},
			DefaultOrder:    []string{"created_at DESC"},
			CreatedAtColumn: "created_at",
		},
		{
			Name:  "gallery-photos",
			Table: "gallery_photos",
			Label: "Fotografie",
			Fields: []Field{
				{Column: "album_id", Kind: FieldRef, Required: true},
				{Column: "event_id", Kind: FieldRef, Nullable: true},
				{Column: "title", Kind: FieldText, Required: true},
				{Column: "description", Kind: FieldText},
				{Column: "image", Kind: FieldImage, Required: true, Image: media.KindGalleryPhoto},
			},
			ListColumns:     []string{"id", "title", "album_id", "uploaded_at"},
			SearchColumns:   []string{"title"},
			FilterColumns:   []string{"album_id", "event_id"},
			DefaultOrder:    []string{"uploaded_at DESC"},
			CreatedAtColumn: "uploaded_at",
		},
		{
			Name:     "page-visits",
			Table:    "page_visits",
			Label:    "Návštěvy stránek",
			ReadOnly: true,
			Fields: []Field{
				{Column: "page_name", Kind: FieldText},
				{Column: "ip_address", Kind: FieldText},
				{Column: "user_agent", Kind: FieldText},
				{Column: "visited_at", Kind: FieldDateTime},
			},
			ListColumns:   []string{"id", "visited_at", "page_name", "ip_address"},
			SearchColumns: []string{"page_name", "ip_address"},
			FilterColumns: []string{"page_name"},
			DefaultOrder:  []string{"visited_at DESC"},
		},
		{
			Name:      "main-page",
			Table:     "main_page_config",
			Label:     "Hlavní stránka",
			Singleton: true,
			Fields: []Field{
				{Column: "featured_news_ids", Kind: FieldIDList},
			},
			ListColumns: []string{"featured_news_ids"},
		},
		{
			Name:      "calendar-settings",
			Table:     "calendar_settings",
			Label:     "Google Kalendář",
			Singleton: true,
			Fields: []Field{
				{Column: "name", Kind: FieldText},
				{Column: "calendar_id", Kind: FieldText},
				{Column: "api_key", Kind: FieldText},
				{Column: "is_active", Kind: FieldBool},
				{Column: "max_events", Kind: FieldInt, Validate: "omitempty,min=1,max=100"},
				{Column: "show_past_events", Kind: FieldBool},
				{Column: "past_events_days", Kind: FieldInt, Validate: "omitempty,min=0,max=365"},
			},
			ListColumns: []string{"name", "calendar_id", "is_active"},
		},
	}
}

// Registry resolves resources by their URL slug.
type Registry struct {
	byName map[string]Resource
	order  []Resource
}

func NewRegistry() *Registry {
	resources := Resources()
	byName := make(map[string]Resource, len(resources))
	for _, res := range resources {
		byName[res.Name] = res
	}
	return &Registry{byName: byName, order: resources}
}

func (r *Registry) Lookup(name string) (Resource, bool) {
	res, ok := r.byName[name]
	return res, ok
}

func (r *Registry) All() []Resource {
	return r.order
}
