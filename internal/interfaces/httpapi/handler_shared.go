package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/liborpaciorek/tjhlavnice/internal/domain/calendar"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/event"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/gallery"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/management"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/match"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/news"
	"github.com/liborpaciorek/tjhlavnice/internal/domain/player"
	"github.com/liborpaciorek/tjhlavnice/internal/usecase"
)

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("%w: invalid page number", usecase.ErrInvalidInput)
	}
	return page, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

type newsArticleDTO struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	ImagePath  string `json:"imagePath,omitempty"`
	Author     string `json:"author,omitempty"`
	IsFeatured bool   `json:"isFeatured"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

func toNewsArticleDTO(article news.Article) newsArticleDTO {
	return newsArticleDTO{
		ID:         article.ID,
		Title:      article.Title,
		Content:    article.Content,
		ImagePath:  article.ImagePath,
		Author:     article.Author,
		IsFeatured: article.IsFeatured,
		CreatedAt:  formatTime(article.CreatedAt),
		UpdatedAt:  formatTime(article.UpdatedAt),
	}
}

type newsPageDTO struct {
	Articles   []newsArticleDTO `json:"articles"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalCount int              `json:"totalCount"`
	TotalPages int              `json:"totalPages"`
}

func toNewsPageDTO(page usecase.NewsPage) newsPageDTO {
	articles := make([]newsArticleDTO, 0, len(page.Articles))
	for _, article := range page.Articles {
		articles = append(articles, toNewsArticleDTO(article))
	}
	return newsPageDTO{
		Articles:   articles,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	}
}

type matchSideDTO struct {
	TeamID     int64  `json:"teamId"`
	Name       string `json:"name"`
	IsClubTeam bool   `json:"isClubTeam"`
}

type matchDTO struct {
	ID        int64        `json:"id"`
	LeagueID  int64        `json:"leagueId"`
	Home      matchSideDTO `json:"home"`
	Away      matchSideDTO `json:"away"`
	Date      string       `json:"date"`
	HomeScore *int         `json:"homeScore,omitempty"`
	AwayScore *int         `json:"awayScore,omitempty"`
	Location  string       `json:"location,omitempty"`
	Referee   string       `json:"referee,omitempty"`
	Notes     string       `json:"notes,omitempty"`
	Finished  bool         `json:"finished"`
}

func toMatchDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:       m.ID,
		LeagueID: m.LeagueID,
		Home: matchSideDTO{
			TeamID:     m.Home.TeamID,
			Name:       m.Home.Name,
			IsClubTeam: m.Home.IsClubTeam,
		},
		Away: matchSideDTO{
			TeamID:     m.Away.TeamID,
			Name:       m.Away.Name,
			IsClubTeam: m.Away.IsClubTeam,
		},
		Date:      formatTime(m.Date),
		HomeScore: m.HomeScore,
		AwayScore: m.AwayScore,
		Location:  m.Location,
		Referee:   m.Referee,
		Notes:     m.Notes,
		Finished:  m.IsFinished(),
	}
}

func toMatchDTOs(matches []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		out = append(out, toMatchDTO(m))
	}
	return out
}

type leagueDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Season      string `json:"season"`
	Description string `json:"description,omitempty"`
}

type matchOverviewDTO struct {
	Upcoming []matchDTO  `json:"upcoming"`
	Recent   []matchDTO  `json:"recent"`
	Leagues  []leagueDTO `json:"leagues"`
	LeagueID int64       `json:"leagueId,omitempty"`
}

func toMatchOverviewDTO(overview usecase.MatchOverview) matchOverviewDTO {
	leagues := make([]leagueDTO, 0, len(overview.Leagues))
	for _, l := range overview.Leagues {
		leagues = append(leagues, leagueDTO{
			ID:          l.ID,
			Name:        l.Name,
			Season:      l.Season,
			Description: l.Description,
		})
	}
	return matchOverviewDTO{
		Upcoming: toMatchDTOs(overview.Upcoming),
		Recent:   toMatchDTOs(overview.Recent),
		Leagues:  leagues,
		LeagueID: overview.LeagueID,
	}
}

type standingRowDTO struct {
	Position        int     `json:"position"`
	TeamID          int64   `json:"teamId"`
	TeamName        string  `json:"teamName"`
	IsClubTeam      bool    `json:"isClubTeam"`
	Played          int     `json:"played"`
	Won             int     `json:"won"`
	Drawn           int     `json:"drawn"`
	Lost            int     `json:"lost"`
	GoalsFor        int     `json:"goalsFor"`
	GoalsAgainst    int     `json:"goalsAgainst"`
	GoalDiff        int     `json:"goalDiff"`
	Points          int     `json:"points"`
	SuccessRate     float64 `json:"successRate"`
	AvgGoalsFor     float64 `json:"avgGoalsFor"`
	AvgGoalsAgainst float64 `json:"avgGoalsAgainst"`
}

type standingsTableDTO struct {
	League leagueDTO        `json:"league"`
	Rows   []standingRowDTO `json:"rows"`
}

func toStandingsTableDTO(table usecase.Table) standingsTableDTO {
	rows := make([]standingRowDTO, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, standingRowDTO{
			Position:        row.Position,
			TeamID:          row.TeamID,
			TeamName:        row.TeamName,
			IsClubTeam:      row.IsClubTeam,
			Played:          row.Played,
			Won:             row.Won,
			Drawn:           row.Drawn,
			Lost:            row.Lost,
			GoalsFor:        row.GoalsFor,
			GoalsAgainst:    row.GoalsAgainst,
			GoalDiff:        row.GoalDiff,
			Points:          row.Points,
			SuccessRate:     row.SuccessRate,
			AvgGoalsFor:     row.AvgGoalsFor,
			AvgGoalsAgainst: row.AvgGoalsAgainst,
		})
	}
	return standingsTableDTO{
		League: leagueDTO{
			ID:          table.League.ID,
			Name:        table.League.Name,
			Season:      table.League.Season,
			Description: table.League.Description,
		},
		Rows: rows,
	}
}

type homeClubDTO struct {
	Name     string `json:"name"`
	LogoPath string `json:"logoPath,omitempty"`
}

type homeDTO struct {
	FeaturedNews  []newsArticleDTO `json:"featuredNews"`
	LatestNews    []newsArticleDTO `json:"latestNews"`
	NextMatch     *matchDTO        `json:"nextMatch,omitempty"`
	RecentResults []matchDTO       `json:"recentResults"`
	TableWindow   []standingRowDTO `json:"tableWindow"`
	Club          *homeClubDTO     `json:"club,omitempty"`
}

func toHomeDTO(home usecase.Home) homeDTO {
	featured := make([]newsArticleDTO, 0, len(home.FeaturedNews))
	for _, article := range home.FeaturedNews {
		featured = append(featured, toNewsArticleDTO(article))
	}
	latest := make([]newsArticleDTO, 0, len(home.LatestNews))
	for _, article := range home.LatestNews {
		latest = append(latest, toNewsArticleDTO(article))
	}
	window := make([]standingRowDTO, 0, len(home.TableWindow))
	for _, row := range home.TableWindow {
		window = append(window, standingRowDTO{
			Position:     row.Position,
			TeamID:       row.TeamID,
			TeamName:     row.TeamName,
			IsClubTeam:   row.IsClubTeam,
			Played:       row.Played,
			Won:          row.Won,
			Drawn:        row.Drawn,
			Lost:         row.Lost,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			GoalDiff:     row.GoalDifference(),
			Points:       row.Points,
		})
	}

	out := homeDTO{
		FeaturedNews:  featured,
		LatestNews:    latest,
		RecentResults: toMatchDTOs(home.RecentResults),
		TableWindow:   window,
	}
	if home.NextMatch != nil {
		next := toMatchDTO(*home.NextMatch)
		out.NextMatch = &next
	}
	if home.ClubInfo != nil {
		out.Club = &homeClubDTO{Name: home.ClubInfo.Name, LogoPath: home.ClubInfo.LogoPath}
	}
	return out
}

type playerDTO struct {
	ID           int64  `json:"id"`
	JerseyNumber int    `json:"jerseyNumber"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Position     string `json:"position"`
	BirthDate    string `json:"birthDate,omitempty"`
	PhotoPath    string `json:"photoPath,omitempty"`
	Goals        int    `json:"goals"`
	YellowCards  int    `json:"yellowCards"`
	RedCards     int    `json:"redCards"`
}

func toPlayerDTO(p player.Player) playerDTO {
	out := playerDTO{
		ID:           p.ID,
		JerseyNumber: p.JerseyNumber,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Position:     string(p.Position),
		PhotoPath:    p.PhotoPath,
		Goals:        p.Goals,
		YellowCards:  p.YellowCards,
		RedCards:     p.RedCards,
	}
	if p.BirthDate != nil {
		out.BirthDate = p.BirthDate.UTC().Format("2006-01-02")
	}
	return out
}

func toPlayerDTOs(players []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, toPlayerDTO(p))
	}
	return out
}

type rosterDTO struct {
	TeamID      int64       `json:"teamId"`
	TeamName    string      `json:"teamName"`
	Goalkeepers []playerDTO `json:"goalkeepers"`
	Defenders   []playerDTO `json:"defenders"`
	Midfielders []playerDTO `json:"midfielders"`
	Forwards    []playerDTO `json:"forwards"`
	PlayerCount int         `json:"playerCount"`
}

func toRosterDTO(roster usecase.Roster) rosterDTO {
	return rosterDTO{
		TeamID:      roster.Team.ID,
		TeamName:    roster.Team.Name,
		Goalkeepers: toPlayerDTOs(roster.Goalkeepers),
		Defenders:   toPlayerDTOs(roster.Defenders),
		Midfielders: toPlayerDTOs(roster.Midfielders),
		Forwards:    toPlayerDTOs(roster.Forwards),
		PlayerCount: roster.PlayerCount(),
	}
}

type managementMemberDTO struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Role         string `json:"role"`
	PhotoPath    string `json:"photoPath,omitempty"`
	Bio          string `json:"bio,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
}

func toManagementMemberDTO(member management.Member) managementMemberDTO {
	return managementMemberDTO{
		ID:           member.ID,
		FirstName:    member.FirstName,
		LastName:     member.LastName,
		Role:         string(member.Role),
		PhotoPath:    member.PhotoPath,
		Bio:          member.Bio,
		Phone:        member.Phone,
		Email:        member.Email,
		DisplayOrder: member.DisplayOrder,
	}
}

type calendarEventDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end,omitempty"`
	AllDay      bool   `json:"allDay"`
	HTMLLink    string `json:"htmlLink,omitempty"`
}

type clubEventDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Location    string `json:"location,omitempty"`
	MatchID     *int64 `json:"matchId,omitempty"`
}

type eventsDTO struct {
	Events []clubEventDTO `json:"events"`
}

func toEventsDTO(events []event.Event) eventsDTO {
	out := make([]clubEventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, toClubEventDTO(e))
	}
	return eventsDTO{Events: out}
}

type calendarPageDTO struct {
	Name       string             `json:"name,omitempty"`
	Configured bool               `json:"configured"`
	Events     []calendarEventDTO `json:"events"`
	ClubEvents []clubEventDTO     `json:"clubEvents"`
	Notice     string             `json:"notice,omitempty"`
}

func toCalendarPageDTO(page usecase.CalendarPage) calendarPageDTO {
	events := make([]calendarEventDTO, 0, len(page.Events))
	for _, e := range page.Events {
		events = append(events, toCalendarEventDTO(e))
	}
	clubEvents := make([]clubEventDTO, 0, len(page.ClubEvents))
	for _, e := range page.ClubEvents {
		clubEvents = append(clubEvents, toClubEventDTO(e))
	}
	return calendarPageDTO{
		Name:       page.Name,
		Configured: page.Configured,
		Events:     events,
		ClubEvents: clubEvents,
		Notice:     page.Notice,
	}
}

func toCalendarEventDTO(e calendar.Event) calendarEventDTO {
	out := calendarEventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		AllDay:      e.AllDay,
		HTMLLink:    e.HTMLLink,
	}
	if e.AllDay {
		out.Start = e.Start.UTC().Format("2006-01-02")
		if !e.End.IsZero() {
			out.End = e.End.UTC().Format("2006-01-02")
		}
	} else {
		out.Start = formatTime(e.Start)
		if !e.End.IsZero() {
			out.End = formatTime(e.End)
		}
	}
	return out
}

func toClubEventDTO(e event.Event) clubEventDTO {
	return clubEventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        formatTime(e.Date),
		Location:    e.Location,
		MatchID:     e.MatchID,
	}
}

type galleryAlbumDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
	PhotoCount  int    `json:"photoCount"`
	CoverPath   string `json:"coverPath,omitempty"`
}

func toGalleryAlbumDTO(album gallery.Album) galleryAlbumDTO {
	return galleryAlbumDTO{
		ID:          album.ID,
		Title:       album.Title,
		Description: album.Description,
		CreatedAt:   formatTime(album.CreatedAt),
		PhotoCount:  album.PhotoCount,
		CoverPath:   album.CoverPath,
	}
}

type galleryPhotoDTO struct {
	ID          int64  `json:"id"`
	AlbumID     int64  `json:"albumId"`
	EventID     *int64 `json:"eventId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImagePath   string `json:"imagePath"`
	UploadedAt  string `json:"uploadedAt"`
}

type albumPageDTO struct {
	Albums     []galleryAlbumDTO `json:"albums"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalCount int               `json:"totalCount"`
	TotalPages int               `json:"totalPages"`
}

func toAlbumPageDTO(page usecase.AlbumPage) albumPageDTO {
	albums := make([]galleryAlbumDTO, 0, len(page.Albums))
	for _, album := range page.Albums {
		albums = append(albums, toGalleryAlbumDTO(album))
	}
	return albumPageDTO{
		Albums:     albums,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	}
}

type albumDetailDTO struct {
	Album      galleryAlbumDTO   `json:"album"`
	Photos     []galleryPhotoDTO `json:"photos"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalCount int               `json:"totalCount"`
	TotalPages int               `json:"totalPages"`
}

func toAlbumDetailDTO(detail usecase.AlbumDetail) albumDetailDTO {
	photos := make([]galleryPhotoDTO, 0, len(detail.Photos))
	for _, photo := range detail.Photos {
		photos = append(photos, galleryPhotoDTO{
			ID:          photo.ID,
			AlbumID:     photo.AlbumID,
			EventID:     photo.EventID,
			Title:       photo.Title,
			Description: photo.Description,
			ImagePath:   photo.ImagePath,
			UploadedAt:  formatTime(photo.UploadedAt),
		})
	}
	return albumDetailDTO{
		Album:      toGalleryAlbumDTO(detail.Album),
		Photos:     photos,
		Page:       detail.Page,
		PageSize:   detail.PageSize,
		TotalCount: detail.TotalCount,
		TotalPages: detail.TotalPages,
	}
}

type clubProfileDTO struct {
	Name         string `json:"name"`
	FoundedYear  int    `json:"foundedYear,omitempty"`
	History      string `json:"history,omitempty"`
	LogoPath     string `json:"logoPath,omitempty"`
	Address      string `json:"address,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	Years        int    `json:"yearsOfExistence"`
}

func toClubProfileDTO(profile usecase.ClubProfile) clubProfileDTO {
	return clubProfileDTO{
		Name:         profile.Info.Name,
		FoundedYear:  profile.Info.FoundedYear,
		History:      profile.Info.History,
		LogoPath:     profile.Info.LogoPath,
		Address:      profile.Info.Address,
		ContactEmail: profile.Info.ContactEmail,
		ContactPhone: profile.Info.ContactPhone,
		Years:        profile.Years,
	}
}
