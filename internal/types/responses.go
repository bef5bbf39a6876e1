package types

import "github.com/gameshelf-dev/gameshelf/internal/models"

// ReleaseDateFormat is the wire format for game release dates.
const ReleaseDateFormat = "2006-01-02"

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type GenreResponse struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	UserID *uint  `json:"user_id"`
}

type GameResponse struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Developer   string          `json:"developer"`
	Publisher   string          `json:"publisher"`
	ReleaseDate string          `json:"release_date"`
	Image       string          `json:"image,omitempty"`
	UserID      *uint           `json:"user_id"`
	Genres      []GenreResponse `json:"genres"`
}

// CollectionResponse serializes a backlog or complete-game with its members.
type CollectionResponse struct {
	ID     uint           `json:"id"`
	UserID uint           `json:"user_id"`
	Games  []GameResponse `json:"games"`
}

// CollectionRef is the shallow form embedded in a user response.
type CollectionRef struct {
	ID     uint `json:"id"`
	UserID uint `json:"user_id"`
}

type UserResponse struct {
	ID           uint            `json:"id"`
	Username     string          `json:"username"`
	Backlog      *CollectionRef  `json:"backlog"`
	CompleteGame *CollectionRef  `json:"complete_game"`
	Games        []GameResponse  `json:"games"`
	Genres       []GenreResponse `json:"genres"`
}

func NewGenreResponse(genre models.Genre) GenreResponse {
	return GenreResponse{
		ID:     genre.ID,
		Title:  genre.Title,
		UserID: genre.UserID,
	}
}

func NewGenreResponses(genres []models.Genre) []GenreResponse {
	response := make([]GenreResponse, 0, len(genres))

	for _, genre := range genres {
		response = append(response, NewGenreResponse(genre))
	}

	return response
}

func NewGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:          game.ID,
		Title:       game.Title,
		Developer:   game.Developer,
		Publisher:   game.Publisher,
		ReleaseDate: game.ReleaseDate.Format(ReleaseDateFormat),
		Image:       game.Image,
		UserID:      game.UserID,
		Genres:      NewGenreResponses(game.Genres),
	}
}

func NewGameResponses(games []models.Game) []GameResponse {
	response := make([]GameResponse, 0, len(games))

	for _, game := range games {
		response = append(response, NewGameResponse(game))
	}

	return response
}

func NewBacklogResponse(backlog models.Backlog) CollectionResponse {
	return CollectionResponse{
		ID:     backlog.ID,
		UserID: backlog.UserID,
		Games:  NewGameResponses(backlog.Games),
	}
}

func NewCompleteGameResponse(completeGame models.CompleteGame) CollectionResponse {
	return CollectionResponse{
		ID:     completeGame.ID,
		UserID: completeGame.UserID,
		Games:  NewGameResponses(completeGame.Games),
	}
}

func NewUserResponse(user models.User) UserResponse {
	response := UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Games:    NewGameResponses(user.Games),
		Genres:   NewGenreResponses(user.Genres),
	}

	if user.Backlog != nil {
		response.Backlog = &CollectionRef{ID: user.Backlog.ID, UserID: user.Backlog.UserID}
	}

	if user.CompleteGame != nil {
		response.CompleteGame = &CollectionRef{ID: user.CompleteGame.ID, UserID: user.CompleteGame.UserID}
	}

	return response
}
