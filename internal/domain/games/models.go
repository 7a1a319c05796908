package games

// Game carries the game identifier. The games table exists to supply the
// distinct-game denominator for league-wide averages.
type Game struct {
	ID string `json:"id"`
}
