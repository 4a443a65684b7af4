// meta/meta.go
package meta

import "time"

// EASY_DEPTH defines the search depth of the easy computer player.
const EASY_DEPTH = 2

// MEDIUM_DEPTH defines the search depth of the medium computer player.
const MEDIUM_DEPTH = 5

// HARD_DEPTH defines the search depth of the hard computer player.
const HARD_DEPTH = 7

// PLAYER_TIME_LIMIT defines how long the human player may think about a single move.
const PLAYER_TIME_LIMIT = 120 * time.Second

// THINK_DELAY defines the pause before the computer answers a move.
const THINK_DELAY = 500 * time.Millisecond

// REPETITION_LIMIT defines how often a position may occur before the game is drawn.
const REPETITION_LIMIT = 3

// MAX_TURNS defines the turn limit of computer-vs-computer games.
const MAX_TURNS = 300

// LISTEN_ADDR defines the default address of the game server.
const LISTEN_ADDR = ":3000"
