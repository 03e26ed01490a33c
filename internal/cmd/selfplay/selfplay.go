package selfplay

import (
	"fmt"
	"io"

	"github.com/lk16/flippy-bot/internal/othello"
	"github.com/lk16/flippy-bot/internal/search"
)

// Player picks moves for one side.
type Player struct {
	Color    othello.Color
	Searcher *search.Searcher
}

// Play lets black and white pick moves on game until it is over, printing every move to w.
// It returns the final state.
func Play(game *othello.Game, black, white *search.Searcher, w io.Writer) (othello.State, error) {
	players := map[othello.Color]Player{
		othello.Black: {Color: othello.Black, Searcher: black},
		othello.White: {Color: othello.White, Searcher: white},
	}

	for !game.IsOver() {
		state := game.State()
		player := players[state.Turn()]

		result, err := player.Searcher.BestMove(state, nil)
		if err != nil {
			return othello.State{}, fmt.Errorf("%s failed to pick a move: %w", player.Color, err)
		}

		if err = game.PushMove(result.Move); err != nil {
			return othello.State{}, err
		}

		fmt.Fprintf(w, "%2d. %-5s %s  score %4d  nodes %8d\n",
			len(game.Moves()), player.Color, result.Move.Field(), result.Score, result.Nodes)
	}

	final := game.State()
	for _, line := range final.ASCIIArtLines() {
		fmt.Fprintln(w, line)
	}

	return final, nil
}
