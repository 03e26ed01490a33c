package models

import (
	"encoding/json"
	"testing"

	"github.com/lk16/flippy-bot/internal/othello"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startBoard() [][]int {
	board := make([][]int, othello.Size)
	for i := range board {
		board[i] = make([]int, othello.Size)
	}
	board[3][3] = 2
	board[3][4] = 1
	board[4][3] = 1
	board[4][4] = 2
	return board
}

func TestCandidatesScan(t *testing.T) {
	tests := []struct {
		name       string
		input      interface{}
		wantErr    bool
		wantErrMsg string
		wantMoves  Candidates
	}{
		{
			name:      "OK",
			input:     []byte("{d3,c4}"),
			wantErr:   false,
			wantMoves: Candidates{{Row: 2, Col: 3}, {Row: 3, Col: 2}},
		},
		{
			name:      "String",
			input:     "{h8}",
			wantErr:   false,
			wantMoves: Candidates{{Row: 7, Col: 7}},
		},
		{
			name:      "Empty",
			input:     []byte("{}"),
			wantErr:   false,
			wantMoves: Candidates{},
		},
		{
			name:       "InvalidType",
			input:      123, // passing an int instead of []byte
			wantErr:    true,
			wantErrMsg: "cannot scan int into Candidates",
		},
		{
			name:       "NilBytes",
			input:      []byte(nil),
			wantErr:    true,
			wantErrMsg: "cannot scan nil into Candidates",
		},
		{
			name:       "BrokenField",
			input:      []byte("{d3,x9}"),
			wantErr:    true,
			wantErrMsg: "cannot convert x9 to move",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var moves Candidates
			err := moves.Scan(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantMoves, moves)
			}
		})
	}
}

func TestCandidatesValue(t *testing.T) {
	value, err := Candidates{{Row: 2, Col: 3}, {Row: 7, Col: 0}}.Value()
	require.NoError(t, err)
	require.Equal(t, "{d3,a8}", value)

	value, err = Candidates{}.Value()
	require.NoError(t, err)
	require.Equal(t, "{}", value)
}

func TestMoveRequestValidate(t *testing.T) {
	depth := 3
	maxDepth := MaxRequestDepth
	tooDeep := MaxRequestDepth + 1

	shortRow := startBoard()
	shortRow[5] = []int{0, 0}

	badSquare := startBoard()
	badSquare[0][0] = 3

	tests := []struct {
		name    string
		request MoveRequest
		wantErr bool
	}{
		{
			name:    "OK",
			request: MoveRequest{Player: 1, Board: startBoard()},
		},
		{
			name:    "OK with moves and depth",
			request: MoveRequest{Player: 1, Board: startBoard(), Moves: [][]int{{2, 3}}, Depth: &depth},
		},
		{
			name:    "missing board",
			request: MoveRequest{Player: 1},
			wantErr: true,
		},
		{
			name:    "short row",
			request: MoveRequest{Player: 1, Board: shortRow},
			wantErr: true,
		},
		{
			name:    "bad square",
			request: MoveRequest{Player: 1, Board: badSquare},
			wantErr: true,
		},
		{
			name:    "bad player",
			request: MoveRequest{Player: 0, Board: startBoard()},
			wantErr: true,
		},
		{
			name:    "move off board",
			request: MoveRequest{Player: 2, Board: startBoard(), Moves: [][]int{{8, 1}}},
			wantErr: true,
		},
		{
			name:    "short move",
			request: MoveRequest{Player: 2, Board: startBoard(), Moves: [][]int{{2}}},
			wantErr: true,
		},
		{
			name:    "long move",
			request: MoveRequest{Player: 2, Board: startBoard(), Moves: [][]int{{2, 3, 9}}},
			wantErr: true,
		},
		{
			name:    "deepest allowed depth",
			request: MoveRequest{Player: 1, Board: startBoard(), Depth: &maxDepth},
		},
		{
			name:    "depth too high",
			request: MoveRequest{Player: 1, Board: startBoard(), Depth: &tooDeep},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPayload)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMoveRequestDecode(t *testing.T) {
	var request MoveRequest
	err := json.Unmarshal([]byte(`{"player":1,"moves":[[2],[2,3,9]]}`), &request)
	require.NoError(t, err)
	require.Equal(t, [][]int{{2}, {2, 3, 9}}, request.Moves)

	request.Board = startBoard()
	_, err = request.Input()
	require.ErrorIs(t, err, ErrInvalidPayload)
}

func TestMoveRequestInput(t *testing.T) {
	request := MoveRequest{Player: 2, Board: startBoard(), Moves: [][]int{{2, 3}, {4, 5}}}

	input, err := request.Input()
	require.NoError(t, err)

	require.Equal(t, othello.White, input.Player)
	require.Equal(t, othello.NewStateStart().Grid(), input.Grid)
	require.Equal(t, []othello.Cell{{Row: 2, Col: 3}, {Row: 4, Col: 5}}, input.Moves)

	request.Moves = nil
	input, err = request.Input()
	require.NoError(t, err)
	require.Nil(t, input.Moves)
}
