package gtp

import (
	"strconv"

	"github.com/mononofu/ponygo/board"
)

func handleBoardsize(req request) response {
	if len(req.args) != 1 {
		return errorResponse("wrong number of arguments")
	}
	size, err := strconv.Atoi(req.args[0])
	if err != nil {
		return errorResponse("unacceptable size")
	}
	if !req.game.SetBoardSize(size) {
		return errorResponse("unacceptable size")
	}
	return successResponse("")
}

func handleClearBoard(req request) response {
	if len(req.args) != 0 {
		return errorResponse("wrong number of arguments")
	}
	req.game.ClearBoard()
	return successResponse("")
}

func handleKomi(req request) response {
	if len(req.args) != 1 {
		return errorResponse("wrong number of arguments")
	}
	if _, err := strconv.ParseFloat(req.args[0], 64); err != nil {
		return errorResponse("syntax error")
	}
	// Scoring uses the fixed double-komi from spec.md §4.2; a requested
	// komi is acknowledged (GTP clients expect this to succeed) but does
	// not change the search or score.
	return successResponse("")
}

func handlePlay(req request) response {
	if len(req.args) != 2 {
		return errorResponse("wrong number of arguments")
	}
	stone, ok := board.ParseStone(req.args[0])
	if !ok {
		return errorResponse("syntax error")
	}
	v, err := req.game.ParseVertex(req.args[1])
	if err != nil {
		return errorResponse("syntax error")
	}
	if !req.game.Play(stone, v) {
		return errorResponse("illegal move")
	}
	return successResponse("")
}

func handleGenmove(req request) response {
	if len(req.args) != 1 {
		return errorResponse("wrong number of arguments")
	}
	stone, ok := board.ParseStone(req.args[0])
	if !ok {
		return errorResponse("syntax error")
	}
	v := req.game.GenMove(stone)
	return successResponse(req.game.VertexString(v))
}

func handleShowboard(req request) response {
	if len(req.args) != 0 {
		return errorResponse("wrong number of arguments")
	}
	return successResponse(req.game.Showboard())
}

func handleUndo(req request) response {
	n := 1
	if len(req.args) == 1 {
		parsed, err := strconv.Atoi(req.args[0])
		if err != nil || parsed < 1 {
			return errorResponse("syntax error")
		}
		n = parsed
	} else if len(req.args) > 1 {
		return errorResponse("wrong number of arguments")
	}
	if !req.game.Undo(n) {
		return errorResponse("cannot undo")
	}
	return successResponse("")
}

func handleScore(req request) response {
	if len(req.args) != 0 {
		return errorResponse("wrong number of arguments")
	}
	return successResponse(strconv.Itoa(req.game.Score()))
}
