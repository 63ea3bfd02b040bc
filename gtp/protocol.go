// Package gtp implements the Go Text Protocol loop around a Game: parsing
// commands from a reader, dispatching to handlers, and writing "= ...\n\n"
// / "? ...\n\n" responses, following the shape of the teacher's GTP
// driver (skybrian-Gongo/gongo_gtp.go) rather than the board/MCTS core,
// which spec.md explicitly keeps GTP-agnostic.
package gtp

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var wordPattern = regexp.MustCompile(`\S+`)

// Run reads GTP commands from in and writes responses to out until a
// "quit" command is handled or a read error occurs (typically io.EOF at
// end of input).
func Run(game *Game, in io.Reader, out io.Writer, log logrus.FieldLogger) error {
	if log == nil {
		log = logrus.StandardLogger()
	}
	reader := bufio.NewReader(in)
	for {
		cmd, args, err := parseCommand(reader)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		handle, ok := handlers[cmd]
		if !ok {
			log.WithField("command", cmd).Warn("gongo/gtp: unknown command")
			fmt.Fprint(out, errorResponse("unknown command").String())
			continue
		}

		resp := handle(request{game: game, args: args})
		fmt.Fprint(out, resp.String())

		if cmd == "quit" {
			return nil
		}
	}
}

func parseCommand(in *bufio.Reader) (cmd string, args []string, err error) {
	for {
		line, err := in.ReadString('\n')
		if err != nil {
			return "", nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words := wordPattern.FindAllString(line, -1)
		return strings.ToLower(words[0]), words[1:], nil
	}
}

type handler func(request) response

type request struct {
	game *Game
	args []string
}

type response struct {
	message string
	success bool
}

func successResponse(message string) response { return response{message, true} }
func errorResponse(message string) response   { return response{message, false} }

func (r response) String() string {
	prefix := "="
	if !r.success {
		prefix = "?"
	}
	return prefix + " " + r.message + "\n\n"
}

var handlers = map[string]handler{
	"boardsize":        handleBoardsize,
	"clear_board":      handleClearBoard,
	"genmove":          handleGenmove,
	"known_command":    handleKnownCommand,
	"komi":             handleKomi,
	"list_commands":    handleListCommands,
	"name":             func(request) response { return successResponse("ponygo") },
	"play":             handlePlay,
	"protocol_version": func(request) response { return successResponse("2") },
	"quit":             func(request) response { return successResponse("") },
	"score":            handleScore,
	"showboard":        handleShowboard,
	"undo":             handleUndo,
	"version":          func(request) response { return successResponse("1.0") },
}

func handleListCommands(req request) response {
	if len(req.args) != 0 {
		return errorResponse("wrong number of arguments")
	}
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return successResponse(strings.Join(names, "\n"))
}

func handleKnownCommand(req request) response {
	if len(req.args) != 1 {
		return errorResponse("wrong number of arguments")
	}
	_, ok := handlers[req.args[0]]
	return successResponse(fmt.Sprintf("%v", ok))
}
