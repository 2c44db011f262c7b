// Package gtp implements the Go Text Protocol front end: a line-oriented
// command dispatcher that drives the rules core on behalf of a GTP
// controller such as gogui or kgsGtp. The engine itself knows nothing
// about the protocol; all translation between vertices and board
// coordinates, and between boolean move results and protocol errors,
// happens here.
package gtp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/clockgo/clockgo/board"
	"github.com/clockgo/clockgo/bot"
)

const (
	EngineName         = "clockgo"
	EngineVersion      = "0.2.0"
	gtpProtocolVersion = "2"
)

// Controller holds the engine state the protocol surface exposes: the
// board, the komi (stored but irrelevant to the rules core) and the
// move generator.
type Controller struct {
	board    *board.Board
	komi     float64
	searcher *bot.Searcher
	quitting bool
}

type handler func(c *Controller, args []string) (string, error)

var commands map[string]handler

func init() {
	commands = map[string]handler{
		"protocol_version": (*Controller).protocolVersion,
		"name":             (*Controller).name,
		"version":          (*Controller).version,
		"known_command":    (*Controller).knownCommand,
		"list_commands":    (*Controller).listCommands,
		"quit":             (*Controller).quit,
		"boardsize":        (*Controller).boardsize,
		"clear_board":      (*Controller).clearBoard,
		"komi":             (*Controller).setKomi,
		"play":             (*Controller).play,
		"genmove":          (*Controller).genmove,
		"undo":             (*Controller).undo,
		"showboard":        (*Controller).showboard,
		"cg_list_groups":   (*Controller).listGroups,
	}
}

// NewController returns a controller with an empty board of the given
// size and komi.
func NewController(size int, komi float64, searcher *bot.Searcher) *Controller {
	b := board.New()
	if !b.Resize(size) {
		log.Warn().Int("size", size).Msg("unacceptable configured board size, keeping default")
	}
	return &Controller{board: b, komi: komi, searcher: searcher}
}

// Board exposes the controller's board for tests and the console mode.
func (c *Controller) Board() *board.Board { return c.board }

// Execute runs a single GTP request line and returns the fully framed
// response ("=[id] ..." or "?[id] ..."). An empty response means the
// line was blank or a comment. The second return reports whether the
// session should end.
func (c *Controller) Execute(line string) (string, bool) {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	// An optional numeric id precedes the command name.
	id := ""
	if _, err := strconv.Atoi(fields[0]); err == nil {
		id = fields[0]
		fields = fields[1:]
		if len(fields) == 0 {
			return frame("?", id, "missing command"), false
		}
	}

	cmd := strings.ToLower(fields[0])
	args := fields[1:]
	log.Debug().Str("cmd", cmd).Strs("args", args).Msg("gtp command")

	h, ok := commands[cmd]
	if !ok {
		return frame("?", id, "unknown command"), false
	}
	result, err := h(c, args)
	if err != nil {
		return frame("?", id, err.Error()), false
	}
	return frame("=", id, result), c.quitting
}

// Loop reads GTP requests from r until quit or EOF, writing each framed
// response followed by the protocol's blank line to w.
func Loop(c *Controller, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	out := bufio.NewWriter(w)
	for scanner.Scan() {
		resp, quit := c.Execute(scanner.Text())
		if resp != "" {
			fmt.Fprintf(out, "%s\n\n", resp)
			if err := out.Flush(); err != nil {
				return err
			}
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

func frame(prefix, id, msg string) string {
	if msg == "" {
		return prefix + id
	}
	return prefix + id + " " + msg
}

func (c *Controller) protocolVersion(args []string) (string, error) {
	return gtpProtocolVersion, nil
}

func (c *Controller) name(args []string) (string, error) {
	return EngineName, nil
}

func (c *Controller) version(args []string) (string, error) {
	return EngineVersion, nil
}

func (c *Controller) knownCommand(args []string) (string, error) {
	if len(args) < 1 {
		return "", errors.New("need a command name")
	}
	_, known := commands[strings.ToLower(args[0])]
	return strconv.FormatBool(known), nil
}

func (c *Controller) listCommands(args []string) (string, error) {
	names := lo.Keys(commands)
	sort.Strings(names)
	return strings.Join(names, "\n"), nil
}

func (c *Controller) quit(args []string) (string, error) {
	c.quitting = true
	return "", nil
}

func (c *Controller) boardsize(args []string) (string, error) {
	if len(args) < 1 {
		return "", errors.New("need a board size")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || !c.board.Resize(n) {
		return "", errors.New("unacceptable size")
	}
	return "", nil
}

func (c *Controller) clearBoard(args []string) (string, error) {
	c.board.Clear()
	return "", nil
}

func (c *Controller) setKomi(args []string) (string, error) {
	if len(args) < 1 {
		return "", errors.New("need a komi value")
	}
	k, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "", errors.New("syntax error")
	}
	c.komi = k
	return "", nil
}

func (c *Controller) play(args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("need a color and a vertex")
	}
	color, err := ParseColor(args[0])
	if err != nil {
		return "", err
	}
	p, pass, err := ParseVertex(args[1], c.board.Size())
	if err != nil {
		return "", err
	}
	if pass {
		c.board.Pass(color)
		return "", nil
	}
	if !c.board.Play(color, p.X, p.Y) {
		return "", errors.New("illegal move")
	}
	return "", nil
}

func (c *Controller) genmove(args []string) (string, error) {
	if len(args) < 1 {
		return "", errors.New("need a color")
	}
	color, err := ParseColor(args[0])
	if err != nil {
		return "", err
	}
	p, ok := c.searcher.GenMove(c.board, color)
	if !ok {
		return "pass", nil
	}
	return FormatVertex(p), nil
}

func (c *Controller) undo(args []string) (string, error) {
	if !c.board.Undo() {
		return "", errors.New("cannot undo")
	}
	return "", nil
}

func (c *Controller) showboard(args []string) (string, error) {
	var sb strings.Builder
	sb.WriteString(c.board.ToDisplayText())
	black, white := c.board.DeadStones()
	fmt.Fprintf(&sb, "captured black stones: %d\ncaptured white stones: %d", black, white)
	return sb.String(), nil
}

// listGroups is a diagnostic window into the group bookkeeping: every
// live group with its stones and liberties.
func (c *Controller) listGroups(args []string) (string, error) {
	groups := c.board.Groups()
	ids := lo.Keys(groups)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var sb strings.Builder
	sb.WriteString("groups:")
	for _, id := range ids {
		g := groups[id]
		fmt.Fprintf(&sb, "\n%d (%s) stones:", id, g.Color())
		for _, p := range g.Stones() {
			fmt.Fprintf(&sb, " %s", FormatVertex(p))
		}
		sb.WriteString(" liberties:")
		for _, p := range g.Liberties() {
			fmt.Fprintf(&sb, " %s", FormatVertex(p))
		}
	}
	return sb.String(), nil
}
