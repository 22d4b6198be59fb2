package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	welcomeMessage  = "Welcome to Tic-Tac-Toe!"
	invalidMessage  = "Invalid move! Please choose a number between 1 and 9."
	occupiedMessage = "Spot already taken! Choose another."

	rowSeparator = "---|---|---"
)

// Console - line-oriented terminal for the game: one whitespace-separated token per prompt.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer

	xStyle lipgloss.Style
	oStyle lipgloss.Style
	color  bool
}

func New(in io.Reader, out io.Writer, color bool) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split((&moveSplitter{}).split)

	// the renderer picks its color profile from out, so pipes and buffers get plain text
	renderer := lipgloss.NewRenderer(out)

	return &Console{
		scanner: scanner,
		out:     out,
		xStyle:  renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#007e50", Dark: "#6afd76"}),
		oStyle:  renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0003ad", Dark: "#5f61fc"}),
		color:   color,
	}
}

func (that *Console) Welcome() {
	fmt.Fprintln(that.out, welcomeMessage)
}

// RenderBoard - prints the grid with a blank line before and after.
func (that *Console) RenderBoard(board *entity.Board) {
	var sb strings.Builder

	sb.WriteString("\n")
	for row := range entity.Size {
		cells := make([]string, 0, entity.Size)
		for col := range entity.Size {
			cells = append(cells, " "+that.renderCell(board.Cells[row][col])+" ")
		}
		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")

		if row < entity.Size-1 {
			sb.WriteString(rowSeparator + "\n")
		}
	}
	sb.WriteString("\n")

	fmt.Fprint(that.out, sb.String())
}

func (that *Console) renderCell(cell entity.Cell) string {
	if !that.color {
		return cell.String()
	}

	switch cell.Mark {
	case entity.PlayerX:
		return that.xStyle.Render(cell.Mark)
	case entity.PlayerO:
		return that.oStyle.Render(cell.Mark)
	default:
		return cell.String()
	}
}

func (that *Console) Prompt(player string) {
	fmt.Fprintf(that.out, "Player %s, enter your move (1-9): ", player)
}

// ReadMove - consumes the next token. A token that is not an integer yields ErrMalformedInput.
func (that *Console) ReadMove() (int, error) {
	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to scan input: %w", err)
		}
		return 0, apperror.ErrInputClosed
	}

	token := that.scanner.Text()
	move, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, token)
	}

	return move, nil
}

// Reject - prints the retry message matching a rejected move.
func (that *Console) Reject(err error) {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		fmt.Fprintln(that.out, occupiedMessage)
	default:
		fmt.Fprintln(that.out, invalidMessage)
	}
}

func (that *Console) Result(game *entity.Game) {
	fmt.Fprintln(that.out, game.Result())
}
