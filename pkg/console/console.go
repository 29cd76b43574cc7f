// Package console is the interactive driver for the piece supply: it draws
// the queue and reserve stack, reads menu choices and reports the outcome of
// each exchange.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/tetris-stack/pkg/common/apperr"
	"github.com/huynhanx03/tetris-stack/pkg/exchange"
	"github.com/huynhanx03/tetris-stack/pkg/settings"
)

// Console runs the menu loop over an exchange.Engine.
type Console struct {
	engine *exchange.Engine
	items  []menuItem
	pause  bool
	in     *bufio.Scanner
	out    io.Writer
	view   *view
	log    *zap.Logger
}

// New creates a console for engine. cfg selects the menu level, pausing and
// colors.
func New(engine *exchange.Engine, cfg settings.Config, in io.Reader, out io.Writer, log *zap.Logger) *Console {
	return &Console{
		engine: engine,
		items:  menuFor(cfg.Game.Level),
		pause:  cfg.Console.Pause,
		in:     bufio.NewScanner(in),
		out:    out,
		view:   newView(out, cfg.Console.Color),
		log:    log,
	}
}

// Run fills the queue and serves commands until the player quits or input
// ends. It returns only input errors.
func (c *Console) Run() error {
	c.println(c.view.title.Render("TETRIS STACK - PIECE SUPPLY"))
	added := c.engine.Fill()
	c.log.Info("queue filled", zap.Int("pieces", added))
	c.printf("Queue initialized with %d pieces.\n", added)
	if !c.wait() {
		return c.finish()
	}

	for {
		c.println(c.State())
		c.println(c.view.menu(c.items))
		c.printf("Choose an option: ")

		line, ok := c.readLine()
		if !ok {
			return c.finish()
		}
		c.println()

		act := parse(c.items, line)
		if act == actionQuit {
			c.println("Shutting down...")
			return c.finish()
		}
		c.execute(act, line)
		if !c.wait() {
			return c.finish()
		}
	}
}

// execute performs act and prints its outcome. raw is the input that
// produced it, logged alongside the action.
func (c *Console) execute(act action, raw string) {
	c.log.Debug("command received", zap.String("action", act.String()), zap.String("input", raw))

	msg, err := c.dispatch(act)
	if err != nil {
		appErr := apperr.MapError(act.String(), err)
		c.log.Warn("command rejected",
			zap.String("action", act.String()),
			zap.Int("code", appErr.Code),
			zap.Error(err),
		)
		c.println(c.view.errMsg.Render(fmt.Sprintf("ERROR [%d] %s", appErr.Code, appErr.Message)))
		return
	}
	c.log.Info("command applied", zap.String("action", act.String()))
	c.println(c.view.okMsg.Render(msg))
}

var errInvalidOption = errors.New("invalid option")

func (c *Console) dispatch(act action) (string, error) {
	e := c.engine
	switch act {
	case actionPlay:
		p, err := e.Play()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("PLAYED: %s", p), nil
	case actionInsert:
		p, err := e.Insert()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("INSERTED: %s", p), nil
	case actionReserve:
		p, err := e.Reserve()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("RESERVED: %s", p), nil
	case actionUse:
		p, err := e.UseReserved()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("USED: %s", p), nil
	case actionSwapOne:
		res, err := e.SwapOne()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("SWAPPED: queue front %s <-> stack top %s", res.FromQueue, res.FromStack), nil
	case actionSwapThree:
		res, err := e.SwapThree()
		if err != nil {
			return "", err
		}
		return swapThreeReport(res), nil
	}
	return "", apperr.NewError("menu", apperr.CodeInvalidOption, apperr.MsgInvalidOption, errInvalidOption)
}

func swapThreeReport(res exchange.SwapThreeResult) string {
	var b strings.Builder
	b.WriteString("SWAPPED 3 x 3:\n")
	fmt.Fprintf(&b, "  removed from queue: %s %s %s\n", res.FromQueue[0], res.FromQueue[1], res.FromQueue[2])
	fmt.Fprintf(&b, "  removed from stack: %s %s %s\n", res.FromStack[0], res.FromStack[1], res.FromStack[2])
	fmt.Fprintf(&b, "  into queue:         %s %s %s\n", res.FromStack[0], res.FromStack[1], res.FromStack[2])
	fmt.Fprintf(&b, "  into stack:         %s %s %s", res.FromQueue[2], res.FromQueue[1], res.FromQueue[0])
	return b.String()
}

// State renders the queue and the reserve stack.
func (c *Console) State() string {
	e := c.engine
	queue := c.view.section("Next pieces (front -> back)", c.view.pieces(e.QueueContents()), e.QueueLen(), e.QueueCapacity())
	stack := c.view.section("Reserve (top -> bottom)", c.view.pieces(e.StackContents()), e.StackLen(), e.StackCapacity())
	return c.view.box.Render(queue + "\n\n" + stack)
}

func (c *Console) finish() error {
	total := c.engine.GeneratedCount()
	c.log.Info("session finished", zap.Int64("generated", total))
	c.printf("\nTotal pieces generated: %d\n", total)
	return errors.Wrap(c.in.Err(), "read input")
}

// wait blocks for ENTER when pausing is enabled. It reports false once input
// is exhausted.
func (c *Console) wait() bool {
	if !c.pause {
		return true
	}
	c.printf("\nPress ENTER to continue...")
	_, ok := c.readLine()
	return ok
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) println(a ...any)               { fmt.Fprintln(c.out, a...) }
func (c *Console) printf(format string, a ...any) { fmt.Fprintf(c.out, format, a...) }
