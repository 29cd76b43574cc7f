package console

import (
	"strings"

	"github.com/huynhanx03/tetris-stack/pkg/settings"
)

type action int

const (
	actionNone action = iota
	actionPlay
	actionInsert
	actionReserve
	actionUse
	actionSwapOne
	actionSwapThree
	actionQuit
)

func (a action) String() string {
	switch a {
	case actionPlay:
		return "play"
	case actionInsert:
		return "insert"
	case actionReserve:
		return "reserve"
	case actionUse:
		return "use"
	case actionSwapOne:
		return "swap_one"
	case actionSwapThree:
		return "swap_three"
	case actionQuit:
		return "quit"
	}
	return "none"
}

type menuItem struct {
	key   string
	act   action
	label string
}

var quitItem = menuItem{"0", actionQuit, "Quit"}

var menus = map[string][]menuItem{
	settings.LevelNovice: {
		{"1", actionPlay, "Play the front piece"},
		{"2", actionInsert, "Insert a new piece"},
	},
	settings.LevelAdventurer: {
		{"1", actionPlay, "Play the front piece"},
		{"2", actionReserve, "Reserve a piece (queue -> stack)"},
		{"3", actionUse, "Use a reserved piece"},
	},
	settings.LevelMaster: {
		{"1", actionPlay, "Play the front piece"},
		{"2", actionReserve, "Reserve a piece (queue -> stack)"},
		{"3", actionUse, "Use a reserved piece"},
		{"4", actionSwapOne, "Swap queue front with stack top"},
		{"5", actionSwapThree, "Swap first 3 (queue) with 3 (stack)"},
	},
}

var aliases = map[string]action{
	"play":    actionPlay,
	"insert":  actionInsert,
	"reserve": actionReserve,
	"use":     actionUse,
	"swap":    actionSwapOne,
	"swap1":   actionSwapOne,
	"swap3":   actionSwapThree,
	"quit":    actionQuit,
	"exit":    actionQuit,
	"q":       actionQuit,
}

// menuFor returns the items offered at level, quit last.
// Unknown levels get the master menu.
func menuFor(level string) []menuItem {
	items, ok := menus[level]
	if !ok {
		items = menus[settings.LevelMaster]
	}
	return append(items[:len(items):len(items)], quitItem)
}

// parse resolves a line of input against the menu. Only actions present in
// the menu are accepted, whether typed by key or by alias.
func parse(items []menuItem, line string) action {
	input := strings.ToLower(strings.TrimSpace(line))
	want, isAlias := aliases[input]
	for _, it := range items {
		if it.key == input || (isAlias && it.act == want) {
			return it.act
		}
	}
	return actionNone
}
