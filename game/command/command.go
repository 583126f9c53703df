// Package command implements the VGAP "Command Messages" a player's
// turn can carry: free-form directives like alliance offers or
// ship-renaming requests that Host interprets at turn resolution,
// addressed by a short verb plus an optional numeric id. The grammar
// itself is small: a verb token, an optional id, and the remainder of
// the line as a free-form argument.
package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is one parsed command-message line.
type Command struct {
	Verb string
	ID   int
	Arg  string
}

// Parse splits a command-message line into verb, optional numeric id,
// and argument. The first whitespace-separated token is the verb; if
// the next token parses as an integer it becomes ID and the remainder
// of the line becomes Arg, otherwise ID is 0 and everything after the
// verb becomes Arg.
func Parse(text string) (Command, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("command: empty command text")
	}

	verb := strings.ToLower(fields[0])
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), fields[0]))

	if len(fields) > 1 {
		if id, err := strconv.Atoi(fields[1]); err == nil {
			arg := strings.TrimSpace(strings.TrimPrefix(rest, fields[1]))
			return Command{Verb: verb, ID: id, Arg: arg}, nil
		}
	}
	return Command{Verb: verb, ID: 0, Arg: rest}, nil
}

func (c Command) key() string { return c.Verb + "\x00" + strconv.Itoa(c.ID) }
