package command

import "fmt"

// ErrNoGame reports that no game is loaded — a command message cannot be
// addressed to a nonexistent turn. Container and Registry have no notion
// of a loaded game and never return it themselves.
var ErrNoGame = fmt.Errorf("command: no game loaded")

// Container holds one player's set of outgoing command messages for the
// current turn, keyed by verb+id so a later AddCommand for the same
// target replaces rather than duplicates the earlier one.
type Container struct {
	commands map[string]Command
	order    []string
}

// NewContainer returns an empty command container.
func NewContainer() *Container {
	return &Container{commands: map[string]Command{}}
}

// AddCommand parses text and stores it, replacing any existing command
// with the same verb and id.
func (c *Container) AddCommand(text string) error {
	cmd, err := Parse(text)
	if err != nil {
		return err
	}
	key := cmd.key()
	if _, exists := c.commands[key]; !exists {
		c.order = append(c.order, key)
	}
	c.commands[key] = cmd
	return nil
}

// DeleteCommand parses text and removes the matching command, if any.
// It is not an error for the command to be absent.
func (c *Container) DeleteCommand(text string) error {
	cmd, err := Parse(text)
	if err != nil {
		return err
	}
	key := cmd.key()
	if _, exists := c.commands[key]; !exists {
		return nil
	}
	delete(c.commands, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// GetCommand parses text and returns the argument of the matching
// command, or ok=false if no such command is present.
func (c *Container) GetCommand(text string) (string, bool, error) {
	cmd, err := Parse(text)
	if err != nil {
		return "", false, err
	}
	found, ok := c.commands[cmd.key()]
	if !ok {
		return "", false, nil
	}
	return found.Arg, true, nil
}

// Commands returns the stored commands in insertion order.
func (c *Container) Commands() []Command {
	out := make([]Command, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.commands[k])
	}
	return out
}

// Len returns the number of stored commands.
func (c *Container) Len() int { return len(c.order) }
