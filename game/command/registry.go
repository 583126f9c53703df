package command

// Registry holds one Container per player, created on first use. It is
// the script-facing surface for the three entry points in the command
// interface: AddCommand/DeleteCommand/GetCommand each resolve to the
// viewpoint player's container before delegating.
type Registry struct {
	containers map[int]*Container
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{containers: map[int]*Container{}}
}

// Container returns the given player's command container, creating it
// if this is the first command addressed to that player.
func (r *Registry) Container(player int) *Container {
	c, ok := r.containers[player]
	if !ok {
		c = NewContainer()
		r.containers[player] = c
	}
	return c
}

// AddCommand parses text and adds it to player's container.
func (r *Registry) AddCommand(player int, text string) error {
	return r.Container(player).AddCommand(text)
}

// DeleteCommand parses text and removes the matching command from
// player's container, if present.
func (r *Registry) DeleteCommand(player int, text string) error {
	return r.Container(player).DeleteCommand(text)
}

// GetCommand parses text and returns the argument of the matching
// command in player's container, or ok=false if absent.
func (r *Registry) GetCommand(player int, text string) (string, bool, error) {
	return r.Container(player).GetCommand(text)
}
