package mapcore

// Token identifies a registered observer, returned by Signal.Subscribe so
// the caller can Unsubscribe later (including from within a callback).
type Token int

// Signal is a minimal multicast observer list. Unlike a classic signal
// type, it exposes explicit registration tokens instead of opaque
// connections, and removal during dispatch is safe: Unsubscribe deletes
// the listener's map entry, and a listener deleted during Emit before its
// turn is not called.
type Signal struct {
	next      Token
	listeners map[Token]func()
}

// Subscribe registers fn and returns a token for later removal.
func (s *Signal) Subscribe(fn func()) Token {
	if s.listeners == nil {
		s.listeners = make(map[Token]func())
	}
	s.next++
	tok := s.next
	s.listeners[tok] = fn
	return tok
}

// Unsubscribe removes a previously registered listener. Safe to call from
// within Emit.
func (s *Signal) Unsubscribe(tok Token) {
	delete(s.listeners, tok)
}

// Emit calls every currently registered listener, in an unspecified order.
func (s *Signal) Emit() {
	for _, fn := range s.listeners {
		fn()
	}
}
