package proxy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playbymail/vgacore/game/msg"
)

func startGameThread(t *testing.T) (*Dispatcher, func()) {
	t.Helper()
	d := NewDispatcher()
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		d.Run(stop)
		close(done)
	}()
	return d, func() {
		close(stop)
		<-done
	}
}

func TestMailboxProxy_BrowseAndDisplayText(t *testing.T) {
	game, stopGame := startGameThread(t)
	defer stopGame()
	ui, stopUI := startGameThread(t)
	defer stopUI()

	session := NewSession()
	session.Inbox.Add(1, "first message")
	session.Inbox.Add(1, "second message")

	sessionSender := NewSessionSender(game, session)
	current := -1
	browser := msg.NewBrowser(session.Inbox, session.MailboxConfig)

	mp := NewMailboxProxy(sessionSender, ui, func(s *Session) *MailboxAdaptor {
		return NewMailboxAdaptor(s.Inbox, &current, browser)
	})

	wi := NewWaitIndicator(ui)
	assert.Equal(t, 2, mp.NumMessages(wi))

	updated := make(chan struct{}, 4)
	mp.OnUpdate.Subscribe(func() {
		select {
		case updated <- struct{}{}:
		default:
		}
	})

	mp.Browse(msg.First, 1, false)
	waitForSignal(t, updated)

	assert.Equal(t, 0, mp.CurrentMessage(wi))
	assert.Contains(t, mp.DisplayText(wi), "first")

	mp.Browse(msg.Next, 1, false)
	waitForSignal(t, updated)
	assert.Equal(t, 1, mp.CurrentMessage(wi))
}

func waitForSignal(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for proxy update signal")
	}
}

func TestWaitIndicator_PumpsOwnDispatcherWhileBlocked(t *testing.T) {
	game, stopGame := startGameThread(t)
	defer stopGame()
	ui := NewDispatcher()

	value := 0
	sender := NewSender(game, func() *int { return &value })

	pumped := false
	ui.Post(func() { pumped = true })

	wi := NewWaitIndicator(ui)
	Call(wi, sender, func(v *int) { *v = 42 })

	require.Equal(t, 42, value)
	assert.True(t, pumped, "WaitIndicator should have pumped the caller's own dispatcher while blocked")
}

func TestMakeTemporary_BuildsOnce(t *testing.T) {
	game, stopGame := startGameThread(t)
	defer stopGame()
	ui := NewDispatcher()
	wi := NewWaitIndicator(ui)

	builds := 0
	session := NewSession()
	sessionSender := NewSessionSender(game, session)
	derived := MakeTemporary(sessionSender, func(s *Session) *Session {
		builds++
		return s
	})

	for i := 0; i < 3; i++ {
		Call(wi, derived, func(*Session) {})
	}
	assert.Equal(t, 1, builds)
}

func TestSimulationAdaptor_FreshenStopIsolatesRuns(t *testing.T) {
	a := NewSimulationAdaptor(nil)
	first := a.stop
	a.Stop()
	assert.True(t, first.ShouldStop())

	a.freshenStop()
	assert.False(t, a.stop.ShouldStop())
	assert.NotSame(t, first, a.stop)
}
