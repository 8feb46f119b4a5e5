package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	failMe   bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Me(ctx context.Context) error {
	f.calls = append(f.calls, "me")
	if f.failMe {
		return errors.New("me failed")
	}
	return nil
}
func (f *fakeExec) Refresh(ctx context.Context) error {
	f.calls = append(f.calls, "refresh")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Ping(ctx context.Context) error {
	f.calls = append(f.calls, "ping")
	return nil
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"register",
		"login",
		"help",
		"",
		"me",
		"refresh",
		"ping",
		"foobar",
		"logout",
		"exit",
		"me",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)), &out)

	assert.Equal(t, []string{"register", "login", "me", "refresh", "ping", "logout"}, exec.calls)
	assert.Contains(t, out.String(), "Available commands: register, login, ping, exit")
	assert.Contains(t, out.String(), "Available commands: me, refresh, logout, ping, exit")
	assert.Contains(t, out.String(), "Unknown command: foobar")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_PrintsErrorsAndStopsOnEOF(t *testing.T) {
	exec := &fakeExec{loggedIn: true, failMe: true}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "(alice)" }, bufio.NewReader(strings.NewReader("me\nme")), &out)

	assert.Equal(t, []string{"me", "me"}, exec.calls)
	assert.Contains(t, out.String(), "gw(alice)> ")
	assert.Equal(t, 2, strings.Count(out.String(), "Error: me failed"))
}
