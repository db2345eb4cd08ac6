package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeChain is an in-memory host. Writes of an aborted call are rolled back
// like on chain.
type fakeChain struct {
	state    map[string]string
	env      map[string]string
	logs     []string
	aborted  bool
	abortMsg string
}

func newFakeChain(sender string) *fakeChain {
	return &fakeChain{
		state: make(map[string]string),
		env: map[string]string{
			"msg.sender":      sender,
			"block.timestamp": "2025-09-03T00:00:01",
		},
	}
}

func (f *fakeChain) StateSetObject(key, value string) { f.state[key] = value }

func (f *fakeChain) StateGetObject(key string) *string {
	val, ok := f.state[key]
	if !ok {
		return nil
	}
	return &val
}

func (f *fakeChain) GetEnvKey(key string) *string {
	val, ok := f.env[key]
	if !ok {
		return nil
	}
	return &val
}

func (f *fakeChain) Log(msg string) { f.logs = append(f.logs, msg) }

type abortPanic string

func (f *fakeChain) Abort(msg string) {
	f.aborted = true
	f.abortMsg = msg
	panic(abortPanic(msg))
}

func (f *fakeChain) as(sender string) *fakeChain {
	f.env["msg.sender"] = sender
	return f
}

func (f *fakeChain) at(ts string) *fakeChain {
	f.env["block.timestamp"] = ts
	return f
}

// call runs an entry point with snapshot and rollback around it and returns
// the abort message, empty when the call succeeded.
func (f *fakeChain) call(entry func(*string, Chain) *string, payload string) (ret *string, abortMsg string) {
	snapshot := make(map[string]string, len(f.state))
	for k, v := range f.state {
		snapshot[k] = v
	}
	logCount := len(f.logs)
	f.aborted, f.abortMsg = false, ""

	defer func() {
		if r := recover(); r != nil {
			msg, ok := r.(abortPanic)
			if !ok {
				panic(r)
			}
			f.state = snapshot
			f.logs = f.logs[:logCount]
			abortMsg = string(msg)
		}
	}()
	ret = entry(&payload, f)
	return ret, ""
}

// events decodes the logged event lines.
func (f *fakeChain) events(t *testing.T) []Event {
	t.Helper()
	out := make([]Event, 0, len(f.logs))
	for _, l := range f.logs {
		var e Event
		if assert.NoError(t, json.Unmarshal([]byte(l), &e), l) {
			out = append(out, e)
		}
	}
	return out
}

// expectAbort is deferred by tests that call helpers directly.
func expectAbort(t *testing.T, chain *fakeChain, expectedMsg string) {
	t.Helper()
	r := recover()
	if !assert.NotNil(t, r, "expected Abort panic, but function did not panic") {
		return
	}
	assert.True(t, chain.aborted, "expected chain.Abort to be called")
	assert.Equal(t, expectedMsg, chain.abortMsg)
}
