package client_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/mo-shahab/go-pong-mvc/client"
	"github.com/mo-shahab/go-pong-mvc/test"
)

// captureLog redirects the standard logger for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags, out := log.Flags(), log.Writer()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
	return &buf
}

func TestSendDropsQuietly(t *testing.T) {
	logged := captureLog(t)

	c := client.New(nil, 1)
	test.ExpectSuccess(t, c.Send([]byte("frame 1")))

	// a stalled client keeps being offered frames every tick
	for i := 0; i < 250; i++ {
		test.ExpectFailure(t, c.Send([]byte("frame")))
	}
	test.ExpectEquality(t, c.Dropped(), 250)
	test.ExpectEquality(t, strings.Count(logged.String(), "Dropping messages"), 1)

	<-c.SendQueue
	test.ExpectSuccess(t, c.Send([]byte("frame 2")))
	test.ExpectEquality(t, c.Dropped(), 0)
	test.ExpectEquality(t, strings.Count(logged.String(), "250 messages dropped"), 1)

	// a second stall is reported again
	test.ExpectFailure(t, c.Send([]byte("frame")))
	test.ExpectEquality(t, strings.Count(logged.String(), "Dropping messages"), 2)
}

func TestSendAfterClose(t *testing.T) {
	c := client.New(nil, 1)
	c.Close()
	c.Close()
	test.ExpectFailure(t, c.Send([]byte("frame")))
	test.ExpectEquality(t, c.Dropped(), 0)
}
