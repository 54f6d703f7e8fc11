package logsink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLogrusWarnfWritesMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	sink := New(logger)
	sink.Warnf("permission denied: %s", "/tmp/x")

	if !strings.Contains(buf.String(), "permission denied: /tmp/x") {
		t.Fatalf("expected message in output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "level=warning") {
		t.Fatalf("expected warn level, got %q", buf.String())
	}
}

func TestLogrusWithAttachesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	sink := New(logger).With(logrus.Fields{"phase": "scan"})
	sink.Infof("starting")

	if !strings.Contains(buf.String(), `phase=scan`) {
		t.Fatalf("expected phase field in output, got %q", buf.String())
	}
}

func TestDiscardSwallowsEverything(t *testing.T) {
	var d Discard
	d.Warnf("whatever %d", 1)
	d.Infof("whatever")
	d.Debugf("whatever")
}
