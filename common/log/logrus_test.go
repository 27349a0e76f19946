package log_test

import (
	"bytes"
	"testing"

	"github.com/sagernet/sing-deque/common/log"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestTaggedHook(t *testing.T) {
	logger := logrus.New()
	var buffer bytes.Buffer
	logger.SetOutput(&buffer)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	logger.AddHook(new(log.TaggedHook))

	logger.WithField("tag", "deque").Info("deque: size 4")
	require.Contains(t, buffer.String(), `msg="[deque]: size 4"`)
	require.NotContains(t, buffer.String(), "tag=")
}

func TestSetVerbose(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())
	log.SetVerbose(true)
	require.Equal(t, logrus.TraceLevel, logrus.GetLevel())
	log.SetVerbose(false)
	require.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
