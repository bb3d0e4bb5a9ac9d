package startup

import (
	"context"
	"errors"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDependency struct {
	name      string
	dependsOn []string
	startErrs int
	log       *[]string
}

func (f *fakeDependency) GetName() string     { return f.name }
func (f *fakeDependency) DependsOn() []string { return f.dependsOn }

func (f *fakeDependency) Start(ctx context.Context) error {
	if f.startErrs > 0 {
		f.startErrs--
		return errors.New(f.name + " not ready")
	}
	*f.log = append(*f.log, "start:"+f.name)
	return nil
}

func (f *fakeDependency) Stop(ctx context.Context) error {
	*f.log = append(*f.log, "stop:"+f.name)
	return nil
}

func TestStartupOrdering(t *testing.T) {
	var log []string
	s := NewStartup(ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {}), 1)
	s.AddDependency(&fakeDependency{name: "server", dependsOn: []string{"postgres", "redis"}, log: &log})
	s.AddDependency(&fakeDependency{name: "postgres", log: &log})
	s.AddDependency(&fakeDependency{name: "redis", log: &log})

	require.NoError(t, s.Start(context.Background()))

	require.Len(t, log, 3)
	assert.Equal(t, "start:server", log[2])
	assert.Contains(t, log[:2], "start:postgres")
	assert.Contains(t, log[:2], "start:redis")
}

func TestStartupRetriesUntilSuccess(t *testing.T) {
	var log []string
	s := NewStartup(ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {}), 3)
	s.AddDependency(&fakeDependency{name: "postgres", startErrs: 2, log: &log})

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, []string{"start:postgres"}, log)
}

func TestStartupGivesUpAfterMaxAttempts(t *testing.T) {
	var log []string
	s := NewStartup(ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {}), 2)
	s.AddDependency(&fakeDependency{name: "postgres", startErrs: 5, log: &log})

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "startup failed after 2 attempts")
}

func TestStartupUnknownDependency(t *testing.T) {
	var log []string
	s := NewStartup(ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {}), 1)
	s.AddDependency(&fakeDependency{name: "server", dependsOn: []string{"postgres"}, log: &log})

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dependency 'postgres'")
}

func TestStartupStopReversesOrder(t *testing.T) {
	var log []string
	s := NewStartup(ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {}), 1)
	s.AddDependency(&fakeDependency{name: "postgres", log: &log})
	s.AddDependency(&fakeDependency{name: "server", dependsOn: []string{"postgres"}, log: &log})

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop(context.Background()))

	assert.Equal(t, []string{"start:postgres", "start:server", "stop:server", "stop:postgres"}, log)
}
