package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/GlebRadaev/aescholar/internal/config"
	"github.com/GlebRadaev/aescholar/internal/sfs"
	"github.com/stretchr/testify/suite"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestBuildDeps() {
	cfg := &config.Config{
		EncryptionKey: "ae-scholarships-dev-key-32bytes!",
		UploadDir:     s.T().TempDir(),
		JWTSecret:     "secret",
		JWTTTL:        time.Hour,
		SFSWorkers:    3,
	}

	deps, err := buildDeps(cfg)

	s.Require().NoError(err)
	s.NotNil(deps.Storage)
	s.NotNil(deps.Cipher)
	s.IsType(&sfs.Stub{}, deps.Checker)
	s.Equal(time.Hour, deps.Auth.TokenTTL)
	s.Equal(3, deps.SFSWorkers)
}

func (s *ApplicationSuite) TestBuildDeps_ShortKey() {
	_, err := buildDeps(&config.Config{EncryptionKey: "short", UploadDir: s.T().TempDir()})

	s.Require().Error(err)
	s.Contains(err.Error(), "SIN cipher")
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_SchedulerStopsOnCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	s.app.sched = sfs.NewScheduler(nil, 0)
	s.app.startScheduler(ctx)

	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}
