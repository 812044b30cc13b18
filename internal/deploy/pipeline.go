package deploy

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"davdeploy/internal/build"
	"davdeploy/internal/config"
	"davdeploy/internal/logger"
	"davdeploy/internal/webdav"
)

var plog = logger.PackageLogger("🚀 DEPLOY")

// Pipeline runs one deployment end to end: build, provision the remote
// target, upload. Stages execute strictly in sequence; the first failure is
// terminal.
type Pipeline struct {
	cfg    *config.Config
	remote webdav.Remote
	log    *logger.Logger
	out    io.Writer

	now      func() time.Time
	runBuild func(context.Context) error
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithRemote sets the WebDAV target for the deployment.
func WithRemote(r webdav.Remote) Option {
	return func(p *Pipeline) { p.remote = r }
}

// WithOutput redirects build tool output (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(p *Pipeline) { p.out = w }
}

// WithClock overrides the clock used for deployment identifiers.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// WithBuildRunner replaces the build stage implementation.
func WithBuildRunner(f func(context.Context) error) Option {
	return func(p *Pipeline) { p.runBuild = f }
}

// WithLogger replaces the pipeline logger.
func WithLogger(l *logger.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// New assembles a Pipeline for cfg. A remote target is required.
func New(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		cfg: cfg,
		log: plog,
		out: os.Stdout,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.remote == nil {
		return nil, fmt.Errorf("no remote target configured")
	}
	if p.runBuild == nil {
		p.runBuild = func(ctx context.Context) error {
			return build.Run(ctx, p.cfg.Build, p.out)
		}
	}
	return p, nil
}

// Run executes the full pipeline for env. The returned Context carries the
// deployment identifier and remote paths for the success banner; on failure
// it records the stage that failed and the error.
func (p *Pipeline) Run(ctx context.Context, env string) (*Context, error) {
	d := &Context{Environment: env, stage: StageIdle}

	d.advance(StageBuilding)
	p.log.Info("building %s bundle...", env)
	if err := p.runBuild(ctx); err != nil {
		return d, d.fail(err)
	}
	p.log.Success("build finished")

	d.advance(StageProvisioning)
	if err := p.provision(d); err != nil {
		return d, d.fail(err)
	}
	p.log.Info("provisioned remote target %s", d.RemotePath)

	d.advance(StageUploading)
	p.log.Info("uploading %d files to %s", len(d.RootFiles)+len(d.StaticFiles), d.RemotePath)
	if err := p.uploadAll(d.OutputDir, d.RemotePath, d.RootFiles); err != nil {
		return d, d.fail(err)
	}
	if err := p.uploadAll(d.StaticDir, d.RemoteStaticPath, d.StaticFiles); err != nil {
		return d, d.fail(err)
	}

	d.advance(StageDone)
	p.log.Success("deployment %s complete", d.ID)
	return d, nil
}
