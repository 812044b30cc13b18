package deploy

// Stage tracks where in the pipeline a deployment currently is.
type Stage int

const (
	StageIdle Stage = iota
	StageBuilding
	StageProvisioning
	StageUploading
	StageDone
	StageFailed
)

var stageNames = map[Stage]string{
	StageIdle:         "idle",
	StageBuilding:     "building",
	StageProvisioning: "provisioning",
	StageUploading:    "uploading",
	StageDone:         "done",
	StageFailed:       "failed",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// Context is the deployment record threaded through the pipeline. Each stage
// fills in what it discovers; exactly one stage writes before the next reads,
// so no locking is needed. The record lives for a single process run.
type Context struct {
	Environment string

	// Set by the provisioning stage.
	ID               string
	RemotePath       string
	RemoteStaticPath string
	OutputDir        string
	StaticDir        string
	RootFiles        []string
	StaticFiles      []string

	stage    Stage
	failedAt Stage
	err      error
}

// Stage returns the current pipeline stage.
func (c *Context) Stage() Stage {
	return c.stage
}

// Err returns the error that moved the pipeline to StageFailed, if any.
func (c *Context) Err() error {
	return c.err
}

func (c *Context) advance(s Stage) {
	c.stage = s
}

func (c *Context) fail(err error) error {
	c.failedAt = c.stage
	c.stage = StageFailed
	c.err = err
	return err
}

// FailedAt returns the stage the pipeline was in when it failed. It is only
// meaningful once Stage() reports StageFailed.
func (c *Context) FailedAt() Stage {
	return c.failedAt
}
