package orchestrator

import "github.com/copymill/copymill/pkg/models"

// Per-agent progress weights; they sum to 100.
var agentWeights = map[models.AgentType]int{
	models.AgentTypeResearch:       15,
	models.AgentTypeWriter:         35,
	models.AgentTypeSEO:            15,
	models.AgentTypeQA:             15,
	models.AgentTypeProjectManager: 20,
}

const (
	totalWeight = 100

	// Reported progress is capped below 100 until the project manager
	// finishes, so clients never see a "done" percentage on a running job.
	prePublishCap = 95
)

// progressTracker computes the reported percentage from completed agent
// weights. The reported value is a high-water mark: an iteration restart
// plateaus it instead of moving it backwards.
type progressTracker struct {
	completed int
	reported  int
	pmDone    bool
}

func newProgressTracker() *progressTracker {
	return &progressTracker{}
}

// complete records an agent (or skipped slot) as done and returns the
// percentage to report.
func (p *progressTracker) complete(agentType models.AgentType) int {
	p.completed += agentWeights[agentType]
	if agentType == models.AgentTypeProjectManager {
		p.pmDone = true
	}

	percent := p.completed * 100 / totalWeight
	if !p.pmDone && percent > prePublishCap {
		percent = prePublishCap
	}
	if percent > p.reported {
		p.reported = percent
	}
	return p.reported
}

// restartIteration gives the writer/seo/qa weights back to the remaining
// work when the QA back-edge fires. The reported high-water mark stays.
func (p *progressTracker) restartIteration() {
	p.completed -= agentWeights[models.AgentTypeWriter] +
		agentWeights[models.AgentTypeSEO] +
		agentWeights[models.AgentTypeQA]
	if p.completed < 0 {
		p.completed = 0
	}
}
